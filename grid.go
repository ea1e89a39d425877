package aoc

import (
	"golang.org/x/exp/constraints"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Add returns p moved by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + d.X, p.Y + d.Y}
}

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// StandardizePt wraps p into the [0,size) rectangle.
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}
