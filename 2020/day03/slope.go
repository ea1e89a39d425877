package main

import (
	"errors"
	"fmt"

	"github.com/aoc-solutions/aoc"
)

var ErrRaggedMap = errors.New("line has a different length")

type Tile bool

const (
	Open Tile = false
	Tree Tile = true
)

// Map is the local geology. It repeats to the right forever.
type Map struct {
	Grid aoc.Grid[Tile]
}

func parseRow(line string) ([]Tile, error) {
	row := make([]Tile, len(line))
	for x, c := range []byte(line) {
		switch c {
		case '.':
			row[x] = Open
		case '#':
			row[x] = Tree
		default:
			return nil, fmt.Errorf("invalid symbol %q at column %d", c, x+1)
		}
	}
	return row, nil
}

// ParseMap parses a whole map.
func ParseMap(input string) (Map, error) {
	var m Map
	for i, line := range aoc.Lines(input) {
		row, err := parseRow(line)
		if err == nil && i > 0 && len(row) != len(m.Grid[0]) {
			err = ErrRaggedMap
		}
		if err != nil {
			return Map{}, aoc.AtLine(i+1, err)
		}
		m.Grid = append(m.Grid, row)
	}
	return m, nil
}

// Trees counts the trees met going from the top left corner by slope
// until falling past the bottom row.
func (m Map) Trees(slope aoc.Pt) int {
	size := m.Grid.Size()
	if size.X == 0 || slope.Y <= 0 {
		return 0
	}
	n := 0
	for p := slope; p.Y < size.Y; p = p.Add(slope) {
		if m.Grid.At(aoc.StandardizePt(p, size)) == Tree {
			n++
		}
	}
	return n
}
