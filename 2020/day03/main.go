// Command day03 counts the trees hit sledding down a repeating map.
package main

import (
	_ "embed"

	"github.com/aoc-solutions/aoc"
)

func main() {
	aoc.Run(2020, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=7

..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
*/
func (s solver) D3p1() (any, error) {
	m, err := s.parse()
	if err != nil {
		return nil, err
	}
	return m.Trees(aoc.Pt{X: 3, Y: 1}), nil
}

// want=336
func (s solver) D3p2() (any, error) {
	m, err := s.parse()
	if err != nil {
		return nil, err
	}
	slopes := []aoc.Pt{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 7, Y: 1}, {X: 1, Y: 2}}
	trees := make([]int, len(slopes))
	for i, slope := range slopes {
		trees[i] = m.Trees(slope)
		s.Debugf("slope %v: %d trees", slope, trees[i])
	}
	return aoc.Product(trees...), nil
}

func (s solver) parse() (Map, error) {
	return ParseMap(string(s.Input()))
}
