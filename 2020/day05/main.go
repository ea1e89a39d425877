// Command day05 decodes binary space partitioned boarding passes.
package main

import (
	_ "embed"
	"slices"

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
want=820

FBFBBFFRLR
BFFFBBFRRR
FFFBBBFRRR
BBFFBBFRLL
*/
func (s solver) D5p1() (any, error) {
	ids, err := s.seatIDs()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, aoc.ErrNoSolution
	}
	return slices.Max(ids), nil
}

func (s solver) D5p2() (any, error) {
	ids, err := s.seatIDs()
	if err != nil {
		return nil, err
	}
	id, ok := FreeSeat(ids)
	if !ok {
		return nil, aoc.ErrNoSolution
	}
	return id, nil
}

func (s solver) seatIDs() ([]int, error) {
	var ids []int
	err := s.ForLinesY(func(_ int, line string) error {
		id, err := DecodeSeat(line)
		if err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	})
	return ids, err
}
