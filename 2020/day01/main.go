// Command day01 finds the entries of an expense report that sum to 2020.
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
want=514579

1721
979
366
299
675
1456
*/
func (s solver) D1p1() (any, error) {
	return s.solve(2)
}

// want=241861950
func (s solver) D1p2() (any, error) {
	return s.solve(3)
}

func (s solver) solve(k int) (any, error) {
	entries, err := parseEntries(s.Lines())
	if err != nil {
		return nil, err
	}
	s.Debugf("%d entries, %d tuples of %d", len(entries), aoc.Binomial(len(entries), k), k)
	prod, ok := productSumming(entries, k, 2020)
	if !ok {
		return nil, aoc.ErrNoSolution
	}
	return prod, nil
}
