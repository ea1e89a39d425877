// Command day02 counts the passwords that satisfy their corporate policy.
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
want=2

1-3 a: abcde
1-3 b: cdefg
2-9 c: ccccccccc
*/
func (s solver) D2p1() (any, error) {
	return s.count(Policy.CountValid)
}

// want=1
func (s solver) D2p2() (any, error) {
	return s.count(Policy.PositionValid)
}

func (s solver) count(valid func(Policy) bool) (any, error) {
	policies, err := aoc.ParseLines(s.Lines(), ParsePolicy)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, p := range policies {
		if valid(p) {
			n++
		}
	}
	return n, nil
}
