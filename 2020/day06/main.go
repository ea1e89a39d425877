// Command day06 tallies the customs declaration answers of each group.
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
want=11

abc

a
b
c

ab
ac

a
a
a
a

b
*/
func (s solver) D6p1() (any, error) {
	return s.sum(Group.Anyone)
}

// want=6
func (s solver) D6p2() (any, error) {
	return s.sum(Group.Everyone)
}

func (s solver) sum(count func(Group) int) (any, error) {
	groups, err := ParseGroups(s.Records())
	if err != nil {
		return nil, err
	}
	total := 0
	for _, g := range groups {
		total += count(g)
	}
	return total, nil
}
