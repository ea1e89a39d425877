// Command day07 answers questions about nested luggage rules.
package main

import (
	_ "embed"
	"errors"

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

const target = "shiny gold"

/*
want=4

light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
*/
func (s solver) D7p1() (any, error) {
	bags, id, err := s.parse()
	if err != nil {
		return nil, err
	}
	return bags.Containers(id), nil
}

// want=32
func (s solver) D7p2() (any, error) {
	bags, id, err := s.parse()
	if err != nil {
		return nil, err
	}
	return bags.Contained(id)
}

func (s solver) parse() (*BagRules, int, error) {
	bags, err := ParseBagRules(string(s.Input()))
	if err != nil {
		return nil, 0, err
	}
	s.Debugf("%d bags, %d rules", bags.Len(), len(bags.Rules()))
	id, ok := bags.FindIndex(target)
	if !ok {
		return nil, 0, errors.New("there is no shiny gold bag")
	}
	return bags, id, nil
}
