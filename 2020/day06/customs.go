package main

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/aoc-solutions/aoc"
)

// Answers is the set of questions a-z someone answered "yes" to, one bit
// per letter.
type Answers uint32

func parseAnswers(line string) (Answers, error) {
	var a Answers
	for i, c := range []byte(line) {
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("invalid question %q at column %d", c, i+1)
		}
		a |= 1 << (c - 'a')
	}
	return a, nil
}

// Group holds the answers of each person in a group.
type Group []Answers

func ParseGroups(records []aoc.Record) ([]Group, error) {
	groups := make([]Group, 0, len(records))
	for _, r := range records {
		g, err := aoc.ParseLines(r.Lines, parseAnswers)
		if err != nil {
			var le *aoc.LineError
			if errors.As(err, &le) {
				le.Line += r.Line - 1
			}
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// Anyone counts the questions anyone in the group answered.
func (g Group) Anyone() int {
	var set Answers
	for _, a := range g {
		set |= a
	}
	return bits.OnesCount32(uint32(set))
}

// Everyone counts the questions everyone in the group answered.
func (g Group) Everyone() int {
	if len(g) == 0 {
		return 0
	}
	set := ^Answers(0)
	for _, a := range g {
		set &= a
	}
	return bits.OnesCount32(uint32(set))
}
