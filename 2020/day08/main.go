// Command day08 repairs the boot code of a handheld game console.
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

/*
want=5

nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6
*/
func (s solver) D8p1() (any, error) {
	p, err := ParseProgram(string(s.Input()))
	if err != nil {
		return nil, err
	}
	r := Run(p, nil)
	s.Debugf("acc=%d clean=%v", r.Acc, r.Clean)
	return r.Acc, nil
}

// want=8
func (s solver) D8p2() (any, error) {
	p, err := ParseProgram(string(s.Input()))
	if err != nil {
		return nil, err
	}
	acc, ok := FindPatch(p)
	if !ok {
		return nil, errors.New("didn't find correct patch")
	}
	return acc, nil
}
