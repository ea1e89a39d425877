// Command day23 runs Jane Marie's two-register computer.
package main

import (
	_ "embed"

	"github.com/aoc-solutions/aoc"
)

func main() {
	aoc.Run(2015, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=0

inc a
jio a, +2
tpl a
inc a
*/
func (s solver) D23p1() (any, error) {
	return s.run(0)
}

// want=0
func (s solver) D23p2() (any, error) {
	return s.run(1)
}

// run starts the machine with register a set to a and returns register b.
func (s solver) run(a uint64) (any, error) {
	p, err := ParseProgram(string(s.Input()))
	if err != nil {
		return nil, err
	}
	m := Machine{Regs: [2]uint64{A: a}}
	if err := m.Run(p); err != nil {
		return nil, err
	}
	s.Debugf("halted at ip=%d a=%d b=%d", m.IP, m.Regs[A], m.Regs[B])
	return m.Regs[B], nil
}
