package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aoc-solutions/aoc"
	"tailscale.com/util/deephash"
)

var (
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrInvalidRegister    = errors.New("invalid register")
	ErrInvalidJumpOffset  = errors.New("invalid jump offset")
	ErrInfiniteLoop       = errors.New("program never halts")
)

type Register uint8

const (
	A Register = iota
	B
)

func (r Register) String() string {
	switch r {
	case A:
		return "a"
	case B:
		return "b"
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

func parseRegister(s string) (Register, error) {
	switch s {
	case "a":
		return A, nil
	case "b":
		return B, nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidRegister, s)
}

func parseOffset(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidJumpOffset, s)
	}
	return n, nil
}

type Op uint8

const (
	Hlf Op = iota // r /= 2
	Tpl           // r *= 3
	Inc           // r++
	Jmp           // ip += offset
	Jie           // jump if r is even
	Jio           // jump if r is one
)

var opNames = [...]string{
	Hlf: "hlf",
	Tpl: "tpl",
	Inc: "inc",
	Jmp: "jmp",
	Jie: "jie",
	Jio: "jio",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Instruction is one line of the program. Reg is unused by jmp and Offset
// is unused by hlf, tpl and inc.
type Instruction struct {
	Op     Op
	Reg    Register
	Offset int
}

func (in Instruction) String() string {
	switch in.Op {
	case Hlf, Tpl, Inc:
		return fmt.Sprintf("%v %v", in.Op, in.Reg)
	case Jmp:
		return fmt.Sprintf("%v %+d", in.Op, in.Offset)
	}
	return fmt.Sprintf("%v %v, %+d", in.Op, in.Reg, in.Offset)
}

// ParseInstruction parses "op r", "jmp ±n" or "op r, ±n".
func ParseInstruction(line string) (Instruction, error) {
	mnemonic, args, _ := strings.Cut(line, " ")
	var op Op
	switch mnemonic {
	case "hlf":
		op = Hlf
	case "tpl":
		op = Tpl
	case "inc":
		op = Inc
	case "jmp":
		op = Jmp
	case "jie":
		op = Jie
	case "jio":
		op = Jio
	default:
		return Instruction{}, fmt.Errorf("%w %q", ErrInvalidInstruction, line)
	}

	in := Instruction{Op: op}
	var err error
	switch op {
	case Hlf, Tpl, Inc:
		in.Reg, err = parseRegister(args)
	case Jmp:
		in.Offset, err = parseOffset(args)
	default:
		reg, off, ok := strings.Cut(args, ", ")
		if !ok {
			return Instruction{}, fmt.Errorf("%w %q: want register and offset", ErrInvalidInstruction, line)
		}
		if in.Reg, err = parseRegister(reg); err != nil {
			return Instruction{}, err
		}
		in.Offset, err = parseOffset(off)
	}
	if err != nil {
		return Instruction{}, err
	}
	return in, nil
}

type Program []Instruction

func ParseProgram(input string) (Program, error) {
	return aoc.ParseLines(aoc.Lines(input), ParseInstruction)
}

// Machine is the state of the computer: two registers and the
// instruction pointer.
type Machine struct {
	Regs [2]uint64
	IP   int
}

var hashMachine = deephash.HasherForType[Machine]()

// Step executes one instruction and reports whether the machine is still
// inside the program.
func (m *Machine) Step(p Program) bool {
	if m.IP < 0 || m.IP >= len(p) {
		return false
	}
	in := p[m.IP]
	r := &m.Regs[in.Reg]
	jump := 1
	switch in.Op {
	case Hlf:
		*r /= 2
	case Tpl:
		*r *= 3
	case Inc:
		*r++
	case Jmp:
		jump = in.Offset
	case Jie:
		if *r%2 == 0 {
			jump = in.Offset
		}
	case Jio:
		if *r == 1 {
			jump = in.Offset
		}
	}
	m.IP += jump
	return m.IP >= 0 && m.IP < len(p)
}

// Run executes p until the instruction pointer leaves the program. If the
// machine comes back to a state it has already been in, it can never halt
// and Run returns ErrInfiniteLoop.
func (m *Machine) Run(p Program) error {
	seen := make(map[deephash.Sum]bool)
	for {
		h := hashMachine(m)
		if seen[h] {
			return fmt.Errorf("%w: state %+v repeats", ErrInfiniteLoop, *m)
		}
		seen[h] = true
		if !m.Step(p) {
			return nil
		}
	}
}
