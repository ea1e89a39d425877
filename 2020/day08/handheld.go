package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aoc-solutions/aoc"
)

var (
	ErrInvalidFormat      = errors.New("invalid instruction format")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrUnknownInstruction = errors.New("unknown instruction")
)

type Op uint8

const (
	Acc Op = iota
	Jmp
	Nop
)

func (o Op) String() string {
	switch o {
	case Acc:
		return "acc"
	case Jmp:
		return "jmp"
	case Nop:
		return "nop"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

type Instruction struct {
	Op  Op
	Arg int
}

func (in Instruction) String() string {
	return fmt.Sprintf("%v %+d", in.Op, in.Arg)
}

func ParseInstruction(line string) (Instruction, error) {
	opcode, param, ok := strings.Cut(line, " ")
	if !ok {
		return Instruction{}, fmt.Errorf("%w: %q", ErrInvalidFormat, line)
	}
	arg, err := strconv.Atoi(param)
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: %q", ErrInvalidParameter, param)
	}
	switch opcode {
	case "acc":
		return Instruction{Acc, arg}, nil
	case "jmp":
		return Instruction{Jmp, arg}, nil
	case "nop":
		return Instruction{Nop, arg}, nil
	}
	return Instruction{}, fmt.Errorf("%w: %q", ErrUnknownInstruction, opcode)
}

type Program []Instruction

func ParseProgram(input string) (Program, error) {
	return aoc.ParseLines(aoc.Lines(input), ParseInstruction)
}

// Patch replaces the instruction at Index.
type Patch struct {
	Index       int
	Instruction Instruction
}

// toggle swaps jmp and nop, keeping the argument.
func toggle(in Instruction) (Instruction, bool) {
	switch in.Op {
	case Jmp:
		return Instruction{Nop, in.Arg}, true
	case Nop:
		return Instruction{Jmp, in.Arg}, true
	}
	return in, false
}

// Patches returns, in program order, the patch flipping each jmp or nop.
func (p Program) Patches() []Patch {
	var out []Patch
	for i, in := range p {
		if t, ok := toggle(in); ok {
			out = append(out, Patch{Index: i, Instruction: t})
		}
	}
	return out
}

// Apply returns a copy of p with patch applied.
func (p Program) Apply(patch Patch) Program {
	out := slices.Clone(p)
	out[patch.Index] = patch.Instruction
	return out
}

// Result is the outcome of a run. Clean is false if the run stopped
// because an instruction was about to execute a second time.
type Result struct {
	Acc   int
	Clean bool
}

// Run executes p, with patch overlaid if non-nil, until it either leaves
// the program or loops. Leaving the program in either direction is a
// clean termination.
func Run(p Program, patch *Patch) Result {
	visited := make([]bool, len(p))
	acc, ip := 0, 0
	for {
		if ip < 0 || ip >= len(p) {
			return Result{Acc: acc, Clean: true}
		}
		if visited[ip] {
			return Result{Acc: acc, Clean: false}
		}
		visited[ip] = true

		in := p[ip]
		if patch != nil && patch.Index == ip {
			in = patch.Instruction
		}
		switch in.Op {
		case Acc:
			acc += in.Arg
			ip++
		case Jmp:
			ip += in.Arg
		case Nop:
			ip++
		}
	}
}

// FindPatch returns the accumulator of the first patch, in program order,
// that makes p terminate cleanly.
func FindPatch(p Program) (int, bool) {
	for _, patch := range p.Patches() {
		if r := Run(p, &patch); r.Clean {
			return r.Acc, true
		}
	}
	return 0, false
}
