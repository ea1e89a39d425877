package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoc-solutions/aoc"
)

func TestSamples(t *testing.T) {
	checked, err := aoc.VerifySamples(source, &solver{})
	require.NoError(t, err)
	assert.Equal(t, 2, checked)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start [2]uint64
		want  [2]uint64
	}{
		{"sample", "inc a\njio a, +2\ntpl a\ninc a\n", [2]uint64{}, [2]uint64{2, 0}},
		{"sample from a=1", "inc a\njio a, +2\ntpl a\ninc a\n", [2]uint64{1, 0}, [2]uint64{7, 0}},
		{"halve truncates", "inc b\ninc b\ninc b\nhlf b\n", [2]uint64{}, [2]uint64{0, 1}},
		{"jie taken", "jie a, +2\ninc b\ninc b\n", [2]uint64{}, [2]uint64{0, 1}},
		{"jie not taken", "inc a\njie a, +2\ninc b\ninc b\n", [2]uint64{}, [2]uint64{1, 2}},
		{"jio is not odd", "inc a\ninc a\ninc a\njio a, +2\ninc b\n", [2]uint64{}, [2]uint64{3, 1}},
		{"negative jump halts", "inc b\njmp -5\ninc b\n", [2]uint64{}, [2]uint64{0, 1}},
		{"jump past end halts", "jmp +7\ninc b\n", [2]uint64{}, [2]uint64{0, 0}},
		{
			// Counts the Collatz steps from a.
			name: "collatz",
			input: `jio a, +8
jie a, +4
tpl a
inc a
jmp +2
hlf a
inc b
jmp -7
`,
			start: [2]uint64{6, 0},
			want:  [2]uint64{1, 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProgram(tt.input)
			require.NoError(t, err)
			m := Machine{Regs: tt.start}
			require.NoError(t, m.Run(p))
			assert.Equal(t, tt.want, m.Regs)

			again := Machine{Regs: tt.start}
			require.NoError(t, again.Run(p))
			assert.Equal(t, m, again, "execution is deterministic")
		})
	}
}

func TestInfiniteLoop(t *testing.T) {
	p, err := ParseProgram("inc a\njmp +0\n")
	require.NoError(t, err)
	var m Machine
	assert.ErrorIs(t, m.Run(p), ErrInfiniteLoop)
}

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		line string
		want Instruction
		err  error
	}{
		{line: "hlf a", want: Instruction{Op: Hlf, Reg: A}},
		{line: "tpl b", want: Instruction{Op: Tpl, Reg: B}},
		{line: "inc b", want: Instruction{Op: Inc, Reg: B}},
		{line: "jmp -7", want: Instruction{Op: Jmp, Offset: -7}},
		{line: "jie a, +4", want: Instruction{Op: Jie, Reg: A, Offset: 4}},
		{line: "jio b, -19", want: Instruction{Op: Jio, Reg: B, Offset: -19}},
		{line: "nop a", err: ErrInvalidInstruction},
		{line: "", err: ErrInvalidInstruction},
		{line: "jio a +2", err: ErrInvalidInstruction},
		{line: "inc c", err: ErrInvalidRegister},
		{line: "hlf", err: ErrInvalidRegister},
		{line: "jie c, +2", err: ErrInvalidRegister},
		{line: "jmp", err: ErrInvalidJumpOffset},
		{line: "jmp +x", err: ErrInvalidJumpOffset},
		{line: "jio a, two", err: ErrInvalidJumpOffset},
	}
	for _, tt := range tests {
		got, err := ParseInstruction(tt.line)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, tt.line)
			continue
		}
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
		assert.Equal(t, tt.line, got.String())
	}
}

func TestParseProgramLine(t *testing.T) {
	_, err := ParseProgram("inc a\ninc a\ntpl x\n")
	var le *aoc.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 3, le.Line)
	assert.ErrorIs(t, err, ErrInvalidRegister)
}
