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

func TestTreesWrap(t *testing.T) {
	m, err := ParseMap("..\n#.\n.#\n#.\n")
	require.NoError(t, err)
	tests := []struct {
		slope aoc.Pt
		want  int
	}{
		{aoc.Pt{X: 0, Y: 1}, 2},
		{aoc.Pt{X: 1, Y: 1}, 0}, // (1,1) (0,2) (1,3)
		{aoc.Pt{X: 1, Y: 2}, 1}, // (1,2)
		{aoc.Pt{X: 1, Y: 5}, 0},
		{aoc.Pt{X: 1, Y: 0}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Trees(tt.slope), "slope %v", tt.slope)
	}
}

func TestParseMapErrors(t *testing.T) {
	tests := []struct {
		input string
		line  int
		is    error
	}{
		{"..\n.x\n", 2, nil},
		{"..\n...\n", 2, ErrRaggedMap},
	}
	for _, tt := range tests {
		_, err := ParseMap(tt.input)
		var le *aoc.LineError
		require.True(t, errors.As(err, &le), "ParseMap(%q) = %v", tt.input, err)
		assert.Equal(t, tt.line, le.Line)
		if tt.is != nil {
			assert.ErrorIs(t, err, tt.is)
		}
	}
}
