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

func TestGroups(t *testing.T) {
	tests := []struct {
		lines    []string
		anyone   int
		everyone int
	}{
		{[]string{"abc"}, 3, 3},
		{[]string{"ab", "ac"}, 3, 1},
		{[]string{"a", "b", "c"}, 3, 0},
		{[]string{"abcdefghijklmnopqrstuvwxyz", "z"}, 26, 1},
	}
	for _, tt := range tests {
		g, err := ParseGroups([]aoc.Record{{Line: 1, Lines: tt.lines}})
		require.NoError(t, err)
		require.Len(t, g, 1)
		assert.Equal(t, tt.anyone, g[0].Anyone(), "%v", tt.lines)
		assert.Equal(t, tt.everyone, g[0].Everyone(), "%v", tt.lines)
	}
}

func TestParseGroupsError(t *testing.T) {
	_, err := ParseGroups(aoc.Records("ab\n\nc\ncD\n"))
	var le *aoc.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 4, le.Line)
}
