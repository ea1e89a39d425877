package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoc-solutions/aoc"
)

func TestSamples(t *testing.T) {
	checked, err := aoc.VerifySamples(source, &solver{})
	require.NoError(t, err)
	assert.Equal(t, 1, checked)
}

func TestDecodeSeat(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"FBFBBFFRLR", 357},
		{"BFFFBBFRRR", 567},
		{"FFFBBBFRRR", 119},
		{"BBFFBBFRLL", 820},
		{"FFFFFFFLLL", 0},
		{"BBBBBBBRRR", 1023},
	}
	for _, tt := range tests {
		got, err := DecodeSeat(tt.code)
		require.NoError(t, err, tt.code)
		assert.Equal(t, tt.want, got, tt.code)
	}

	for _, bad := range []string{"", "FBFBBFFRL", "FBFBBFFRLRR", "FBFBBFLRLR", "FBFBBFFRBR"} {
		_, err := DecodeSeat(bad)
		assert.ErrorIs(t, err, ErrInvalidSeat, bad)
	}
}

func TestFreeSeat(t *testing.T) {
	tests := []struct {
		ids    []int
		want   int
		wantOK bool
	}{
		{[]int{9, 7, 10, 5, 6}, 8, true},
		{[]int{3, 4, 5}, 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := FreeSeat(tt.ids)
		assert.Equal(t, tt.wantOK, ok, "%v", tt.ids)
		assert.Equal(t, tt.want, got, "%v", tt.ids)
	}
}
