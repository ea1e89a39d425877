package main

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidSeat = errors.New("invalid seat code")

// DecodeSeat returns the seat ID of a boarding pass: seven F/B row bits
// followed by three L/R column bits, so row*8 + column.
func DecodeSeat(code string) (int, error) {
	if len(code) != 10 {
		return 0, fmt.Errorf("%w %q: want 10 characters", ErrInvalidSeat, code)
	}
	id := 0
	for i, c := range []byte(code) {
		var bit int
		switch {
		case i < 7 && c == 'F', i >= 7 && c == 'L':
			bit = 0
		case i < 7 && c == 'B', i >= 7 && c == 'R':
			bit = 1
		default:
			return 0, fmt.Errorf("%w %q: unexpected %q at %d", ErrInvalidSeat, code, c, i+1)
		}
		id = id<<1 | bit
	}
	return id, nil
}

// FreeSeat finds the one missing ID whose neighbours are both taken.
func FreeSeat(ids []int) (int, bool) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1]+2 {
			return sorted[i-1] + 1, true
		}
	}
	return 0, false
}
