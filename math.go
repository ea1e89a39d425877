package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 if there are none.
func Product[T Number](nums ...T) T {
	prod := T(1)
	for _, v := range nums {
		prod *= v
	}
	return prod
}

// Int returns the int value of the string. It panics if s is not a
// number, so it is only for strings already known to be digits.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
