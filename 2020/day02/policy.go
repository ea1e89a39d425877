package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPolicy = errors.New("invalid policy")

// Policy is one line of the password database: "lo-hi c: password".
type Policy struct {
	Lo, Hi   int
	Char     byte
	Password string
}

func ParsePolicy(line string) (Policy, error) {
	rng, rest, ok := strings.Cut(line, " ")
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", ErrInvalidPolicy, line)
	}
	c, password, ok := strings.Cut(rest, ": ")
	if !ok || len(c) != 1 {
		return Policy{}, fmt.Errorf("%w: bad letter in %q", ErrInvalidPolicy, line)
	}
	from, to, ok := strings.Cut(rng, "-")
	if !ok {
		return Policy{}, fmt.Errorf("%w: bad range %q", ErrInvalidPolicy, rng)
	}
	lo, err := strconv.Atoi(from)
	if err != nil || lo < 1 {
		return Policy{}, fmt.Errorf("%w: bad range start %q", ErrInvalidPolicy, from)
	}
	hi, err := strconv.Atoi(to)
	if err != nil || hi < lo {
		return Policy{}, fmt.Errorf("%w: bad range end %q", ErrInvalidPolicy, to)
	}
	return Policy{Lo: lo, Hi: hi, Char: c[0], Password: password}, nil
}

// CountValid reports whether Char occurs between Lo and Hi times.
func (p Policy) CountValid() bool {
	n := strings.Count(p.Password, string(p.Char))
	return n >= p.Lo && n <= p.Hi
}

// PositionValid reports whether exactly one of the 1-based positions Lo
// and Hi holds Char. Positions past the end never match.
func (p Policy) PositionValid() bool {
	at := func(i int) bool {
		return i <= len(p.Password) && p.Password[i-1] == p.Char
	}
	return at(p.Lo) != at(p.Hi)
}
