package main

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/aoc-solutions/aoc"
	"tailscale.com/util/set"
)

var ErrInvalidPassport = errors.New("invalid passport")

// Passport maps a three letter field key to its raw value.
type Passport map[string]string

// ParsePassports parses blank-line separated records of whitespace
// separated key:value pairs. A repeated key keeps its last value.
func ParsePassports(input string) ([]Passport, error) {
	var out []Passport
	for _, r := range aoc.Records(input) {
		p := make(Passport)
		for i, line := range r.Lines {
			for _, pair := range strings.Fields(line) {
				key, value, ok := strings.Cut(pair, ":")
				if !ok || key == "" || value == "" {
					return nil, aoc.AtLine(r.Line+i, fmt.Errorf("%w: field %q", ErrInvalidPassport, pair))
				}
				p[key] = value
			}
		}
		out = append(out, p)
	}
	return out, nil
}

type fieldRule struct {
	key   string
	check func(string) bool
}

// requiredFields lists every field but cid, which is optional and never
// checked.
var requiredFields = []fieldRule{
	{"byr", yearIn(1920, 2002)},
	{"iyr", yearIn(2010, 2020)},
	{"eyr", yearIn(2020, 2030)},
	{"hgt", validHeight},
	{"hcl", regexp.MustCompile(`^#[0-9a-f]{6}$`).MatchString},
	{"ecl", oneOf("amb", "blu", "brn", "gry", "grn", "hzl", "oth")},
	{"pid", regexp.MustCompile(`^[0-9]{9}$`).MatchString},
}

var requiredKeys = func() set.Set[string] {
	s := make(set.Set[string])
	for _, f := range requiredFields {
		s.Add(f.key)
	}
	return s
}()

// HasRequiredFields reports whether every required key is present,
// whatever its value.
func (p Passport) HasRequiredFields() bool {
	n := 0
	for k := range p {
		if requiredKeys.Contains(k) {
			n++
		}
	}
	return n == requiredKeys.Len()
}

// Valid reports whether every required field is present and well formed.
func (p Passport) Valid() bool {
	for _, f := range requiredFields {
		v, ok := p[f.key]
		if !ok || !f.check(v) {
			return false
		}
	}
	return true
}

var yearRx = regexp.MustCompile(`^[0-9]{4}$`)

func yearIn(lo, hi int) func(string) bool {
	return func(s string) bool {
		if !yearRx.MatchString(s) {
			return false
		}
		y := aoc.Int(s)
		return y >= lo && y <= hi
	}
}

var heightRx = regexp.MustCompile(`^([0-9]+)(cm|in)$`)

func validHeight(s string) bool {
	m := heightRx.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	switch m[2] {
	case "cm":
		return h >= 150 && h <= 193
	case "in":
		return h >= 59 && h <= 76
	}
	return false
}

func oneOf(values ...string) func(string) bool {
	return func(s string) bool {
		return slices.Contains(values, s)
	}
}
