// Command day04 counts the passports that pass the scanner.
package main

import (
	_ "embed"

	"github.com/aoc-solutions/aoc"
)

func main() {
	aoc.Run(2020, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=2

ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
*/
func (s solver) D4p1() (any, error) {
	return s.count(Passport.HasRequiredFields)
}

// want=2
func (s solver) D4p2() (any, error) {
	return s.count(Passport.Valid)
}

func (s solver) count(valid func(Passport) bool) (any, error) {
	passports, err := ParsePassports(string(s.Input()))
	if err != nil {
		return nil, err
	}
	n := 0
	for _, p := range passports {
		if valid(p) {
			n++
		}
	}
	s.Debugf("%d of %d passports valid", n, len(passports))
	return n, nil
}
