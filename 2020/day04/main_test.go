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

const invalidPassports = `eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007
`

const validPassports = `pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719
`

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"invalid", invalidPassports, false},
		{"valid", validPassports, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := ParsePassports(tt.input)
			require.NoError(t, err)
			require.Len(t, ps, 4)
			for i, p := range ps {
				assert.Equal(t, tt.want, p.Valid(), "passport %d", i)
				if p.Valid() {
					assert.True(t, p.HasRequiredFields(), "part two valid implies part one valid")
				}
			}
		})
	}
}

func TestFieldRules(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  bool
	}{
		{"byr", "2002", true},
		{"byr", "2003", false},
		{"byr", "02002", false},
		{"iyr", "2010", true},
		{"iyr", "2021", false},
		{"eyr", "2030", true},
		{"eyr", "2019", false},
		{"hgt", "60in", true},
		{"hgt", "190cm", true},
		{"hgt", "190in", false},
		{"hgt", "190", false},
		{"hgt", "149cm", false},
		{"hcl", "#123abc", true},
		{"hcl", "#123abz", false},
		{"hcl", "#123ABC", false},
		{"hcl", "123abc", false},
		{"ecl", "brn", true},
		{"ecl", "wat", false},
		{"pid", "000000001", true},
		{"pid", "0123456789", false},
		{"pid", "12345678a", false},
	}
	for _, tt := range tests {
		var rule fieldRule
		for _, f := range requiredFields {
			if f.key == tt.key {
				rule = f
			}
		}
		require.NotNil(t, rule.check, tt.key)
		assert.Equal(t, tt.want, rule.check(tt.value), "%s:%s", tt.key, tt.value)
	}
}

func TestParsePassports(t *testing.T) {
	ps, err := ParsePassports("a:1 b:2\nb:3\n\n\nc:4\n")
	require.NoError(t, err)
	assert.Equal(t, []Passport{{"a": "1", "b": "3"}, {"c": "4"}}, ps)

	_, err = ParsePassports("byr:1937\n\niyr:2017 hgt\n")
	var le *aoc.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 3, le.Line)
	assert.ErrorIs(t, err, ErrInvalidPassport)
}

func TestCidIgnored(t *testing.T) {
	p := Passport{
		"byr": "1937", "iyr": "2017", "eyr": "2020", "hgt": "183cm",
		"hcl": "#fffffd", "ecl": "gry", "pid": "860033327",
	}
	assert.True(t, p.Valid())
	p["cid"] = "not a number"
	assert.True(t, p.Valid())
	delete(p, "pid")
	assert.False(t, p.HasRequiredFields())
}
