package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aoc-solutions/aoc"
)

func parseEntries(lines []string) ([]int, error) {
	return aoc.ParseLines(lines, func(line string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return 0, fmt.Errorf("invalid entry %q", line)
		}
		return n, nil
	})
}

// productSumming returns the product of the first k entries, in
// combination order, that add up to target.
func productSumming(entries []int, k, target int) (int, bool) {
	return aoc.FindMap(aoc.NewCombinations(entries, k), func(t []int) (int, bool) {
		if aoc.Sum(t...) != target {
			return 0, false
		}
		return aoc.Product(t...), true
	})
}
