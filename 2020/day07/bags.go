package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aoc-solutions/aoc"
	"tailscale.com/util/mak"
)

var ErrInvalidRule = errors.New("invalid bag rule")

// Rule says that one Container bag holds Amount Child bags.
type Rule struct {
	Container int
	Child     int
	Amount    int
}

// BagRules is the set of colours and the containment rules between them.
// Colours get dense ids in order of first mention.
type BagRules struct {
	bags  []string
	index map[string]int
	rules []Rule
	graph aoc.Digraph[int]
}

func (b *BagRules) getOrCreate(bag string) int {
	if id, ok := b.index[bag]; ok {
		return id
	}
	id := len(b.bags)
	b.bags = append(b.bags, bag)
	mak.Set(&b.index, bag, id)
	b.graph.AddNode(id)
	return id
}

func (b *BagRules) addRule(container, child, amount int) {
	b.rules = append(b.rules, Rule{Container: container, Child: child, Amount: amount})
	b.graph.AddEdge(container, child, amount)
}

// FindIndex returns the id of a colour.
func (b *BagRules) FindIndex(bag string) (int, bool) {
	id, ok := b.index[bag]
	return id, ok
}

// Bag returns the colour with the given id.
func (b *BagRules) Bag(id int) string {
	return b.bags[id]
}

// Len is the number of distinct colours.
func (b *BagRules) Len() int {
	return len(b.bags)
}

func (b *BagRules) Rules() []Rule {
	return b.rules
}

// Containers counts the distinct bags that can eventually contain bag id.
func (b *BagRules) Containers(id int) int {
	return b.graph.Reverse().ReachableNodes(id).Len() - 1
}

// Contained counts the bags required inside one bag id.
func (b *BagRules) Contained(id int) (int, error) {
	return b.graph.WeightedTotal(id)
}

// ParseBagRules parses lines like
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
//	faded blue bags contain no other bags.
func ParseBagRules(input string) (*BagRules, error) {
	b := &BagRules{}
	for i, line := range aoc.Lines(input) {
		if err := b.parseLine(line); err != nil {
			return nil, aoc.AtLine(i+1, fmt.Errorf("%w %q: %v", ErrInvalidRule, line, err))
		}
	}
	return b, nil
}

func (b *BagRules) parseLine(line string) error {
	container, contents, ok := strings.Cut(line, " bags contain ")
	if !ok {
		return errors.New(`missing "bags contain"`)
	}
	if !isColour(container) {
		return fmt.Errorf("bad colour %q", container)
	}
	contents, ok = strings.CutSuffix(contents, ".")
	if !ok {
		return errors.New("missing final period")
	}
	type entry struct {
		n      int
		colour string
	}
	var entries []entry
	if contents != "no other bags" {
		for _, e := range strings.Split(contents, ", ") {
			n, colour, err := parseEntry(e)
			if err != nil {
				return err
			}
			entries = append(entries, entry{n, colour})
		}
	}
	c := b.getOrCreate(container)
	for _, e := range entries {
		b.addRule(c, b.getOrCreate(e.colour), e.n)
	}
	return nil
}

// parseEntry parses "<count> <colour> bag" or "<count> <colour> bags".
func parseEntry(s string) (int, string, error) {
	count, rest, ok := strings.Cut(s, " ")
	if !ok {
		return 0, "", fmt.Errorf("bad entry %q", s)
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return 0, "", fmt.Errorf("bad count in %q", s)
	}
	colour, ok := strings.CutSuffix(rest, " bags")
	if !ok {
		colour, ok = strings.CutSuffix(rest, " bag")
	}
	if !ok || !isColour(colour) {
		return 0, "", fmt.Errorf("bad entry %q", s)
	}
	return n, colour, nil
}

// isColour reports whether s is two words separated by one space.
func isColour(s string) bool {
	adj, hue, ok := strings.Cut(s, " ")
	return ok && adj != "" && hue != "" && !strings.ContainsAny(adj, " \t") && !strings.ContainsAny(hue, " \t")
}
