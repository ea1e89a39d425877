package aoc

import (
	"golang.org/x/exp/maps"
	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// Digraph is a directed graph with integer edge weights.
type Digraph[K comparable] struct {
	Nodes set.Set[K]
	Edges map[K]map[K]int
}

func (g *Digraph[K]) AddNode(a K) {
	if g.Nodes == nil {
		g.Nodes = make(set.Set[K])
	}
	g.Nodes.Add(a)
}

// AddEdge adds the edge a→b with weight w. Adding an existing edge again
// adds w to its weight.
func (g *Digraph[K]) AddEdge(a, b K, w int) {
	g.AddNode(a)
	g.AddNode(b)
	e := g.Edges[a]
	mak.Set(&e, b, e[b]+w)
	mak.Set(&g.Edges, a, e)
}

// Clone returns a deep copy of g.
func (g *Digraph[K]) Clone() *Digraph[K] {
	var out Digraph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

// Reverse returns a copy of g with every edge flipped.
func (g *Digraph[K]) Reverse() *Digraph[K] {
	var out Digraph[K]
	for k := range g.Nodes {
		out.AddNode(k)
	}
	for a, e := range g.Edges {
		for b, w := range e {
			out.AddEdge(b, a, w)
		}
	}
	return &out
}

// ReachableNodes returns a and every node reachable from it.
func (g *Digraph[K]) ReachableNodes(a K) set.Set[K] {
	visited := make(set.Set[K])
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited.Contains(v) {
			return true
		}
		visited.Add(v)
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// WeightedTotal returns, for node a, the sum over its outgoing edges of
// w * (1 + WeightedTotal(child)): the number of items nested inside one a
// when each edge a→b with weight w means "a holds w of b".
//
// It returns ErrCycle if a cycle is reachable from a.
func (g *Digraph[K]) WeightedTotal(a K) (int, error) {
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[K]int)
	memo := make(map[K]int)
	var walk func(K) (int, error)
	walk = func(v K) (int, error) {
		switch state[v] {
		case visiting:
			return 0, ErrCycle
		case done:
			return memo[v], nil
		}
		state[v] = visiting
		total := 0
		for child, w := range g.Edges[v] {
			n, err := walk(child)
			if err != nil {
				return 0, err
			}
			total += w * (1 + n)
		}
		state[v] = done
		memo[v] = total
		return total, nil
	}
	return walk(a)
}
