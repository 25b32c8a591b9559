// SPDX-License-Identifier: MIT

// Package mst: disjoint-set (union-find) used by the Borůvka contraction.
// Path-halving find plus union by rank: near-constant amortized operations,
// and a proper structure instead of rescanning a component array each round.
package mst

// dsu is a fixed-size disjoint-set over vertex indices [0, n).
type dsu struct {
	parent []int // parent[i] == i for roots
	rank   []int // union-by-rank heuristic
	count  int   // number of live components
}

// newDSU creates n singleton components. Complexity: O(n).
func newDSU(n int) *dsu {
	d := &dsu{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of x's component, halving the path as it walks.
// Complexity: amortized near O(1).
func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // path halving
		x = d.parent[x]
	}

	return x
}

// union merges the components of a and b by rank.
// Returns false when they were already one component (the caller must then
// skip the edge — it would close a cycle). Complexity: amortized near O(1).
func (d *dsu) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	// Attach the shallower tree under the deeper one.
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.count--

	return true
}

// components returns the number of live components. Complexity: O(1).
func (d *dsu) components() int { return d.count }
