package Unions

import (
	"golang.org/x/exp/constraints"
)

// ufNode. weight and succ are meaningful only at tree roots.
// The zero value is meaningless.
type ufNode[V constraints.Signed] struct {
	parent V // standard union-find tree pointer, ==self at roots
	weight V // subtree size, drives union by weight
	succ   V // present successor for the whole tree
}

// Weighted is the classic union-find with union by weight and two-pass
// path compression. Delete(i) is union(i, i+1); the surviving root takes
// its succ from whichever side holds the higher indexes. Successor costs
// one find.
type Weighted[V constraints.Signed] struct {
	nodes []ufNode[V]
}

func NewWeighted[V constraints.Signed](maxN V) *Weighted[V] {
	return &Weighted[V]{nodes: make([]ufNode[V], maxN+2)}
}

// Init [Go_Succ.Set.Init].
// Time: O(n)
func (u *Weighted[V]) Init(n V) {
	for i := range u.nodes[:n+2] {
		u.nodes[i] = ufNode[V]{parent: V(i), weight: 1, succ: V(i)}
	}
}

// find the root of i, then re-point every node on the walked path
// directly at it.
func (u *Weighted[V]) find(i V) V {
	r := i
	for u.nodes[r].parent != r {
		r = u.nodes[r].parent
	}
	for i != r {
		i, u.nodes[i].parent = u.nodes[i].parent, r
	}
	return r
}

// union the trees of i and j by weight. j's side is the higher-index one,
// so when i's root survives it inherits j's succ.
func (u *Weighted[V]) union(i, j V) {
	r1, r2 := u.find(i), u.find(j)
	if r1 == r2 {
		return
	}
	if u.nodes[r1].weight <= u.nodes[r2].weight {
		u.nodes[r2].weight += u.nodes[r1].weight
		u.nodes[r1].parent = r2
	} else {
		u.nodes[r1].weight += u.nodes[r2].weight
		u.nodes[r2].parent = r1
		u.nodes[r1].succ = u.nodes[r2].succ
	}
}

// Delete [Go_Succ.Set.Delete]. Deleting an absent i is a no-op (its tree
// already contains i+1).
// Time: amortized near O(1), inverse-Ackermann
func (u *Weighted[V]) Delete(i V) {
	u.union(i, i+1)
}

// Successor [Go_Succ.Set.Successor].
// Time: amortized near O(1), inverse-Ackermann
func (u *Weighted[V]) Successor(i V) V {
	return u.nodes[u.find(i)].succ
}
