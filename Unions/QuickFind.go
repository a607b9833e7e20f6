// Package Unions holds the two union-find renditions of the
// successor-delete problem. Deleting i unions the interval of deleted
// elements ending just below i's successor with the one beginning at i+1,
// so the representative of an element's interval always knows the next
// present element.
package Unions

import (
	"golang.org/x/exp/constraints"
)

// qfNode. weight and succ are meaningful only at interval
// representatives (root==own index at a representative).
// The zero value is meaningless.
type qfNode[V constraints.Signed] struct {
	root   V // representative of the maximal deleted interval ending at the next present element
	weight V // interval size
	succ   V // the present successor for the whole interval, always itself present
}

// QuickFind is the weighted quick-find variant of McIlroy and Morris.
// Every element points directly at its interval's representative, so
// Successor is two array reads; Delete relabels the lighter of the two
// merged intervals, which bounds total relabeling to O(n log n) over n
// deletions. Relabeling scans contiguously outward from the merge point,
// which is safe only because deleted intervals are contiguous index
// ranges.
type QuickFind[V constraints.Signed] struct {
	nodes []qfNode[V]
	n     V
}

func NewQuickFind[V constraints.Signed](maxN V) *QuickFind[V] {
	return &QuickFind[V]{nodes: make([]qfNode[V], maxN+2)}
}

// Init [Go_Succ.Set.Init].
// Time: O(n)
func (u *QuickFind[V]) Init(n V) {
	u.n = n
	for i := range u.nodes[:n+2] {
		u.nodes[i] = qfNode[V]{root: V(i), weight: 1, succ: V(i)}
	}
}

// Successor [Go_Succ.Set.Successor].
// Time: O(1)
func (u *QuickFind[V]) Successor(i V) V {
	return u.nodes[u.nodes[i].root].succ
}

// Delete [Go_Succ.Set.Delete]. Deleting an absent i is a no-op (i is
// present iff its interval's succ is i itself).
// Time: O(min of the two interval sizes); O(n log n) over any n deletes
func (u *QuickFind[V]) Delete(i V) {
	if u.nodes[u.nodes[i].root].succ != i {
		return
	}
	r1, r2 := u.nodes[i].root, u.nodes[i+1].root
	if u.nodes[r1].weight <= u.nodes[r2].weight {
		u.nodes[r2].weight += u.nodes[r1].weight
		for r := i; u.nodes[r].root == r1; r-- {
			u.nodes[r].root = r2
		}
	} else {
		u.nodes[r1].succ = u.nodes[r2].succ
		u.nodes[r1].weight += u.nodes[r2].weight
		// The interval beginning at i+1 can end at the sentinel n+1,
		// where u.nodes[r].root stops being a usable terminator.
		for r := i + 1; r <= u.n+1 && u.nodes[r].root == r2; r++ {
			u.nodes[r].root = r1
		}
	}
}
