package Forests

import (
	"golang.org/x/exp/constraints"
)

// Chain is the forward-pointer successor-delete array shared by the
// strategy types in this package. a[i]==i iff i is present; otherwise
// a[i]>i points toward larger indexes and the chain from any i ends at a
// present element. Chain carries Init and Delete; each strategy type
// embeds it and supplies its own Successor.
type Chain[V constraints.Signed] struct {
	a []V
}

// NewChain allocates for sets up to {0,...,maxN+1}. The array is never
// reallocated; Init only rewrites the prefix in use.
func NewChain[V constraints.Signed](maxN V) Chain[V] {
	return Chain[V]{a: make([]V, maxN+2)}
}

// Init [Go_Succ.Set.Init].
// Time: O(n)
func (u *Chain[V]) Init(n V) {
	for i := range u.a[:n+2] {
		u.a[i] = V(i)
	}
}

// Delete [Go_Succ.Set.Delete]. i must be present: deleting an already
// deleted i overwrites a possibly compressed pointer with i+1, which
// keeps answers correct but discards compression work. Use DeleteChecked
// when the caller can't guarantee single deletion.
// Time: O(1)
func (u *Chain[V]) Delete(i V) {
	u.a[i] = i + 1
}

// DeleteChecked is the guarded variant: deleting an absent i is a no-op.
// Time: O(1)
func (u *Chain[V]) DeleteChecked(i V) {
	if u.a[i] == i {
		u.a[i] = i + 1
	}
}

// Naive answers Successor by a pure pointer walk with no rewriting, so a
// chain is traversed at full length on every query. n deletions followed
// by n queries of the same element cost O(n^2) total; it exists as the
// baseline the compressing strategies are measured against.
type Naive[V constraints.Signed] struct {
	Chain[V]
}

func NewNaive[V constraints.Signed](maxN V) *Naive[V] {
	return &Naive[V]{NewChain(maxN)}
}

// Successor [Go_Succ.Set.Successor].
// Time: O(chain length), worst case O(n)
func (u *Naive[V]) Successor(i V) V {
	for i < u.a[i] {
		i = u.a[i]
	}
	return i
}

// Recursive resolves the chain recursively and points every visited
// element directly at the found root on the way back up. Recursion depth
// equals the chain length, so an unreduced chain of n elements costs n
// stack frames; Go grows goroutine stacks instead of overflowing at C
// depths, but the linear depth is still the practical size ceiling for
// this strategy. TwoPass performs the identical rewriting iteratively.
type Recursive[V constraints.Signed] struct {
	Chain[V]
}

func NewRecursive[V constraints.Signed](maxN V) *Recursive[V] {
	return &Recursive[V]{NewChain(maxN)}
}

// Successor [Go_Succ.Set.Successor]. Recursive.
// Time: amortized O(log n)
func (u *Recursive[V]) Successor(i V) V {
	if i < u.a[i] {
		u.a[i] = u.Successor(u.a[i])
	}
	return u.a[i]
}

// TwoPass walks the chain once to find the root, then re-walks it
// rewriting every visited pointer directly to the root.
type TwoPass[V constraints.Signed] struct {
	Chain[V]
}

func NewTwoPass[V constraints.Signed](maxN V) *TwoPass[V] {
	return &TwoPass[V]{NewChain(maxN)}
}

// Successor [Go_Succ.Set.Successor].
// Time: amortized O(log n)
func (u *TwoPass[V]) Successor(i V) V {
	r := i
	for r < u.a[r] {
		r = u.a[r]
	}
	for u.a[i] < r {
		i, u.a[i] = u.a[i], r
	}
	return r
}

// TwoPassChecked is TwoPass with the guarded delete, making repeated
// deletion of the same element a safe no-op. The guard is a measurable
// per-delete cost, which is why it is a separate type rather than a flag.
type TwoPassChecked[V constraints.Signed] struct {
	TwoPass[V]
}

func NewTwoPassChecked[V constraints.Signed](maxN V) *TwoPassChecked[V] {
	return &TwoPassChecked[V]{TwoPass[V]{NewChain(maxN)}}
}

// Delete [Go_Succ.Set.Delete]. Deleting an absent i is a no-op.
func (u *TwoPassChecked[V]) Delete(i V) {
	u.DeleteChecked(i)
}

// Halving shortcuts one pointer level per step (i inherits its
// grandparent's pointer), roughly halving the chain on every traversal
// without knowing the root in advance. Single pass, same amortized bound
// as TwoPass.
type Halving[V constraints.Signed] struct {
	Chain[V]
}

func NewHalving[V constraints.Signed](maxN V) *Halving[V] {
	return &Halving[V]{NewChain(maxN)}
}

// Successor [Go_Succ.Set.Successor].
// Time: amortized O(log n)
func (u *Halving[V]) Successor(i V) V {
	for i < u.a[i] {
		u.a[i] = u.a[u.a[i]]
		i = u.a[i]
	}
	return i
}
