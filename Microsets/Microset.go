// Package Microsets packs one machine word of elements per unit of an
// arbitrary macro structure, so the macro only ever sees bucket indexes.
// Word-level membership and successor scans are single bit instructions,
// which cuts the number of macro operations by the word-size factor.
package Microsets

import (
	"math/bits"

	Go_Succ "github.com/g-m-twostay/go-succ"
	"golang.org/x/exp/constraints"
)

// Microset layers a word bitmask over any injected [Go_Succ.Set] macro
// structure. A set bit marks a present element; a bucket is forwarded to
// the macro as deleted only when its whole word reaches zero, and
// Successor only consults the macro when no bit remains at or above the
// queried offset in its own word. Buckets holding a sentinel (the first
// and the one holding n+1) therefore never reach the macro.
// Delete is internally guarded by the bit test, so repeated deletion of
// the same element is a safe no-op regardless of the macro's contract.
type Microset[V constraints.Signed] struct {
	words Go_Succ.BitArray
	macro Go_Succ.Set[V]
}

// New allocates a Microset for sets up to {0,...,maxN+1} over the given
// macro structure, which must itself have capacity for
// ceil((maxN+2)/wordsize) buckets.
func New[V constraints.Signed](maxN V, macro Go_Succ.Set[V]) *Microset[V] {
	return &Microset[V]{words: Go_Succ.New(int(maxN) + 2), macro: macro}
}

// Buckets returns the number of buckets covering {0,...,n+1}.
func Buckets[V constraints.Signed](n V) V {
	return (n + 2 + V(bits.UintSize) - 1) / V(bits.UintSize)
}

// Init [Go_Succ.Set.Init].
// Time: O(n/wordsize) plus the macro's Init
func (u *Microset[V]) Init(n V) {
	u.macro.Init(Buckets(n))
	u.words.Fill(int(n) + 2)
}

// Delete [Go_Succ.Set.Delete]. Deleting an absent i is a no-op.
// Time: O(1), plus one macro Delete when i's bucket empties
func (u *Microset[V]) Delete(i V) {
	b := int(i)
	if !u.words.Get(b) {
		return
	}
	u.words.Down(b)
	if u.words.Word(b) == 0 {
		u.macro.Delete(V(b / bits.UintSize))
	}
}

// Successor [Go_Succ.Set.Successor].
// Time: O(1), plus one macro Successor when i's own word is exhausted
func (u *Microset[V]) Successor(i V) V {
	if j, ok := u.words.NextUp(int(i)); ok {
		return V(j)
	}
	succ := u.macro.Successor(V(int(i)/bits.UintSize) + 1)
	j, _ := u.words.NextUp(int(succ) * bits.UintSize)
	return V(j)
}
