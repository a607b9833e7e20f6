package Forests

import (
	"testing"
)

// depth of i, by brute-force parent walk.
func (u *Augmented[V]) depth(i V) V {
	var d V
	for u.nodes[i].parent != i {
		i = u.nodes[i].parent
		d++
	}
	return d
}

// maxDepth over the whole arena, by brute force.
func (u *Augmented[V]) maxDepth() V {
	var m V
	for i := V(0); i < u.n+2; i++ {
		if d := u.depth(i); d > m {
			m = d
		}
	}
	return m
}

func TestAugmentedInvariants(t *testing.T) {
	for _, n := range []int{2, 3, 7, 64, 500, 2048} {
		u := NewAugmented(n)

		u.Init(n)
		if u.Corrupt() {
			t.Fatalf("n=%d: corrupt after init", n)
		}
		for i := 1; i <= n; i++ {
			u.Delete(i)
			if u.Corrupt() {
				t.Fatalf("n=%d: corrupt after sequential delete(%d)", n, i)
			}
			u.Successor(u.DeepestNode())
			if u.Corrupt() {
				t.Fatalf("n=%d: corrupt after successor of deepest, i=%d", n, i)
			}
		}

		u.Init(n)
		for k, d := range rg.Perm(n) {
			u.Delete(d + 1)
			if u.Corrupt() {
				t.Fatalf("n=%d: corrupt after random delete(%d)", n, d+1)
			}
			u.Successor(rg.Intn(n + 2))
			if u.Corrupt() {
				t.Fatalf("n=%d: corrupt after random successor, step %d", n, k)
			}
		}
	}
}

func TestAugmentedDeepestNode(t *testing.T) {
	const n = 600
	u := NewAugmented(n)
	u.Init(n)
	for k := 0; k < 4*n; k++ {
		switch rg.Intn(3) {
		case 0:
			u.Delete(rg.Intn(n) + 1) // repeats allowed, Delete re-hangs
		case 1:
			u.Successor(rg.Intn(n + 2))
		default:
			u.Successor(u.DeepestNode())
		}
		d := u.DeepestNode()
		if got, want := u.depth(d), u.maxDepth(); got != want {
			t.Fatalf("step %d: deepest node %d has depth %d, true max is %d", k, d, got, want)
		}
		if h := u.nodes[d].height; h != 0 {
			t.Fatalf("step %d: deepest node %d has height %d, want a leaf", k, d, h)
		}
	}
}

// The tracked maximum height must match the deepest node's depth, since
// a tree's height equals the depth of its deepest descendant.
func TestAugmentedMaxHeight(t *testing.T) {
	const n = 256
	u := NewAugmented(n)
	u.Init(n)
	for _, d := range rg.Perm(n) {
		u.Delete(d + 1)
		if got, want := u.max, u.maxDepth(); got != want {
			t.Fatalf("after delete(%d): max height %d, want %d", d+1, got, want)
		}
		u.Successor(rg.Intn(n + 2))
		if got, want := u.max, u.maxDepth(); got != want {
			t.Fatalf("after successor: max height %d, want %d", got, want)
		}
	}
}

func TestAugmentedRepeatedDelete(t *testing.T) {
	const n = 32
	u := NewAugmented(n)
	u.Init(n)
	u.Delete(5)
	u.Delete(5)
	u.Delete(5)
	if u.Corrupt() {
		t.Fatal("corrupt after repeated delete")
	}
	if r := u.Successor(5); r != 6 {
		t.Errorf("successor(5)=%d, want 6", r)
	}
}
