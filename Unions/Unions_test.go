package Unions

import (
	"math/rand"
	"testing"

	Go_Succ "github.com/g-m-twostay/go-succ"
)

var rg = *rand.New(rand.NewSource(0))

func both(maxN int) map[string]Go_Succ.Set[int] {
	return map[string]Go_Succ.Set[int]{
		"quick find": NewQuickFind(maxN),
		"union find": NewWeighted(maxN),
	}
}

func TestScenario(t *testing.T) {
	for name, s := range both(4) {
		s.Init(4)
		s.Delete(2)
		if r := s.Successor(1); r != 1 {
			t.Errorf("%s: successor(1)=%d, want 1", name, r)
		}
		if r := s.Successor(2); r != 3 {
			t.Errorf("%s: successor(2)=%d, want 3", name, r)
		}
		s.Init(4)
		for i := 1; i <= 4; i++ {
			s.Delete(i)
		}
		if r := s.Successor(1); r != 5 {
			t.Errorf("%s: successor(1)=%d after deleting all, want 5", name, r)
		}
	}
}

func TestAgainstScan(t *testing.T) {
	const n = 250
	for name, s := range both(n) {
		s.Init(n)
		present := make([]bool, n+2)
		for i := range present {
			present[i] = true
		}
		for _, d := range rg.Perm(n) {
			d++
			s.Delete(d)
			present[d] = false
			for q := 0; q <= n+1; q++ {
				want := q
				for !present[want] {
					want++
				}
				if got := s.Successor(q); got != want {
					t.Fatalf("%s: successor(%d)=%d, want %d", name, q, got, want)
				}
			}
		}
	}
}

// Ascending full-capacity deletion keeps the left interval heavier, so
// every merge from Delete(2) on relabels upward, ending in the interval
// that terminates at sentinel n+1.
func TestDeleteAllAscending(t *testing.T) {
	const n = 64
	for name, s := range both(n) {
		s.Init(n)
		for i := 1; i <= n; i++ {
			s.Delete(i)
			if r := s.Successor(1); r != i+1 {
				t.Fatalf("%s: successor(1)=%d after deleting 1..%d, want %d", name, r, i, i+1)
			}
		}
		if r := s.Successor(n + 1); r != n+1 {
			t.Errorf("%s: successor(%d)=%d, want %d", name, n+1, r, n+1)
		}
	}
}

// Both union structures detect an already-deleted element and ignore the
// delete.
func TestRepeatedDelete(t *testing.T) {
	for name, s := range both(8) {
		s.Init(8)
		s.Delete(3)
		s.Delete(4)
		s.Delete(3)
		s.Delete(3)
		if r := s.Successor(3); r != 5 {
			t.Errorf("%s: successor(3)=%d after repeated deletes, want 5", name, r)
		}
		if r := s.Successor(1); r != 1 {
			t.Errorf("%s: successor(1)=%d, want 1", name, r)
		}
	}
}

// Interval representatives must always name a genuinely present
// successor.
func TestQuickFindRoots(t *testing.T) {
	const n = 100
	u := NewQuickFind(n)
	u.Init(n)
	deleted := make(map[int]bool)
	for k := 0; k < n; k++ {
		d := rg.Intn(n) + 1
		u.Delete(d)
		deleted[d] = true
		for i := 0; i <= n+1; i++ {
			r := u.nodes[i].root
			if s := u.nodes[r].succ; deleted[s] {
				t.Fatalf("root of %d reports deleted successor %d", i, s)
			}
		}
	}
}
