package Workloads

import (
	"fmt"
	"math/rand"

	"github.com/g-m-twostay/go-succ/Forests"
)

// QueryOne is the sequence Delete(1),...,Delete(n) followed by n times
// Successor(1): every query starts at the bottom of the single surviving
// chain, the classic separator between the compressing and
// non-compressing strategies.
func QueryOne(n int) *Log[int] {
	u := &Log[int]{N: n, Name: "query_one", Input: make([]int, 0, 2*n)}
	for i := 1; i <= n; i++ {
		u.Input = append(u.Input, -i)
	}
	for i := 1; i <= n; i++ {
		u.Input = append(u.Input, 1)
	}
	u.Record(Forests.NewTwoPass(n))
	return u
}

// WorstCase interleaves Delete(1),...,Delete(n) with adversarial queries:
// after each delete, while the query budget (alpha queries per deletion)
// allows, it asks for the successor of the structurally deepest element.
// The deepest element is obtained from an Augmented forest driven through
// the identical sequence, so every emitted query targets the longest
// chain any compressing structure can have at that point.
func WorstCase(n int, alpha float64) *Log[int] {
	u := &Log[int]{
		N:     n,
		Name:  fmt.Sprintf("worst_case %.3f", alpha),
		Input: make([]int, 0, n+int(float64(n)*alpha)+1),
	}
	t := Forests.NewAugmented(n)
	t.Init(n)
	queries := 0
	for i := 1; i <= n; i++ {
		t.Delete(i)
		u.Input = append(u.Input, -i)
		for float64(queries) < float64(i)*alpha {
			j := t.DeepestNode()
			t.Successor(j)
			u.Input = append(u.Input, j)
			queries++
		}
	}
	u.Record(Forests.NewTwoPass(n))
	return u
}

// Random issues n deletes of uniform random elements of {1,...,n-1}
// (repeats allowed; every structure treats a repeated delete as
// documented), interleaved with deepest-element queries exactly as
// WorstCase. The sequence is deterministic in seed.
func Random(n int, alpha float64, seed int64) *Log[int] {
	u := &Log[int]{
		N:     n,
		Name:  fmt.Sprintf("random %.3f", alpha),
		Input: make([]int, 0, n+int(float64(n)*alpha)+1),
	}
	rg := rand.New(rand.NewSource(seed))
	t := Forests.NewAugmented(n)
	t.Init(n)
	queries := 0
	for i := 1; i <= n; i++ {
		d := rg.Intn(n-1) + 1
		t.Delete(d)
		u.Input = append(u.Input, -d)
		for float64(queries) < float64(i)*alpha {
			j := t.DeepestNode()
			t.Successor(j)
			u.Input = append(u.Input, j)
			queries++
		}
	}
	u.Record(Forests.NewTwoPass(n))
	return u
}
