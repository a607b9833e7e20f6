package Go_Succ

import "golang.org/x/exp/constraints"

// Set maintains a subset of the integers {0,...,n+1} under deletions.
// The boundary elements 0 and n+1 are sentinels: they are always present
// and must never be deleted, so Successor is total on [0,n+1].
// V is the integer type used for the element arrays; choosing a narrow
// type (for example int32) halves the memory of every implementation for
// n<2^31.
// Receivers are not thread-safe. All implementations allocate their
// arrays once for a maximum capacity at construction and Init only resets
// the prefix in use, so a single instance can be reused across many runs
// without further allocation.
type Set[V constraints.Signed] interface {
	//Init resets the structure to the full set {0,...,n+1}, destroying
	//all prior state. 0<=n<=maxN given at construction; sizes below 2
	//leave no deletable elements but are legal, since a microset layer
	//shrinks its macro universe by the word-size factor.
	Init(n V)
	//Delete removes i from the set, 1<=i<=n. Unless an implementation
	//documents otherwise, i must currently be present; deleting an
	//absent element is a contract violation and may silently corrupt
	//the structure.
	Delete(i V)
	//Successor returns the smallest present j>=i, 0<=i<=n+1. Since n+1
	//is a sentinel the result is always defined. Implementations may
	//rewrite internal pointers during the query (path compression), so
	//Successor is a mutating call despite being logically read-only.
	Successor(i V) V
}

// Deepest is the extension implemented by structures that track subtree
// heights and can report an element of maximum depth in O(1) amortized
// time. It exists to manufacture adversarial query sequences: the deepest
// element is the most expensive possible Successor argument.
type Deepest[V constraints.Signed] interface {
	Set[V]
	//DeepestNode returns an element whose depth equals the current
	//maximum over all elements. Valid any time after Init.
	DeepestNode() V
}
