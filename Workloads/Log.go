// Package Workloads builds and replays successor-delete operation
// sequences. A Log is recorded once against a reference structure and
// then replayed against any other implementation, either to check it
// produces identical answers or to time it.
package Workloads

import (
	Go_Succ "github.com/g-m-twostay/go-succ"
	"golang.org/x/exp/constraints"
)

// Log is a pre-recorded operation sequence over the universe {0,...,N+1}
// together with the expected answers. The input encoding is positional:
// x>0 is Successor(x), x<0 is Delete(-x). Output holds the expected
// result per operation, 0 for deletes. Successor(0) is not encodable;
// it is trivially 0 and is covered by direct tests instead.
type Log[V constraints.Signed] struct {
	N      V
	Name   string
	Input  []V
	Output []V
}

// Record replays Input against s from a fresh Init and stores its answers
// as the expected Output. s is normally the two-pass compression
// reference.
func (u *Log[V]) Record(s Go_Succ.Set[V]) {
	s.Init(u.N)
	u.Output = u.Output[:0]
	for _, x := range u.Input {
		if x > 0 {
			u.Output = append(u.Output, s.Successor(x))
		} else {
			s.Delete(-x)
			u.Output = append(u.Output, 0)
		}
	}
}

// Replay runs the sequence against s from a fresh Init, comparing every
// answer with Output. It returns the index of the first mismatching
// operation, or -1 if s agrees everywhere.
func (u *Log[V]) Replay(s Go_Succ.Set[V]) int {
	s.Init(u.N)
	for k, x := range u.Input {
		if x > 0 {
			if s.Successor(x) != u.Output[k] {
				return k
			}
		} else {
			s.Delete(-x)
		}
	}
	return -1
}

// Run replays the sequence against s without checking, xor-folding the
// successor answers so the work can't be optimized away. For timing.
func (u *Log[V]) Run(s Go_Succ.Set[V]) V {
	var trash V
	s.Init(u.N)
	for _, x := range u.Input {
		if x > 0 {
			trash ^= s.Successor(x)
		} else {
			s.Delete(-x)
		}
	}
	return trash
}

// Len returns the number of operations.
func (u *Log[V]) Len() int {
	return len(u.Input)
}
