// Package Bench times the successor-delete structures against recorded
// workloads: repeated-trial, best-of-N wall-clock measurement with
// auto-scaling repeat counts, and CSV persistence of the results.
package Bench

import (
	Go_Succ "github.com/g-m-twostay/go-succ"
	"github.com/g-m-twostay/go-succ/Forests"
	"github.com/g-m-twostay/go-succ/Microsets"
	"github.com/g-m-twostay/go-succ/Unions"
)

// Algorithm is one timed configuration: a display name and a constructor
// for a fresh instance with the given capacity.
type Algorithm struct {
	Name string
	New  func(maxN int) Go_Succ.Set[int]
	// MaxN caps the workload sizes this configuration is timed at,
	// 0 = unlimited. The naive walk is quadratic on the query-one
	// workload and the recursive strategy burns a stack frame per chain
	// element, so both are capped at 2^16.
	MaxN int
}

// Algorithms returns every timed configuration: the five chain
// strategies, the checked-delete variant, the two union-find structures,
// the three microset compositions and the augmented forest.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "successor, no compression", MaxN: 1 << 16,
			New: func(m int) Go_Succ.Set[int] { return Forests.NewNaive(m) }},
		{Name: "successor, recursive", MaxN: 1 << 16,
			New: func(m int) Go_Succ.Set[int] { return Forests.NewRecursive(m) }},
		{Name: "successor, 2-pass",
			New: func(m int) Go_Succ.Set[int] { return Forests.NewTwoPass(m) }},
		{Name: "successor, 2-pass, checked",
			New: func(m int) Go_Succ.Set[int] { return Forests.NewTwoPassChecked(m) }},
		{Name: "successor, halving",
			New: func(m int) Go_Succ.Set[int] { return Forests.NewHalving(m) }},
		{Name: "quick find",
			New: func(m int) Go_Succ.Set[int] { return Unions.NewQuickFind(m) }},
		{Name: "union find",
			New: func(m int) Go_Succ.Set[int] { return Unions.NewWeighted(m) }},
		{Name: "quick find, microset",
			New: func(m int) Go_Succ.Set[int] {
				return Microsets.New(m, Unions.NewQuickFind(Microsets.Buckets(m)))
			}},
		{Name: "union find, microset",
			New: func(m int) Go_Succ.Set[int] {
				return Microsets.New(m, Unions.NewWeighted(Microsets.Buckets(m)))
			}},
		{Name: "successor, 2-pass, microset",
			New: func(m int) Go_Succ.Set[int] {
				return Microsets.New(m, Forests.NewTwoPass(Microsets.Buckets(m)))
			}},
		{Name: "augmented forest",
			New: func(m int) Go_Succ.Set[int] { return Forests.NewAugmented(m) }},
	}
}
