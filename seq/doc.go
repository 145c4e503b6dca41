// Package seq provides standalone, statically typed traversal and
// transformation helpers for Go slices and maps — the generic counterpart
// of the dynamic [github.com/hasbyte1/go-underscore-utils/enum] package.
//
// # Slice helpers
//
// All slice helpers are generic and operate on plain []T values — no
// wrapper type required:
//
//	evens := seq.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	first, ok := seq.Detect([]int{1, 2, 3, 4}, func(n, _ int) bool { return n > 2 })
//	rest := seq.Tail([]int{1, 2, 3, 4, 5}) // → [2 3 4 5]
//
// Short-circuiting helpers ([Detect], [Some], [All], [Include]) are built
// on [EachStep], whose callback returns a [Step] controlling whether the
// traversal continues:
//
//	seq.EachStep(items, func(item string, i int) seq.Step {
//	    if item == "" {
//	        return seq.Stop
//	    }
//	    return seq.Continue
//	})
//
// # Map helpers
//
// Map helpers visit entries in ascending key order, so traversal is
// deterministic. Filtering a map yields [Pair] values so the key survives:
//
//	adults := seq.FilterMap(ages, func(age int, _ string) bool { return age >= 18 })
//	// → []Pair[string, int]
//
// # Portability
//
// The helpers follow the each/map/filter/reduce pattern of Underscore.js
// with callbacks taking (value, key) in that order; they translate directly
// to other languages without Go-specific idioms.
package seq
