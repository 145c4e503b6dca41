package seq

import (
	"cmp"
	"fmt"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Map helpers
//
// All map helpers visit entries in ascending key order so traversal is
// deterministic across runs. Callbacks take (value, key), matching the
// (value, key) order of the slice helpers and the dynamic enum package.
// ─────────────────────────────────────────────────────────────────────────────

// Pair holds one map entry: a value together with its key. It is the
// element type produced by [FilterMap] and [RejectMap].
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// SortedKeys returns m's keys in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// EachMap calls fn(value, key) for every entry, in ascending key order.
func EachMap[K cmp.Ordered, V any](m map[K]V, fn func(V, K)) {
	for _, k := range SortedKeys(m) {
		fn(m[k], k)
	}
}

// EachMapStep calls fn(value, key) for every entry, in ascending key order,
// until fn returns [Stop]. Reports whether the traversal was stopped early.
func EachMapStep[K cmp.Ordered, V any](m map[K]V, fn func(V, K) Step) bool {
	for _, k := range SortedKeys(m) {
		if fn(m[k], k) == Stop {
			return true
		}
	}
	return false
}

// FilterMap returns the entries for which fn returns true, as [Pair] values
// in ascending key order.
func FilterMap[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(m))
	EachMap(m, func(v V, k K) {
		if fn(v, k) {
			out = append(out, Pair[K, V]{Key: k, Value: v})
		}
	})
	return out
}

// RejectMap returns the entries for which fn returns false.
// It is the complement of [FilterMap].
func RejectMap[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) []Pair[K, V] {
	return FilterMap(m, func(v V, k K) bool { return !fn(v, k) })
}

// DetectMap returns the first entry (in key order) satisfying fn, stopping
// the traversal at the match. Returns zero values and false when no entry
// matches.
func DetectMap[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) (V, K, bool) {
	var (
		foundV V
		foundK K
	)
	ok := false
	EachMapStep(m, func(v V, k K) Step {
		if fn(v, k) {
			foundV, foundK, ok = v, k, true
			return Stop
		}
		return Continue
	})
	return foundV, foundK, ok
}

// SomeMap reports whether any entry satisfies fn, stopping at the first
// match.
func SomeMap[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) bool {
	found := false
	EachMapStep(m, func(v V, k K) Step {
		if fn(v, k) {
			found = true
			return Stop
		}
		return Continue
	})
	return found
}

// AllMap reports whether every entry satisfies fn, stopping at the first
// failure. An empty map is vacuously true.
func AllMap[K cmp.Ordered, V any](m map[K]V, fn func(V, K) bool) bool {
	ok := true
	EachMapStep(m, func(v V, k K) Step {
		if !fn(v, k) {
			ok = false
			return Stop
		}
		return Continue
	})
	return ok
}

// ReduceMap left-folds the entries, in ascending key order, into a single
// value of type U, seeded with memo.
func ReduceMap[K cmp.Ordered, V, U any](m map[K]V, memo U, fn func(U, V, K) U) U {
	EachMap(m, func(v V, k K) {
		memo = fn(memo, v, k)
	})
	return memo
}
