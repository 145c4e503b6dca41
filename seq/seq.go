package seq

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Step is the control-flow result returned by [EachStep] and [EachMapStep]
// callbacks.
type Step uint8

const (
	// Continue keeps the traversal going.
	Continue Step = iota
	// Stop halts the traversal immediately.
	Stop
)

// Each calls fn(item, index) for every element.
func Each[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// EachStep calls fn(item, index) for every element until fn returns [Stop].
// Reports whether the traversal was stopped early.
func EachStep[T any](items []T, fn func(T, int) Step) bool {
	for i, item := range items {
		if fn(item, i) == Stop {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns the elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Reduce left-folds items to a single value of type U, seeded with memo.
func Reduce[T, U any](items []T, memo U, fn func(U, T, int) U) U {
	for i, item := range items {
		memo = fn(memo, item, i)
	}
	return memo
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Tail returns a copy of the elements from index start to the end, with
// slice semantics: a negative start counts from the end, out-of-range
// starts clamp. start defaults to 1, yielding "all but first".
func Tail[T any](items []T, start ...int) []T {
	from := 1
	if len(start) > 0 {
		from = start[0]
	}
	if from < 0 {
		from += len(items)
	}
	if from < 0 {
		from = 0
	}
	if from > len(items) {
		from = len(items)
	}
	out := make([]T, len(items)-from)
	copy(out, items[from:])
	return out
}

// Rest is an alias for [Tail].
func Rest[T any](items []T, start ...int) []T {
	return Tail(items, start...)
}

// Flatten folds a slice of slices into a single flat slice (one level).
func Flatten[T any](chunks [][]T) []T {
	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	return out
}

// FlattenDeep recursively flattens any nested []any structure, at arbitrary
// depth. Non-slice elements pass through unchanged.
func FlattenDeep(items []any) []any {
	out := make([]any, 0, len(items))
	var walk func(v any)
	walk = func(v any) {
		if nested, ok := v.([]any); ok {
			for _, elem := range nested {
				walk(elem)
			}
			return
		}
		out = append(out, v)
	}
	for _, item := range items {
		walk(item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Detect returns the first element satisfying fn, stopping the traversal at
// the match. Returns the zero value and false when no element matches.
func Detect[T any](items []T, fn func(T, int) bool) (T, bool) {
	var found T
	ok := false
	EachStep(items, func(item T, i int) Step {
		if fn(item, i) {
			found, ok = item, true
			return Stop
		}
		return Continue
	})
	return found, ok
}

// Some reports whether any element satisfies fn, stopping at the first
// match.
func Some[T any](items []T, fn func(T, int) bool) bool {
	found := false
	EachStep(items, func(item T, i int) Step {
		if fn(item, i) {
			found = true
			return Stop
		}
		return Continue
	})
	return found
}

// Any is an alias for [Some].
func Any[T any](items []T, fn func(T, int) bool) bool {
	return Some(items, fn)
}

// All reports whether every element satisfies fn, stopping at the first
// failure. An empty slice is vacuously true.
func All[T any](items []T, fn func(T, int) bool) bool {
	ok := true
	EachStep(items, func(item T, i int) Step {
		if !fn(item, i) {
			ok = false
			return Stop
		}
		return Continue
	})
	return ok
}

// Every is an alias for [All].
func Every[T any](items []T, fn func(T, int) bool) bool {
	return All(items, fn)
}

// Include reports whether items contains target, stopping the scan at the
// first match.
func Include[T comparable](items []T, target T) bool {
	return Some(items, func(item T, _ int) bool { return item == target })
}
