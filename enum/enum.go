package enum

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Transform & query operations
//
// All operations below route through Each/EachStep, so both enumerable
// shapes observe elements in the same order with the same callback
// arguments. Aliases are thin wrappers over their canonical operation.
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(value, key, collection) to every element and returns the
// results as a new ordered sequence, preserving traversal order.
func Map(v any, fn func(value, key, collection any) any) []any {
	out := make([]any, 0, resolve(v).size())
	Each(v, func(value, key, collection any) {
		out = append(out, fn(value, key, collection))
	})
	return out
}

// Collect is an alias for [Map].
func Collect(v any, fn func(value, key, collection any) any) []any {
	return Map(v, fn)
}

// Filter returns the elements for which fn returns true.
//
// Sequence inputs yield bare values. Mapping inputs yield [Pair] values so
// the key survives; callers reading the result must distinguish the two
// input shapes.
func Filter(v any, fn func(value, key, collection any) bool) []any {
	w := resolve(v)
	pairs := w.shape == shapeMap
	out := make([]any, 0, w.size())
	Each(v, func(value, key, collection any) {
		if !fn(value, key, collection) {
			return
		}
		if pairs {
			out = append(out, Pair{Key: key, Value: value})
		} else {
			out = append(out, value)
		}
	})
	return out
}

// Select is an alias for [Filter].
func Select(v any, fn func(value, key, collection any) bool) []any {
	return Filter(v, fn)
}

// Reject returns the elements for which fn returns false — the complement
// of [Filter], including its mapping [Pair] behaviour.
func Reject(v any, fn func(value, key, collection any) bool) []any {
	return Filter(v, func(value, key, collection any) bool {
		return !fn(value, key, collection)
	})
}

// Detect returns the first element for which fn returns true, stopping the
// traversal at the match. Returns (nil, false) when no element matches.
func Detect(v any, fn func(value, key, collection any) bool) (any, bool) {
	var found any
	ok := false
	EachStep(v, func(value, key, collection any) Step {
		if fn(value, key, collection) {
			found, ok = value, true
			return Stop
		}
		return Continue
	})
	return found, ok
}

// Reduce left-folds the enumerable into a single value:
// memo = fn(memo, value, key, collection) per element in traversal order,
// seeded with the supplied memo. An empty or unsupported input returns the
// memo untouched.
func Reduce(v any, memo any, fn func(memo, value, key, collection any) any) any {
	Each(v, func(value, key, collection any) {
		memo = fn(memo, value, key, collection)
	})
	return memo
}

// Inject is an alias for [Reduce].
func Inject(v any, memo any, fn func(memo, value, key, collection any) any) any {
	return Reduce(v, memo, fn)
}

// Flatten recursively folds nested sequences into one flat sequence.
// Non-sequence elements pass through unchanged, at arbitrary nesting depth;
// a flat input comes back as an equal flat sequence.
func Flatten(v any) []any {
	out, _ := Reduce(v, make([]any, 0, resolve(v).size()), func(memo, value, _, _ any) any {
		acc := memo.([]any)
		if resolve(value).shape == shapeSeq {
			return append(acc, Flatten(value)...)
		}
		return append(acc, value)
	}).([]any)
	return out
}

// Tail returns the elements from index start to the end, with slice
// semantics: a negative start counts from the end, and out-of-range starts
// clamp to an empty result. start defaults to 1, yielding "all but first".
func Tail(v any, start ...int) []any {
	all := Map(v, func(value, _, _ any) any { return value })
	from := 1
	if len(start) > 0 {
		from = start[0]
	}
	if from < 0 {
		from += len(all)
	}
	if from < 0 {
		from = 0
	}
	if from > len(all) {
		from = len(all)
	}
	return all[from:]
}

// Rest is an alias for [Tail].
func Rest(v any, start ...int) []any {
	return Tail(v, start...)
}

// Pluck maps every element to its member named key: a map entry or an
// exported struct field. Elements without that member map to nil.
func Pluck(v any, key string) []any {
	return Map(v, func(value, _, _ any) any { return member(value, key) })
}

// member reads element[key] from a map or struct element (pointers to
// structs are dereferenced). Returns nil when the member does not exist.
func member(v any, key string) any {
	if m, ok := v.(map[string]any); ok {
		return m[key]
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		if kv.Type().AssignableTo(rv.Type().Key()) {
			if mv := rv.MapIndex(kv); mv.IsValid() {
				return mv.Interface()
			}
		}
	case reflect.Struct:
		if f := rv.FieldByName(key); f.IsValid() && f.CanInterface() {
			return f.Interface()
		}
	}
	return nil
}

// Some reports whether any element satisfies the predicate, stopping at the
// first match. With no predicate the truthiness of the element itself is
// tested (see [Truthy]).
func Some(v any, fns ...func(value, key, collection any) bool) bool {
	fn := predicate(fns)
	found := false
	EachStep(v, func(value, key, collection any) Step {
		if fn(value, key, collection) {
			found = true
			return Stop
		}
		return Continue
	})
	return found
}

// Any is an alias for [Some].
func Any(v any, fns ...func(value, key, collection any) bool) bool {
	return Some(v, fns...)
}

// All reports whether every element satisfies the predicate, stopping at
// the first failure. With no predicate the truthiness of the element itself
// is tested. An empty or unsupported input is vacuously true.
func All(v any, fns ...func(value, key, collection any) bool) bool {
	fn := predicate(fns)
	ok := true
	EachStep(v, func(value, key, collection any) Step {
		if !fn(value, key, collection) {
			ok = false
			return Stop
		}
		return Continue
	})
	return ok
}

// Every is an alias for [All].
func Every(v any, fns ...func(value, key, collection any) bool) bool {
	return All(v, fns...)
}

// Include reports whether some element strictly equals target: equal
// dynamic types compared with ==. Elements of uncomparable dynamic types
// never match. The scan stops at the first match.
func Include(v any, target any) bool {
	found := false
	EachStep(v, func(value, _, _ any) Step {
		if strictEqual(value, target) {
			found = true
			return Stop
		}
		return Continue
	})
	return found
}

// Truthy reports whether v counts as true under the default [Some]/[All]
// predicate: non-nil and not the zero value of its dynamic type. Note that
// a non-nil empty slice is truthy while a nil slice is not.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	return !reflect.ValueOf(v).IsZero()
}

// predicate returns the caller-supplied predicate, or the Truthy default.
func predicate(fns []func(value, key, collection any) bool) func(value, key, collection any) bool {
	if len(fns) > 0 && fns[0] != nil {
		return fns[0]
	}
	return func(value, _, _ any) bool { return Truthy(value) }
}

// strictEqual is == restricted to matching, comparable dynamic types, so it
// never panics on uncomparable values.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
