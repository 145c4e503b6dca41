// Package enum provides a uniform way to traverse, transform, and query
// enumerable values — ordered sequences and keyed mappings — without knowing
// their concrete type, inspired by Underscore.js.
//
// # Enumerables
//
// Every function accepts an opaque enumerable as an `any` value and resolves
// it once, at the call boundary, into one of three shapes:
//
//   - ordered sequence: []any (fast path), or any other slice/array type
//   - keyed mapping: map[string]any (fast path), or any other map type
//   - unsupported: everything else, including nil and strings
//
// Unsupported inputs are never an error: traversal simply visits zero
// elements and transforms produce empty results.
//
// # Traversal
//
// [Each] is the single traversal primitive; every other operation is defined
// in terms of it. Callbacks receive the same (value, key, collection) triple
// whichever shape was resolved — an int index for sequences, the map key for
// mappings:
//
//	enum.Each([]any{10, 20, 30}, func(v, k, _ any) {
//	    fmt.Println(k, v)
//	})
//
// Short-circuiting operations are built on [EachStep], whose callback returns
// a [Step] telling the engine to keep going or stop:
//
//	enum.EachStep([]any{1, 2, 3, 4}, func(v, _, _ any) enum.Step {
//	    if v.(int) > 2 {
//	        return enum.Stop
//	    }
//	    return enum.Continue
//	})
//
// # Operations
//
// [Map], [Filter], [Reject], [Detect], [Reduce], [Flatten], [Tail],
// [Invoke], [Pluck], [Some], [All] and [Include] cover the usual
// transform/query surface. Underscore's aliases are kept as thin wrappers:
// [Collect]=[Map], [Select]=[Filter], [Inject]=[Reduce], [Rest]=[Tail],
// [Any]=[Some], [Every]=[All].
//
// [Filter] and [Reject] applied to a mapping collect [Pair] values rather
// than bare elements, so key information is not lost.
//
// # Chaining
//
// [NewChain] wraps an enumerable so operations compose without intermediate
// variables; [Chain.Values] unwraps the result:
//
//	out := enum.NewChain([]any{1, 2, 3, 4}).
//	    Filter(func(v, _, _ any) bool { return v.(int)%2 == 0 }).
//	    Map(func(v, _, _ any) any { return v.(int) * 10 }).
//	    Values() // → []any{20, 40}
//
// # Portability
//
// The API mirrors Underscore.js's each/map/filter/reduce family; callbacks
// take (value, key, collection) in that order, and caller state that
// Underscore passed through a context argument is captured by Go closures
// instead.
package enum
