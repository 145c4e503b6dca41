package enum

// ─────────────────────────────────────────────────────────────────────────────
// Traversal engine
//
// Each/EachStep is the single iteration primitive; every other operation in
// this package is defined in terms of it. Early termination is an explicit
// control-flow result (Step) returned by the callback — there is no sentinel
// value that could leak into caller code, and callback panics are never
// recovered here.
// ─────────────────────────────────────────────────────────────────────────────

// Step is the control-flow result returned by [EachStep] callbacks.
type Step uint8

const (
	// Continue keeps the traversal going.
	Continue Step = iota
	// Stop halts the traversal immediately; already-visited elements are
	// unaffected and the remaining elements are never visited.
	Stop
)

// Each invokes fn(value, key, collection) once per element of v, in
// traversal order, and returns v unchanged so the result can be chained or
// ignored.
//
// For sequences key is the int index; for mappings it is the map key.
// Unsupported inputs (nil, strings, scalars) visit zero elements.
func Each(v any, fn func(value, key, collection any)) any {
	return EachStep(v, func(value, key, collection any) Step {
		fn(value, key, collection)
		return Continue
	})
}

// EachStep is [Each] with early termination: traversal halts as soon as fn
// returns [Stop]. The input is returned unchanged whether or not the
// traversal ran to completion.
func EachStep(v any, fn func(value, key, collection any) Step) any {
	w := resolve(v)
	switch w.shape {
	case shapeSeq:
		for i, item := range w.seq {
			if fn(item, i, v) == Stop {
				return v
			}
		}
	case shapeMap:
		for _, k := range w.keys {
			if fn(w.get(k), k, v) == Stop {
				return v
			}
		}
	}
	return v
}
