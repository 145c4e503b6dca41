package enum

import (
	"reflect"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Enumerable resolution
//
// Every operation classifies its input exactly once, at the call boundary,
// into a closed set of shapes: ordered sequence, keyed mapping, or
// unsupported. []any and map[string]any are recognised without reflection;
// any other slice, array, or map type goes through the reflect fallback.
// Both arms feed the same traversal loop, so callbacks observe identical
// (value, key, collection) arguments whichever path ran.
// ─────────────────────────────────────────────────────────────────────────────

type shape uint8

const (
	shapeNone shape = iota
	shapeSeq
	shapeMap
)

// view is the resolved form of an enumerable: a materialised element list
// for sequences, or an ordered key list plus lookup for mappings.
type view struct {
	shape shape
	seq   []any
	keys  []any
	get   func(key any) any
}

// size returns the number of elements the view will visit.
func (w view) size() int {
	if w.shape == shapeMap {
		return len(w.keys)
	}
	return len(w.seq)
}

// resolve classifies v into a view. Strings and nil are deliberately not
// enumerables; they resolve to the unsupported shape, as does anything that
// is neither a sequence nor a mapping. Unsupported views visit zero
// elements.
func resolve(v any) view {
	switch val := v.(type) {
	case nil:
		return view{}
	case string:
		return view{}
	case []any:
		return view{shape: shapeSeq, seq: val}
	case map[string]any:
		names := make([]string, 0, len(val))
		for k := range val {
			names = append(names, k)
		}
		sort.Strings(names)
		keys := make([]any, len(names))
		for i, k := range names {
			keys[i] = k
		}
		return view{
			shape: shapeMap,
			keys:  keys,
			get:   func(k any) any { return val[k.(string)] },
		}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seq := make([]any, rv.Len())
		for i := range seq {
			seq[i] = rv.Index(i).Interface()
		}
		return view{shape: shapeSeq, seq: seq}
	case reflect.Map:
		rkeys := rv.MapKeys()
		sortKeys(rkeys)
		keys := make([]any, len(rkeys))
		for i, rk := range rkeys {
			keys[i] = rk.Interface()
		}
		return view{
			shape: shapeMap,
			keys:  keys,
			get: func(k any) any {
				mv := rv.MapIndex(reflect.ValueOf(k))
				if !mv.IsValid() {
					return nil
				}
				return mv.Interface()
			},
		}
	}
	return view{}
}

// sortKeys orders map keys ascending when the key kind is ordered
// (string, integer, or float), so mapping traversal is deterministic.
// Other key kinds keep Go's unspecified map order.
func sortKeys(keys []reflect.Value) {
	if len(keys) < 2 {
		return
	}
	switch keys[0].Kind() {
	case reflect.String:
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Int() < keys[j].Int() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Uint() < keys[j].Uint() })
	case reflect.Float32, reflect.Float64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Float() < keys[j].Float() })
	}
}
