package enum

import (
	"fmt"
	"reflect"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// Invoke calls the method named method on every element, with the given
// trailing arguments, and returns the ordered sequence of first results
// (nil for methods with no results). If method is empty, each element is
// invoked as a func instead.
//
// The traversal aborts on the first element that lacks the method
// ([ErrMethodNotFound]) or, with an empty method name, is not a func
// ([ErrNotCallable]); no partial results are returned.
func Invoke(v any, method string, args ...any) ([]any, error) {
	out := make([]any, 0, resolve(v).size())
	var callErr error
	EachStep(v, func(value, _, _ any) Step {
		res, err := call(value, method, args)
		if err != nil {
			callErr = err
			return Stop
		}
		out = append(out, res)
		return Continue
	})
	if callErr != nil {
		return nil, callErr
	}
	return out, nil
}

// call resolves the callable for one element and applies it to args.
func call(v any, method string, args []any) (any, error) {
	var fn reflect.Value
	if method == "" {
		fn = reflect.ValueOf(v)
		if !fn.IsValid() || fn.Kind() != reflect.Func {
			return nil, fmt.Errorf("%w: %T", ErrNotCallable, v)
		}
	} else {
		rv := reflect.ValueOf(v)
		if rv.IsValid() {
			fn = rv.MethodByName(method)
		}
		if !fn.IsValid() {
			return nil, fmt.Errorf("%w: %q on %T", ErrMethodNotFound, method, v)
		}
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			// untyped nil has no reflect.Value; pass it as a zero any
			in[i] = reflect.Zero(anyType)
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	results := fn.Call(in)
	if len(results) == 0 {
		return nil, nil
	}
	return results[0].Interface(), nil
}
