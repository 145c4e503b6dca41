package enum

// Chain composes operations without intermediate variables. It holds
// exactly one mutable "current results" slot: every chainable method feeds
// the slot into the corresponding package-level operation, stores the
// result back, and returns the receiver.
//
//	out := enum.NewChain([]any{1, 2, 3, 4}).
//	    Filter(func(v, _, _ any) bool { return v.(int)%2 == 0 }).
//	    Map(func(v, _, _ any) any { return v.(int) * 10 }).
//	    Values() // → []any{20, 40}
//
// The chainable set is closed: operations that end a pipeline with a scalar
// ([Detect], [Some], [All] and their aliases) still store their result, and
// a traversal chained after them sees an unsupported input (a no-op).
// [Flatten], [Invoke] and [Include] are not chainable.
type Chain struct {
	current any
}

// NewChain wraps an enumerable in a [Chain] seeded with v.
func NewChain(v any) *Chain {
	return &Chain{current: v}
}

// AsChain wraps v only if it is a chainable enumerable: a non-string value
// that resolves to a sequence or mapping. It is the explicit boundary
// adapter for collaborators that want to auto-wrap arbitrary values.
func AsChain(v any) (*Chain, bool) {
	if resolve(v).shape == shapeNone {
		return nil, false
	}
	return NewChain(v), true
}

// Values unwraps the current results. It is idempotent: calling it twice
// without an intervening chained call returns the identical value.
func (c *Chain) Values() any {
	return c.current
}

// Each traverses the current results for side effects.
func (c *Chain) Each(fn func(value, key, collection any)) *Chain {
	c.current = Each(c.current, fn)
	return c
}

// Map replaces the current results with [Map]'s output.
func (c *Chain) Map(fn func(value, key, collection any) any) *Chain {
	c.current = Map(c.current, fn)
	return c
}

// Collect is an alias for [Chain.Map].
func (c *Chain) Collect(fn func(value, key, collection any) any) *Chain {
	return c.Map(fn)
}

// Filter replaces the current results with [Filter]'s output.
func (c *Chain) Filter(fn func(value, key, collection any) bool) *Chain {
	c.current = Filter(c.current, fn)
	return c
}

// Select is an alias for [Chain.Filter].
func (c *Chain) Select(fn func(value, key, collection any) bool) *Chain {
	return c.Filter(fn)
}

// Reject replaces the current results with [Reject]'s output.
func (c *Chain) Reject(fn func(value, key, collection any) bool) *Chain {
	c.current = Reject(c.current, fn)
	return c
}

// Reduce replaces the current results with the fold of [Reduce].
func (c *Chain) Reduce(memo any, fn func(memo, value, key, collection any) any) *Chain {
	c.current = Reduce(c.current, memo, fn)
	return c
}

// Inject is an alias for [Chain.Reduce].
func (c *Chain) Inject(memo any, fn func(memo, value, key, collection any) any) *Chain {
	return c.Reduce(memo, fn)
}

// Tail replaces the current results with [Tail]'s output.
func (c *Chain) Tail(start ...int) *Chain {
	c.current = Tail(c.current, start...)
	return c
}

// Rest is an alias for [Chain.Tail].
func (c *Chain) Rest(start ...int) *Chain {
	return c.Tail(start...)
}

// Pluck replaces the current results with [Pluck]'s output.
func (c *Chain) Pluck(key string) *Chain {
	c.current = Pluck(c.current, key)
	return c
}

// Detect replaces the current results with the first matching element, or
// nil when no element matches.
func (c *Chain) Detect(fn func(value, key, collection any) bool) *Chain {
	found, _ := Detect(c.current, fn)
	c.current = found
	return c
}

// Some replaces the current results with [Some]'s boolean.
func (c *Chain) Some(fns ...func(value, key, collection any) bool) *Chain {
	c.current = Some(c.current, fns...)
	return c
}

// Any is an alias for [Chain.Some].
func (c *Chain) Any(fns ...func(value, key, collection any) bool) *Chain {
	return c.Some(fns...)
}

// All replaces the current results with [All]'s boolean.
func (c *Chain) All(fns ...func(value, key, collection any) bool) *Chain {
	c.current = All(c.current, fns...)
	return c
}

// Every is an alias for [Chain.All].
func (c *Chain) Every(fns ...func(value, key, collection any) bool) *Chain {
	return c.All(fns...)
}
