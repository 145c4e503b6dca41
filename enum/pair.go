package enum

import "fmt"

// Pair is the element type produced by [Filter] and [Reject] for
// keyed-mapping inputs: the matching value together with its key.
type Pair struct {
	Key   any
	Value any
}

// String returns a human-readable representation: "(key, value)".
func (p Pair) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
