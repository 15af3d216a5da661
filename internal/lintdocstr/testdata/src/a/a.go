package a

// Collect gathers values.
//
// Args:
//     values (List): the values
func Collect() {} // want `Collect: collection type "List" must include element types`

// Fetch downloads data.
//
// References:
//     - Spec: https://example.com/spec
func Fetch() {} // want `Fetch: a single reference entry must not start with a dash`

// Scale resizes an image.
//
// Args:
//     factor (float64): scale factor
//
// Returns:
//     None
func Scale() {}

// Options configures scaling.
type Options struct{}
