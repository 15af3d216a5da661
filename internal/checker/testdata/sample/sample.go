// Package sample holds fixtures for extractor and checker tests.
package sample

// Scale resizes an image.
//
// Args:
//     img (Image): the input image
//     factor (float64): scale factor
//
// Returns:
//     Image: the scaled image
func Scale() {}

// Collect gathers values.
//
// Args:
//     values (List): the values
func Collect() {}

// Describe prints a value.
//
// Args:
//     label: the label to print
func Describe() {}

// Fetch downloads data.
//
// References:
//     - Spec: https://example.com/spec
func Fetch() {}

// Options configures sampling.
type Options struct{}

// Apply runs the transform.
//
// Returns:
//     None
func (o *Options) Apply() {}
