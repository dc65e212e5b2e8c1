// Package vector implements 2D vector algebra and approximate-equality
// helpers used throughout GCAD's geometric solver.
//
// Number is a float64 alias. Epsilon bounds the tolerance used by AboutEq
// and AboutZero, which the rest of the module relies on instead of exact
// floating-point comparison: locus intersection and constraint lowering
// both bottom out here.
package vector
