// Package seq provides Sequence, a resizable container of numeric values with
// element-wise arithmetic and in-place sorting.
//
// Basic usage:
//
//	import "github.com/afsmath/numseq/seq"
//
//	a, _ := seq.FromSlice([]int32{1, 2, 3})
//	b, _ := seq.FromSlice([]int32{10, 20, 30})
//
//	sum, err := seq.Add(a, b)       // [11 22 33]
//	halves := seq.DivScalar(a, 2)   // [0 1 1]
//	same := seq.DivScalar(a, 0)     // [1 2 3], division by zero is the identity
//
//	a.Append(0)
//	a.Sort()                        // [0 1 2 3]
//
// # Element types
//
// The element type is restricted at compile time by the Number constraint:
// signed and unsigned integers of 8, 16, 32 and 64 bits plus float32 and
// float64 (and any type whose underlying type is one of those). Code that
// picks the element type at run time, such as a command line front-end, can
// use Kind and ParseKind, which mirror the same allow-list.
//
// # Arithmetic
//
// Add, Sub, Mul and Div combine two sequences of equal length; AddScalar,
// SubScalar, MulScalar and DivScalar broadcast a scalar. Integer overflow
// wraps around. Dividing by zero, whether by a zero scalar or a zero element,
// yields the left-hand value unchanged for that position. All operators
// return a new Sequence and never modify their operands.
//
// # Concurrency
//
// A Sequence is not safe for concurrent use. Callers that share one between
// goroutines must synchronise access themselves.
package seq
