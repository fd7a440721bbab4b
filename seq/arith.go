// Copyright 2026 numseq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seq

import "fmt"

func add[T Number](x, y T) T { return x + y }
func sub[T Number](x, y T) T { return x - y }
func mul[T Number](x, y T) T { return x * y }

// div leaves x unchanged when y is zero, for integers and floats alike.
func div[T Number](x, y T) T {
	if y == 0 {
		return x
	}
	return x / y
}

// broadcast applies op(a[i], x) to every element into a new sequence.
func broadcast[T Number](a *Sequence[T], x T, op func(T, T) T) *Sequence[T] {
	out := make([]T, len(a.values))
	for i, v := range a.values {
		out[i] = op(v, x)
	}
	return &Sequence[T]{values: out}
}

// zip applies op(a[i], b[i]) pairwise into a new sequence.
func zip[T Number](a, b *Sequence[T], op func(T, T) T) (*Sequence[T], error) {
	if len(a.values) != len(b.values) {
		return nil, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a.values), len(b.values))
	}
	out := make([]T, len(a.values))
	for i, v := range a.values {
		out[i] = op(v, b.values[i])
	}
	return &Sequence[T]{values: out}, nil
}

// AddScalar returns a new sequence with out[i] = a[i] + x.
// Integer overflow wraps around.
//
// Example:
//
//	a, _ := FromSlice([]uint8{1, 255})
//	AddScalar(a, 1)  // [2 0]
func AddScalar[T Number](a *Sequence[T], x T) *Sequence[T] {
	return broadcast(a, x, add[T])
}

// SubScalar returns a new sequence with out[i] = a[i] - x.
// Integer overflow wraps around.
func SubScalar[T Number](a *Sequence[T], x T) *Sequence[T] {
	return broadcast(a, x, sub[T])
}

// MulScalar returns a new sequence with out[i] = a[i] * x.
// Integer overflow wraps around.
func MulScalar[T Number](a *Sequence[T], x T) *Sequence[T] {
	return broadcast(a, x, mul[T])
}

// DivScalar returns a new sequence with out[i] = a[i] / x.
// A zero x returns a copy of a: there is no panic and, for floats, no
// infinity or NaN is produced.
func DivScalar[T Number](a *Sequence[T], x T) *Sequence[T] {
	return broadcast(a, x, div[T])
}

// Add returns a new sequence with out[i] = a[i] + b[i].
// It fails with ErrLengthMismatch unless a and b have the same length.
//
// Example:
//
//	a, _ := FromSlice([]int32{1, 2, 3})
//	b, _ := FromSlice([]int32{10, 20, 30})
//	Add(a, b)  // [11 22 33]
func Add[T Number](a, b *Sequence[T]) (*Sequence[T], error) {
	return zip(a, b, add[T])
}

// Sub returns a new sequence with out[i] = a[i] - b[i].
// It fails with ErrLengthMismatch unless a and b have the same length.
func Sub[T Number](a, b *Sequence[T]) (*Sequence[T], error) {
	return zip(a, b, sub[T])
}

// Mul returns a new sequence with out[i] = a[i] * b[i].
// It fails with ErrLengthMismatch unless a and b have the same length.
func Mul[T Number](a, b *Sequence[T]) (*Sequence[T], error) {
	return zip(a, b, mul[T])
}

// Div returns a new sequence with out[i] = a[i] / b[i], or a[i] where b[i]
// is zero. It fails with ErrLengthMismatch unless a and b have the same
// length.
func Div[T Number](a, b *Sequence[T]) (*Sequence[T], error) {
	return zip(a, b, div[T])
}
