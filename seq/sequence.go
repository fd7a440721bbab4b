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

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/afsmath/numseq/seq/contrib/sort"
)

// Sequence is an ordered, resizable collection of numeric values.
//
// The zero value is an empty sequence ready to use.
// A Sequence is not safe for concurrent use.
type Sequence[T Number] struct {
	values []T
}

// New returns an empty sequence.
func New[T Number]() *Sequence[T] {
	return &Sequence[T]{}
}

// WithCapacity returns an empty sequence with room for capacity elements.
func WithCapacity[T Number](capacity int) (*Sequence[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidCapacity, capacity)
	}
	return &Sequence[T]{values: make([]T, 0, capacity)}, nil
}

// FromSlice returns a sequence holding a copy of values, in order.
// The initial capacity equals len(values). A nil slice fails with
// ErrNullInput; an empty non-nil slice yields an empty sequence.
func FromSlice[T Number](values []T) (*Sequence[T], error) {
	if values == nil {
		return nil, ErrNullInput
	}
	s := &Sequence[T]{values: make([]T, len(values))}
	copy(s.values, values)
	return s, nil
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.values)
}

// Cap returns the number of elements the sequence can hold before its
// storage has to grow.
func (s *Sequence[T]) Cap() int {
	return cap(s.values)
}

// SetCapacity reallocates the storage to hold exactly capacity elements.
// The length and contents are unchanged. Capacities below Len fail with
// ErrInvalidCapacity.
func (s *Sequence[T]) SetCapacity(capacity int) error {
	if capacity < 0 || capacity < len(s.values) {
		return fmt.Errorf("%w: %d with length %d", ErrInvalidCapacity, capacity, len(s.values))
	}
	if capacity == cap(s.values) {
		return nil
	}
	values := make([]T, len(s.values), capacity)
	copy(values, s.values)
	s.values = values
	return nil
}

func (s *Sequence[T]) checkIndex(i int) error {
	if i < 0 || i >= len(s.values) {
		return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, len(s.values))
	}
	return nil
}

// At returns the element at index i.
func (s *Sequence[T]) At(i int) (T, error) {
	if err := s.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return s.values[i], nil
}

// Set replaces the element at index i.
func (s *Sequence[T]) Set(i int, v T) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.values[i] = v
	return nil
}

// Append adds values to the end of the sequence.
func (s *Sequence[T]) Append(values ...T) {
	s.values = append(s.values, values...)
}

// Remove deletes the first element equal to v and reports whether one was
// found. NaN never equals anything, so it is never removed.
func (s *Sequence[T]) Remove(v T) bool {
	i := slices.Index(s.values, v)
	if i < 0 {
		return false
	}
	s.values = slices.Delete(s.values, i, i+1)
	return true
}

// RemoveAt deletes the element at index i, shifting later elements down.
func (s *Sequence[T]) RemoveAt(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.values = slices.Delete(s.values, i, i+1)
	return nil
}

// Merge appends every element of other, in order. other is not modified;
// a nil other is treated as empty. Merging a sequence with itself doubles it.
func (s *Sequence[T]) Merge(other *Sequence[T]) {
	if other == nil {
		return
	}
	s.values = append(s.values, other.values...)
}

// Sort sorts the sequence in place in ascending order.
// See the contrib/sort package for the algorithm and the NaN ordering.
func (s *Sequence[T]) Sort() {
	sort.QuickSort(s.values)
}

// Clone returns an independent copy with the same length and capacity.
func (s *Sequence[T]) Clone() *Sequence[T] {
	values := make([]T, len(s.values), cap(s.values))
	copy(values, s.values)
	return &Sequence[T]{values: values}
}

// All returns an iterator over index/value pairs in storage order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in storage order.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns the backing storage itself, not a copy.
//
// Writes through the returned slice are visible in the sequence, which makes
// it usable with the slices package and similar helpers. The slice is only
// valid until the next call that changes the length or capacity (Append,
// Remove, RemoveAt, Merge, SetCapacity); appending to it does not grow the
// sequence.
func (s *Sequence[T]) Slice() []T {
	return s.values
}

// String returns every element followed by a single space, e.g. "1 2 3 ".
func (s *Sequence[T]) String() string {
	var b strings.Builder
	for _, v := range s.values {
		fmt.Fprint(&b, v)
		b.WriteByte(' ')
	}
	return b.String()
}
