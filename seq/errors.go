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

import "errors"

var (
	// ErrInvalidType is returned when an element type outside the Number
	// allow-list is requested by name.
	ErrInvalidType = errors.New("seq: element type is not an allowed numeric type")

	// ErrInvalidCapacity is returned for a negative capacity, or one smaller
	// than the current length.
	ErrInvalidCapacity = errors.New("seq: invalid capacity")

	// ErrNullInput is returned when a Sequence is built from a nil slice.
	ErrNullInput = errors.New("seq: initial values are nil")

	// ErrLengthMismatch is returned by element-wise operators whose operands
	// have different lengths.
	ErrLengthMismatch = errors.New("seq: sequence lengths differ")

	// ErrIndexOutOfRange is returned for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("seq: index out of range")
)
