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
	"reflect"
	"strings"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is the closed set of element types a Sequence may hold.
type Number interface {
	Floats | Integers
}

// Kind identifies one of the element types allowed by Number.
// It is used where the element type is only known at run time.
type Kind uint8

const (
	// InvalidKind is the zero Kind and matches no element type.
	InvalidKind Kind = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

var kindNames = [...]string{
	InvalidKind: "invalid",
	Int8:        "int8",
	Int16:       "int16",
	Int32:       "int32",
	Int64:       "int64",
	Uint8:       "uint8",
	Uint16:      "uint16",
	Uint32:      "uint32",
	Uint64:      "uint64",
	Float32:     "float32",
	Float64:     "float64",
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the allowed element kinds.
func (k Kind) Valid() bool {
	return k > InvalidKind && k <= Float64
}

// Bits returns the width of the kind in bits, or 0 for an invalid kind.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	default:
		return 0
	}
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsSigned reports whether k can hold negative values.
func (k Kind) IsSigned() bool {
	return k.IsFloat() || (k >= Int8 && k <= Int64)
}

// Kinds returns every allowed kind, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(Float64))
	for k := Int8; k <= Float64; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind maps a Go type name such as "int32" or "float64" to its Kind.
// "byte" is accepted as an alias for uint8.
// Names outside the allow-list (for example "int", "complex128" or
// "decimal") fail with ErrInvalidType.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := Int8; k <= Float64; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	if name == "byte" {
		return Uint8, nil
	}
	return InvalidKind, fmt.Errorf("%w: %q", ErrInvalidType, name)
}

// KindOf returns the Kind of T. Named types report the kind of their
// underlying type.
func KindOf[T Number]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	}
	return InvalidKind
}
