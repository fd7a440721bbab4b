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
	"errors"
	"testing"
)

type celsius float64

func TestParseKind(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"int8", Int8},
		{"int16", Int16},
		{"int32", Int32},
		{"int64", Int64},
		{"uint8", Uint8},
		{"byte", Uint8},
		{"uint16", Uint16},
		{"uint32", Uint32},
		{"uint64", Uint64},
		{"float32", Float32},
		{" Float64 ", Float64},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.name)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseKindRejected(t *testing.T) {
	for _, name := range []string{"", "int", "uint", "uintptr", "complex64", "complex128", "decimal", "big.Int", "string", "bool", "invalid"} {
		k, err := ParseKind(name)
		if !errors.Is(err, ErrInvalidType) {
			t.Errorf("ParseKind(%q) error = %v, want ErrInvalidType", name, err)
		}
		if k != InvalidKind {
			t.Errorf("ParseKind(%q) = %v, want InvalidKind", name, k)
		}
	}
}

func TestKindOf(t *testing.T) {
	checks := []struct {
		got, want Kind
	}{
		{KindOf[int8](), Int8},
		{KindOf[int16](), Int16},
		{KindOf[int32](), Int32},
		{KindOf[int64](), Int64},
		{KindOf[uint8](), Uint8},
		{KindOf[uint16](), Uint16},
		{KindOf[uint32](), Uint32},
		{KindOf[uint64](), Uint64},
		{KindOf[float32](), Float32},
		{KindOf[float64](), Float64},
		{KindOf[celsius](), Float64},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("KindOf = %v, want %v", c.got, c.want)
		}
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 10 {
		t.Fatalf("len(Kinds()) = %d, want 10", len(kinds))
	}
	for _, k := range kinds {
		if !k.Valid() {
			t.Errorf("%v.Valid() = false", k)
		}
		if k.Bits() == 0 {
			t.Errorf("%v.Bits() = 0", k)
		}
		back, err := ParseKind(k.String())
		if err != nil || back != k {
			t.Errorf("ParseKind(%v.String()) = %v, %v", k, back, err)
		}
	}
	if InvalidKind.Valid() || Kind(200).Valid() {
		t.Errorf("invalid kinds report Valid")
	}
	if got := Kind(200).String(); got != "Kind(200)" {
		t.Errorf("Kind(200).String() = %q", got)
	}
}

func TestKindProperties(t *testing.T) {
	if Uint16.IsSigned() || !Int16.IsSigned() || !Float32.IsSigned() {
		t.Errorf("IsSigned mismatch")
	}
	if !Float64.IsFloat() || Int64.IsFloat() {
		t.Errorf("IsFloat mismatch")
	}
	if Uint8.Bits() != 8 || Float32.Bits() != 32 || Int64.Bits() != 64 {
		t.Errorf("Bits mismatch")
	}
}

func TestGenericOverNamedType(t *testing.T) {
	s, err := FromSlice([]celsius{30, 10, 20})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	s.Sort()
	if got := s.String(); got != "10 20 30 " {
		t.Errorf("String() = %q, want %q", got, "10 20 30 ")
	}
	if got, _ := AddScalar(s, 1.5).At(0); got != 11.5 {
		t.Errorf("AddScalar[celsius] = %v, want 11.5", got)
	}
}
