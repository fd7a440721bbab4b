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

package main

import (
	"fmt"
	"strconv"

	"github.com/afsmath/numseq/seq"
)

type opName string

const (
	opSort opName = "sort"
	opAdd  opName = "add"
	opSub  opName = "sub"
	opMul  opName = "mul"
	opDiv  opName = "div"
)

// request is one operation with its operands still in text form.
// For arithmetic, with is used when non-nil and scalar otherwise.
type request struct {
	op     opName
	values []string
	scalar string
	with   []string
}

// parser converts one textual value into T.
type parser[T seq.Number] func(string) (T, error)

// execute instantiates run for the element type named by kind.
func execute(kind seq.Kind, req request) (string, error) {
	switch kind {
	case seq.Int8:
		return run(req, signed[int8](8))
	case seq.Int16:
		return run(req, signed[int16](16))
	case seq.Int32:
		return run(req, signed[int32](32))
	case seq.Int64:
		return run(req, signed[int64](64))
	case seq.Uint8:
		return run(req, unsigned[uint8](8))
	case seq.Uint16:
		return run(req, unsigned[uint16](16))
	case seq.Uint32:
		return run(req, unsigned[uint32](32))
	case seq.Uint64:
		return run(req, unsigned[uint64](64))
	case seq.Float32:
		return run(req, floating[float32](32))
	case seq.Float64:
		return run(req, floating[float64](64))
	}
	return "", fmt.Errorf("%w: %v", seq.ErrInvalidType, kind)
}

func signed[T seq.SignedInts](bits int) parser[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bits)
		return T(v), err
	}
}

func unsigned[T seq.UnsignedInts](bits int) parser[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bits)
		return T(v), err
	}
}

func floating[T seq.Floats](bits int) parser[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bits)
		return T(v), err
	}
}

func parseSequence[T seq.Number](values []string, parse parser[T]) (*seq.Sequence[T], error) {
	s, err := seq.WithCapacity[T](len(values))
	if err != nil {
		return nil, err
	}
	for _, text := range values {
		v, err := parse(text)
		if err != nil {
			return nil, err
		}
		s.Append(v)
	}
	return s, nil
}

func run[T seq.Number](req request, parse parser[T]) (string, error) {
	a, err := parseSequence(req.values, parse)
	if err != nil {
		return "", err
	}

	if req.op == opSort {
		a.Sort()
		return a.String(), nil
	}

	var (
		scalarOps = map[opName]func(*seq.Sequence[T], T) *seq.Sequence[T]{
			opAdd: seq.AddScalar[T],
			opSub: seq.SubScalar[T],
			opMul: seq.MulScalar[T],
			opDiv: seq.DivScalar[T],
		}
		pairOps = map[opName]func(a, b *seq.Sequence[T]) (*seq.Sequence[T], error){
			opAdd: seq.Add[T],
			opSub: seq.Sub[T],
			opMul: seq.Mul[T],
			opDiv: seq.Div[T],
		}
	)

	if req.with != nil {
		op, ok := pairOps[req.op]
		if !ok {
			return "", fmt.Errorf("unknown operation %q", req.op)
		}
		b, err := parseSequence(req.with, parse)
		if err != nil {
			return "", err
		}
		out, err := op(a, b)
		if err != nil {
			return "", err
		}
		return out.String(), nil
	}

	op, ok := scalarOps[req.op]
	if !ok {
		return "", fmt.Errorf("unknown operation %q", req.op)
	}
	x, err := parse(req.scalar)
	if err != nil {
		return "", err
	}
	return op(a, x).String(), nil
}
