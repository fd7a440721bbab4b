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

package sort

import "cmp"

// span is an inclusive index range waiting to be partitioned.
type span struct {
	left, right int
}

// QuickSort sorts data in-place in ascending order.
func QuickSort[T cmp.Ordered](data []T) {
	QuickSortRange(data, 0, len(data)-1)
}

// QuickSortRange sorts the inclusive range data[left:right+1] in-place.
// Ranges with left >= right are already sorted and are left untouched.
//
// The result is the same as recursing on [left, p-1] and [p+1, right] after
// each Partition; only the order in which the two sides are visited differs.
func QuickSortRange[T cmp.Ordered](data []T, left, right int) {
	if left >= right {
		return
	}

	stack := []span{{left, right}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.left >= s.right {
			continue
		}

		p := Partition(data, s.left, s.right)

		// Push the larger side first so the smaller one is handled next.
		lo, hi := span{s.left, p - 1}, span{p + 1, s.right}
		if lo.right-lo.left > hi.right-hi.left {
			stack = append(stack, lo, hi)
		} else {
			stack = append(stack, hi, lo)
		}
	}
}

// Partition performs a Lomuto partition of data[left:right+1] around the
// last element and returns the pivot's final index.
//
// Afterwards every element in [left, p) compares <= the pivot and every
// element in (p, right] compares > it. Elements equal to the pivot end up on
// the left side.
func Partition[T cmp.Ordered](data []T, left, right int) int {
	pivot := data[right]

	swapIndex := left
	for i := left; i < right; i++ {
		if cmp.Compare(data[i], pivot) <= 0 {
			data[i], data[swapIndex] = data[swapIndex], data[i]
			swapIndex++
		}
	}

	data[right], data[swapIndex] = data[swapIndex], data[right]
	return swapIndex
}

// IsSorted reports whether data is in ascending order under cmp.Compare.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if cmp.Less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}
