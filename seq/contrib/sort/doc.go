// Package sort provides the in-place quicksort used by seq.Sequence.
//
// # Algorithm
//
// QuickSort is a Lomuto-partition quicksort:
//   - The pivot is the last element of the range
//   - Elements comparing less than or equal to the pivot go to its left
//   - Both sides are then sorted independently
//
// The sort is not stable. Already-sorted and reverse-sorted inputs are the
// worst case (O(n^2) comparisons) because of last-element pivoting. Ranges are
// kept on an explicit stack, smaller side first, so the stack never grows
// beyond O(log n) entries whatever the input looks like.
//
// # Ordering
//
// Elements are ordered by cmp.Compare. For floating point types this is a
// total order: NaN sorts before every other value and all NaNs are equal,
// and -0.0 equals 0.0.
//
// # Example Usage
//
//	import "github.com/afsmath/numseq/seq/contrib/sort"
//
//	func ProcessData(data []int32) {
//	    sort.QuickSort(data)  // In-place ascending sort
//	}
package sort
