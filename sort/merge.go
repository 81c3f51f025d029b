// Copyright 2025 go-sortlab Authors
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

import "golang.org/x/exp/constraints"

// MergeSort sorts data using top-down merge sort.
//
// The slice is split at len(data)/2, both halves are copied into new
// slices, sorted recursively and merged back into data. Each merge level
// allocates O(n) auxiliary storage; recursion depth is O(log n).
func MergeSort[T constraints.Integer](data []T) {
	mergeSortFunc(data, less[T])
}

// Merge returns the sorted union of two sorted slices.
// On equal heads the element from left is taken first.
func Merge[T constraints.Integer](left, right []T) []T {
	out := make([]T, len(left)+len(right))
	mergeInto(out, left, right, less[T])
	return out
}

func mergeSortFunc[E any](data []E, less func(a, b E) bool) {
	n := len(data)
	if n <= 1 {
		return
	}

	mid := n / 2

	left := make([]E, mid)
	right := make([]E, n-mid)
	copy(left, data[:mid])
	copy(right, data[mid:])

	mergeSortFunc(left, less)
	mergeSortFunc(right, less)

	mergeInto(data, left, right, less)
}

// mergeInto writes the merge of left and right into dst.
// len(dst) must equal len(left)+len(right).
func mergeInto[E any](dst, left, right []E, less func(a, b E) bool) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}

	// At most one of these copies anything.
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
