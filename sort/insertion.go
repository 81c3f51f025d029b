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

// InsertionSort sorts data in-place, keeping data[:i] sorted and inserting
// data[i] into it on each step.
//
// Only strictly greater elements are shifted, so equal elements keep their
// relative order.
func InsertionSort[T constraints.Integer](data []T) {
	insertionSortFunc(data, less[T])
}

// insertionSortFunc shifts an element only while less(key, data[j]) holds.
func insertionSortFunc[E any](data []E, less func(a, b E) bool) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
