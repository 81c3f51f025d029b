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

// BubbleSort sorts data in-place by repeatedly swapping adjacent
// out-of-order pairs.
//
// Each pass moves the largest unsorted element to the end of the unsorted
// range, so the scan shrinks by one per pass. A pass with no swaps ends the
// sort early, which makes already sorted input O(n).
func BubbleSort[T constraints.Integer](data []T) {
	bubbleSort(data)
}

// bubbleSort returns the number of passes performed.
func bubbleSort[T constraints.Integer](data []T) int {
	n := len(data)
	passes := 0
	for i := 0; i < n-1; i++ {
		passes++
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return passes
}
