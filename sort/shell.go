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

// ShellSort sorts data in-place using gapped insertion sort.
//
// Gaps start at len(data)/2 and are halved (integer division) after each
// round; the last round runs with gap 1, which is a plain insertion sort
// over nearly sorted data.
func ShellSort[T constraints.Integer](data []T) {
	n := len(data)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			held := data[i]
			j := i
			for ; j >= gap && data[j-gap] > held; j -= gap {
				data[j] = data[j-gap]
			}
			data[j] = held
		}
	}
}
