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

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Algorithm names accepted by Lookup.
const (
	NameBubble    = "bubble"
	NameSelection = "selection"
	NameInsertion = "insertion"
	NameShell     = "shell"
	NameMerge     = "merge"
)

// Algorithm is one sorting routine behind the uniform func([]int) interface.
type Algorithm struct {
	// Name is the short lowercase name, e.g. "shell".
	Name string

	// Stable reports whether equal elements keep their relative order.
	Stable bool

	// Sort sorts its argument in place.
	Sort func([]int)
}

var algorithms = []Algorithm{
	{Name: NameBubble, Sort: BubbleSort[int]},
	{Name: NameSelection, Sort: SelectionSort[int]},
	{Name: NameInsertion, Stable: true, Sort: InsertionSort[int]},
	{Name: NameShell, Sort: ShellSort[int]},
	{Name: NameMerge, Stable: true, Sort: MergeSort[int]},
}

// Algorithms returns all algorithms in a fixed order:
// bubble, selection, insertion, shell, merge.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Names returns the algorithm names in registry order.
func Names() []string {
	return lo.Map(algorithms, func(a Algorithm, _ int) string {
		return a.Name
	})
}

// Lookup finds an algorithm by name. Matching is case-insensitive and
// accepts both "shell" and "shellsort" (or "shell-sort", "shell_sort").
func Lookup(name string) (Algorithm, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	key = strings.TrimSuffix(key, "sort")
	return lo.Find(algorithms, func(a Algorithm) bool {
		return a.Name == key
	})
}

func less[T constraints.Integer](a, b T) bool {
	return a < b
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T constraints.Integer](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
