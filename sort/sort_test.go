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
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// sortCopy runs algo on a copy of in and returns the result.
func sortCopy(algo Algorithm, in []int) []int {
	data := slices.Clone(in)
	algo.Sort(data)
	return data
}

func TestAlgorithmsOrder(t *testing.T) {
	want := []string{"bubble", "selection", "insertion", "shell", "merge"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestAlgorithmsIsCopy(t *testing.T) {
	algos := Algorithms()
	algos[0].Name = "changed"
	if Names()[0] != NameBubble {
		t.Errorf("Algorithms() exposed the registry: Names()[0] = %q", Names()[0])
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"bubble", NameBubble, true},
		{"BubbleSort", NameBubble, true},
		{"selection", NameSelection, true},
		{"insertion-sort", NameInsertion, true},
		{" Shell ", NameShell, true},
		{"shell_sort", NameShell, true},
		{"MERGE", NameMerge, true},
		{"quick", "", false},
		{"", "", false},
		{"sort", "", false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.in)
		if ok != tt.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.Name != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.in, got.Name, tt.want)
		}
	}
}

func TestStableFlags(t *testing.T) {
	for _, algo := range Algorithms() {
		want := algo.Name == NameInsertion || algo.Name == NameMerge
		if algo.Stable != want {
			t.Errorf("%s: Stable = %v, want %v", algo.Name, algo.Stable, want)
		}
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"duplicates", []int{5, 3, 8, 3, 1}, []int{1, 3, 3, 5, 8}},
		{"empty", []int{}, []int{}},
		{"single", []int{2}, []int{2}},
		{"sorted", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		{"reverse", []int{8, 7, 6, 5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"allSame", []int{5, 5, 5, 5, 5}, []int{5, 5, 5, 5, 5}},
		{"negatives", []int{0, -3, 7, -3, 2, -10}, []int{-10, -3, -3, 0, 2, 7}},
		{"pair", []int{2, 1}, []int{1, 2}},
	}
	for _, algo := range Algorithms() {
		for _, tt := range tests {
			t.Run(algo.Name+"/"+tt.name, func(t *testing.T) {
				got := sortCopy(algo, tt.in)
				if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("%s(%v) mismatch (-want +got):\n%s", algo.Name, tt.in, diff)
				}
			})
		}
	}
}

func TestNilSlice(t *testing.T) {
	for _, algo := range Algorithms() {
		var data []int
		algo.Sort(data)
		if data != nil {
			t.Errorf("%s(nil) = %v, want nil", algo.Name, data)
		}
	}
}

// TestRandomPermutation checks ordering and multiset preservation against
// the standard library across sizes that hit every shell gap pattern.
func TestRandomPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 257, 1000}
	for _, algo := range Algorithms() {
		for _, n := range sizes {
			in := make([]int, n)
			for i := range in {
				in[i] = rng.Intn(n+1) - n/2
			}
			want := slices.Clone(in)
			slices.Sort(want)

			got := sortCopy(algo, in)
			if !IsSorted(got) {
				t.Errorf("%s(random, n=%d) produced unsorted result", algo.Name, n)
			}
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("%s(random, n=%d) is not a permutation of its input (-want +got):\n%s", algo.Name, n, diff)
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	in := make([]int, 200)
	for i := range in {
		in[i] = rng.Intn(50)
	}
	for _, algo := range Algorithms() {
		once := sortCopy(algo, in)
		twice := sortCopy(algo, once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("%s: sorting twice differs from sorting once (-once +twice):\n%s", algo.Name, diff)
		}
	}
}

func TestGenericIntegerTypes(t *testing.T) {
	i8 := []int8{3, -1, 127, -128, 0}
	BubbleSort(i8)
	if diff := cmp.Diff([]int8{-128, -1, 0, 3, 127}, i8); diff != "" {
		t.Errorf("BubbleSort([]int8) mismatch (-want +got):\n%s", diff)
	}

	u16 := []uint16{65535, 0, 42, 42, 7}
	ShellSort(u16)
	if diff := cmp.Diff([]uint16{0, 7, 42, 42, 65535}, u16); diff != "" {
		t.Errorf("ShellSort([]uint16) mismatch (-want +got):\n%s", diff)
	}

	i64 := []int64{9, -9, 0}
	MergeSort(i64)
	if diff := cmp.Diff([]int64{-9, 0, 9}, i64); diff != "" {
		t.Errorf("MergeSort([]int64) mismatch (-want +got):\n%s", diff)
	}

	u32 := []uint32{5, 4, 3}
	SelectionSort(u32)
	InsertionSort(u32)
	if diff := cmp.Diff([]uint32{3, 4, 5}, u32); diff != "" {
		t.Errorf("SelectionSort([]uint32) mismatch (-want +got):\n%s", diff)
	}
}

func TestBubbleSortPasses(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want int
	}{
		{"empty", nil, 0},
		{"single", []int{2}, 0},
		{"sorted", []int{1, 2, 3, 4, 5}, 1},
		{"oneSwap", []int{2, 1, 3, 4, 5}, 2},
		{"reverse", []int{5, 4, 3, 2, 1}, 4},
	}
	for _, tt := range tests {
		data := slices.Clone(tt.in)
		if got := bubbleSort(data); got != tt.want {
			t.Errorf("bubbleSort(%v) passes = %d, want %d", tt.in, got, tt.want)
		}
		if !IsSorted(data) {
			t.Errorf("bubbleSort(%v) = %v, not sorted", tt.in, data)
		}
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int{}) || !IsSorted([]int{1}) || !IsSorted([]int{1, 1, 2}) {
		t.Errorf("IsSorted rejected a sorted slice")
	}
	if IsSorted([]int{2, 1}) {
		t.Errorf("IsSorted([2 1]) = true, want false")
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name        string
		left, right []int
		want        []int
	}{
		{"bothEmpty", nil, nil, []int{}},
		{"leftEmpty", nil, []int{1, 2}, []int{1, 2}},
		{"rightEmpty", []int{1, 2}, []int{}, []int{1, 2}},
		{"interleaved", []int{1, 3, 5}, []int{2, 4, 6}, []int{1, 2, 3, 4, 5, 6}},
		{"leftLonger", []int{1, 2, 3, 9, 10}, []int{4}, []int{1, 2, 3, 4, 9, 10}},
		{"rightLonger", []int{7}, []int{1, 2, 8, 9}, []int{1, 2, 7, 8, 9}},
		{"duplicates", []int{1, 3, 3}, []int{3, 3, 4}, []int{1, 3, 3, 3, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.left, tt.right)
			if len(got) != len(tt.left)+len(tt.right) {
				t.Errorf("len(Merge) = %d, want %d", len(got), len(tt.left)+len(tt.right))
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Merge(%v, %v) mismatch (-want +got):\n%s", tt.left, tt.right, diff)
			}
		})
	}
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	left := []int{1, 4}
	right := []int{2, 3}
	got := Merge(left, right)
	got[0] = 100
	if left[0] != 1 || right[0] != 2 {
		t.Errorf("Merge result aliases its inputs: left=%v right=%v", left, right)
	}
}

// record is a key with its original position, used to observe stability.
type record struct {
	key int
	seq int
}

func recordLess(a, b record) bool { return a.key < b.key }

func stableInput(n, keys int, seed int64) []record {
	rng := rand.New(rand.NewSource(seed))
	out := make([]record, n)
	for i := range out {
		out[i] = record{key: rng.Intn(keys), seq: i}
	}
	return out
}

func checkStable(t *testing.T, name string, got []record) {
	t.Helper()
	for i := 1; i < len(got); i++ {
		if got[i].key < got[i-1].key {
			t.Fatalf("%s: not sorted at %d: %v then %v", name, i, got[i-1], got[i])
		}
		if got[i].key == got[i-1].key && got[i].seq < got[i-1].seq {
			t.Fatalf("%s: equal keys reordered at %d: %v then %v", name, i, got[i-1], got[i])
		}
	}
}

func TestInsertionSortStable(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 100, 500} {
		data := stableInput(n, 5, int64(n))
		insertionSortFunc(data, recordLess)
		checkStable(t, "insertionSort", data)
	}
}

func TestMergeSortStable(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 100, 1000} {
		data := stableInput(n, 5, int64(n))
		mergeSortFunc(data, recordLess)
		checkStable(t, "mergeSort", data)
	}
}

func TestMergeTiesFavorLeft(t *testing.T) {
	left := []record{{key: 1, seq: 0}, {key: 2, seq: 1}}
	right := []record{{key: 1, seq: 2}, {key: 2, seq: 3}}
	dst := make([]record, 4)
	mergeInto(dst, left, right, recordLess)
	want := []record{{1, 0}, {1, 2}, {2, 1}, {2, 3}}
	if diff := cmp.Diff(want, dst, cmp.AllowUnexported(record{})); diff != "" {
		t.Errorf("mergeInto mismatch (-want +got):\n%s", diff)
	}
}
