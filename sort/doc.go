// Package sort provides five classical in-place sorting algorithms over
// integer slices: bubble, selection, insertion, shell and merge sort.
//
// Every routine sorts into ascending order, accepts empty and single-element
// slices as no-ops, and leaves the multiset of elements unchanged.
//
// # Algorithms
//
//   - BubbleSort: adjacent swaps, shrinking scan, early exit on a clean pass
//   - SelectionSort: one swap per position, always O(n²) comparisons
//   - InsertionSort: shift-and-insert, stable, O(n) on sorted input
//   - ShellSort: gapped insertion sort with gaps n/2, n/4, ..., 1
//   - MergeSort: top-down, O(n) auxiliary storage per level, stable
//
// Only InsertionSort and MergeSort are stable.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortlab/sort"
//
//	func Process(data []int) {
//	    sort.ShellSort(data)
//	}
//
//	func ByName(name string, data []int) bool {
//	    algo, ok := sort.Lookup(name)
//	    if !ok {
//	        return false
//	    }
//	    algo.Sort(data)
//	    return true
//	}
//
// # Supported Types
//
// The routines are generic over golang.org/x/exp/constraints.Integer. The
// Algorithm registry is instantiated for []int, which is what the sortbench
// harness drives.
package sort
