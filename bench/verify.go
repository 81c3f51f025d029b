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

package bench

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/ajroetker/go-sortlab/workerpool"
)

// verify checks that got is non-decreasing and holds the same multiset as
// input. input is sorted in place as the reference.
func verify(pool *workerpool.Pool, got, input []int) error {
	if len(got) != len(input) {
		return errors.Wrapf(ErrNotPermutation, "length %d, want %d", len(got), len(input))
	}

	sorted := func(start, end int) bool {
		for i := max(start, 1); i < end; i++ {
			if got[i] < got[i-1] {
				return false
			}
		}
		return true
	}
	if !all(pool, len(got), sorted) {
		return errors.WithStack(ErrNotSorted)
	}

	slices.Sort(input)
	same := func(start, end int) bool {
		return slices.Equal(got[start:end], input[start:end])
	}
	if !all(pool, len(got), same) {
		return errors.WithStack(ErrNotPermutation)
	}
	return nil
}

func all(pool *workerpool.Pool, n int, pred func(start, end int) bool) bool {
	if pool == nil {
		return pred(0, n)
	}
	return pool.All(n, pred)
}
