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

import "github.com/cockroachdb/errors"

var (
	ErrUnknownAlgorithm    = errors.New("unknown algorithm")
	ErrUnknownPattern      = errors.New("unknown input pattern")
	ErrUnknownMemorySource = errors.New("unknown memory source")
	ErrUnknownFormat       = errors.New("unknown output format")
	ErrInvalidSize         = errors.New("invalid array size")
	ErrDuplicateResult     = errors.New("duplicate result labels")

	// ErrNotSorted and ErrNotPermutation report a sort that returned a
	// wrong answer. They indicate a defect in the routine under test.
	ErrNotSorted      = errors.New("output is not sorted")
	ErrNotPermutation = errors.New("output is not a permutation of the input")
)
