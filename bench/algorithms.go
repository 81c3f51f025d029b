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
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-sortlab/sort"
)

// AllAlgorithms selects every registered algorithm in ResolveAlgorithms.
const AllAlgorithms = "all"

// ResolveAlgorithms maps names to algorithms. "all" (or an empty list)
// selects every algorithm; duplicates are dropped, first occurrence wins.
func ResolveAlgorithms(names []string) ([]sort.Algorithm, error) {
	if len(names) == 0 {
		return sort.Algorithms(), nil
	}
	var out []sort.Algorithm
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), AllAlgorithms) {
			out = append(out, sort.Algorithms()...)
			continue
		}
		algo, ok := sort.Lookup(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q (known: %s)", name, strings.Join(sort.Names(), ", "))
		}
		out = append(out, algo)
	}
	return lo.UniqBy(out, func(a sort.Algorithm) string { return a.Name }), nil
}
