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
)

// Pattern is the shape of a generated input array.
type Pattern string

const (
	// PatternRandom draws every value uniformly from [1, n).
	PatternRandom Pattern = "random"
	// PatternSorted is 1, 2, ..., n.
	PatternSorted Pattern = "sorted"
	// PatternReversed is n, n-1, ..., 1.
	PatternReversed Pattern = "reversed"
	// PatternEqual is n copies of 1.
	PatternEqual Pattern = "equal"
)

// Patterns returns every known pattern.
func Patterns() []Pattern {
	return []Pattern{PatternRandom, PatternSorted, PatternReversed, PatternEqual}
}

// ParsePattern parses a pattern name, case-insensitively.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PatternRandom, PatternSorted, PatternReversed, PatternEqual:
		return p, nil
	case "reverse":
		return PatternReversed, nil
	}
	return "", errors.Wrapf(ErrUnknownPattern, "%q", s)
}

// ParsePatterns parses every name in names, keeping order.
func ParsePatterns(names []string) ([]Pattern, error) {
	out := make([]Pattern, 0, len(names))
	for _, name := range names {
		p, err := ParsePattern(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
