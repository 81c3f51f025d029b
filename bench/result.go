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
	"time"

	"github.com/ajroetker/go-sortlab/platform"
)

// Result is the measurement of one sort call.
type Result struct {
	Algorithm string        `json:"algorithm"`
	Size      int           `json:"size"`
	Pattern   Pattern       `json:"pattern"`
	Round     int           `json:"round"`
	Seed      uint64        `json:"seed"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	MemBefore uint64        `json:"mem_before_bytes"`
	MemAfter  uint64        `json:"mem_after_bytes"`
	MemDelta  int64         `json:"mem_delta_bytes"`
	Verified  bool          `json:"verified"`
}

// Report is a set of results together with the machine they came from.
type Report struct {
	Platform platform.Info `json:"platform"`
	Results  []Result      `json:"results"`
}

// memDelta returns after-before as a signed value.
func memDelta(before, after uint64) int64 {
	if after >= before {
		return int64(after - before)
	}
	return -int64(before - after)
}

// kb converts bytes to whole kilobytes, truncating toward zero.
func kb[T uint64 | int64](b T) T {
	return b / 1024
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
