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
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// Memory sources accepted by NewMemorySampler.
const (
	// MemoryRSS samples the resident set size of the process.
	MemoryRSS = "rss"
	// MemoryHeap samples the Go heap in use.
	MemoryHeap = "heap"
)

// MemorySampler is the resident-memory capability used around each run.
type MemorySampler interface {
	ResidentBytes() (uint64, error)
}

// NewMemorySampler returns the sampler for source ("rss" or "heap").
func NewMemorySampler(source string) (MemorySampler, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case MemoryRSS, "":
		return rssSampler{}, nil
	case MemoryHeap:
		return heapSampler{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownMemorySource, "%q", source)
}

// heapSampler reports HeapInuse. It stops the world briefly.
type heapSampler struct{}

func (heapSampler) ResidentBytes() (uint64, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapInuse, nil
}
