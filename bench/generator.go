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
	"golang.org/x/exp/rand"

	"github.com/ajroetker/go-sortlab/workerpool"
)

// generateBatch is the number of elements filled from one sub-seeded source.
// Fixed so that output does not depend on the number of workers.
const generateBatch = 1 << 16

// Source is the pseudo-random capability the generator draws from.
type Source interface {
	// Intn returns a value in [0, n). n > 0.
	Intn(n int) int
}

// Generator builds benchmark inputs. The same seed always yields the same
// arrays.
type Generator struct {
	seed      uint64
	pool      *workerpool.Pool
	newSource func(seed uint64) Source
}

// NewGenerator returns a generator seeded with seed. pool may be nil, in
// which case generation runs on the calling goroutine.
func NewGenerator(seed uint64, pool *workerpool.Pool) *Generator {
	return &Generator{
		seed: seed,
		pool: pool,
		newSource: func(seed uint64) Source {
			return rand.New(rand.NewSource(seed))
		},
	}
}

// Generate returns a new array of n values shaped by p.
func (g *Generator) Generate(n int, p Pattern) []int {
	data := make([]int, n)
	switch p {
	case PatternSorted:
		g.forBatches(n, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = i + 1
			}
		})
	case PatternReversed:
		g.forBatches(n, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = n - i
			}
		})
	case PatternEqual:
		g.forBatches(n, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = 1
			}
		})
	default:
		g.fillRandom(data)
	}
	return data
}

// fillRandom draws from [1, n). For n <= 1 that range is empty and the
// lower bound is used.
func (g *Generator) fillRandom(data []int) {
	n := len(data)
	span := n - 1
	g.forBatches(n, func(start, end int) {
		if span <= 0 {
			for i := start; i < end; i++ {
				data[i] = 1
			}
			return
		}
		src := g.newSource(subSeed(g.seed, start/generateBatch))
		for i := start; i < end; i++ {
			data[i] = 1 + src.Intn(span)
		}
	})
}

func (g *Generator) forBatches(n int, fn func(start, end int)) {
	if g.pool == nil {
		for start := 0; start < n; start += generateBatch {
			fn(start, min(start+generateBatch, n))
		}
		return
	}
	g.pool.ParallelForBatched(n, generateBatch, fn)
}

// subSeed derives the seed of one batch with a splitmix64 step.
func subSeed(seed uint64, batch int) uint64 {
	z := seed + uint64(batch+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
