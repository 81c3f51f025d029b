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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajroetker/go-sortlab/sort"
	"github.com/ajroetker/go-sortlab/workerpool"
)

// fakeMemory returns successive values from samples.
type fakeMemory struct {
	samples []uint64
	calls   int
}

func (m *fakeMemory) ResidentBytes() (uint64, error) {
	v := m.samples[m.calls%len(m.samples)]
	m.calls++
	return v, nil
}

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestRunOne(t *testing.T) {
	mem := &fakeMemory{samples: []uint64{10 * 1024, 30 * 1024}}
	r := NewRunner(Options{Seed: 3, Verify: true, Memory: mem})
	r.now = fakeClock(5 * time.Millisecond)

	algo, ok := sort.Lookup("merge")
	require.True(t, ok)

	res, err := r.RunOne(algo, 500, PatternRandom)
	require.NoError(t, err)
	require.Equal(t, Result{
		Algorithm: "merge",
		Size:      500,
		Pattern:   PatternRandom,
		Seed:      3,
		Elapsed:   5 * time.Millisecond,
		MemBefore: 10 * 1024,
		MemAfter:  30 * 1024,
		MemDelta:  20 * 1024,
		Verified:  true,
	}, res)
	require.Equal(t, 2, mem.calls)
}

func TestRunPlan(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	core, logs := observer.New(zap.InfoLevel)
	r := NewRunner(Options{
		Seed:   10,
		Verify: true,
		Memory: &fakeMemory{samples: []uint64{4096}},
		Pool:   pool,
		Logger: zap.New(core),
	})

	plan := Plan{
		Algorithms: sort.Algorithms(),
		Sizes:      []int{0, 1, 37, 2000},
		Patterns:   Patterns(),
		Repeat:     2,
	}
	results, err := r.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, results, plan.Len())
	require.Equal(t, 5*4*4*2, plan.Len())
	require.Equal(t, plan.Len(), logs.FilterMessage("sort finished").Len())

	for _, res := range results {
		require.True(t, res.Verified, "%+v", res)
		require.Equal(t, uint64(10+res.Round), res.Seed)
		require.Zero(t, res.MemDelta)
	}
	require.Equal(t, "bubble", results[0].Algorithm)
	require.Equal(t, "merge", results[4].Algorithm)
	require.Equal(t, 1, results[len(results)-1].Round)
}

func TestRunDefaultsPattern(t *testing.T) {
	r := NewRunner(Options{Memory: &fakeMemory{samples: []uint64{1}}})
	plan := Plan{Algorithms: sort.Algorithms()[:1], Sizes: []int{8}}
	results, err := r.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, PatternRandom, results[0].Pattern)
	require.False(t, results[0].Verified)
}

func TestRunDetectsBrokenSort(t *testing.T) {
	r := NewRunner(Options{Verify: true, Memory: &fakeMemory{samples: []uint64{1}}})

	reverse := sort.Algorithm{Name: "reverse", Sort: func(data []int) {
		for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
			data[i], data[j] = data[j], data[i]
		}
	}}
	_, err := r.RunOne(reverse, 100, PatternSorted)
	require.ErrorIs(t, err, ErrNotSorted)

	zero := sort.Algorithm{Name: "zero", Sort: func(data []int) {
		for i := range data {
			data[i] = 0
		}
	}}
	_, err = r.RunOne(zero, 100, PatternRandom)
	require.ErrorIs(t, err, ErrNotPermutation)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	counting := sort.Algorithm{Name: "counting", Sort: func(data []int) {
		calls++
		if calls == 3 {
			cancel()
		}
	}}
	r := NewRunner(Options{Memory: &fakeMemory{samples: []uint64{1}}})
	results, err := r.Run(ctx, Plan{
		Algorithms: []sort.Algorithm{counting},
		Sizes:      []int{1, 2, 3, 4, 5},
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 3)
	require.Equal(t, 3, calls)
}

func TestRunInvalidSize(t *testing.T) {
	r := NewRunner(Options{Memory: &fakeMemory{samples: []uint64{1}}})
	_, err := r.RunOne(sort.Algorithms()[0], -1, PatternRandom)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestRunUnknownPattern(t *testing.T) {
	r := NewRunner(Options{Memory: &fakeMemory{samples: []uint64{1}}})
	res, err := r.RunOne(sort.Algorithms()[0], 10, Pattern("zigzag"))
	require.ErrorIs(t, err, ErrUnknownPattern)
	require.Empty(t, res.Pattern)

	_, err = r.Run(context.Background(), Plan{
		Algorithms: sort.Algorithms()[:1],
		Sizes:      []int{10},
		Patterns:   []Pattern{PatternSorted, "zigzag"},
	})
	require.ErrorIs(t, err, ErrUnknownPattern)
}

func TestSameInputAcrossAlgorithms(t *testing.T) {
	var inputs [][]int
	capture := func(name string) sort.Algorithm {
		return sort.Algorithm{Name: name, Sort: func(data []int) {
			inputs = append(inputs, append([]int(nil), data...))
		}}
	}
	r := NewRunner(Options{Seed: 99, Memory: &fakeMemory{samples: []uint64{1}}})
	_, err := r.Run(context.Background(), Plan{
		Algorithms: []sort.Algorithm{capture("a"), capture("b")},
		Sizes:      []int{64},
	})
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	require.Equal(t, inputs[0], inputs[1])
}

func TestResolveAlgorithms(t *testing.T) {
	algos, err := ResolveAlgorithms(nil)
	require.NoError(t, err)
	require.Len(t, algos, 5)

	algos, err = ResolveAlgorithms([]string{"shell", "ShellSort", "bubble"})
	require.NoError(t, err)
	require.Equal(t, []string{"shell", "bubble"}, []string{algos[0].Name, algos[1].Name})
	require.Len(t, algos, 2)

	algos, err = ResolveAlgorithms([]string{"merge", "all"})
	require.NoError(t, err)
	require.Len(t, algos, 5)
	require.Equal(t, "merge", algos[0].Name)

	_, err = ResolveAlgorithms([]string{"quick"})
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}
