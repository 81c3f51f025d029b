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
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var promLabels = []string{"algorithm", "size", "pattern", "round"}

// WritePromTextfile writes the results as Prometheus gauges to path, in the
// text format read by the node_exporter textfile collector.
func WritePromTextfile(path string, results []Result) error {
	reg, err := promRegistry(results)
	if err != nil {
		return err
	}
	return errors.Wrapf(prometheus.WriteToTextfile(path, reg), "write %s", path)
}

func promRegistry(results []Result) (*prometheus.Registry, error) {
	elapsed := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "sortbench",
		Name:      "elapsed_seconds",
		Help:      "Wall-clock time of one sort call.",
	}, promLabels)
	delta := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "sortbench",
		Name:      "memory_delta_bytes",
		Help:      "Process memory after the sort call minus before.",
	}, promLabels)

	reg := prometheus.NewRegistry()
	if err := reg.Register(elapsed); err != nil {
		return nil, errors.Wrap(err, "register elapsed gauge")
	}
	if err := reg.Register(delta); err != nil {
		return nil, errors.Wrap(err, "register memory gauge")
	}

	seen := make(map[string]struct{}, len(results))
	for _, r := range results {
		key := fmt.Sprintf("%s/%d/%s/%d", r.Algorithm, r.Size, r.Pattern, r.Round)
		if _, ok := seen[key]; ok {
			return nil, errors.Wrapf(ErrDuplicateResult, "%s", key)
		}
		seen[key] = struct{}{}

		labels := prometheus.Labels{
			"algorithm": r.Algorithm,
			"size":      strconv.Itoa(r.Size),
			"pattern":   string(r.Pattern),
			"round":     strconv.Itoa(r.Round),
		}
		elapsed.With(labels).Set(r.Elapsed.Seconds())
		delta.With(labels).Set(float64(r.MemDelta))
	}
	return reg, nil
}
