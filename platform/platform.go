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

// Package platform describes the machine a benchmark ran on.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Info is the header printed above benchmark results.
type Info struct {
	GOOS      string   `json:"goos"`
	GOARCH    string   `json:"goarch"`
	NumCPU    int      `json:"num_cpu"`
	GoVersion string   `json:"go_version"`
	Features  []string `json:"features,omitempty"`
}

// Describe returns the platform description for the current process.
// Set SORTBENCH_NO_CPU_FEATURES to leave Features empty, which keeps
// golden output stable across machines.
func Describe() Info {
	info := Info{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}
	if !noFeaturesEnv() {
		info.Features = cpuFeatures()
	}
	return info
}

// String renders Info on a single line.
func (i Info) String() string {
	s := fmt.Sprintf("%s/%s, %d CPUs, %s", i.GOOS, i.GOARCH, i.NumCPU, i.GoVersion)
	if len(i.Features) > 0 {
		s += " [" + strings.Join(i.Features, " ") + "]"
	}
	return s
}

func noFeaturesEnv() bool {
	val := os.Getenv("SORTBENCH_NO_CPU_FEATURES")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
