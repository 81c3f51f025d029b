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

//go:build unix && !linux

package bench

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// rssSampler reports the peak resident set size from getrusage. There is no
// portable current-RSS query here, so deltas only show growth.
type rssSampler struct{}

func (rssSampler) ResidentBytes() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, errors.Wrap(err, "getrusage")
	}
	maxrss := uint64(ru.Maxrss)
	// darwin reports bytes, the BSDs and others kilobytes.
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return maxrss, nil
	}
	return maxrss * 1024, nil
}
