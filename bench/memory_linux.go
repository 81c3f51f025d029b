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

//go:build linux

package bench

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

const statmPath = "/proc/self/statm"

// rssSampler reads the current resident page count from /proc/self/statm.
type rssSampler struct{}

func (rssSampler) ResidentBytes() (uint64, error) {
	b, err := os.ReadFile(statmPath)
	if err != nil {
		return 0, errors.Wrap(err, "read resident memory")
	}
	return parseStatm(string(b), unix.Getpagesize())
}

// parseStatm returns the resident field (second column) in bytes.
func parseStatm(s string, pageSize int) (uint64, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, errors.Newf("malformed statm %q", s)
	}
	pages, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "malformed statm resident field %q", fields[1])
	}
	return pages * uint64(pageSize), nil
}
