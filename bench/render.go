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
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
)

// Output formats accepted by Render.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Formats returns every output format.
func Formats() []string {
	return []string{FormatTable, FormatJSON, FormatCSV}
}

// ParseFormat validates an output format name.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	switch f {
	case FormatTable, FormatJSON, FormatCSV:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

var columns = []string{
	"algorithm", "size", "pattern", "round",
	"elapsed_ms", "mem_before_kb", "mem_after_kb", "mem_delta_kb", "verified",
}

// Render writes rep to w in the given format.
func Render(w io.Writer, rep Report, format string) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rep), "encode json report")
	case FormatCSV:
		return renderCSV(w, rep)
	default:
		return renderTable(w, rep)
	}
}

func row(r Result) []string {
	return []string{
		r.Algorithm,
		strconv.Itoa(r.Size),
		string(r.Pattern),
		strconv.Itoa(r.Round),
		strconv.FormatFloat(millis(r.Elapsed), 'f', 3, 64),
		strconv.FormatUint(kb(r.MemBefore), 10),
		strconv.FormatUint(kb(r.MemAfter), 10),
		strconv.FormatInt(kb(r.MemDelta), 10),
		strconv.FormatBool(r.Verified),
	}
}

func renderTable(w io.Writer, rep Report) error {
	if _, err := fmt.Fprintf(w, "# %s\n", rep.Platform); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = strings.ToUpper(c)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")
	for _, r := range rep.Results {
		fmt.Fprintln(tw, strings.Join(row(r), "\t")+"\t")
	}
	return errors.Wrap(tw.Flush(), "write table")
}

func renderCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, r := range rep.Results {
		if err := cw.Write(row(r)); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
