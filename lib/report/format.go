/*
Copyright 2020 Gravitational, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nyhm/CPP09/lib/constants"

	"github.com/dustin/go-humanize"
	"github.com/ghodss/yaml"
	"github.com/gravitational/trace"
	"github.com/olekukonko/tablewriter"
)

// Write renders the report to w in the specified format
func Write(w io.Writer, report Report, format constants.Format) error {
	switch format {
	case constants.EncodingText:
		return trace.Wrap(WriteText(w, report))
	case constants.EncodingTable:
		return trace.Wrap(WriteTable(w, report))
	case constants.EncodingJSON:
		bytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return trace.Wrap(err)
		}
		_, err = fmt.Fprintln(w, string(bytes))
		return trace.Wrap(err)
	case constants.EncodingYAML:
		bytes, err := yaml.Marshal(report)
		if err != nil {
			return trace.Wrap(err)
		}
		_, err = w.Write(bytes)
		return trace.Wrap(err)
	}
	return trace.BadParameter("unsupported output format %q, supported are: %v",
		string(format), constants.OutputFormats)
}

// WriteText renders the report as the sequence before and after sorting
// followed by one timing line per representation
func WriteText(w io.Writer, report Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Before: %v\n", join(report.Before))
	fmt.Fprintf(&b, "After: %v\n", join(report.After))
	for _, timing := range report.Timings {
		fmt.Fprintf(&b, "Time to process a range of %v elements with %v : %v us\n",
			timing.Elements, timing.Container, formatMicroseconds(timing.Microseconds()))
	}
	_, err := io.WriteString(w, b.String())
	return trace.Wrap(err)
}

// WriteTable renders the report timings as a table
func WriteTable(w io.Writer, report Report) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Container", "Elements", "Time (us)", "Comparisons", "Insertions", "Depth"})
	var data [][]string
	for _, timing := range report.Timings {
		data = append(data, []string{
			timing.Container,
			humanize.Comma(int64(timing.Elements)),
			formatMicroseconds(timing.Microseconds()),
			humanize.Comma(int64(timing.Stats.Comparisons)),
			humanize.Comma(int64(timing.Stats.Insertions)),
			strconv.Itoa(timing.Stats.Depth),
		})
	}
	table.AppendBulk(data)
	table.Render()
	return nil
}

func formatMicroseconds(us float64) string {
	return strconv.FormatFloat(us, 'f', 5, 64)
}

func join(values []int) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strconv.Itoa(v))
	}
	return strings.Join(out, " ")
}
