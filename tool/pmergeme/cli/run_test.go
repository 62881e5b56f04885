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

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nyhm/CPP09/lib/report"

	"github.com/gravitational/trace"
	"github.com/stretchr/testify/require"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestSortsArguments(t *testing.T) {
	app, out := newTestApp()
	err := Run(app, []string{"3", "5", "9", "7", "4"})
	require.NoError(t, err)
	require.Regexp(t, `^Before: 3 5 9 7 4
After: 3 4 5 7 9
Time to process a range of 5 elements with std::vector : \d+\.\d{5} us
Time to process a range of 5 elements with std::deque : \d+\.\d{5} us
$`, out.String())
}

func TestStructuredOutput(t *testing.T) {
	app, out := newTestApp()
	err := Run(app, []string{"--format=json", "--threshold=1", "2", "1", "3"})
	require.NoError(t, err)

	var result report.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Equal(t, []int{2, 1, 3}, result.Before)
	require.Equal(t, []int{1, 2, 3}, result.After)
	require.Len(t, result.Timings, 2)
	require.Equal(t, 3, result.Timings[0].Stats.Depth)
}

func TestRejectsInvalidInput(t *testing.T) {
	for _, args := range [][]string{
		{"1", "abc"},
		{"0"},
		{"--", "-1"},
		{"--threshold=-1", "1"},
	} {
		app, out := newTestApp()
		err := Run(app, args)
		require.Error(t, err, "%q", args)
		require.True(t, trace.IsBadParameter(err), "%q: %v", args, err)
		require.Empty(t, out.String())
	}
}

func TestRejectsUnknownFormat(t *testing.T) {
	app, _ := newTestApp()
	err := Run(app, []string{"--format=xml", "1"})
	require.Error(t, err)
}

func TestRequiresNumbers(t *testing.T) {
	app, _ := newTestApp()
	err := Run(app, nil)
	require.Error(t, err)
}

func TestWritesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "pmergeme.log")
	app, _ := newTestApp()
	err := Run(app, []string{"--debug", "--log-file", logFile, "1", "2"})
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "Sorted")
}

func newTestApp() (*Application, *bytes.Buffer) {
	var out bytes.Buffer
	app := RegisterCommands(kingpin.New("pmergeme", ""))
	app.Stdout = &out
	return app, &out
}
