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
	"os"
	"path/filepath"
	"testing"

	"github.com/gravitational/trace"
	"github.com/stretchr/testify/require"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestConvertsInputFile(t *testing.T) {
	dir := t.TempDir()
	db := writeFile(t, dir, "data.csv", "date,exchange_rate\n2011-01-03,0.3\n2011-01-09,0.32\n")
	input := writeFile(t, dir, "input.txt", "date | value\n2011-01-03 | 3\n2011-01-10 | 2\n2011-01-03 | 1001\n")

	var out, errOut bytes.Buffer
	app := RegisterCommands(kingpin.New("btc", ""))
	app.Stdout = &out
	app.Stderr = &errOut
	require.NoError(t, Run(app, []string{"--db", db, input}))
	require.Equal(t, "2011-01-03 => 3 = 0.9\n2011-01-10 => 2 = 0.64\n", out.String())
	require.Equal(t, "Error: too large a number.\n", errOut.String())
}

func TestMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	db := writeFile(t, dir, "data.csv", "date,exchange_rate\n2011-01-03,0.3\n")

	app := RegisterCommands(kingpin.New("btc", ""))
	err := Run(app, []string{"--db", db, filepath.Join(dir, "missing.txt")})
	require.Error(t, err)
	require.True(t, os.IsNotExist(trace.Unwrap(err)), "%v", err)
}

func TestEmptyDatabase(t *testing.T) {
	dir := t.TempDir()
	db := writeFile(t, dir, "data.csv", "date,exchange_rate\n")
	input := writeFile(t, dir, "input.txt", "date | value\n")

	app := RegisterCommands(kingpin.New("btc", ""))
	err := Run(app, []string{"--db", db, input})
	require.True(t, trace.IsNotFound(err), "%v", err)
}

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
