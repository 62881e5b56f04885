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
	"io"

	"github.com/nyhm/CPP09/lib/constants"

	"gopkg.in/alecthomas/kingpin.v2"
)

// Application represents the command-line "pmergeme" application and
// contains definitions of all its flags and arguments
type Application struct {
	*kingpin.Application
	// Debug allows to run the command in debug mode
	Debug *bool
	// LogFile is the optional path to a file that receives all log entries
	LogFile *string
	// Threshold is the sequence length at or below which insertion
	// sort is used
	Threshold *int
	// Format is the output format
	Format *constants.Format
	// Numbers are the positive integers to sort
	Numbers *[]string
	// Stdout is where the report is written
	Stdout io.Writer
}
