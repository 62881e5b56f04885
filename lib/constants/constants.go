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

package constants

import (
	"github.com/gravitational/trace"
)

const (
	// ComponentPmerge is for the merge-insertion sorter
	ComponentPmerge = "pmerge"

	// ComponentReport is for the sort timing driver
	ComponentReport = "report"

	// ComponentRPN is for the reverse polish notation calculator
	ComponentRPN = "rpn"

	// ComponentExchange is for the bitcoin exchange rate database
	ComponentExchange = "exchange"

	// ComponentCLI is for command line tools
	ComponentCLI = "cli"

	// ContainerVector names the contiguous sequence representation
	// in timing reports
	ContainerVector = "std::vector"

	// ContainerDeque names the double-ended queue sequence representation
	// in timing reports
	ContainerDeque = "std::deque"
)

var (
	// EncodingJSON is for the JSON encoding format
	EncodingJSON Format = "json"
	// EncodingText is for the plain-text encoding format
	EncodingText Format = "text"
	// EncodingTable is for the tabular text format
	EncodingTable Format = "table"
	// EncodingYAML is for the YAML encoding format
	EncodingYAML Format = "yaml"
	// OutputFormats is a list of recognized output formats
	OutputFormats = []Format{
		EncodingText,
		EncodingTable,
		EncodingJSON,
		EncodingYAML,
	}
)

// Format is the type for supported output formats
type Format string

// Set sets the format value
func (f *Format) Set(v string) error {
	format := Format(v)
	if err := format.Check(); err != nil {
		return trace.Wrap(err)
	}
	*f = format
	return nil
}

// String returns the format string representation
func (f *Format) String() string {
	return string(*f)
}

// Check makes sure the format is one of the recognized output formats
func (f Format) Check() error {
	for _, format := range OutputFormats {
		if f == format {
			return nil
		}
	}
	return trace.BadParameter("unsupported output format %q, supported are: %v",
		string(f), OutputFormats)
}
