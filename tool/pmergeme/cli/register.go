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
	"fmt"
	"os"
	"strconv"

	"github.com/nyhm/CPP09/lib/constants"
	"github.com/nyhm/CPP09/lib/defaults"
	"github.com/nyhm/CPP09/tool/common"

	"github.com/gravitational/version"
	"gopkg.in/alecthomas/kingpin.v2"
)

// RegisterCommands registers all pmergeme tool flags and arguments
func RegisterCommands(app *kingpin.Application) *Application {
	pmergeme := &Application{
		Application: app,
		Stdout:      os.Stdout,
	}

	app.Version(version.Get().Version)
	pmergeme.Debug = app.Flag("debug", "Enable debug mode.").Bool()
	pmergeme.LogFile = app.Flag("log-file", "Additionally write all log entries to this file.").String()
	pmergeme.Threshold = app.Flag("threshold", "Sequences of this length or shorter are sorted with insertion sort.").
		Default(strconv.Itoa(defaults.InsertionSortThreshold)).Envar(defaults.ThresholdEnv).Int()
	pmergeme.Format = common.Format(app.Flag("format", fmt.Sprintf("Output format: %v.", constants.OutputFormats)).
		Short('o').Default(string(defaults.OutputFormat)))
	pmergeme.Numbers = app.Arg("numbers", "Positive integers to sort.").Required().Strings()

	return pmergeme
}
