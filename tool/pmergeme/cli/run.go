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
	"github.com/nyhm/CPP09/lib/constants"
	"github.com/nyhm/CPP09/lib/pmerge"
	"github.com/nyhm/CPP09/lib/report"
	"github.com/nyhm/CPP09/lib/utils"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField(trace.Component, constants.ComponentCLI)

// Run parses CLI arguments and sorts the numbers they name
func Run(g *Application, args []string) error {
	if _, err := g.Parse(args); err != nil {
		return trace.Wrap(err)
	}
	InitAndCheck(g)
	log.WithField("args", args).Debug("Start.")
	return sortNumbers(g)
}

// InitAndCheck initializes logging according to the provided flags
func InitAndCheck(g *Application) {
	trace.SetDebug(*g.Debug)
	level := logrus.WarnLevel
	if *g.Debug {
		level = logrus.DebugLevel
	}
	utils.InitLogger(level)
	if *g.LogFile != "" {
		utils.InitLogging(level, *g.LogFile)
	}
}

func sortNumbers(g *Application) error {
	values, err := pmerge.ParseArgs(*g.Numbers)
	if err != nil {
		return trace.Wrap(err)
	}
	result, err := report.Run(report.Config{
		Values:    values,
		Threshold: *g.Threshold,
	})
	if err != nil {
		return trace.Wrap(err)
	}
	return trace.Wrap(report.Write(g.Stdout, *result, *g.Format))
}
