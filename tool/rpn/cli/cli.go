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
	"io"
	"os"

	"github.com/nyhm/CPP09/lib/rpn"
	"github.com/nyhm/CPP09/lib/utils"

	"github.com/gravitational/trace"
	"github.com/gravitational/version"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Application represents the command-line "rpn" application
type Application struct {
	*kingpin.Application
	// Debug allows to run the command in debug mode
	Debug *bool
	// Expression is the expression to evaluate
	Expression *string
	// Stdout is where the result is written
	Stdout io.Writer
}

// RegisterCommands registers all rpn tool flags and arguments
func RegisterCommands(app *kingpin.Application) *Application {
	g := &Application{
		Application: app,
		Stdout:      os.Stdout,
	}
	app.Version(version.Get().Version)
	g.Debug = app.Flag("debug", "Enable debug mode.").Bool()
	g.Expression = app.Arg("expression", `Expression to evaluate, e.g. "8 9 * 9 - 9 - 9 - 4 - 1 +".`).Required().String()
	return g
}

// Run parses CLI arguments and prints the value of the expression
func Run(g *Application, args []string) error {
	if _, err := g.Parse(args); err != nil {
		return trace.Wrap(err)
	}
	trace.SetDebug(*g.Debug)
	if *g.Debug {
		utils.InitLogger(logrus.DebugLevel)
	}
	result, err := rpn.Evaluate(*g.Expression)
	if err != nil {
		return trace.Wrap(err)
	}
	_, err = fmt.Fprintln(g.Stdout, result)
	return trace.Wrap(err)
}
