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
	"os"

	"github.com/nyhm/CPP09/lib/defaults"
	"github.com/nyhm/CPP09/lib/exchange"
	"github.com/nyhm/CPP09/lib/utils"
	"github.com/nyhm/CPP09/tool/common"

	"github.com/gravitational/trace"
	"github.com/gravitational/version"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Application represents the command-line "btc" application
type Application struct {
	*kingpin.Application
	// Debug allows to run the command in debug mode
	Debug *bool
	// Database is the path to the exchange rate database
	Database *string
	// Input is the path to the file with amounts to convert
	Input *string
	// Stdout receives the conversions
	Stdout io.Writer
	// Stderr receives errors about individual input lines
	Stderr io.Writer
}

// RegisterCommands registers all btc tool flags and arguments
func RegisterCommands(app *kingpin.Application) *Application {
	g := &Application{
		Application: app,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
	app.Version(version.Get().Version)
	g.Debug = app.Flag("debug", "Enable debug mode.").Bool()
	g.Database = app.Flag("db", "Exchange rate database in CSV format: date,exchange_rate.").
		Default(defaults.ExchangeDatabaseFile).Envar(defaults.ExchangeDatabaseEnv).String()
	g.Input = app.Arg("input", `File with "date | value" lines, or - for stdin.`).Required().String()
	return g
}

// Run parses CLI arguments and converts every line of the input file
func Run(g *Application, args []string) error {
	if _, err := g.Parse(args); err != nil {
		return trace.Wrap(err)
	}
	trace.SetDebug(*g.Debug)
	if *g.Debug {
		utils.InitLogger(logrus.DebugLevel)
	}
	db, err := loadDatabase(*g.Database)
	if err != nil {
		return trace.Wrap(err)
	}
	in, err := common.GetReader(*g.Input)
	if err != nil {
		return trace.Wrap(err)
	}
	defer in.Close()
	return trace.Wrap(db.Process(in, g.Stdout, g.Stderr))
}

func loadDatabase(path string) (*exchange.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	defer f.Close()
	db, err := exchange.Load(f)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return db, nil
}
