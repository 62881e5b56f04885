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

package main

import (
	"os"

	"github.com/nyhm/CPP09/lib/utils"
	"github.com/nyhm/CPP09/tool/btc/cli"
	"github.com/nyhm/CPP09/tool/common"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	utils.InitLogger(log.WarnLevel)
	app := kingpin.New("btc", "Convert bitcoin amounts using historical exchange rates.")
	btc := cli.RegisterCommands(app)
	if err := common.ProcessRunError(cli.Run(btc, os.Args[1:])); err != nil {
		log.Debug(trace.DebugReport(err))
		common.PrintError(err)
		os.Exit(1)
	}
}
