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

package utils

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	. "gopkg.in/check.v1"
)

func TestUtils(t *testing.T) { TestingT(t) }

type LoggingSuite struct{}

var _ = Suite(&LoggingSuite{})

func (s *LoggingSuite) TestHookWritesEntries(c *C) {
	path := filepath.Join(c.MkDir(), "test.log")
	logger := log.New()
	logger.SetLevel(log.DebugLevel)
	logger.AddHook(&Hook{path: path})

	logger.WithField("elements", 11).Debug("Sorted sequence.")
	logger.Warn("Second entry.")

	data, err := os.ReadFile(path)
	c.Assert(err, IsNil)
	c.Assert(string(data), Matches, `(?s).*Sorted sequence\..*elements=11.*Second entry\..*`)
}

func (s *LoggingSuite) TestHookIgnoresFileErrors(c *C) {
	hook := &Hook{path: filepath.Join(c.MkDir(), "missing", "test.log")}
	c.Assert(hook.Fire(log.NewEntry(log.New())), IsNil)
}
