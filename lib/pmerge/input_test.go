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

package pmerge

import (
	"github.com/gravitational/trace"
	"gopkg.in/check.v1"
)

type InputSuite struct{}

var _ = check.Suite(&InputSuite{})

func (s *InputSuite) TestParseArgs(c *check.C) {
	values, err := ParseArgs([]string{"3", "5", "9", "7", "4", "5"})
	c.Assert(err, check.IsNil)
	c.Assert(values, check.DeepEquals, []int{3, 5, 9, 7, 4, 5})

	values, err = ParseArgs([]string{"2147483647", "007"})
	c.Assert(err, check.IsNil)
	c.Assert(values, check.DeepEquals, []int{2147483647, 7})
}

func (s *InputSuite) TestRejectsInvalidArgs(c *check.C) {
	for _, args := range [][]string{
		nil,
		{""},
		{"1", "-1"},
		{"+4"},
		{"0"},
		{"000"},
		{"1.5"},
		{"12 3"},
		{"abc"},
		{"2147483648"},
		{"99999999999999999999999"},
	} {
		_, err := ParseArgs(args)
		c.Assert(err, check.NotNil, check.Commentf("%q", args))
		c.Assert(trace.IsBadParameter(err), check.Equals, true, check.Commentf("%q: %v", args, err))
	}
}
