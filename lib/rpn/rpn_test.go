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

package rpn

import (
	"testing"

	"github.com/gravitational/trace"
	. "gopkg.in/check.v1"
)

func TestRPN(t *testing.T) { TestingT(t) }

type RPNSuite struct{}

var _ = Suite(&RPNSuite{})

func (s *RPNSuite) TestEvaluate(c *C) {
	tcs := []struct {
		expr   string
		result int
	}{
		{expr: "8 9 * 9 - 9 - 9 - 4 - 1 +", result: 42},
		{expr: "7 7 * 7 -", result: 42},
		{expr: "1 2 * 2 / 2 * 2 4 - +", result: 0},
		{expr: "7 2 /", result: 3},
		{expr: "0 7 - 2 /", result: -3},
		{expr: "12+", result: 3},
		{expr: "  5  ", result: 5},
	}
	for _, tc := range tcs {
		result, err := Evaluate(tc.expr)
		c.Assert(err, IsNil, Commentf("%q", tc.expr))
		c.Assert(result, Equals, tc.result, Commentf("%q", tc.expr))
	}
}

func (s *RPNSuite) TestInvalidExpressions(c *C) {
	for _, expr := range []string{
		"",
		"   ",
		"(1 + 1)",
		"1 +",
		"+",
		"1 2",
		"3 0 /",
		"1 2 %",
		"1\t2 +",
	} {
		_, err := Evaluate(expr)
		c.Assert(err, NotNil, Commentf("%q", expr))
		c.Assert(trace.IsBadParameter(err), Equals, true, Commentf("%q: %v", expr, err))
	}
}
