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

// Package compare provides gocheck helpers to verify sorted sequences.
package compare

import (
	"fmt"
	"reflect"
	"runtime/debug"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/kylelemons/godebug/diff"
	check "gopkg.in/check.v1"
)

// DeepCompare uses gocheck DeepEquals but provides nice diff if things are not equal
func DeepCompare(c *check.C, a, b interface{}) {
	c.Assert(a, check.DeepEquals, b, check.Commentf("%v\nStack:\n%v\n", Diff(a, b), string(debug.Stack())))
}

// DeepEquals is a gocheck checker that provides a readable diff in case
// comparison fails.
var DeepEquals check.Checker = &deepEqualsChecker{
	&check.CheckerInfo{Name: "DeepEquals", Params: []string{"obtained", "expected"}},
}

// Check expects two items in params (obtained and expected) and compares them using reflection.
// If comparison fails, it returns a readable diff in error.
// Implements gocheck checker interface
func (checker *deepEqualsChecker) Check(params []interface{}, names []string) (result bool, error string) {
	result = reflect.DeepEqual(params[0], params[1])
	if !result {
		error = Diff(params[0], params[1])
	}
	return result, error
}

// IsSorted is a gocheck checker that verifies that an []int is in
// non-decreasing order
var IsSorted check.Checker = &sortedChecker{
	&check.CheckerInfo{Name: "IsSorted", Params: []string{"obtained"}},
}

// Check expects an []int in params and reports the first adjacent pair
// that is out of order
func (checker *sortedChecker) Check(params []interface{}, names []string) (result bool, error string) {
	values, ok := params[0].([]int)
	if !ok {
		return false, fmt.Sprintf("expected []int, got %T", params[0])
	}
	for i := 0; i+1 < len(values); i++ {
		if values[i] > values[i+1] {
			return false, fmt.Sprintf("out of order at %v: %v > %v", i, values[i], values[i+1])
		}
	}
	return true, ""
}

// PermutationOf is a gocheck checker that verifies that two []int hold
// the same multiset of values.
// Neither parameter is modified
func (checker *permutationChecker) Check(params []interface{}, names []string) (result bool, error string) {
	obtained, ok := params[0].([]int)
	if !ok {
		return false, fmt.Sprintf("expected []int, got %T", params[0])
	}
	expected, ok := params[1].([]int)
	if !ok {
		return false, fmt.Sprintf("expected []int, got %T", params[1])
	}
	obtained = sortedCopy(obtained)
	expected = sortedCopy(expected)
	result = reflect.DeepEqual(obtained, expected)
	if !result {
		error = Diff(obtained, expected)
	}
	return result, error
}

// PermutationOf compares two slices as multisets
var PermutationOf check.Checker = &permutationChecker{
	&check.CheckerInfo{Name: "PermutationOf", Params: []string{"obtained", "expected"}},
}

// Diff returns user friendly difference between two objects
func Diff(a, b interface{}) string {
	d := &spew.ConfigState{Indent: " ", DisableMethods: true, DisablePointerMethods: true, DisablePointerAddresses: true}
	return diff.Diff(d.Sdump(a), d.Sdump(b))
}

func sortedCopy(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	sort.Ints(out)
	return out
}

type deepEqualsChecker struct {
	*check.CheckerInfo
}

type sortedChecker struct {
	*check.CheckerInfo
}

type permutationChecker struct {
	*check.CheckerInfo
}
