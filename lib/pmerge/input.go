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
	"strconv"

	"github.com/nyhm/CPP09/lib/defaults"

	"github.com/gravitational/trace"
)

// ParseArgs converts command line arguments into the sequence of positive
// integers to sort
func ParseArgs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, trace.BadParameter("expected at least one positive integer")
	}
	values := make([]int, 0, len(args))
	for _, arg := range args {
		value, err := ParseValue(arg)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		values = append(values, value)
	}
	return values, nil
}

// ParseValue parses a single positive integer made of decimal digits only.
// Signs, spaces and fractions are rejected
func ParseValue(arg string) (int, error) {
	if arg == "" {
		return 0, trace.BadParameter("empty argument")
	}
	for i := 0; i < len(arg); i++ {
		if arg[i] < '0' || arg[i] > '9' {
			return 0, trace.BadParameter("%q is not a positive integer", arg)
		}
	}
	value, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || value > defaults.MaxInputValue {
		return 0, trace.BadParameter("%q is out of range, maximum is %v",
			arg, defaults.MaxInputValue)
	}
	if value == 0 {
		return 0, trace.BadParameter("%q is not a positive integer", arg)
	}
	return int(value), nil
}
