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

// Package rpn evaluates arithmetic expressions written in reverse polish
// notation with single-digit operands.
package rpn

import (
	"strings"

	"github.com/nyhm/CPP09/lib/constants"
	"github.com/nyhm/CPP09/lib/sequence"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField(trace.Component, constants.ComponentRPN)

// Evaluate computes the value of the expression.
//
// Every digit is a separate operand, operators are + - * and / with integer
// division, spaces are ignored. The expression must leave exactly one value
// on the stack
func Evaluate(expr string) (int, error) {
	if strings.TrimLeft(expr, " ") == "" {
		return 0, trace.BadParameter("empty expression")
	}
	stack := &sequence.Deque[int]{}
	for i := 0; i < len(expr); i++ {
		token := expr[i]
		switch {
		case token == ' ':
		case token >= '0' && token <= '9':
			stack.Append(int(token - '0'))
		case isOperator(token):
			rhs, ok := stack.PopBack()
			if !ok {
				return 0, trace.BadParameter("missing operands for %q at position %v", token, i)
			}
			lhs, ok := stack.PopBack()
			if !ok {
				return 0, trace.BadParameter("missing operand for %q at position %v", token, i)
			}
			result, err := apply(token, lhs, rhs)
			if err != nil {
				return 0, trace.Wrap(err)
			}
			stack.Append(result)
		default:
			return 0, trace.BadParameter("invalid token %q at position %v", token, i)
		}
	}
	if stack.Len() != 1 {
		return 0, trace.BadParameter("expression leaves %v values on the stack, expected one",
			stack.Len())
	}
	result := stack.At(0)
	log.WithField("expression", expr).Debugf("Evaluated to %v.", result)
	return result, nil
}

func isOperator(token byte) bool {
	return strings.IndexByte("+-*/", token) != -1
}

func apply(operator byte, lhs, rhs int) (int, error) {
	switch operator {
	case '+':
		return lhs + rhs, nil
	case '-':
		return lhs - rhs, nil
	case '*':
		return lhs * rhs, nil
	case '/':
		if rhs == 0 {
			return 0, trace.BadParameter("division by zero")
		}
		return lhs / rhs, nil
	}
	return 0, trace.BadParameter("unsupported operator %q", operator)
}
