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

package exchange

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nyhm/CPP09/lib/defaults"

	"github.com/gravitational/trace"
	"github.com/shopspring/decimal"
)

// ParseDate parses a YYYY-MM-DD calendar date within the supported years
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(defaults.ExchangeDateLayout, s)
	if err != nil {
		return time.Time{}, badInput(s)
	}
	if date.Year() < defaults.MinExchangeYear || date.Year() > defaults.MaxExchangeYear {
		return time.Time{}, badInput(s)
	}
	return date, nil
}

// ParseValue parses a bitcoin amount between 0 and defaults.MaxExchangeValue
func ParseValue(s string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, badInput(s)
	}
	if value.IsNegative() {
		return decimal.Zero, trace.BadParameter("not a positive number.")
	}
	if value.GreaterThan(decimal.NewFromInt(defaults.MaxExchangeValue)) {
		return decimal.Zero, trace.BadParameter("too large a number.")
	}
	return value, nil
}

// Conversion is a bitcoin amount converted at the rate of a given date
type Conversion struct {
	// Date is the requested date
	Date time.Time
	// Amount is the bitcoin amount
	Amount decimal.Decimal
	// Rate is the exchange rate used
	Rate Rate
}

// Result returns the value of the amount at the rate
func (r Conversion) Result() decimal.Decimal {
	return r.Amount.Mul(r.Rate.Value)
}

// String formats the conversion as "date => amount = result"
func (r Conversion) String() string {
	return fmt.Sprintf("%v => %v = %v", r.Date.Format(defaults.ExchangeDateLayout),
		r.Amount, r.Result())
}

// Convert parses a single "date | value" input line and converts the amount
func (r *Database) Convert(line string) (*Conversion, error) {
	date, value, ok := strings.Cut(line, defaults.ExchangeInputSeparator)
	if !ok {
		return nil, badInput(line)
	}
	day, err := ParseDate(strings.Trim(date, " \t"))
	if err != nil {
		return nil, err
	}
	amount, err := ParseValue(strings.Trim(value, " \t"))
	if err != nil {
		return nil, err
	}
	rate, err := r.Lookup(day)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return &Conversion{Date: day, Amount: amount, Rate: *rate}, nil
}

// Process converts every line of the input file. The first line is a header
// and is skipped. Conversions are written to out, and lines that cannot be
// converted are reported to errOut without stopping the processing
func (r *Database) Process(in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	for line := 0; scanner.Scan(); line++ {
		if line == 0 {
			continue
		}
		conversion, err := r.Convert(scanner.Text())
		if err != nil {
			log.WithError(err).Debugf("Failed to convert line %v.", line+1)
			if _, err := fmt.Fprintf(errOut, "Error: %v\n", trace.UserMessage(err)); err != nil {
				return trace.Wrap(err)
			}
			continue
		}
		if _, err := fmt.Fprintln(out, conversion.String()); err != nil {
			return trace.Wrap(err)
		}
	}
	return trace.Wrap(scanner.Err())
}

func badInput(s string) error {
	return trace.BadParameter("bad input => %v", s)
}
