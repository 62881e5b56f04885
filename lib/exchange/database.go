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

// Package exchange converts bitcoin amounts to their value on a given date
// using a database of historical exchange rates.
package exchange

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/nyhm/CPP09/lib/constants"
	"github.com/nyhm/CPP09/lib/defaults"

	"github.com/google/btree"
	"github.com/gravitational/trace"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField(trace.Component, constants.ComponentExchange)

// Rate is the exchange rate in effect starting from the specified date
type Rate struct {
	// Date is the day the rate was recorded
	Date time.Time
	// Value is the price of one bitcoin
	Value decimal.Decimal
}

// Database is an in-memory index of exchange rates ordered by date
type Database struct {
	rates *btree.BTreeG[Rate]
}

// NewDatabase returns a database holding the specified rates.
// A later rate for the same date replaces the earlier one
func NewDatabase(rates ...Rate) *Database {
	db := &Database{
		rates: btree.NewG(defaults.BTreeDegree, func(a, b Rate) bool {
			return a.Date.Before(b.Date)
		}),
	}
	for _, rate := range rates {
		db.rates.ReplaceOrInsert(rate)
	}
	return db
}

// Load reads the exchange rate database in CSV format.
//
// The first line is a header and is skipped. Every other line is
// date,rate; lines that do not parse are skipped
func Load(r io.Reader) (*Database, error) {
	db := NewDatabase()
	scanner := bufio.NewScanner(r)
	for line := 0; scanner.Scan(); line++ {
		if line == 0 {
			continue
		}
		rate, err := parseRate(scanner.Text())
		if err != nil {
			log.WithError(err).Debugf("Skip line %v.", line+1)
			continue
		}
		db.rates.ReplaceOrInsert(*rate)
	}
	if err := scanner.Err(); err != nil {
		return nil, trace.Wrap(err)
	}
	if db.Len() == 0 {
		return nil, trace.NotFound("exchange rate database is empty")
	}
	log.Debugf("Loaded %v exchange rates.", db.Len())
	return db, nil
}

// Len returns the number of rates in the database
func (r *Database) Len() int {
	return r.rates.Len()
}

// Lookup returns the rate recorded on the specified date or, if there is
// none, on the closest earlier date. Dates before the first recorded rate
// resolve to the first rate
func (r *Database) Lookup(date time.Time) (*Rate, error) {
	var found *Rate
	r.rates.DescendLessOrEqual(Rate{Date: date}, func(rate Rate) bool {
		found = &rate
		return false
	})
	if found != nil {
		return found, nil
	}
	first, ok := r.rates.Min()
	if !ok {
		return nil, trace.NotFound("no exchange rate for %v", date.Format(defaults.ExchangeDateLayout))
	}
	return &first, nil
}

func parseRate(line string) (*Rate, error) {
	date, value, ok := strings.Cut(line, string(defaults.ExchangeDatabaseSeparator))
	if !ok {
		return nil, trace.BadParameter("expected date%crate, got %q",
			defaults.ExchangeDatabaseSeparator, line)
	}
	day, err := time.Parse(defaults.ExchangeDateLayout, strings.TrimSpace(date))
	if err != nil {
		return nil, trace.Wrap(err)
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return &Rate{Date: day, Value: rate}, nil
}
