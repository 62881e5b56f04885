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

package defaults

import (
	"math"

	"github.com/nyhm/CPP09/lib/constants"
)

const (
	// InsertionSortThreshold is the sequence length at or below which
	// the merge-insertion sorter falls back to a plain insertion sort
	InsertionSortThreshold = 10

	// MaxInputValue is the largest number accepted on the command line
	MaxInputValue = math.MaxInt32

	// ExchangeDatabaseFile is the default exchange rate database file name
	ExchangeDatabaseFile = "data.csv"

	// ExchangeDateLayout is the layout of dates in the exchange rate
	// database and input files
	ExchangeDateLayout = "2006-01-02"

	// MinExchangeYear is the earliest year accepted in exchange input files
	MinExchangeYear = 2009

	// MaxExchangeYear is the latest year accepted in exchange input files
	MaxExchangeYear = 2022

	// MaxExchangeValue is the largest bitcoin amount accepted in
	// exchange input files
	MaxExchangeValue = 1000

	// ExchangeDatabaseSeparator separates date and rate in the database file
	ExchangeDatabaseSeparator = ','

	// ExchangeInputSeparator separates date and value in exchange input files
	ExchangeInputSeparator = "|"

	// BTreeDegree is the degree of the in-memory exchange rate index
	BTreeDegree = 32

	// SharedReadWriteMask is a mask for a shared file with read/write access for everyone
	SharedReadWriteMask = 0666

	// ThresholdEnv overrides the insertion sort threshold of pmergeme
	ThresholdEnv = "PMERGEME_THRESHOLD"

	// ExchangeDatabaseEnv overrides the exchange rate database location of btc
	ExchangeDatabaseEnv = "BTC_DATABASE"
)

// OutputFormat is the default output format of command line tools
var OutputFormat = constants.EncodingText
