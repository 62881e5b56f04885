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

// Package report sorts the same input with both sequence representations,
// timing every sort, and renders the result for the console.
package report

import (
	"slices"
	"time"

	"github.com/nyhm/CPP09/lib/constants"
	"github.com/nyhm/CPP09/lib/pmerge"
	"github.com/nyhm/CPP09/lib/sequence"

	"github.com/gravitational/trace"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Config defines the sort report configuration
type Config struct {
	// Values is the input sequence
	Values []int
	// Threshold is the insertion sort threshold of the sorter.
	// Defaults to defaults.InsertionSortThreshold
	Threshold int
	// Clock measures sort duration, if omitted, system time is used
	Clock clockwork.Clock
	// FieldLogger is the logger
	logrus.FieldLogger
}

// CheckAndSetDefaults validates the configuration and sets default values
func (r *Config) CheckAndSetDefaults() error {
	if r.Threshold < 0 {
		return trace.BadParameter("insertion sort threshold cannot be negative: %v", r.Threshold)
	}
	if r.Clock == nil {
		r.Clock = clockwork.NewRealClock()
	}
	if r.FieldLogger == nil {
		r.FieldLogger = logrus.WithField(trace.Component, constants.ComponentReport)
	}
	return nil
}

// Report describes the outcome of sorting the input with every
// sequence representation
type Report struct {
	// Before is the input sequence
	Before []int `json:"before"`
	// After is the sorted sequence
	After []int `json:"after"`
	// Timings lists sort measurements, one per representation
	Timings []Timing `json:"timings"`
}

// Timing is a single sort measurement
type Timing struct {
	// Container names the sequence representation
	Container string `json:"container"`
	// Elements is the number of sorted elements
	Elements int `json:"elements"`
	// Duration is the wall-clock time spent sorting
	Duration time.Duration `json:"duration"`
	// Stats describes the work done by the sorter
	Stats pmerge.Stats `json:"stats"`
}

// Microseconds returns the sort duration in microseconds
func (r Timing) Microseconds() float64 {
	return float64(r.Duration) / float64(time.Microsecond)
}

// Run sorts independent copies of the configured values using the
// contiguous and the double-ended queue representations and verifies
// that both produce the same output
func Run(config Config) (*Report, error) {
	if err := config.CheckAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err)
	}
	sorter, err := pmerge.New[int](pmerge.Config{
		Threshold:   config.Threshold,
		FieldLogger: config.FieldLogger,
	})
	if err != nil {
		return nil, trace.Wrap(err)
	}
	vector := sequence.NewSlice(config.Values...)
	deque := sequence.NewDeque(config.Values...)
	timings := []Timing{
		measure(config.Clock, sorter, constants.ContainerVector, vector),
		measure(config.Clock, sorter, constants.ContainerDeque, deque),
	}
	after := vector.Items()
	if fromDeque := sequence.Values[int](deque); !slices.Equal(after, fromDeque) {
		return nil, trace.CompareFailed("sequence representations disagree: %v != %v",
			after, fromDeque)
	}
	for _, timing := range timings {
		config.WithFields(logrus.Fields{
			"container": timing.Container,
			"elements":  timing.Elements,
			"duration":  timing.Duration,
		}).Info("Sorted.")
	}
	return &Report{
		Before:  slices.Clone(config.Values),
		After:   after,
		Timings: timings,
	}, nil
}

func measure(clock clockwork.Clock, sorter *pmerge.Sorter[int], container string, seq sequence.Sequence[int]) Timing {
	start := clock.Now()
	stats := sorter.Sort(seq)
	end := clock.Now()
	return Timing{
		Container: container,
		Elements:  seq.Len(),
		Duration:  end.Sub(start),
		Stats:     stats,
	}
}
