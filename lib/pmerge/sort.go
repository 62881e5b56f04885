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

// Package pmerge implements merge-insertion sort over any mutable
// random-access sequence.
//
// The sort pairs adjacent elements, recursively sorts the smaller element of
// every pair and then binary-inserts the larger ones left to right into the
// sorted chain. This is a simplification of the Ford-Johnson algorithm: the
// output is always sorted but the number of comparisons is that of a binary
// insertion sort over a recursively halved sequence rather than the optimal
// one achieved with the Jacobsthal insertion order.
package pmerge

import (
	"cmp"

	"github.com/nyhm/CPP09/lib/constants"
	"github.com/nyhm/CPP09/lib/defaults"
	"github.com/nyhm/CPP09/lib/sequence"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField(trace.Component, constants.ComponentPmerge)

// Sort sorts seq in place in non-decreasing order using the default
// insertion sort threshold
func Sort[T cmp.Ordered](seq sequence.Sequence[T]) {
	r := sortRun[T]{threshold: defaults.InsertionSortThreshold}
	r.sort(seq, 1)
}

// Config defines the sorter configuration
type Config struct {
	// Threshold is the sequence length at or below which insertion sort
	// is used instead of pairing and recursion.
	// Defaults to defaults.InsertionSortThreshold
	Threshold int
	// FieldLogger is the logger
	logrus.FieldLogger
}

// CheckAndSetDefaults validates the configuration and sets default values
func (r *Config) CheckAndSetDefaults() error {
	if r.Threshold < 0 {
		return trace.BadParameter("insertion sort threshold cannot be negative: %v", r.Threshold)
	}
	if r.Threshold == 0 {
		r.Threshold = defaults.InsertionSortThreshold
	}
	if r.FieldLogger == nil {
		r.FieldLogger = log
	}
	return nil
}

// New returns a new sorter for the specified configuration
func New[T cmp.Ordered](config Config) (*Sorter[T], error) {
	if err := config.CheckAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err)
	}
	return &Sorter[T]{Config: config}, nil
}

// Sorter is a merge-insertion sorter that reports statistics about
// every sort it performs
type Sorter[T cmp.Ordered] struct {
	// Config is the sorter configuration
	Config
}

// Stats describes the work done by a single sort
type Stats struct {
	// Comparisons is the number of element comparisons
	Comparisons int `json:"comparisons"`
	// Insertions is the number of binary insertions into the main chain
	Insertions int `json:"insertions"`
	// Depth is the maximum recursion depth, 1 for the top-level call
	Depth int `json:"depth"`
}

// Sort sorts seq in place in non-decreasing order
func (r *Sorter[T]) Sort(seq sequence.Sequence[T]) Stats {
	run := sortRun[T]{threshold: r.Threshold}
	run.sort(seq, 1)
	r.WithFields(logrus.Fields{
		"elements":    seq.Len(),
		"comparisons": run.stats.Comparisons,
		"insertions":  run.stats.Insertions,
		"depth":       run.stats.Depth,
	}).Debug("Sorted sequence.")
	return run.stats
}

// sortRun holds the state of a single top-level sort
type sortRun[T cmp.Ordered] struct {
	threshold int
	stats     Stats
}

func (r *sortRun[T]) sort(seq sequence.Sequence[T], depth int) {
	if depth > r.stats.Depth {
		r.stats.Depth = depth
	}
	n := seq.Len()
	if n <= 1 {
		return
	}
	if n <= r.threshold {
		r.insertionSort(seq, 0, n)
		return
	}
	r.pair(seq)
	selected := seq.Empty()
	for i := 0; i < n; i += 2 {
		selected.Append(seq.At(i))
	}
	r.sort(selected, depth+1)
	for i := 0; i < selected.Len(); i++ {
		seq.Set(2*i, selected.At(i))
	}
	r.mergeInsert(seq)
}

// insertionSort sorts seq[a:b] by insertion, equal elements keep their order
func (r *sortRun[T]) insertionSort(seq sequence.Sequence[T], a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && r.less(seq.At(j), seq.At(j-1)); j-- {
			sequence.Swap(seq, j, j-1)
		}
	}
}

// pair orders every complete pair (2i, 2i+1) so that the smaller element
// comes first. The trailing element of an odd-length sequence is left alone
func (r *sortRun[T]) pair(seq sequence.Sequence[T]) {
	for i := 0; i+1 < seq.Len(); i += 2 {
		if r.less(seq.At(i+1), seq.At(i)) {
			sequence.Swap(seq, i, i+1)
		}
	}
}

// mergeInsert expects sorted values at the even positions of seq. It builds
// the main chain from them and inserts the odd-position values in their
// original order
func (r *sortRun[T]) mergeInsert(seq sequence.Sequence[T]) {
	n := seq.Len()
	chain := seq.Empty()
	pend := seq.Empty()
	for i := 0; i < n; i += 2 {
		chain.Append(seq.At(i))
		if i+1 < n {
			pend.Append(seq.At(i + 1))
		}
	}
	for i := 0; i < pend.Len(); i++ {
		v := pend.At(i)
		chain.Insert(r.search(chain, v), v)
		r.stats.Insertions++
	}
	for i := 0; i < chain.Len(); i++ {
		seq.Set(i, chain.At(i))
	}
}

// search returns the smallest index i in the sorted chain with chain[i] >= v,
// or chain.Len() if there is none
func (r *sortRun[T]) search(chain sequence.Sequence[T], v T) int {
	lo, hi := 0, chain.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if r.less(chain.At(mid), v) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (r *sortRun[T]) less(a, b T) bool {
	r.stats.Comparisons++
	return a < b
}
