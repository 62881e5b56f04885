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

// Package sequence defines the mutable random-access sequence abstraction
// the sorting algorithms operate on along with its contiguous and
// double-ended queue representations.
package sequence

// Sequence is an ordered mutable collection indexable by position 0..Len()-1
type Sequence[T any] interface {
	// Len returns the number of elements in the sequence
	Len() int
	// At returns the element at position i
	At(i int) T
	// Set replaces the element at position i
	Set(i int, v T)
	// Append adds an element after the last one
	Append(v T)
	// Insert inserts an element before position i, i == Len() appends
	Insert(i int, v T)
	// Empty returns a new empty sequence of the same representation
	Empty() Sequence[T]
}

// Values returns elements of the sequence front to back
func Values[T any](seq Sequence[T]) []T {
	values := make([]T, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		values = append(values, seq.At(i))
	}
	return values
}

// Swap exchanges elements at positions i and j
func Swap[T any](seq Sequence[T], i, j int) {
	x, y := seq.At(i), seq.At(j)
	seq.Set(i, y)
	seq.Set(j, x)
}
