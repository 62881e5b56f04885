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

package sequence

import "slices"

// NewSlice returns a contiguous sequence holding a copy of values
func NewSlice[T any](values ...T) *Slice[T] {
	return &Slice[T]{items: slices.Clone(values)}
}

// Slice is a sequence backed by a contiguous Go slice.
// The zero value is an empty sequence ready to use
type Slice[T any] struct {
	items []T
}

// Len returns the number of elements in the sequence
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// At returns the element at position i
func (s *Slice[T]) At(i int) T {
	return s.items[i]
}

// Set replaces the element at position i
func (s *Slice[T]) Set(i int, v T) {
	s.items[i] = v
}

// Append adds an element after the last one
func (s *Slice[T]) Append(v T) {
	s.items = append(s.items, v)
}

// Insert inserts an element before position i
func (s *Slice[T]) Insert(i int, v T) {
	s.items = slices.Insert(s.items, i, v)
}

// Empty returns a new empty contiguous sequence
func (s *Slice[T]) Empty() Sequence[T] {
	return &Slice[T]{}
}

// Items returns the underlying slice
func (s *Slice[T]) Items() []T {
	return s.items
}
