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

import "github.com/gammazero/deque"

// NewDeque returns a double-ended queue sequence holding a copy of values
func NewDeque[T any](values ...T) *Deque[T] {
	d := &Deque[T]{}
	for _, v := range values {
		d.queue.PushBack(v)
	}
	return d
}

// Deque is a sequence backed by a ring-buffer double-ended queue.
// Insertion in the middle moves the elements of the shorter side.
// The zero value is an empty sequence ready to use
type Deque[T any] struct {
	queue deque.Deque[T]
}

// Len returns the number of elements in the sequence
func (d *Deque[T]) Len() int {
	return d.queue.Len()
}

// At returns the element at position i
func (d *Deque[T]) At(i int) T {
	return d.queue.At(i)
}

// Set replaces the element at position i
func (d *Deque[T]) Set(i int, v T) {
	d.queue.Set(i, v)
}

// Append adds an element after the last one
func (d *Deque[T]) Append(v T) {
	d.queue.PushBack(v)
}

// Insert inserts an element before position i
func (d *Deque[T]) Insert(i int, v T) {
	d.queue.Insert(i, v)
}

// Empty returns a new empty double-ended queue sequence
func (d *Deque[T]) Empty() Sequence[T] {
	return &Deque[T]{}
}

// PushFront adds an element before the first one
func (d *Deque[T]) PushFront(v T) {
	d.queue.PushFront(v)
}

// PopBack removes and returns the last element.
// Returns false if the sequence is empty
func (d *Deque[T]) PopBack() (v T, ok bool) {
	if d.queue.Len() == 0 {
		return v, false
	}
	return d.queue.PopBack(), true
}
