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

import (
	"testing"

	"gopkg.in/check.v1"
)

func TestSequence(t *testing.T) { check.TestingT(t) }

type SequenceSuite struct{}

var _ = check.Suite(&SequenceSuite{})

func (s *SequenceSuite) TestRepresentations(c *check.C) {
	for _, tc := range []struct {
		comment string
		new     func(values ...int) Sequence[int]
	}{
		{
			comment: "contiguous",
			new:     func(values ...int) Sequence[int] { return NewSlice(values...) },
		},
		{
			comment: "double-ended queue",
			new:     func(values ...int) Sequence[int] { return NewDeque(values...) },
		},
	} {
		comment := check.Commentf("%v", tc.comment)
		seq := tc.new(3, 1, 2)
		c.Assert(seq.Len(), check.Equals, 3, comment)
		c.Assert(seq.At(1), check.Equals, 1, comment)

		seq.Set(1, 7)
		seq.Append(9)
		seq.Insert(0, 0)
		seq.Insert(2, 5)
		seq.Insert(seq.Len(), 11)
		c.Assert(Values(seq), check.DeepEquals, []int{0, 3, 5, 7, 2, 9, 11}, comment)

		Swap(seq, 0, seq.Len()-1)
		c.Assert(Values(seq), check.DeepEquals, []int{11, 3, 5, 7, 2, 9, 0}, comment)

		empty := seq.Empty()
		c.Assert(empty.Len(), check.Equals, 0, comment)
		empty.Append(4)
		c.Assert(Values(empty), check.DeepEquals, []int{4}, comment)
		c.Assert(seq.Len(), check.Equals, 7, comment)
	}
}

func (s *SequenceSuite) TestSliceCopiesInput(c *check.C) {
	values := []int{1, 2, 3}
	seq := NewSlice(values...)
	seq.Set(0, 10)
	c.Assert(values, check.DeepEquals, []int{1, 2, 3})
	c.Assert(seq.Items(), check.DeepEquals, []int{10, 2, 3})
}

func (s *SequenceSuite) TestZeroValues(c *check.C) {
	var slice Slice[int]
	slice.Append(1)
	c.Assert(Values[int](&slice), check.DeepEquals, []int{1})

	var deque Deque[int]
	deque.Append(2)
	deque.PushFront(1)
	c.Assert(Values[int](&deque), check.DeepEquals, []int{1, 2})
}

func (s *SequenceSuite) TestDequePopBack(c *check.C) {
	d := NewDeque(1, 2)
	v, ok := d.PopBack()
	c.Assert(ok, check.Equals, true)
	c.Assert(v, check.Equals, 2)
	v, ok = d.PopBack()
	c.Assert(ok, check.Equals, true)
	c.Assert(v, check.Equals, 1)
	_, ok = d.PopBack()
	c.Assert(ok, check.Equals, false)
}
