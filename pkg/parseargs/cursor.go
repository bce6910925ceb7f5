// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseargs

import "github.com/ef-ds/deque"

// pending is an argument not yet scanned and its position in the original input.
// Arguments spliced in by a group expansion carry the group's position.
type pending struct {
	text      string
	index     int
	fromGroup bool
}

// cursor holds the not-yet-consumed arguments. Arguments are taken from the
// front and expansions are pushed back onto the front.
type cursor struct {
	q deque.Deque
}

func newCursor(args []string) *cursor {
	c := &cursor{}
	for i, a := range args {
		c.q.PushBack(pending{text: a, index: i})
	}
	return c
}

func (c *cursor) Len() int {
	return c.q.Len()
}

// next removes and returns the front argument. The cursor must not be empty.
func (c *cursor) next() pending {
	v, _ := c.q.PopFront()
	return v.(pending)
}

func (c *cursor) peek() (pending, bool) {
	v, ok := c.q.Front()
	if !ok {
		return pending{}, false
	}
	return v.(pending), true
}

// splice pushes texts onto the front so that texts[0] is scanned next.
func (c *cursor) splice(index int, texts []string) {
	for i := len(texts) - 1; i >= 0; i-- {
		c.q.PushFront(pending{text: texts[i], index: index, fromGroup: true})
	}
}

// drain removes and returns everything left.
func (c *cursor) drain() []pending {
	out := make([]pending, 0, c.q.Len())
	for c.q.Len() > 0 {
		out = append(out, c.next())
	}
	return out
}
