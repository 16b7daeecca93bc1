// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/ggplot/scene"
	"github.com/gogpu/ggplot/text"
)

// defaultOutlineCapacity bounds the outline cache of a Renderer.
const defaultOutlineCapacity = 512

// outlineKey identifies a glyph outline at a given size.
type outlineKey struct {
	face *font.Face
	gid  font.GID
	size float64
}

// outlineNode is an entry in the LRU list; head is most recently used.
type outlineNode struct {
	key        outlineKey
	path       *scene.Path
	prev, next *outlineNode
}

// outlineCache keeps recently drawn glyph outlines so that repeated
// labels are not re-extracted from the font. Cached paths are in glyph
// space and never modified. Not safe for concurrent use.
type outlineCache struct {
	capacity   int
	entries    map[outlineKey]*outlineNode
	head, tail *outlineNode

	hits, misses uint64
}

func newOutlineCache(capacity int) *outlineCache {
	if capacity <= 0 {
		capacity = defaultOutlineCapacity
	}
	return &outlineCache{capacity: capacity, entries: make(map[outlineKey]*outlineNode)}
}

// path returns the outline of gid in face at size, extracting it on a miss.
func (c *outlineCache) path(face *font.Face, gid font.GID, size float64) *scene.Path {
	key := outlineKey{face: face, gid: gid, size: size}
	if n, ok := c.entries[key]; ok {
		c.hits++
		c.moveToFront(n)
		return n.path
	}
	c.misses++

	n := &outlineNode{key: key, path: text.GlyphPath(face, gid, size)}
	c.entries[key] = n
	c.pushFront(n)
	for len(c.entries) > c.capacity {
		oldest := c.tail
		c.unlink(oldest)
		delete(c.entries, oldest.key)
	}
	return n.path
}

func (c *outlineCache) len() int {
	return len(c.entries)
}

func (c *outlineCache) pushFront(n *outlineNode) {
	n.prev, n.next = nil, c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *outlineCache) moveToFront(n *outlineNode) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *outlineCache) unlink(n *outlineNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
