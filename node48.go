// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package art

import "github.com/radixart/art/internal/slotset"

// sentinelAbsent marks an unused index entry.
const sentinelAbsent = 0xFF

// inode48 holds between node48ShrinkAt+1 and node48Capacity children. A
// 256-entry index maps a key byte directly to a slot in the 48-entry
// children array; both the free-slot search on insert and the ordered
// traversal over occupied key bytes are backed by bitsets from
// internal/slotset rather than by scanning the index array.
type inode48[V any] struct {
	header[V]
	index     [256]uint8
	children  [node48Capacity]node[V]
	used      slotset.Set // presence over the 256 possible key bytes
	freeSlots slotset.Set // occupancy over the 48 child slots
}

func newNode48[V any]() *inode48[V] {
	n := &inode48[V]{
		used:      slotset.New(256),
		freeSlots: slotset.New(node48Capacity),
	}
	for i := range n.index {
		n.index[i] = sentinelAbsent
	}
	n.rc.init()
	return n
}

func (n *inode48[V]) kind() NodeKind { return node48Kind }

func (n *inode48[V]) childSlotAt(b byte) (int, bool) {
	if n.index[b] == sentinelAbsent {
		return 0, false
	}
	return int(b), true
}

func (n *inode48[V]) childAtIndex(idx int) node[V] {
	return n.children[n.index[byte(idx)]]
}

func (n *inode48[V]) setChildAtIndex(idx int, child node[V]) {
	n.children[n.index[byte(idx)]] = child
}

func (n *inode48[V]) firstIndex() (int, bool) {
	slot, ok := n.used.NextSet(0)
	return int(slot), ok
}

func (n *inode48[V]) nextIndex(idx int) (int, bool) {
	slot, ok := n.used.NextSet(uint(idx) + 1)
	return int(slot), ok
}

func (n *inode48[V]) keyAtIndex(idx int) byte { return byte(idx) }

// addChild occupies the lowest free slot, promoting to node256 once full.
func (n *inode48[V]) addChild(b byte, child node[V]) innerNode[V] {
	if int(n.cnt) < node48Capacity {
		slot, ok := n.freeSlots.FirstFree()
		if !ok {
			panic("art: node48 reports room but has no free slot")
		}
		n.freeSlots.Occupy(slot)
		n.used.Occupy(uint(b))
		n.index[b] = uint8(slot)
		n.children[slot] = child
		n.cnt++
		return n
	}

	grown := newNode256[V]()
	grown.adoptHeader(&n.header)
	for k, ok := n.used.NextSet(0); ok; k, ok = n.used.NextSet(k + 1) {
		c := n.children[n.index[k]]
		grown.children[k] = c
		grown.present.Occupy(k)
		retainNode[V](c)
		grown.cnt++
	}
	// n is not released here; see node4.addChild for why that is always
	// the caller's responsibility.
	return grown.addChild(b, child)
}

// deleteChildAt removes the key byte idx, demoting to node16 once the
// count drops to node48ShrinkAt.
func (n *inode48[V]) deleteChildAt(idx int) node[V] {
	b := byte(idx)
	slot := n.index[b]
	n.children[slot] = nil
	n.freeSlots.Free(uint(slot))
	n.used.Free(uint(b))
	n.index[b] = sentinelAbsent
	n.cnt--

	if int(n.cnt) > node48ShrinkAt {
		return n
	}

	demoted := newNode16[V]()
	demoted.adoptHeader(&n.header)
	i := 0
	for k, ok := n.used.NextSet(0); ok; k, ok = n.used.NextSet(k + 1) {
		c := n.children[n.index[k]]
		demoted.keys[i] = byte(k)
		demoted.children[i] = c
		retainNode[V](c)
		i++
	}
	demoted.cnt = uint16(i)
	// n is not released here; see node4.addChild for why that is always
	// the caller's responsibility.
	return demoted
}

func (n *inode48[V]) clone() innerNode[V] {
	c := &inode48[V]{
		header:    n.header,
		index:     n.index,
		children:  n.children,
		used:      n.used.Clone(),
		freeSlots: n.freeSlots.Clone(),
	}
	c.rc.init()
	if c.eok != nil {
		c.eok.rc.retain()
	}
	for k, ok := n.used.NextSet(0); ok; k, ok = n.used.NextSet(k + 1) {
		retainNode[V](c.children[n.index[k]])
	}
	return c
}
