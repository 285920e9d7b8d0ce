// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package art

import "github.com/radixart/art/internal/slotset"

// inode256 is a direct 256-entry child array, the largest node variant.
// There is no grow target above it; lookups and inserts are O(1) array
// indexing. Ordered traversal walks the presence bitset rather than
// scanning all 256 slots for occupied ones.
type inode256[V any] struct {
	header[V]
	children [node256Capacity]node[V]
	present  slotset.Set
}

func newNode256[V any]() *inode256[V] {
	n := &inode256[V]{present: slotset.New(node256Capacity)}
	n.rc.init()
	return n
}

func (n *inode256[V]) kind() NodeKind { return node256Kind }

func (n *inode256[V]) childSlotAt(b byte) (int, bool) {
	if !n.present.Test(uint(b)) {
		return 0, false
	}
	return int(b), true
}

func (n *inode256[V]) childAtIndex(idx int) node[V] { return n.children[idx] }

func (n *inode256[V]) setChildAtIndex(idx int, child node[V]) { n.children[idx] = child }

func (n *inode256[V]) firstIndex() (int, bool) {
	slot, ok := n.present.NextSet(0)
	return int(slot), ok
}

func (n *inode256[V]) nextIndex(idx int) (int, bool) {
	slot, ok := n.present.NextSet(uint(idx) + 1)
	return int(slot), ok
}

func (n *inode256[V]) keyAtIndex(idx int) byte { return byte(idx) }

// addChild assigns directly; node256 never grows further.
func (n *inode256[V]) addChild(b byte, child node[V]) innerNode[V] {
	n.children[b] = child
	n.present.Occupy(uint(b))
	n.cnt++
	return n
}

// deleteChildAt removes the entry at key byte idx, demoting to node48 once
// the count drops to node256ShrinkAt.
func (n *inode256[V]) deleteChildAt(idx int) node[V] {
	b := byte(idx)
	n.children[b] = nil
	n.present.Free(uint(b))
	n.cnt--

	if int(n.cnt) > node256ShrinkAt {
		return n
	}

	demoted := newNode48[V]()
	demoted.adoptHeader(&n.header)
	for k, ok := n.present.NextSet(0); ok; k, ok = n.present.NextSet(k + 1) {
		c := n.children[k]
		slot, _ := demoted.freeSlots.FirstFree()
		demoted.freeSlots.Occupy(slot)
		demoted.used.Occupy(k)
		demoted.index[k] = uint8(slot)
		demoted.children[slot] = c
		retainNode[V](c)
		demoted.cnt++
	}
	// n is not released here; see node4.addChild for why that is always
	// the caller's responsibility.
	return demoted
}

func (n *inode256[V]) clone() innerNode[V] {
	c := &inode256[V]{
		header:   n.header,
		children: n.children,
		present:  n.present.Clone(),
	}
	c.rc.init()
	if c.eok != nil {
		c.eok.rc.retain()
	}
	for k, ok := n.present.NextSet(0); ok; k, ok = n.present.NextSet(k + 1) {
		retainNode[V](c.children[k])
	}
	return c
}
