// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package art implements an in-memory Adaptive Radix Tree mapping
// byte-string keys to values of a generic type V. The tree supports O(1)
// copy-on-write cloning of the whole structure: Clone returns an
// independent handle that shares unmodified subtrees with the original
// until either side mutates them.
//
// Keys are arbitrary byte strings: any byte value may appear anywhere in a
// key, and one key may be a strict byte-for-byte prefix of another. A key
// that ends exactly at an internal node, after that node's partial prefix,
// has no discriminating byte left to hang a child under; it occupies the
// node's end-of-key leaf slot instead (see innerNode.eokLeaf). No sentinel
// byte is ever appended to a key.
package art

// Tree maps byte-string keys to values of type V using an Adaptive Radix
// Tree. The zero value is an empty, ready-to-use tree.
type Tree[V any] struct {
	root node[V]
	size int
}

// Len returns the number of entries in the tree.
func (t *Tree[V]) Len() int { return t.size }

// Get looks up key and reports whether it is present.
func (t *Tree[V]) Get(key []byte) (V, bool) {
	var zero V
	n := t.root
	depth := 0

	for n != nil {
		if lf, ok := n.(*leafNode[V]); ok {
			if lf.keyEquals(key, 0) {
				return lf.value, true
			}
			return zero, false
		}

		in := n.(innerNode[V])
		if pl := in.partialLen(); pl > 0 {
			if prefixMismatch[V](in, key, depth) != pl {
				return zero, false
			}
			depth += pl
		}
		if depth == len(key) {
			if eok := in.eokLeaf(); eok != nil && eok.keyEquals(key, 0) {
				return eok.value, true
			}
			return zero, false
		}

		idx, ok := in.childSlotAt(key[depth])
		if !ok {
			return zero, false
		}
		n = in.childAtIndex(idx)
		depth++
	}

	return zero, false
}

// Insert associates value with key, overwriting any existing value for an
// equal key. It reports whether key was newly inserted (false means an
// existing entry's value was replaced).
func (t *Tree[V]) Insert(key []byte, value V) bool {
	oldRoot := t.root
	newRoot, inserted := insertRec[V](oldRoot, key, value, 0)
	if newRoot != oldRoot {
		releaseNode[V](oldRoot)
	}
	t.root = newRoot
	if inserted {
		t.size++
	}
	return inserted
}

// insertRec inserts key/value rooted at n, starting at depth, and returns
// the node that should occupy this slot along with whether a new entry was
// created (as opposed to an existing one being overwritten).
func insertRec[V any](n node[V], key []byte, value V, depth int) (node[V], bool) {
	if n == nil {
		return node[V](newLeaf(key, value)), true
	}

	if lf, ok := n.(*leafNode[V]); ok {
		if lf.keyEquals(key, 0) {
			if lf.refC().unique() {
				lf.value = cloneValue(value)
				return lf, false
			}
			return node[V](lf.cloneWithValue(value)), false
		}
		return splitLeaf[V](lf, key, value, depth), true
	}

	in := n.(innerNode[V])
	if pl := in.partialLen(); pl > 0 {
		mismatch := prefixMismatch[V](in, key, depth)
		if mismatch < pl {
			return splitNode[V](in, key, value, depth, mismatch), true
		}
		depth += pl
	}

	self := cloneIfShared[V](in)
	cloned := node[V](self) != n

	if depth == len(key) {
		// the key ends exactly at this node
		if eok := self.eokLeaf(); eok != nil {
			if eok.refC().unique() {
				eok.value = cloneValue(value)
			} else {
				self.setEokLeaf(eok.cloneWithValue(value))
				releaseNode[V](eok)
			}
			return node[V](self), false
		}
		self.setEokLeaf(newLeaf(key, value))
		return node[V](self), true
	}

	b := key[depth]
	idx, ok := self.childSlotAt(b)
	if !ok {
		grown := self.addChild(b, node[V](newLeaf(key, value)))
		releaseSelfIfDiscarded[V](self, node[V](grown), cloned)
		return node[V](grown), true
	}

	child := self.childAtIndex(idx)
	newChild, inserted := insertRec[V](child, key, value, depth+1)
	replaceChildAt[V](self, idx, newChild)
	return node[V](self), inserted
}

// releaseSelfIfDiscarded releases self's single ownership edge when, and
// only when, self was a throwaway clone (cloned) that addChild/deleteChildAt
// then discarded in favor of a differently-capacitied replacement (result).
// Growth/demotion never release their own receiver (see node4.addChild) so
// that the edge accounting works out whether or not cloneIfShared actually
// cloned: when it didn't clone, that single edge belongs to the caller one
// level up, which releases it itself via replaceChildAt/Tree's root
// handling when it sees the slot's occupant identity change.
func releaseSelfIfDiscarded[V any](self innerNode[V], result node[V], cloned bool) {
	if cloned && node[V](self) != result {
		releaseNode[V](node[V](self))
	}
}

// splitLeaf builds a new Node4 holding the existing leaf lf and a freshly
// created leaf for key/value, split at the point where their keys first
// diverge (at or after depth). A leaf whose key is exhausted by the common
// prefix becomes the new node's end-of-key leaf; at most one side can be,
// since the keys differ.
func splitLeaf[V any](lf *leafNode[V], key []byte, value V, depth int) node[V] {
	newLf := newLeaf(key, value)
	lcp := lf.longestCommonPrefix(newLf, depth)

	parent := newNode4[V]()
	stored := lcp
	if stored > maxPartialLen {
		stored = maxPartialLen
	}
	var pbytes [maxPartialLen]byte
	copy(pbytes[:stored], lf.key[depth:depth+stored])
	parent.setPartial(lcp, pbytes)

	retainNode[V](lf)
	if depth+lcp == len(lf.key) {
		parent.setEokLeaf(lf)
	} else {
		parent.addChild(lf.key[depth+lcp], node[V](lf))
	}
	if depth+lcp == len(key) {
		parent.setEokLeaf(newLf)
	} else {
		parent.addChild(key[depth+lcp], node[V](newLf))
	}

	return node[V](parent)
}

// splitNode handles the case where the query key diverges from an inner
// node's own partial prefix before that prefix is fully consumed. A new
// Node4 is created holding the common portion of the prefix; the old node
// (shifted past the divergence point) becomes one child, and the new entry
// becomes either a second child or, when the key is exhausted by the common
// portion, the new node's end-of-key leaf.
func splitNode[V any](in innerNode[V], key []byte, value V, depth, mismatch int) node[V] {
	parent := newNode4[V]()
	stored := mismatch
	if stored > maxPartialLen {
		stored = maxPartialLen
	}
	var pbytes [maxPartialLen]byte
	for i := 0; i < stored; i++ {
		pbytes[i] = partialByteAt[V](in, depth, i)
	}
	parent.setPartial(mismatch, pbytes)

	oldDisc := partialByteAt[V](in, depth, mismatch)

	adjusted := cloneIfShared[V](in)
	adjustedWasCloned := node[V](adjusted) != node[V](in)
	newPartialLen := adjusted.partialLen() - (mismatch + 1)
	var adjustedBytes [maxPartialLen]byte
	adjStored := newPartialLen
	if adjStored > maxPartialLen {
		adjStored = maxPartialLen
	}
	for i := 0; i < adjStored; i++ {
		adjustedBytes[i] = partialByteAt[V](in, depth, mismatch+1+i)
	}
	adjusted.setPartial(newPartialLen, adjustedBytes)

	// If in was unique, adjusted is in itself: its existing refcount is the
	// one edge the outer caller still thinks points at in, and relocating it
	// under parent needs a fresh retain (the outer caller releases the old
	// edge once it sees its slot's occupant change from in to parent). If in
	// was shared, adjusted is a brand new clone whose refcount already
	// represents exactly this one new edge — retaining it again would leak.
	if !adjustedWasCloned {
		retainNode[V](adjusted)
	}
	parent.addChild(oldDisc, node[V](adjusted))

	if depth+mismatch == len(key) {
		parent.setEokLeaf(newLeaf(key, value))
	} else {
		parent.addChild(key[depth+mismatch], node[V](newLeaf(key, value)))
	}

	return node[V](parent)
}

// Delete removes key from the tree, reporting whether it was present.
func (t *Tree[V]) Delete(key []byte) bool {
	oldRoot := t.root
	newRoot, deleted := deleteRec[V](oldRoot, key, 0)
	if newRoot != oldRoot {
		releaseNode[V](oldRoot)
	}
	t.root = newRoot
	if deleted {
		t.size--
	}
	return deleted
}

// deleteRec removes key rooted at n and returns the node that should occupy
// this slot (possibly nil, possibly a demoted/collapsed replacement).
func deleteRec[V any](n node[V], key []byte, depth int) (node[V], bool) {
	if n == nil {
		return nil, false
	}

	if lf, ok := n.(*leafNode[V]); ok {
		if !lf.keyEquals(key, 0) {
			return n, false
		}
		return nil, true
	}

	in := n.(innerNode[V])
	if pl := in.partialLen(); pl > 0 {
		if prefixMismatch[V](in, key, depth) != pl {
			return n, false
		}
		depth += pl
	}

	if depth == len(key) {
		eok := in.eokLeaf()
		if eok == nil || !eok.keyEquals(key, 0) {
			return n, false
		}
		self := cloneIfShared[V](in)
		cloned := node[V](self) != n
		removed := self.eokLeaf()
		self.setEokLeaf(nil)
		releaseNode[V](removed)
		replaced := collapseIfSingle[V](self)
		releaseSelfIfDiscarded[V](self, replaced, cloned)
		return replaced, true
	}

	b := key[depth]
	if _, ok := in.childSlotAt(b); !ok {
		return n, false
	}

	// Clone before recursing, not after: cloning bumps the refcount of every
	// retained child, so a child that looked unique through the original
	// (shared) n must see that bump before the recursive call decides
	// whether it may mutate the child in place.
	self := cloneIfShared[V](in)
	cloned := node[V](self) != n
	idx, _ := self.childSlotAt(b)

	newChild, deleted := deleteRec[V](self.childAtIndex(idx), key, depth+1)
	if !deleted {
		releaseSelfIfDiscarded[V](self, n, cloned)
		return n, false
	}

	if newChild == nil {
		removed := self.childAtIndex(idx)
		replaced := self.deleteChildAt(idx)
		releaseNode[V](removed)
		releaseSelfIfDiscarded[V](self, replaced, cloned)
		return replaced, true
	}

	replaceChildAt[V](self, idx, newChild)
	return node[V](self), true
}

// collapseIfSingle dissolves a node4 left holding a single child and no
// end-of-key leaf into that child (path re-compression after the node's
// end-of-key leaf was removed). Larger variants never drop below two
// children, so they pass through unchanged.
func collapseIfSingle[V any](n innerNode[V]) node[V] {
	if n4, ok := n.(*inode4[V]); ok && n4.count() == 1 && n4.eokLeaf() == nil {
		return n4.collapse()
	}
	return node[V](n)
}

// Clone returns an independent handle sharing the current structure with
// t. Both handles are copy-on-write: mutating either one clones only the
// path from the root down to the first uniquely-owned node it reaches.
func (t *Tree[V]) Clone() Tree[V] {
	retainNode[V](t.root)
	return Tree[V]{root: t.root, size: t.size}
}
