// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package art

// Iterator walks a Tree's entries in ascending lexicographic key order. The
// zero value is not usable; obtain one from Tree.Iterator.
//
// An Iterator does not hold any of the nodes it has yet to visit uniquely:
// it does not retain write exclusivity on them. Mutating the Tree while an
// Iterator from it is still live is unsupported; the iterator may observe a
// mix of old and new structure. Call Clone first if both a stable iteration
// and concurrent mutation are needed.
type Iterator[V any] struct {
	stack []node[V]
	key   []byte
	value V
}

// Iterator returns a new Iterator positioned before the first entry.
func (t *Tree[V]) Iterator() *Iterator[V] {
	it := &Iterator[V]{}
	if t.root != nil {
		it.stack = append(it.stack, t.root)
	}
	return it
}

// Next advances the iterator to the next entry and reports whether one was
// found. Call KeyValue to read the entry it advanced to.
func (it *Iterator[V]) Next() bool {
	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if lf, ok := n.(*leafNode[V]); ok {
			it.key = lf.key
			it.value = lf.value
			return true
		}

		in := n.(innerNode[V])
		// Children are visited in ascending key-byte order, so they must be
		// pushed in descending order for the stack to pop them ascending.
		// The end-of-key leaf is pushed last: its key is a strict prefix of
		// every key below this node and sorts before all of them.
		count := in.count()
		order := make([]node[V], 0, count)
		for idx, ok := in.firstIndex(); ok; idx, ok = in.nextIndex(idx) {
			order = append(order, in.childAtIndex(idx))
		}
		for i := len(order) - 1; i >= 0; i-- {
			it.stack = append(it.stack, order[i])
		}
		if eok := in.eokLeaf(); eok != nil {
			it.stack = append(it.stack, node[V](eok))
		}
	}
	var zero V
	it.key = nil
	it.value = zero
	return false
}

// KeyValue returns the entry the most recent call to Next produced. Calling
// it before the first Next, or after Next has returned false, yields a nil
// key and the zero value.
func (it *Iterator[V]) KeyValue() ([]byte, V) {
	return it.key, it.value
}
