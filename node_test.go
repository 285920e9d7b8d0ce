// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package art

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode4GrowsToNode16(t *testing.T) {
	t.Parallel()
	n := newNode4[int]()
	var cur innerNode[int] = n
	for b := 0; b < node4Capacity; b++ {
		cur = cur.addChild(byte(b), node[int](newLeaf([]byte{byte(b)}, b)))
	}
	assert.Equal(t, node4Kind, cur.kind())

	cur = cur.addChild(byte(node4Capacity), node[int](newLeaf([]byte{byte(node4Capacity)}, node4Capacity)))
	assert.Equal(t, node16Kind, cur.kind())
	assert.Equal(t, node4Capacity+1, cur.count())

	for b := 0; b <= node4Capacity; b++ {
		idx, ok := cur.childSlotAt(byte(b))
		require.True(t, ok)
		lf := cur.childAtIndex(idx).(*leafNode[int])
		assert.Equal(t, b, lf.value)
	}
}

func TestNode4CollapseLeafSurvivor(t *testing.T) {
	t.Parallel()
	n := newNode4[int]()
	n.setPartial(2, [maxPartialLen]byte{0xAA, 0xBB})

	left := newLeaf([]byte{0xAA, 0xBB, 0x10}, 1)
	right := newLeaf([]byte{0xAA, 0xBB, 0x20}, 2)
	n.addChild(0x10, node[int](left))
	n.addChild(0x20, node[int](right))

	result := n.deleteChildAt(0) // removes the child under 0x10

	require.Same(t, right, result.(*leafNode[int]))
	assert.Equal(t, 2, result.(*leafNode[int]).value)
}

// TestNode4CollapseSplicesPrefix checks that collapsing into a surviving
// inner node prepends this node's partial prefix plus the survivor's own
// key byte onto the survivor's partial prefix.
func TestNode4CollapseSplicesPrefix(t *testing.T) {
	t.Parallel()
	n := newNode4[int]()
	n.setPartial(2, [maxPartialLen]byte{0xAA, 0xBB})

	survivor := newNode4[int]()
	survivor.setPartial(1, [maxPartialLen]byte{0x99})
	survivor.addChild(0x01, node[int](newLeaf([]byte{0xAA, 0xBB, 0x20, 0x99, 0x01}, 1)))
	survivor.addChild(0x02, node[int](newLeaf([]byte{0xAA, 0xBB, 0x20, 0x99, 0x02}, 2)))

	n.addChild(0x10, node[int](newLeaf([]byte{0xAA, 0xBB, 0x10}, 0)))
	n.addChild(0x20, node[int](survivor))

	result := n.deleteChildAt(0) // removes the leaf under 0x10

	// survivor was uniquely owned, so it is spliced in place
	got := result.(*inode4[int])
	require.Same(t, survivor, got)
	assert.Equal(t, 4, got.partialLen())
	assert.Equal(t, [maxPartialLen]byte{0xAA, 0xBB, 0x20, 0x99}, got.partialBytes())
}

// TestNode4CollapseClonesSharedSurvivor checks that a survivor shared with
// another owner is cloned rather than spliced in place.
func TestNode4CollapseClonesSharedSurvivor(t *testing.T) {
	t.Parallel()
	n := newNode4[int]()

	survivor := newNode4[int]()
	survivor.setPartial(1, [maxPartialLen]byte{0x99})
	survivor.addChild(0x01, node[int](newLeaf([]byte{0x20, 0x99, 0x01}, 1)))
	survivor.addChild(0x02, node[int](newLeaf([]byte{0x20, 0x99, 0x02}, 2)))
	retainNode[int](node[int](survivor)) // a second owner elsewhere

	n.addChild(0x10, node[int](newLeaf([]byte{0x10}, 0)))
	n.addChild(0x20, node[int](survivor))

	result := n.deleteChildAt(0)

	got := result.(*inode4[int])
	require.NotSame(t, survivor, got)
	assert.Equal(t, 2, got.partialLen())
	assert.Equal(t, [maxPartialLen]byte{0x20, 0x99}, got.partialBytes())

	// the shared original is untouched
	assert.Equal(t, 1, survivor.partialLen())
	assert.Equal(t, [maxPartialLen]byte{0x99}, survivor.partialBytes())
}

func TestSpliceParentPrefix(t *testing.T) {
	t.Parallel()
	child := newNode4[int]()
	child.setPartial(1, [maxPartialLen]byte{0x99})

	var parentPart [maxPartialLen]byte
	parentPart[0] = 0x11
	parentPart[1] = 0x22
	spliceParentPrefix[int](2, parentPart, 0x33, node[int](child))

	assert.Equal(t, 4, child.partialLen())
	got := child.partialBytes()
	assert.Equal(t, [maxPartialLen]byte{0x11, 0x22, 0x33, 0x99}, got)
}

func TestRefcountCOWUniqueness(t *testing.T) {
	t.Parallel()
	n := newNode4[int]()
	assert.True(t, n.refC().unique())

	retainNode[int](node[int](n))
	assert.False(t, n.refC().unique())

	clone := cloneIfShared[int](n)
	assert.NotSame(t, n, clone)
	assert.True(t, clone.refC().unique())

	releaseNode[int](node[int](n))
	assert.True(t, n.refC().unique())
}

func TestSlotsetBitsetRoundTrip(t *testing.T) {
	t.Parallel()
	n := newNode48[int]()
	n.addChild(5, node[int](newLeaf([]byte{5}, 1)))
	n.addChild(200, node[int](newLeaf([]byte{200}, 2)))

	idx, ok := n.firstIndex()
	require.True(t, ok)
	assert.Equal(t, byte(5), n.keyAtIndex(idx))

	idx, ok = n.nextIndex(idx)
	require.True(t, ok)
	assert.Equal(t, byte(200), n.keyAtIndex(idx))

	_, ok = n.nextIndex(idx)
	assert.False(t, ok)
}
