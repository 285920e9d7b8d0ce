// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package slotset tracks which slots of a fixed-capacity array are in use.
// Node48 uses it to find a free child slot on insert, reclaim one on delete
// and walk its present key bytes in order; Node256 uses it to walk its
// present key bytes in order. FirstFree tests slots one by one from the
// lowest; NextSet uses the bitset's own search. It is a thin wrapper around
// github.com/bits-and-blooms/bitset.
package slotset

import "github.com/bits-and-blooms/bitset"

// Set tracks occupied slots in a capacity-N child array.
type Set struct {
	bits *bitset.BitSet
	n    uint
}

// New returns a Set over n slots, all initially free.
func New(n uint) Set {
	return Set{bits: bitset.New(n), n: n}
}

// Test reports whether slot i is occupied.
func (s *Set) Test(i uint) bool {
	return s.bits.Test(i)
}

// Occupy marks slot i as occupied.
func (s *Set) Occupy(i uint) {
	s.bits.Set(i)
}

// Free marks slot i as free again.
func (s *Set) Free(i uint) {
	s.bits.Clear(i)
}

// Len returns the number of occupied slots.
func (s *Set) Len() int {
	return int(s.bits.Count())
}

// FirstFree returns the lowest-numbered free slot, or (0, false) if the set
// is full.
func (s *Set) FirstFree() (uint, bool) {
	for i := uint(0); i < s.n; i++ {
		if !s.bits.Test(i) {
			return i, true
		}
	}
	return 0, false
}

// NextSet returns the next occupied slot at or after i, for ascending
// traversal over occupied slots, mirroring bitset's own iteration idiom.
func (s *Set) NextSet(i uint) (uint, bool) {
	return s.bits.NextSet(i)
}

// Clone returns an independent copy of s.
func (s *Set) Clone() Set {
	return Set{bits: s.bits.Clone(), n: s.n}
}
