// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package art

// Cloner is implemented by value types that own mutable state and need an
// independent copy whenever the tree takes ownership of a value. If V
// implements Cloner[V], every new leaf stores value.Clone() rather than
// value itself, so a caller that goes on mutating the value it just
// inserted never perturbs what the tree holds — the same guarantee
// Clone() gives the tree's structure, extended to the values living in it.
//
// Types without mutable internal state (plain ints, strings, immutable
// structs) need not implement this; their values are copied by assignment
// as usual.
type Cloner[V any] interface {
	Clone() V
}

// cloneValue returns value.Clone() if V implements Cloner[V], or value
// unchanged otherwise.
func cloneValue[V any](value V) V {
	if c, ok := any(value).(Cloner[V]); ok {
		return c.Clone()
	}
	return value
}
