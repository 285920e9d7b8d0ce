// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package art

import (
	"fmt"
	"io"
	"strings"
)

// String returns the same text Dump writes, built in memory. Useful in
// tests and in a debugger; never consulted by Get, Insert or Delete.
func (t *Tree[V]) String() string {
	w := new(strings.Builder)
	if err := t.Dump(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Dump writes a human-readable, indented tree of t's internal structure to
// w. Useful during development and debugging. Depth counts tree levels;
// path lists the child key bytes taken from the root, not partial prefixes.
//
//	Output for the keys 61 70 01, 61 70 0a 00 2a and 61 70 0a ff 00:
//
//	[NODE4] depth: 0 path: [] partial(#2): 61 70
//	childs(#2): 01 0a
//	.[LEAF] depth: 1 path: [01] key: 61 70 01
//
//	.[NODE4] depth: 1 path: [0a] partial(#0):
//	.childs(#2): 00 ff
//	..[LEAF] depth: 2 path: [0a 00] key: 61 70 0a 00 2a
//	..[LEAF] depth: 2 path: [0a ff] key: 61 70 0a ff 00
func (t *Tree[V]) Dump(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "[EMPTY]")
		return err
	}
	return dumpRec[V](w, t.root, nil, 0)
}

func dumpRec[V any](w io.Writer, n node[V], path []byte, depth int) error {
	indent := strings.Repeat(".", depth)

	if lf, ok := n.(*leafNode[V]); ok {
		_, err := fmt.Fprintf(w, "%s[LEAF] depth: %d path: [% x] key: % x\n", indent, depth, path, lf.key)
		return err
	}

	in := n.(innerNode[V])
	partial := in.partialBytes()
	if _, err := fmt.Fprintf(w, "\n%s[%s] depth: %d path: [% x] partial(#%d): % x\n",
		indent, in.kind(), depth, path, in.partialLen(), partial[:min(in.partialLen(), maxPartialLen)]); err != nil {
		return err
	}

	if n := in.count(); n != 0 {
		if _, err := fmt.Fprintf(w, "%schilds(#%d): ", indent, n); err != nil {
			return err
		}
		for idx, ok := in.firstIndex(); ok; idx, ok = in.nextIndex(idx) {
			if _, err := fmt.Fprintf(w, "%02x ", in.keyAtIndex(idx)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if eok := in.eokLeaf(); eok != nil {
		if err := dumpRec[V](w, node[V](eok), path, depth+1); err != nil {
			return err
		}
	}

	for idx, ok := in.firstIndex(); ok; idx, ok = in.nextIndex(idx) {
		b := in.keyAtIndex(idx)
		if err := dumpRec[V](w, in.childAtIndex(idx), append(append([]byte{}, path...), b), depth+1); err != nil {
			return err
		}
	}
	return nil
}
