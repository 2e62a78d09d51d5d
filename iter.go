// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"iter"
)

func newIterator[K comparable](n *node[K]) *iterator[K] {
	return &iterator[K]{
		stack: []stack[K]{{edges: []*node[K]{n}}},
	}
}

// iterator walks a tree depth first, visiting siblings in children order.
type iterator[K comparable] struct {
	stack   []stack[K]
	current *node[K]
}

type stack[K comparable] struct {
	edges []*node[K]
}

func (it *iterator[K]) node() *node[K] {
	return it.current
}

func (it *iterator[K]) hasNextLeaf() bool {
	for it.hasNext() {
		if it.current.isLeaf() {
			return true
		}
	}
	return false
}

func (it *iterator[K]) hasNext() bool {
	if len(it.stack) > 0 {
		n := len(it.stack)
		last := it.stack[n-1]
		elem := last.edges[0]

		if len(last.edges) > 1 {
			it.stack[n-1].edges = last.edges[1:]
		} else {
			it.stack = it.stack[:n-1]
		}

		if len(elem.children) > 0 {
			it.stack = append(it.stack, stack[K]{edges: elem.children})
		}

		it.current = elem
		return true
	}

	it.current = nil
	return false
}

// all returns an iterator over the key and template of every route, in tree order.
func (rt *routes[K]) all() iter.Seq2[K, string] {
	return func(yield func(K, string) bool) {
		it := newIterator(rt.tree.root)
		for it.hasNextLeaf() {
			key := it.node().key
			if !yield(key, rt.templates[key]) {
				return
			}
		}
	}
}
