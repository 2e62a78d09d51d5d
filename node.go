// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

type node[K comparable] struct {
	// The literal segment matched verbatim at this node. When hasParam is true, a parameter
	// value is captured right before the anchor.
	anchor string

	// Parameter names of the route ending at this node, in template order. Only set on leaf.
	params []string

	// Child nodes sorted with compareNodes. Unique by (anchor, hasParam).
	children []*node[K]

	// Back reference used to ascend the tree when building a path. Nil for the root only.
	parent *node[K]

	// The route key, only meaningful if leaf is true.
	key K

	hasParam bool
	leaf     bool
}

func newNode[K comparable](anchor string, hasParam bool) *node[K] {
	return &node[K]{
		anchor:   anchor,
		hasParam: hasParam,
	}
}

func (n *node[K]) isLeaf() bool {
	return n.leaf
}

// setRoute marks n as the terminal node of a route.
func (n *node[K]) setRoute(key K, params []string) {
	n.key = key
	n.params = params
	n.leaf = true
}

// addChild attaches child to n, keeping children sorted.
func (n *node[K]) addChild(child *node[K]) {
	child.parent = n
	i, found := slices.BinarySearchFunc(n.children, child, compareNodes[K])
	if found {
		panic("internal error: a node with the same anchor already exists")
	}
	n.children = slices.Insert(n.children, i, child)
}

// removeChild detaches child from n. The child parent reference is left untouched since
// it is always reattached right away.
func (n *node[K]) removeChild(child *node[K]) {
	i := slices.Index(n.children, child)
	if i < 0 {
		panic("internal error: cannot remove a node which is not a child")
	}
	n.children = slices.Delete(n.children, i, i+1)
}

// compareNodes order siblings so that the most specific candidate is tried first: longer
// anchor first, then literal before parameter, then anchors in lexicographic order.
func compareNodes[K comparable](a, b *node[K]) int {
	if c := cmp.Compare(len(b.anchor), len(a.anchor)); c != 0 {
		return c
	}
	if a.hasParam != b.hasParam {
		if !a.hasParam {
			return -1
		}
		return 1
	}
	return strings.Compare(a.anchor, b.anchor)
}

func (n *node[K]) String() string {
	sb := strings.Builder{}
	n.string(&sb, 0)
	return sb.String()
}

func (n *node[K]) string(sb *strings.Builder, space int) {
	sb.WriteString(strings.Repeat(" ", space))
	if n.parent == nil {
		sb.WriteString("root:")
	} else {
		sb.WriteString("path: ")
	}
	if n.hasParam {
		sb.WriteString("{}")
	}
	sb.WriteString(strconv.Quote(n.anchor))
	if n.isLeaf() {
		sb.WriteString(" (leaf")
		if len(n.params) > 0 {
			sb.WriteString(" & params: ")
			sb.WriteString(strings.Join(n.params, ", "))
		}
		sb.WriteString(")")
	}

	sb.WriteByte('\n')
	for _, child := range n.children {
		child.string(sb, space+2)
	}
}
