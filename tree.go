// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"fmt"
	"strings"

	"github.com/tigerwill90/waypoint/internal/bytesconv"
	"github.com/tigerwill90/waypoint/internal/stringutil"
)

// tree is a prefix tree of route templates. A tree is not safe for concurrent use: insert must
// be called by a single writer, while lookup and stringify may run concurrently as long as no
// insert is in progress.
type tree[K comparable] struct {
	root      *node[K]
	maxParams int
}

func newTree[K comparable]() *tree[K] {
	return &tree[K]{
		root: newNode[K]("", false),
	}
}

// insert merges the fragments of a template into the tree and returns the node where the
// route terminates. It returns a *RouteConflictError if another route already terminates on
// that node. Inserting the same key with the same fragments twice is a no-op.
// insert is not safe for concurrent use.
func (t *tree[K]) insert(key K, frags []fragment, params []string) (*node[K], error) {
	if len(frags) == 0 {
		panic("internal error: a template has at least one fragment")
	}

	current := t.root
	for i, frag := range frags {
		var err error
		current, err = current.merge(frag.anchor, frag.hasParam, key, i == len(frags)-1, params)
		if err != nil {
			return nil, err
		}
	}

	t.maxParams = max(t.maxParams, len(params))
	return current, nil
}

// merge applies a single fragment to the children of n and returns the node to descend into.
func (n *node[K]) merge(anchor string, hasParam bool, key K, terminal bool, params []string) (*node[K], error) {
	child, cpl := n.findSimilarChild(anchor, hasParam)
	switch {
	case child == nil:
		return n.mergeNew(anchor, hasParam, key, terminal, params), nil
	case child.anchor == anchor:
		// e.g. fragment "/product/" when "/product/" already exist.
		return child.mergeJoin(key, terminal, params)
	case cpl == len(child.anchor):
		// e.g. fragment "/product/all" with existing "/product/" child. The remaining "all" is merged
		// into the child. The parameter, if any, is consumed by the child.
		return child.merge(anchor[cpl:], false, key, terminal, params)
	case cpl == len(anchor):
		// e.g. fragment "/product" with existing "/product/" child.
		// /product/      =>   /product
		//                     └── /
		return n.mergeAddToNew(child, anchor, hasParam, key, terminal, params, cpl), nil
	default:
		// e.g. fragment "/profile" with existing "/product/" child.
		// /product/      =>   /pro
		//                     ├── duct/
		//                     └── file
		return n.mergeIntermediate(child, anchor, hasParam, key, terminal, params, cpl), nil
	}
}

func (n *node[K]) mergeNew(anchor string, hasParam bool, key K, terminal bool, params []string) *node[K] {
	nn := newNode[K](anchor, hasParam)
	if terminal {
		nn.setRoute(key, params)
	}
	n.addChild(nn)
	return nn
}

func (n *node[K]) mergeJoin(key K, terminal bool, params []string) (*node[K], error) {
	if !terminal {
		return n, nil
	}

	if n.isLeaf() {
		if n.key != key {
			return nil, &RouteConflictError{Key: key, Existing: n.key}
		}
		return n, nil
	}

	n.setRoute(key, params)
	return n, nil
}

func (n *node[K]) mergeAddToNew(child *node[K], anchor string, hasParam bool, key K, terminal bool, params []string, cpl int) *node[K] {
	nn := newNode[K](anchor, hasParam)
	if terminal {
		nn.setRoute(key, params)
	}

	n.removeChild(child)
	child.anchor = child.anchor[cpl:]
	child.hasParam = false
	nn.addChild(child)
	n.addChild(nn)

	return nn
}

func (n *node[K]) mergeIntermediate(child *node[K], anchor string, hasParam bool, key K, terminal bool, params []string, cpl int) *node[K] {
	nn := newNode[K](anchor[cpl:], false)
	if terminal {
		nn.setRoute(key, params)
	}

	n.removeChild(child)
	child.anchor = child.anchor[cpl:]
	child.hasParam = false

	// The splitter takes over the parameter, if any, since it now comes first.
	splitter := newNode[K](anchor[:cpl], hasParam)
	splitter.addChild(child)
	splitter.addChild(nn)
	n.addChild(splitter)

	return nn
}

// findSimilarChild returns the first child with the same parameter flag as the fragment which
// either has the exact same anchor or share a non-empty common prefix with it.
func (n *node[K]) findSimilarChild(anchor string, hasParam bool) (*node[K], int) {
	for _, child := range n.children {
		if child.hasParam != hasParam {
			continue
		}
		// Check identity first, so that empty anchors join as well.
		if child.anchor == anchor {
			return child, len(anchor)
		}
		if cpl := stringutil.CommonPrefixLength(anchor, child.anchor); cpl > 0 {
			return child, cpl
		}
	}
	return nil, 0
}

// lookup returns the leaf matching path or nil. Parameter values are appended to values in
// template order. For a parameter node with a non-empty anchor, the anchor is only searched within
// the first maxValueLen+len(anchor) bytes of the remaining path.
func (t *tree[K]) lookup(path string, maxValueLen int, values *[]string) *node[K] {
	return t.root.lookup(path, maxValueLen, values)
}

func (n *node[K]) lookup(path string, maxValueLen int, values *[]string) *node[K] {
	var captured bool
	if n.hasParam {
		// A parameter value is at least one byte long.
		if len(path) == 0 {
			return nil
		}

		idx := len(path)
		if n.anchor != "" {
			// Written to not overflow when maxValueLen is close to math.MaxInt.
			limit := len(path)
			if maxValueLen < len(path)-len(n.anchor) {
				limit = maxValueLen + len(n.anchor)
			}
			idx = stringutil.IndexWithin(path, n.anchor, limit)
			if idx < 0 {
				return nil
			}
		}

		*values = append(*values, path[:idx])
		path = path[idx+len(n.anchor):]
		captured = true
	} else {
		if !strings.HasPrefix(path, n.anchor) {
			return nil
		}
		path = path[len(n.anchor):]
	}

	for _, child := range n.children {
		if leaf := child.lookup(path, maxValueLen, values); leaf != nil {
			return leaf
		}
	}

	if len(path) == 0 && n.isLeaf() {
		return n
	}

	if captured {
		*values = (*values)[:len(*values)-1]
	}
	return nil
}

// stringify rebuilds the path of the route terminating at leaf. Values must be provided in
// template order and their count must match the number of parameter nodes from leaf to root.
func (t *tree[K]) stringify(leaf *node[K], values []string) (string, error) {
	var (
		size int
		used int
		top  *node[K]
	)

	for current := leaf; current != nil; current = current.parent {
		size += len(current.anchor)
		if current.hasParam {
			if used == len(values) {
				return "", fmt.Errorf("%w: got %d value(s) for more parameters", ErrMissingParamValue, len(values))
			}
			used++
			size += len(values[len(values)-used])
		}
		top = current
	}

	if top != t.root {
		panic("internal error: broken parent reference, the node is detached from the tree")
	}

	if used < len(values) {
		return "", fmt.Errorf("%w: got %d value(s) for %d parameter(s)", ErrTooManyParamValues, len(values), used)
	}

	buf := make([]byte, size)
	i := size
	next := len(values) - 1
	for current := leaf; current != nil; current = current.parent {
		i -= len(current.anchor)
		copy(buf[i:], current.anchor)
		if current.hasParam {
			i -= len(values[next])
			copy(buf[i:], values[next])
			next--
		}
	}

	return bytesconv.String(buf), nil
}
