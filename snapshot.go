// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"fmt"
	"slices"

	"github.com/goccy/go-json"
	"github.com/tigerwill90/waypoint/internal/stringutil"
)

type snapshot[K comparable] struct {
	Routes []snapshotRoute[K] `json:"routes"`
	Root   *snapshotNode[K]   `json:"root"`
}

type snapshotRoute[K comparable] struct {
	Key      K      `json:"key"`
	Template string `json:"template"`
}

type snapshotNode[K comparable] struct {
	Anchor         string             `json:"anchor"`
	HasParameter   bool               `json:"hasParameter"`
	RouteKey       *K                 `json:"routeKey"`
	ParameterNames []string           `json:"parameterNames"`
	Children       []*snapshotNode[K] `json:"children"`
}

// MarshalJSON encodes the routing tree and the registered templates, so that the router can be restored
// without parsing and merging every template again. The key type K must be supported by the json encoder.
func (wp *Router[K]) MarshalJSON() ([]byte, error) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	s := snapshot[K]{
		Routes: make([]snapshotRoute[K], 0, len(wp.rt.leaves)),
		Root:   encodeNode(wp.rt.tree.root),
	}
	for key, template := range wp.rt.all() {
		s.Routes = append(s.Routes, snapshotRoute[K]{Key: key, Template: template})
	}

	return json.Marshal(s)
}

// UnmarshalJSON replaces all the routes of the router with the ones from a snapshot produced by
// [Router.MarshalJSON]. The router must be created with [New], and the snapshot is checked against the
// router placeholder pattern. If the snapshot is inconsistent, it returns an error that is [ErrInvalidSnapshot]
// and the router is left untouched.
func (wp *Router[K]) UnmarshalJSON(data []byte) error {
	var s snapshot[K]
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	wp.wmu.Lock()
	defer wp.wmu.Unlock()

	rt, err := decodeSnapshot(&s, &wp.cfg)
	if err != nil {
		return err
	}

	wp.mu.Lock()
	wp.rt = rt
	wp.mu.Unlock()
	return nil
}

func encodeNode[K comparable](n *node[K]) *snapshotNode[K] {
	sn := &snapshotNode[K]{
		Anchor:         n.anchor,
		HasParameter:   n.hasParam,
		ParameterNames: n.params,
		Children:       make([]*snapshotNode[K], 0, len(n.children)),
	}
	if n.isLeaf() {
		key := n.key
		sn.RouteKey = &key
	}
	if sn.ParameterNames == nil {
		sn.ParameterNames = []string{}
	}
	for _, child := range n.children {
		sn.Children = append(sn.Children, encodeNode(child))
	}
	return sn
}

func decodeSnapshot[K comparable](s *snapshot[K], cfg *config) (*routes[K], error) {
	if s.Root == nil {
		return nil, fmt.Errorf("%w: missing root node", ErrInvalidSnapshot)
	}
	if s.Root.Anchor != "" || s.Root.HasParameter || s.Root.RouteKey != nil {
		return nil, fmt.Errorf("%w: the root node must be empty", ErrInvalidSnapshot)
	}

	rt := newRoutes[K](cfg)
	for _, r := range s.Routes {
		if _, ok := rt.templates[r.Key]; ok {
			return nil, fmt.Errorf("%w: duplicate route key '%v'", ErrInvalidSnapshot, r.Key)
		}
		rt.templates[r.Key] = r.Template
	}

	for _, child := range s.Root.Children {
		if err := decodeNode(rt, rt.tree.root, child); err != nil {
			return nil, err
		}
	}
	if err := checkSiblings(rt.tree.root); err != nil {
		return nil, err
	}

	if len(rt.leaves) != len(rt.templates) {
		return nil, fmt.Errorf("%w: %d route(s) but %d leaf node(s)", ErrInvalidSnapshot, len(rt.templates), len(rt.leaves))
	}

	for key, leaf := range rt.leaves {
		template, ok := rt.templates[key]
		if !ok {
			return nil, fmt.Errorf("%w: no template for route '%v'", ErrInvalidSnapshot, key)
		}
		frags, params, err := parseRoute(template, cfg.placeholder, cfg.maxParams)
		if err != nil {
			return nil, fmt.Errorf("%w: route '%v': %w", ErrInvalidSnapshot, key, err)
		}
		if !slices.Equal(fragmentsShape(frags), leafShape(leaf)) || !slices.Equal(params, leaf.params) {
			return nil, fmt.Errorf("%w: template %s does not match the tree for route '%v'", ErrInvalidSnapshot, template, key)
		}
		rt.tree.maxParams = max(rt.tree.maxParams, len(params))
	}

	return rt, nil
}

func decodeNode[K comparable](rt *routes[K], parent *node[K], sn *snapshotNode[K]) error {
	if sn == nil {
		return fmt.Errorf("%w: null node", ErrInvalidSnapshot)
	}
	n := newNode[K](sn.Anchor, sn.HasParameter)
	if slices.ContainsFunc(parent.children, func(c *node[K]) bool { return compareNodes(c, n) == 0 }) {
		return fmt.Errorf("%w: duplicate node %q", ErrInvalidSnapshot, sn.Anchor)
	}
	parent.addChild(n)

	if sn.RouteKey != nil {
		key := *sn.RouteKey
		if _, ok := rt.leaves[key]; ok {
			return fmt.Errorf("%w: duplicate route key '%v'", ErrInvalidSnapshot, key)
		}
		n.setRoute(key, sn.ParameterNames)
		rt.leaves[key] = n
	} else if len(sn.ParameterNames) > 0 {
		return fmt.Errorf("%w: parameter names on a node without route key", ErrInvalidSnapshot)
	}

	if sn.RouteKey == nil && len(sn.Children) == 0 {
		return fmt.Errorf("%w: node %q leads to no route", ErrInvalidSnapshot, sn.Anchor)
	}

	for _, child := range sn.Children {
		if err := decodeNode(rt, n, child); err != nil {
			return err
		}
	}
	return checkSiblings(n)
}

// checkSiblings reports children of n with the same parameter flag sharing a common prefix. Insertion
// never produces them, and findSimilarChild relies on it.
func checkSiblings[K comparable](n *node[K]) error {
	for i, a := range n.children {
		for _, b := range n.children[i+1:] {
			if a.hasParam == b.hasParam && stringutil.CommonPrefixLength(a.anchor, b.anchor) > 0 {
				return fmt.Errorf("%w: sibling nodes %q and %q share a common prefix", ErrInvalidSnapshot, a.anchor, b.anchor)
			}
		}
	}
	return nil
}

// shapePart is a literal anchor, optionally preceded by a parameter. Templates reduced to the same
// shape match exactly the same paths.
type shapePart struct {
	anchor   string
	hasParam bool
}

func fragmentsShape(frags []fragment) []shapePart {
	shape := make([]shapePart, 0, len(frags))
	for _, frag := range frags {
		shape = appendShape(shape, frag.anchor, frag.hasParam)
	}
	return shape
}

func leafShape[K comparable](leaf *node[K]) []shapePart {
	var shape []shapePart
	for current := leaf; current != nil; current = current.parent {
		shape = append(shape, shapePart{anchor: current.anchor, hasParam: current.hasParam})
	}
	slices.Reverse(shape)

	// Literal nodes split from a single fragment are joined back.
	joined := make([]shapePart, 0, len(shape))
	for _, part := range shape {
		joined = appendShape(joined, part.anchor, part.hasParam)
	}
	return joined
}

// appendShape appends a part, merging a literal into the previous part.
func appendShape(shape []shapePart, anchor string, hasParam bool) []shapePart {
	if !hasParam && len(shape) > 0 {
		shape[len(shape)-1].anchor += anchor
		return shape
	}
	return append(shape, shapePart{anchor: anchor, hasParam: hasParam})
}
