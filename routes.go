// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"errors"
	"fmt"
	"log/slog"
)

// routes holds a tree along with the indexes needed to reverse a route by key. A routes is
// not safe for concurrent use, the owner must serialize writers and guard readers.
type routes[K comparable] struct {
	tree      *tree[K]
	leaves    map[K]*node[K]
	templates map[K]string
	cfg       *config
}

func newRoutes[K comparable](cfg *config) *routes[K] {
	return &routes[K]{
		tree:      newTree[K](),
		leaves:    make(map[K]*node[K]),
		templates: make(map[K]string),
		cfg:       cfg,
	}
}

func (rt *routes[K]) insert(key K, template string) error {
	if existing, ok := rt.templates[key]; ok {
		if existing == template {
			return nil
		}
		return &RouteKeyConflictError{Key: key, Template: template, ExistingTemplate: existing}
	}

	frags, params, err := parseRoute(template, rt.cfg.placeholder, rt.cfg.maxParams)
	if err != nil {
		return err
	}

	leaf, err := rt.tree.insert(key, frags, params)
	if err != nil {
		var conflict *RouteConflictError
		if errors.As(err, &conflict) {
			conflict.Template = template
			if k, ok := conflict.Existing.(K); ok {
				conflict.ExistingTemplate = rt.templates[k]
			}
		}
		return err
	}

	rt.leaves[key] = leaf
	rt.templates[key] = template
	rt.cfg.logger.Debug("route registered", slog.Any("key", key), slog.String("template", template))
	return nil
}

// match returns the leaf matching path, appending the raw parameter values to values.
func (rt *routes[K]) match(path string, values *[]string) *node[K] {
	return rt.tree.lookup(path, rt.cfg.maxParamValueLength, values)
}

// params decodes the raw values captured for leaf.
func (rt *routes[K]) params(leaf *node[K], values []string) Params {
	if len(values) == 0 {
		return nil
	}

	params := make(Params, len(values))
	for i, raw := range values {
		params[i] = Param{Key: leaf.params[i], Value: rt.decode(leaf.params[i], raw)}
	}
	return params
}

func (rt *routes[K]) decode(name, raw string) string {
	value, err := rt.cfg.decoder(raw)
	if err != nil {
		rt.cfg.logger.Warn(
			"unable to decode parameter value, using raw value",
			slog.String("param", name),
			slog.String("value", raw),
			slog.Any("error", err),
		)
		return raw
	}
	return value
}

func (rt *routes[K]) reverse(key K, params Params) (string, error) {
	leaf, ok := rt.leaves[key]
	if !ok {
		return "", newRouteNotFoundError(key)
	}

	values := make([]string, len(leaf.params))
	for i, name := range leaf.params {
		value, ok := params.Lookup(name)
		if !ok {
			return "", fmt.Errorf("%w: no value for parameter %q of route '%v'", ErrMissingParamValue, name, key)
		}
		values[i] = rt.cfg.encoder(value)
	}

	return rt.tree.stringify(leaf, values)
}

func (rt *routes[K]) reverseValues(key K, values []string) (string, error) {
	leaf, ok := rt.leaves[key]
	if !ok {
		return "", newRouteNotFoundError(key)
	}

	encoded := make([]string, len(values))
	for i := range values {
		encoded[i] = rt.cfg.encoder(values[i])
	}

	return rt.tree.stringify(leaf, encoded)
}

// clone rebuilds an independent copy by inserting every route again, in tree order.
func (rt *routes[K]) clone() *routes[K] {
	silent := *rt.cfg
	silent.logger = slog.New(slog.DiscardHandler)

	c := newRoutes[K](&silent)
	for key, template := range rt.all() {
		if err := c.insert(key, template); err != nil {
			// Safeguard against regression on the tree (this should never happen).
			panic("internal error: unexpected error while cloning routes: " + err.Error())
		}
	}
	c.cfg = rt.cfg
	return c
}
