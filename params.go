// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"maps"
	"slices"
)

type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of route parameters. When returned by [Router.Match], the order is the order
// of the placeholders in the route template.
type Params []Param

// ParamsFromMap returns the parameters held by m, sorted by key.
func ParamsFromMap(m map[string]string) Params {
	params := make(Params, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		params = append(params, Param{Key: k, Value: m[k]})
	}
	return params
}

// Get the matching parameter value by name.
func (p Params) Get(name string) string {
	for i := range p {
		if p[i].Key == name {
			return p[i].Value
		}
	}
	return ""
}

// Lookup returns the value of the parameter name and whether it exists.
func (p Params) Lookup(name string) (string, bool) {
	for i := range p {
		if p[i].Key == name {
			return p[i].Value, true
		}
	}
	return "", false
}

// Has checks whether the parameter exists by name.
func (p Params) Has(name string) bool {
	_, ok := p.Lookup(name)
	return ok
}

// Clone make a copy of Params.
func (p Params) Clone() Params {
	cloned := make(Params, len(p))
	copy(cloned, p)
	return cloned
}

// Map returns the parameters as a map.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for i := range p {
		m[p[i].Key] = p[i].Value
	}
	return m
}
