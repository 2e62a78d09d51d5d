// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

import (
	"iter"
	"sync"
)

// Router matches paths against route templates, and builds paths back from a route key and its parameters.
// Routes are identified by a comparable key K chosen by the caller. A Router is safe for concurrent use: any number of
// goroutines may call [Router.Match] and [Router.Reverse] while routes are registered.
type Router[K comparable] struct {
	// Guards rt. Readers hold the read lock, only the writer swapping or mutating rt holds the write lock.
	mu sync.RWMutex
	// Serializes writers, including open transactions and locked routers.
	wmu  sync.Mutex
	rt   *routes[K]
	pool sync.Pool
	cfg  config
}

// RouterInfo hold information on the configured options and registered routes.
type RouterInfo struct {
	PlaceholderPattern  string
	MaxParamValueLength int
	MaxRouteParams      int
	// Routes is the number of registered routes.
	Routes int
	// MaxParams is the highest number of parameters of a registered route.
	MaxParams int
}

// New returns a ready to use instance of Router.
func New[K comparable](opts ...Option) (*Router[K], error) {
	wp := new(Router[K])
	wp.cfg = defaultConfig()
	for _, opt := range opts {
		if err := opt.apply(&wp.cfg); err != nil {
			return nil, err
		}
	}

	wp.rt = newRoutes[K](&wp.cfg)
	wp.pool = sync.Pool{
		New: func() any {
			values := make([]string, 0, 8)
			return &values
		},
	}
	return wp, nil
}

// MustNew is a convenience wrapper for [New] and panics on error.
func MustNew[K comparable](opts ...Option) *Router[K] {
	wp, err := New[K](opts...)
	if err != nil {
		panic(err)
	}
	return wp
}

// Insert registers a new route for the given key and template. If an error occurs, it returns one of the following:
//   - [ErrInvalidRoute]: If a placeholder has no name, a name is used twice or the template has too many parameters.
//   - [ErrAmbiguousRoute]: If the template always matches the same paths as a route registered under another key.
//   - [ErrRouteKeyExist]: If the key is already bound to a different template.
//
// Registering the same key and template twice is a noop. It's safe to add a new route while the router is matching
// paths. This function is safe for concurrent use by multiple goroutine.
func (wp *Router[K]) Insert(key K, template string) error {
	wp.wmu.Lock()
	defer wp.wmu.Unlock()
	wp.mu.Lock()
	defer wp.mu.Unlock()
	return wp.rt.insert(key, template)
}

// MustInsert registers a new route for the given key and template and returns the router to allow chaining.
// This function is a convenience wrapper for the [Router.Insert] function and panics on error.
func (wp *Router[K]) MustInsert(key K, template string) *Router[K] {
	if err := wp.Insert(key, template); err != nil {
		panic(err)
	}
	return wp
}

// Match returns the key of the first route matching path, with the decoded parameter values in template order.
// Routes are tried from the most specific to the least specific anchor. If the configured decoder fails, the raw
// value is kept. This function is safe for concurrent use by multiple goroutine.
func (wp *Router[K]) Match(path string) (key K, params Params, ok bool) {
	vp := wp.pool.Get().(*[]string)
	*vp = (*vp)[:0]

	wp.mu.RLock()
	if leaf := wp.rt.match(path, vp); leaf != nil {
		key, params, ok = leaf.key, wp.rt.params(leaf, *vp), true
	}
	wp.mu.RUnlock()

	clear(*vp)
	wp.pool.Put(vp)
	return
}

// Reverse builds the path of the route registered for key, encoding each parameter value with the configured
// encoder. Parameters which are not part of the route are ignored. If an error occurs, it returns one of the following:
//   - [ErrRouteNotFound]: If no route is registered for key.
//   - [ErrMissingParamValue]: If params has no value for a parameter of the route.
//
// This function is safe for concurrent use by multiple goroutine.
func (wp *Router[K]) Reverse(key K, params Params) (string, error) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.rt.reverse(key, params)
}

// ReverseValues is like [Router.Reverse] but takes the parameter values in template order. It returns
// [ErrMissingParamValue] or [ErrTooManyParamValues] if the number of values does not match the number of
// parameters of the route.
func (wp *Router[K]) ReverseValues(key K, values ...string) (string, error) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.rt.reverseValues(key, values)
}

// Template returns the template registered for key.
func (wp *Router[K]) Template(key K) (string, bool) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	template, ok := wp.rt.templates[key]
	return template, ok
}

// Has returns true if a route is registered for key.
func (wp *Router[K]) Has(key K) bool {
	_, ok := wp.Template(key)
	return ok
}

// Len returns the number of registered routes.
func (wp *Router[K]) Len() int {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return len(wp.rt.leaves)
}

// Routes returns a range iterator over the key and template of all registered routes, in matching order.
// The iterator works on a snapshot taken on the first iteration, so it's safe to register new routes
// while iterating.
func (wp *Router[K]) Routes() iter.Seq2[K, string] {
	return func(yield func(K, string) bool) {
		type route struct {
			key      K
			template string
		}

		wp.mu.RLock()
		snapshot := make([]route, 0, len(wp.rt.leaves))
		for key, template := range wp.rt.all() {
			snapshot = append(snapshot, route{key, template})
		}
		wp.mu.RUnlock()

		for _, r := range snapshot {
			if !yield(r.key, r.template) {
				return
			}
		}
	}
}

// Info returns information on the configured options and registered routes.
func (wp *Router[K]) Info() RouterInfo {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return RouterInfo{
		PlaceholderPattern:  wp.cfg.placeholder.String(),
		MaxParamValueLength: wp.cfg.maxParamValueLength,
		MaxRouteParams:      wp.cfg.maxParams,
		Routes:              len(wp.rt.leaves),
		MaxParams:           wp.rt.tree.maxParams,
	}
}

// String returns an indented representation of the routing tree, useful for debugging.
func (wp *Router[K]) String() string {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.rt.tree.root.String()
}
