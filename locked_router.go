// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

// LockedRouter is an exclusive view of a [Router], obtained with [Router.LockRouter].
type LockedRouter[K comparable] struct {
	r      *Router[K]
	locked bool
}

// LockRouter acquire a lock on the router which allow to perform multiple mutation while
// keeping a consistent view of the routing tree. Matching is blocked until the lock is released.
// LockedRouter's holder must always ensure to call Release in order to unlock the router.
func (wp *Router[K]) LockRouter() *LockedRouter[K] {
	wp.wmu.Lock()
	wp.mu.Lock()
	return &LockedRouter[K]{
		r:      wp,
		locked: true,
	}
}

// Insert registers a new route for the given key and template. See [Router.Insert] for the possible errors.
// This function is NOT safe for concurrent use by multiple goroutine and panic if called after lr.Release().
func (lr *LockedRouter[K]) Insert(key K, template string) error {
	lr.assertLock()
	return lr.r.rt.insert(key, template)
}

// Match is like [Router.Match], and sees every route inserted through lr.
// This function is NOT safe for concurrent use by multiple goroutine and panic if called after lr.Release().
func (lr *LockedRouter[K]) Match(path string) (key K, params Params, ok bool) {
	lr.assertLock()
	var values []string
	if leaf := lr.r.rt.match(path, &values); leaf != nil {
		return leaf.key, lr.r.rt.params(leaf, values), true
	}
	return
}

// Reverse is like [Router.Reverse], and sees every route inserted through lr.
// This function is NOT safe for concurrent use by multiple goroutine and panic if called after lr.Release().
func (lr *LockedRouter[K]) Reverse(key K, params Params) (string, error) {
	lr.assertLock()
	return lr.r.rt.reverse(key, params)
}

// Has returns true if a route is registered for key.
func (lr *LockedRouter[K]) Has(key K) bool {
	lr.assertLock()
	_, ok := lr.r.rt.leaves[key]
	return ok
}

// Release unlock the router. Calling this function on a released LockedRouter is a noop.
func (lr *LockedRouter[K]) Release() {
	if !lr.locked {
		return
	}
	lr.locked = false
	lr.r.mu.Unlock()
	lr.r.wmu.Unlock()
}

func (lr *LockedRouter[K]) assertLock() {
	if !lr.locked {
		panic("lock already released")
	}
}
