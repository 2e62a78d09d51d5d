// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/waypoint/blob/master/LICENSE.txt.

package waypoint

// Tx is a write transaction on a [Router], created with [Router.NewTransaction].
type Tx[K comparable] struct {
	r    *Router[K]
	tmp  *routes[K]
	done bool
}

// NewTransaction creates a new transaction. A transaction allow to perform multiple insertion while keeping
// a consistent view of the routing tree. Unlike [LockedRouter], insertions are staged on a copy of the routes
// and only applied on Commit, so the router keeps matching paths against the committed routes in the meantime.
//
// It's safe to open multiple transactions concurrently, they are applied one after the other. However, a
// transaction itself is not thread safe and all Tx APIs should be run serially.
//
// Discard must always be call at the end of the transaction. Internally, Commit runs Discard but
// running it twice is perfectly OK.
func (wp *Router[K]) NewTransaction() *Tx[K] {
	wp.wmu.Lock()
	// Writers are serialized, so rt cannot change under our feet.
	return &Tx[K]{
		r:   wp,
		tmp: wp.rt.clone(),
	}
}

// Updates executes fn within a managed transaction. If fn returns no error, the transaction is committed,
// otherwise none of the routes inserted by fn are applied. Updates returns any error returned by fn.
func (wp *Router[K]) Updates(fn func(tx *Tx[K]) error) error {
	tx := wp.NewTransaction()
	defer func() {
		if p := recover(); p != nil {
			tx.Discard()
			panic(p)
		}
		tx.Discard()
	}()
	if err := fn(tx); err != nil {
		return err
	}
	tx.Commit()
	return nil
}

// Insert stages a new route for the given key and template. See [Router.Insert] for the possible errors.
// An error does not abort the transaction.
func (tx *Tx[K]) Insert(key K, template string) error {
	tx.assertOpen()
	return tx.tmp.insert(key, template)
}

// Match is like [Router.Match], and sees the routes staged in the transaction.
func (tx *Tx[K]) Match(path string) (key K, params Params, ok bool) {
	tx.assertOpen()
	var values []string
	if leaf := tx.tmp.match(path, &values); leaf != nil {
		return leaf.key, tx.tmp.params(leaf, values), true
	}
	return
}

// Reverse is like [Router.Reverse], and sees the routes staged in the transaction.
func (tx *Tx[K]) Reverse(key K, params Params) (string, error) {
	tx.assertOpen()
	return tx.tmp.reverse(key, params)
}

// Len returns the number of routes, including the staged ones.
func (tx *Tx[K]) Len() int {
	tx.assertOpen()
	return len(tx.tmp.leaves)
}

// Commit applies the staged routes and ends the transaction.
func (tx *Tx[K]) Commit() {
	tx.assertOpen()
	tx.r.mu.Lock()
	tx.r.rt = tx.tmp
	tx.r.mu.Unlock()
	tx.Discard()
}

// Discard the transaction. This function must always be call at the end of a transaction. Calling this
// function on a discarded transaction is a no-op.
func (tx *Tx[K]) Discard() {
	if tx.done {
		return
	}
	tx.done = true
	tx.tmp = nil
	tx.r.wmu.Unlock()
}

func (tx *Tx[K]) assertOpen() {
	if tx.done {
		panic("transaction already committed or discarded")
	}
}
