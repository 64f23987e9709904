// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockindex

import (
	"github.com/bitmark-inc/roleregistry/avl"
	"github.com/bitmark-inc/roleregistry/fault"
)

// tree keys order by expiration first so that Last() is the latest
// outstanding lock, the node id disambiguates equal expirations
type lockKey struct {
	expiration uint64
	id         uint64
}

// Compare - the avl.Item ordering
func (k lockKey) Compare(x interface{}) int {
	o := x.(lockKey)
	switch {
	case k.expiration < o.expiration:
		return -1
	case k.expiration > o.expiration:
		return +1
	case k.id < o.id:
		return -1
	case k.id > o.id:
		return +1
	default:
		return 0
	}
}

// remembers which group a node went into, and under which
// expiration, so removal can rebuild the tree key
type entry struct {
	group      string
	expiration uint64
}

type treeIndex struct {
	groups  map[string]*avl.Tree
	entries map[uint64]entry
}

func (x *treeIndex) Insert(group string, id uint64, expiration uint64) error {
	if 0 == id {
		return fault.ErrInvalidNodeId
	}
	if _, ok := x.entries[id]; ok {
		return fault.ErrNodeAlreadyExists
	}

	g, ok := x.groups[group]
	if !ok {
		g = avl.New()
		x.groups[group] = g
	}
	g.Insert(lockKey{expiration: expiration, id: id}, id)
	x.entries[id] = entry{group: group, expiration: expiration}
	return nil
}

func (x *treeIndex) Remove(group string, id uint64) error {
	e, ok := x.entries[id]
	if !ok {
		return fault.ErrNodeNotFound
	}
	if group != e.group {
		return fault.ErrWrongGroup
	}

	g := x.groups[group]
	g.Delete(lockKey{expiration: e.expiration, id: id})
	if g.IsEmpty() {
		delete(x.groups, group)
	}
	delete(x.entries, id)
	return nil
}

func (x *treeIndex) Head(group string) (uint64, uint64, bool) {
	g, ok := x.groups[group]
	if !ok {
		return 0, 0, false
	}
	p := g.Last()
	key := p.Key().(lockKey)
	return key.id, key.expiration, true
}

func (x *treeIndex) Count(group string) int {
	g, ok := x.groups[group]
	if !ok {
		return 0
	}
	return g.Count()
}
