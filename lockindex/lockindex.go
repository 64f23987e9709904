// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockindex

import (
	"github.com/bitmark-inc/roleregistry/avl"
	"github.com/bitmark-inc/roleregistry/locklist"
)

// Index - ordered index of outstanding non-revocable lock
// expirations grouped by an arbitrary key
type Index interface {

	// Insert - record a lock, ids are caller assigned and non zero
	Insert(group string, id uint64, expiration uint64) error

	// Remove - drop a lock, the group must match the insert
	Remove(group string, id uint64) error

	// Head - id and expiration of the latest outstanding lock
	Head(group string) (uint64, uint64, bool)

	// Count - number of outstanding locks in a group
	Count(group string) int
}

// NewList - index backed by the locklist forest
func NewList() Index {
	return locklist.New()
}

// NewTree - index backed by a forest of AVL trees
func NewTree() Index {
	return &treeIndex{
		groups:  make(map[string]*avl.Tree),
		entries: make(map[uint64]entry),
	}
}
