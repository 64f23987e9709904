// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockindex_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/roleregistry/fault"
	"github.com/bitmark-inc/roleregistry/lockindex"
)

// both implementations must satisfy the same contract
func testImplementations(t *testing.T, test func(t *testing.T, index lockindex.Index)) {
	t.Run("list", func(t *testing.T) { test(t, lockindex.NewList()) })
	t.Run("tree", func(t *testing.T) { test(t, lockindex.NewTree()) })
}

func TestHeadTracksLatestExpiration(t *testing.T) {
	testImplementations(t, func(t *testing.T, index lockindex.Index) {
		assert.NoError(t, index.Insert("g", 1, 300))
		assert.NoError(t, index.Insert("g", 2, 800))
		assert.NoError(t, index.Insert("g", 3, 500))

		_, expiration, ok := index.Head("g")
		assert.True(t, ok)
		assert.Equal(t, uint64(800), expiration)

		assert.NoError(t, index.Remove("g", 2))
		_, expiration, ok = index.Head("g")
		assert.True(t, ok)
		assert.Equal(t, uint64(500), expiration)

		assert.NoError(t, index.Remove("g", 3))
		assert.NoError(t, index.Remove("g", 1))
		_, _, ok = index.Head("g")
		assert.False(t, ok)
	})
}

func TestGroupGuard(t *testing.T) {
	testImplementations(t, func(t *testing.T, index lockindex.Index) {
		assert.NoError(t, index.Insert("a", 1, 300))

		err := index.Remove("b", 1)
		assert.Equal(t, fault.ErrWrongGroup, err)
		assert.Equal(t, 1, index.Count("a"))

		err = index.Remove("a", 2)
		assert.Equal(t, fault.ErrNodeNotFound, err)

		err = index.Insert("a", 1, 400)
		assert.Equal(t, fault.ErrNodeAlreadyExists, err)

		err = index.Insert("a", 0, 400)
		assert.Equal(t, fault.ErrInvalidNodeId, err)
	})
}

func TestImplementationsAgree(t *testing.T) {
	list := lockindex.NewList()
	tree := lockindex.NewTree()

	r := rand.New(rand.NewSource(0x2089))
	live := make(map[uint64]struct{})
	nextId := uint64(1)

	for i := 0; i < 500; i += 1 {
		if 0 == r.Intn(3) && 0 != len(live) {
			var id uint64
			for id = range live {
				break
			}
			assert.NoError(t, list.Remove("g", id))
			assert.NoError(t, tree.Remove("g", id))
			delete(live, id)
		} else {
			expiration := uint64(r.Intn(10000))
			assert.NoError(t, list.Insert("g", nextId, expiration))
			assert.NoError(t, tree.Insert("g", nextId, expiration))
			live[nextId] = struct{}{}
			nextId += 1
		}

		assert.Equal(t, list.Count("g"), tree.Count("g"))

		_, listExpiration, listOk := list.Head("g")
		_, treeExpiration, treeOk := tree.Head("g")
		assert.Equal(t, listOk, treeOk)
		if listOk {
			assert.Equal(t, listExpiration, treeExpiration)
		}
	}
}
