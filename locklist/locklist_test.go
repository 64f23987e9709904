// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package locklist_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/roleregistry/fault"
	"github.com/bitmark-inc/roleregistry/locklist"
)

const group = "commitment-1"

func TestInsertOrdering(t *testing.T) {
	list := locklist.New()

	// out of order inserts with a duplicate expiration
	assert.NoError(t, list.Insert(group, 1, 500))
	assert.NoError(t, list.Insert(group, 2, 900))
	assert.NoError(t, list.Insert(group, 3, 700))
	assert.NoError(t, list.Insert(group, 4, 900))
	assert.NoError(t, list.Insert(group, 5, 100))

	assert.True(t, list.CheckGroup(group), "list invariant broken")
	assert.Equal(t, 5, list.Count(group))

	id, expiration, ok := list.Head(group)
	assert.True(t, ok)
	assert.Equal(t, uint64(900), expiration)

	// id 2 was inserted first so the tied id 4 goes after it
	assert.Equal(t, uint64(2), id)
}

func TestInsertErrors(t *testing.T) {
	list := locklist.New()

	err := list.Insert(group, 0, 500)
	assert.Equal(t, fault.ErrInvalidNodeId, err)

	assert.NoError(t, list.Insert(group, 7, 500))
	err = list.Insert(group, 7, 600)
	assert.Equal(t, fault.ErrNodeAlreadyExists, err)
}

func TestRemove(t *testing.T) {
	list := locklist.New()

	for i, expiration := range []uint64{300, 100, 500, 200, 400} {
		assert.NoError(t, list.Insert(group, uint64(i+1), expiration))
	}

	// middle removal
	assert.NoError(t, list.Remove(group, 1))
	assert.True(t, list.CheckGroup(group))
	assert.Equal(t, 4, list.Count(group))

	// head removal promotes the next node
	assert.NoError(t, list.Remove(group, 3))
	assert.True(t, list.CheckGroup(group))
	_, expiration, ok := list.Head(group)
	assert.True(t, ok)
	assert.Equal(t, uint64(400), expiration)

	// tail removal
	assert.NoError(t, list.Remove(group, 2))
	assert.True(t, list.CheckGroup(group))

	// drain the group entirely
	assert.NoError(t, list.Remove(group, 4))
	assert.NoError(t, list.Remove(group, 5))
	_, _, ok = list.Head(group)
	assert.False(t, ok, "emptied group still has a head")
	assert.True(t, list.CheckGroup(group))
}

func TestRemoveErrors(t *testing.T) {
	list := locklist.New()
	assert.NoError(t, list.Insert(group, 1, 500))

	err := list.Remove(group, 9)
	assert.Equal(t, fault.ErrNodeNotFound, err)

	// a stale or forged group key must not unlink the node
	err = list.Remove("commitment-2", 1)
	assert.Equal(t, fault.ErrWrongGroup, err)
	assert.Equal(t, 1, list.Count(group))
}

func TestIndependentGroups(t *testing.T) {
	list := locklist.New()

	assert.NoError(t, list.Insert("a", 1, 100))
	assert.NoError(t, list.Insert("b", 2, 200))
	assert.NoError(t, list.Insert("a", 3, 300))

	assert.Equal(t, 2, list.Count("a"))
	assert.Equal(t, 1, list.Count("b"))

	_, expiration, _ := list.Head("a")
	assert.Equal(t, uint64(300), expiration)
	_, expiration, _ = list.Head("b")
	assert.Equal(t, uint64(200), expiration)

	assert.True(t, list.CheckGroup("a"))
	assert.True(t, list.CheckGroup("b"))
}

// random inserts and removals with the invariant checked throughout
func TestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(0x5105))
	list := locklist.New()

	live := make(map[uint64]struct{})
	nextId := uint64(1)

	for i := 0; i < 1000; i += 1 {
		if 0 == r.Intn(3) && 0 != len(live) {
			var id uint64
			for id = range live {
				break
			}
			assert.NoError(t, list.Remove(group, id))
			delete(live, id)
		} else {
			assert.NoError(t, list.Insert(group, nextId, uint64(r.Intn(1000))))
			live[nextId] = struct{}{}
			nextId += 1
		}

		if !list.CheckGroup(group) {
			t.Fatalf("invariant broken after %d operations", i+1)
		}
		if len(live) != list.Count(group) {
			t.Fatalf("count: actual: %d  expected: %d", list.Count(group), len(live))
		}
	}
}
