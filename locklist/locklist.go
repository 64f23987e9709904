// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package locklist

import (
	"github.com/bitmark-inc/roleregistry/fault"
)

// node ids are caller assigned and must not be zero, zero is the nil
// link sentinel
const nilNode = uint64(0)

// node - a single list entry
type node struct {
	group      string // owning group key, guards cross group removal
	expiration uint64 // absolute timestamp
	previous   uint64
	next       uint64
}

// List - the forest of per group lists
type List struct {
	heads map[string]uint64
	tails map[string]uint64
	nodes map[uint64]*node
}

// New - create an empty forest
func New() *List {
	return &List{
		heads: make(map[string]uint64),
		tails: make(map[string]uint64),
		nodes: make(map[uint64]*node),
	}
}

// Insert - link a new node into its group keeping descending
// expiration order, equal expirations go after existing ones
func (list *List) Insert(group string, id uint64, expiration uint64) error {
	if nilNode == id {
		return fault.ErrInvalidNodeId
	}
	if _, ok := list.nodes[id]; ok {
		return fault.ErrNodeAlreadyExists
	}

	n := &node{
		group:      group,
		expiration: expiration,
	}
	list.nodes[id] = n

	headId, ok := list.heads[group]
	if !ok { // group was empty: sole head and tail
		list.heads[group] = id
		list.tails[group] = id
		return nil
	}

	head := list.nodes[headId]
	if expiration > head.expiration {
		// strictly later than everything outstanding: new head
		n.next = headId
		head.previous = id
		list.heads[group] = id
		return nil
	}

	// scan for the last node at least as late as the new one
	afterId := headId
	after := head
	for nilNode != after.next {
		candidate := list.nodes[after.next]
		if candidate.expiration < expiration {
			break
		}
		afterId = after.next
		after = candidate
	}

	n.previous = afterId
	n.next = after.next
	if nilNode == after.next {
		list.tails[group] = id
	} else {
		list.nodes[after.next].previous = id
	}
	after.next = id
	return nil
}

// Remove - unlink a node, the group must match the one it was
// inserted under
func (list *List) Remove(group string, id uint64) error {
	n, ok := list.nodes[id]
	if !ok {
		return fault.ErrNodeNotFound
	}
	if group != n.group {
		return fault.ErrWrongGroup
	}

	if nilNode == n.previous {
		if nilNode == n.next { // sole node: group disappears
			delete(list.heads, group)
			delete(list.tails, group)
		} else { // promote successor to head
			list.nodes[n.next].previous = nilNode
			list.heads[group] = n.next
		}
	} else if nilNode == n.next { // tail removal
		list.nodes[n.previous].next = nilNode
		list.tails[group] = n.previous
	} else {
		list.nodes[n.previous].next = n.next
		list.nodes[n.next].previous = n.previous
	}

	delete(list.nodes, id)
	return nil
}

// Head - the node id and expiration of the latest outstanding lock
// of a group, ok is false if the group is empty
func (list *List) Head(group string) (uint64, uint64, bool) {
	headId, ok := list.heads[group]
	if !ok {
		return 0, 0, false
	}
	n := list.nodes[headId]
	return headId, n.expiration, true
}

// Expiration - the expiration date recorded for a node
func (list *List) Expiration(id uint64) (uint64, bool) {
	n, ok := list.nodes[id]
	if !ok {
		return 0, false
	}
	return n.expiration, true
}

// Count - number of nodes in one group
func (list *List) Count(group string) int {
	n := 0
	for id := list.heads[group]; nilNode != id; id = list.nodes[id].next {
		n += 1
	}
	return n
}
