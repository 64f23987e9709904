// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package locklist

// CheckGroup - walk one group in both directions verifying ordering
// and linkage
//
// forward: every node visited exactly once, expirations never
// increase, the final node is the recorded tail
// backward: walking previous links from the tail reaches the head
func (list *List) CheckGroup(group string) bool {
	headId, ok := list.heads[group]
	if !ok {
		_, tailPresent := list.tails[group]
		return !tailPresent
	}

	visited := make(map[uint64]struct{})
	lastExpiration := ^uint64(0)
	lastId := nilNode

	for id := headId; nilNode != id; {
		n, ok := list.nodes[id]
		if !ok || group != n.group {
			return false
		}
		if _, seen := visited[id]; seen {
			return false
		}
		visited[id] = struct{}{}
		if n.expiration > lastExpiration {
			return false
		}
		if n.previous != lastId {
			return false
		}
		lastExpiration = n.expiration
		lastId = id
		id = n.next
	}

	if list.tails[group] != lastId {
		return false
	}

	// backward walk must reach the head in the same number of steps
	steps := 0
	for id := lastId; nilNode != id; id = list.nodes[id].previous {
		steps += 1
		if steps > len(visited) {
			return false
		}
		lastId = id
	}
	return lastId == headId && steps == len(visited)
}
