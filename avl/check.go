// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckUp - check the parent pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: parent pointer checker
func checkUp(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckBalance - verify that every stored balance factor matches the
// actual subtree heights and stays within the AVL bound
func (tree *Tree) CheckBalance() bool {
	_, ok := checkHeight(tree.root)
	return ok
}

// internal: recompute heights, false on any mismatch
func checkHeight(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okLeft := checkHeight(p.left)
	hr, okRight := checkHeight(p.right)
	if !okLeft || !okRight {
		return 0, false
	}
	if p.balance != hr-hl || p.balance < -1 || p.balance > +1 {
		return 0, false
	}
	h := hl
	if hr > h {
		h = hr
	}
	return h + 1, true
}

// CheckOrder - verify that an in-order walk is strictly ascending
// and visits the counted number of nodes
func (tree *Tree) CheckOrder() bool {
	n := 0
	var previous Item
	for p := tree.First(); nil != p; p = p.Next() {
		if nil != previous && previous.Compare(p.key) >= 0 {
			return false
		}
		previous = p.key
		n += 1
	}
	return n == tree.count
}
