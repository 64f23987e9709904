// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
// returns true if a new node was added, false if an existing
// node just had its value replaced
func (tree *Tree) Insert(key Item, value interface{}) bool {
	root, added, _ := insert(key, value, tree.root)
	tree.root = root
	tree.root.up = nil
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
// returns the possibly updated subtree root, the added flag and a
// flag indicating that the subtree height has increased
func insert(key Item, value interface{}, p *Node) (*Node, bool, bool) {
	if nil == p { // empty position: attach new node
		p = &Node{
			key:   key,
			value: value,
		}
		return p, true, true
	}

	added := false
	h := false

	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added, h = insert(key, value, p.left)
		p.left.up = p
		if h {
			// left branch has grown
			switch p.balance {
			case +1:
				p.balance = 0
				h = false
			case 0:
				p.balance = -1
			default: // -1: rebalance
				p1 := p.left
				if -1 == p1.balance {
					p = rotateLL(p)
					p.right.balance = 0
				} else {
					b := p1.right.balance
					p = rotateLR(p)
					if -1 == b {
						p.right.balance = +1
					} else {
						p.right.balance = 0
					}
					if +1 == b {
						p.left.balance = -1
					} else {
						p.left.balance = 0
					}
				}
				p.balance = 0
				h = false
			}
		}

	case -1: // p.key < key
		p.right, added, h = insert(key, value, p.right)
		p.right.up = p
		if h {
			// right branch has grown
			switch p.balance {
			case -1:
				p.balance = 0
				h = false
			case 0:
				p.balance = +1
			default: // +1: rebalance
				p1 := p.right
				if +1 == p1.balance {
					p = rotateRR(p)
					p.left.balance = 0
				} else {
					b := p1.left.balance
					p = rotateRL(p)
					if +1 == b {
						p.left.balance = -1
					} else {
						p.left.balance = 0
					}
					if -1 == b {
						p.right.balance = +1
					} else {
						p.right.balance = 0
					}
				}
				p.balance = 0
				h = false
			}
		}

	default: // duplicate key: replace the value
		p.value = value
	}
	return p, added, h
}
