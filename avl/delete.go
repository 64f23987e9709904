// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove a specific item from the tree
// returns the value of the removed node or nil if the key was absent
func (tree *Tree) Delete(key Item) interface{} {
	value, removed, _ := remove(key, &tree.root)
	if nil != tree.root {
		tree.root.up = nil
	}
	if removed {
		tree.count -= 1
	}
	return value
}

// internal delete routine
// the final flag indicates that the subtree height has decreased
func remove(key Item, pp **Node) (interface{}, bool, bool) {
	p := *pp
	if nil == p { // key not in tree
		return nil, false, false
	}

	value := interface{}(nil)
	removed := false
	h := false

	switch p.key.Compare(key) {
	case +1: // p.key > key
		value, removed, h = remove(key, &p.left)
		if h {
			h = shrunkLeft(pp)
		}

	case -1: // p.key < key
		value, removed, h = remove(key, &p.right)
		if h {
			h = shrunkRight(pp)
		}

	default: // found
		value = p.value
		if nil == p.left {
			*pp = p.right
			if nil != *pp {
				(*pp).up = p.up
			}
			h = true
		} else if nil == p.right {
			*pp = p.left
			(*pp).up = p.up
			h = true
		} else {
			// both branches present: move the highest key of the
			// left branch into this node then remove its old node
			pred := p.left.last()
			p.key = pred.key
			p.value = pred.value
			_, _, h = remove(pred.key, &p.left)
			if h {
				h = shrunkLeft(pp)
			}
		}
		removed = true
	}
	return value, removed, h
}

// rebalance after the left branch has shrunk
// returns true if the subtree height has decreased
func shrunkLeft(pp **Node) bool {
	h := true
	p := *pp
	switch p.balance {
	case -1:
		p.balance = 0
	case 0:
		p.balance = +1
		h = false
	default: // +1: rebalance
		p1 := p.right
		if p1.balance >= 0 {
			// single RR rotation
			b := p1.balance
			p = rotateRR(p)
			if 0 == b {
				p.balance = -1
				p.left.balance = +1
				h = false
			} else {
				p.balance = 0
				p.left.balance = 0
			}
		} else {
			// double RL rotation
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
			p.balance = 0
		}
		*pp = p
	}
	return h
}

// rebalance after the right branch has shrunk
// returns true if the subtree height has decreased
func shrunkRight(pp **Node) bool {
	h := true
	p := *pp
	switch p.balance {
	case +1:
		p.balance = 0
	case 0:
		p.balance = -1
		h = false
	default: // -1: rebalance
		p1 := p.left
		if p1.balance <= 0 {
			// single LL rotation
			b := p1.balance
			p = rotateLL(p)
			if 0 == b {
				p.balance = +1
				p.right.balance = -1
				h = false
			} else {
				p.balance = 0
				p.right.balance = 0
			}
		} else {
			// double LR rotation
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
			p.balance = 0
		}
		*pp = p
	}
	return h
}
