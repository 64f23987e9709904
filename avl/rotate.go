// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the rotations only relink nodes and repair parent pointers,
// balance factors are fixed by the caller since insert and delete
// need different adjustments

// single rotation: left subtree too tall
func rotateLL(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p
	p1.up = p.up
	p.up = p1
	return p1
}

// single rotation: right subtree too tall
func rotateRR(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p
	p1.up = p.up
	p.up = p1
	return p1
}

// double rotation: left child is right heavy
func rotateLR(p *Node) *Node {
	p1 := p.left
	p2 := p1.right
	p1.right = p2.left
	if nil != p1.right {
		p1.right.up = p1
	}
	p2.left = p1
	p1.up = p2
	p.left = p2.right
	if nil != p.left {
		p.left.up = p
	}
	p2.right = p
	p2.up = p.up
	p.up = p2
	return p2
}

// double rotation: right child is left heavy
func rotateRL(p *Node) *Node {
	p1 := p.right
	p2 := p1.left
	p1.left = p2.right
	if nil != p1.left {
		p1.left.up = p1
	}
	p2.right = p1
	p1.up = p2
	p.right = p2.left
	if nil != p.right {
		p.right.up = p
	}
	p2.left = p
	p2.up = p.up
	p.up = p2
	return p2
}
