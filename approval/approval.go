// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package approval - operator delegation records
//
// a principal may let an operator act on its behalf for grant,
// revoke and withdraw calls, scoped to a whole token collection or
// to one token instance, approvals never expire on their own
package approval

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/roleregistry/record"
	"github.com/bitmark-inc/roleregistry/storage"
)

// Registry - the approval ledger
type Registry struct {
	pool storage.Handle
}

// New - create the ledger around its pool
func New(pool storage.Handle) *Registry {
	return &Registry{
		pool: pool,
	}
}

// key of a collection scoped approval
func collectionKey(principal record.Address, operator record.Address, tokenAddress record.Address) record.Digest {
	buffer := make([]byte, 0, 3*record.AddressLength)
	buffer = append(buffer, principal[:]...)
	buffer = append(buffer, operator[:]...)
	buffer = append(buffer, tokenAddress[:]...)
	return record.NewDigest(buffer)
}

// key of an instance scoped approval
func instanceKey(principal record.Address, operator record.Address, tokenAddress record.Address, tokenId *uint256.Int) record.Digest {
	buffer := make([]byte, 0, 3*record.AddressLength+32)
	buffer = append(buffer, principal[:]...)
	buffer = append(buffer, operator[:]...)
	buffer = append(buffer, tokenAddress[:]...)
	b32 := tokenId.Bytes32()
	buffer = append(buffer, b32[:]...)
	return record.NewDigest(buffer)
}

// SetApprovalForAll - approve or revoke an operator for every token
// of a collection
func (r *Registry) SetApprovalForAll(principal record.Address, operator record.Address, tokenAddress record.Address, approved bool) {
	r.set(collectionKey(principal, operator, tokenAddress), approved)
}

// Approve - approve or revoke an operator for one token instance
func (r *Registry) Approve(principal record.Address, operator record.Address, tokenAddress record.Address, tokenId *uint256.Int, approved bool) {
	r.set(instanceKey(principal, operator, tokenAddress, tokenId), approved)
}

// IsApproved - true if the operator may act for the principal on
// this token, instance scope first then collection scope
func (r *Registry) IsApproved(principal record.Address, operator record.Address, tokenAddress record.Address, tokenId *uint256.Int) bool {
	instance := instanceKey(principal, operator, tokenAddress, tokenId)
	if r.pool.Has(instance[:]) {
		return true
	}
	collection := collectionKey(principal, operator, tokenAddress)
	return r.pool.Has(collection[:])
}

// CanActFor - the authorisation test used by every engine mutation,
// an account always acts for itself
func (r *Registry) CanActFor(acting record.Address, principal record.Address, tokenAddress record.Address, tokenId *uint256.Int) bool {
	if acting == principal {
		return true
	}
	return r.IsApproved(principal, acting, tokenAddress, tokenId)
}

func (r *Registry) set(key record.Digest, approved bool) {
	if approved {
		r.pool.Put(key[:], []byte{0x01})
	} else {
		r.pool.Delete(key[:])
	}
}
