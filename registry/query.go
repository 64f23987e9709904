// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/roleregistry/record"
)

// all queries apply the same liveness test as the mutation paths, an
// assignment past its expiration date reads as absent, missing keys
// give zero sentinels rather than errors

// HasRole - true if a live assignment for this grantee occupies the slot
func (r *Registry) HasRole(commitmentId uint64, role record.RoleId, grantee record.Address, currentTime uint64) bool {
	r.RLock()
	defer r.RUnlock()

	assignment := r.getAssignment(commitmentId, role)
	if nil == assignment || assignment.Grantee != grantee {
		return false
	}
	return assignment.IsActive(currentTime)
}

// HasRoleFrom - HasRole addressed by the grantor/token/tokenId tuple
func (r *Registry) HasRoleFrom(grantor record.Address, tokenAddress record.Address, tokenId *uint256.Int, role record.RoleId, grantee record.Address, currentTime uint64) bool {
	commitmentId, ok := r.commitmentIdOf(grantor, tokenAddress, tokenId)
	if !ok {
		return false
	}
	return r.HasRole(commitmentId, role, grantee, currentTime)
}

// RoleData - the opaque data of a live assignment, nil otherwise
func (r *Registry) RoleData(commitmentId uint64, role record.RoleId, currentTime uint64) []byte {
	r.RLock()
	defer r.RUnlock()

	assignment := r.getAssignment(commitmentId, role)
	if nil == assignment || !assignment.IsActive(currentTime) {
		return nil
	}
	return assignment.Data
}

// RoleExpirationDate - expiration of a live assignment, zero otherwise
func (r *Registry) RoleExpirationDate(commitmentId uint64, role record.RoleId, currentTime uint64) uint64 {
	r.RLock()
	defer r.RUnlock()

	assignment := r.getAssignment(commitmentId, role)
	if nil == assignment || !assignment.IsActive(currentTime) {
		return 0
	}
	return assignment.ExpirationDate
}

// IsRoleRevocable - revocability of a live assignment, false otherwise
func (r *Registry) IsRoleRevocable(commitmentId uint64, role record.RoleId, currentTime uint64) bool {
	r.RLock()
	defer r.RUnlock()

	assignment := r.getAssignment(commitmentId, role)
	if nil == assignment || !assignment.IsActive(currentTime) {
		return false
	}
	return assignment.Revocable
}

// CommitmentOf - the commitment id of a grantor/token/tokenId tuple
func (r *Registry) CommitmentOf(grantor record.Address, tokenAddress record.Address, tokenId *uint256.Int) (uint64, bool) {
	return r.commitmentIdOf(grantor, tokenAddress, tokenId)
}

// CommittedBalance - total units in custody for one grantor on one
// token instance
func (r *Registry) CommittedBalance(grantor record.Address, tokenAddress record.Address, tokenId *uint256.Int) *uint256.Int {
	if nil == tokenId {
		tokenId = new(uint256.Int)
	}
	r.RLock()
	defer r.RUnlock()
	return r.custody.CommittedBalance(grantor, tokenAddress, tokenId)
}

// OutstandingLocks - number of non-revocable lock entries indexed
// for one commitment, stale expired entries included
func (r *Registry) OutstandingLocks(commitmentId uint64) int {
	r.RLock()
	defer r.RUnlock()
	return r.locks.Count(lockGroup(commitmentId))
}

func (r *Registry) commitmentIdOf(grantor record.Address, tokenAddress record.Address, tokenId *uint256.Int) (uint64, bool) {
	if nil == tokenId {
		tokenId = new(uint256.Int)
	}
	depositKey := record.DepositDigest(grantor, tokenAddress, tokenId)

	r.RLock()
	defer r.RUnlock()
	return r.slots.GetN(depositKey[:])
}
