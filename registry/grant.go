// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/roleregistry/fault"
	"github.com/bitmark-inc/roleregistry/messagebus"
	"github.com/bitmark-inc/roleregistry/record"
)

// GrantRole - create or replace one role assignment
//
// the acting account must be the grantor or an operator approved by
// it, the first grant on a grantor/token/tokenId tuple deposits the
// token amount into custody and creates its commitment, later grants
// reconcile the commitment to the newly requested amount but never
// below what a live non-revocable assignment still pins
//
// a slot already occupied by a live non-revocable assignment cannot
// be overwritten, an expired or revocable occupant can
//
// returns the commitment id addressing the assignment
func (r *Registry) GrantRole(acting record.Address, assignment *record.RoleAssignment, currentTime uint64) (uint64, error) {
	if nil == assignment || nil == assignment.TokenAmount {
		return 0, fault.ErrZeroAmount
	}

	a := *assignment
	if nil == a.TokenId {
		a.TokenId = new(uint256.Int)
	}

	if nil != r.supported {
		if _, ok := r.supported[a.Role]; !ok {
			return 0, fault.ErrInvalidRole
		}
	}
	if a.Role.IsZero() {
		return 0, fault.ErrInvalidRole
	}
	if a.ExpirationDate <= currentTime {
		return 0, fault.ErrExpirationInPast
	}
	if a.TokenAmount.IsZero() {
		return 0, fault.ErrZeroAmount
	}

	r.Lock()
	defer r.Unlock()

	if !r.approvals.CanActFor(acting, a.Grantor, a.TokenAddress, a.TokenId) {
		return 0, fault.ErrUnauthorized
	}

	err := r.trx.Begin()
	if nil != err {
		return 0, err
	}

	depositKey := record.DepositDigest(a.Grantor, a.TokenAddress, a.TokenId)
	commitmentId, found := r.slots.GetN(depositKey[:])

	staleLock := false
	if found {
		occupant := r.getAssignment(commitmentId, a.Role)
		if nil != occupant {
			if occupant.IsLocked(currentTime) {
				r.trx.Abort()
				return 0, fault.ErrSlotOccupiedAndActive
			}
			// stale index node of an expired lock
			staleLock = !occupant.Revocable
		}
		// the deposit cannot shrink below what a live non-revocable
		// assignment in another slot still guarantees its grantee
		if a.TokenAmount.Lt(r.encumberedAmount(commitmentId, a.Role, currentTime)) {
			r.trx.Abort()
			return 0, fault.ErrStillLocked
		}
		err = r.custody.Reconcile(commitmentId, a.TokenAmount)
		if nil != err {
			r.trx.Abort()
			return 0, err
		}
	} else {
		commitmentId, err = r.custody.Deposit(a.Grantor, a.TokenAddress, a.TokenId, a.TokenAmount)
		if nil != err {
			r.trx.Abort()
			return 0, err
		}
		r.slots.PutN(depositKey[:], commitmentId)
	}

	r.assignments.Put(record.AssignmentKey(commitmentId, a.Role), a.Pack())

	err = r.trx.Commit()
	if nil != err {
		return 0, err
	}

	// the lock index follows the stored assignments, it only moves
	// once the batch has reached the disk
	if staleLock {
		_ = r.locks.Remove(lockGroup(commitmentId), lockNodeId(commitmentId, a.Role))
	}
	if !a.Revocable {
		err = r.locks.Insert(lockGroup(commitmentId), lockNodeId(commitmentId, a.Role), a.ExpirationDate)
		if nil != err {
			r.log.Criticalf("lock index insert failed: commitment: %d  role: %s  error: %s", commitmentId, a.Role, err)
		}
	}

	r.log.Infof("grant: commitment: %d  role: %s  grantor: %s  grantee: %s  expires: %d",
		commitmentId, a.Role, a.Grantor, a.Grantee, a.ExpirationDate)

	messagebus.Send(messagebus.CommandRoleGranted, messagebus.RoleGranted{
		CommitmentId:   commitmentId,
		Role:           a.Role,
		TokenAddress:   a.TokenAddress,
		TokenId:        a.TokenId,
		Grantor:        a.Grantor,
		Grantee:        a.Grantee,
		ExpirationDate: a.ExpirationDate,
		Revocable:      a.Revocable,
		Data:           a.Data,
	})
	messagebus.Send(messagebus.CommandTokensCommitted, messagebus.CustodyChanged{
		CommitmentId: commitmentId,
		Grantor:      a.Grantor,
		TokenAddress: a.TokenAddress,
		TokenId:      a.TokenId,
		TokenAmount:  a.TokenAmount,
	})

	return commitmentId, nil
}
