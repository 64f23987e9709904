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

// RevokeRole - delete one role assignment
//
// the supplied grantee must match the stored one, mismatches fail
// fast rather than deleting somebody else's assignment
//
// a live non-revocable assignment can only be revoked from the
// grantee side, the grantor cannot cancel a firm commitment early,
// once expired or if revocable either side may revoke
//
// no tokens move unless the engine was created with ReleaseOnRevoke
// and this was the commitment's last assignment
func (r *Registry) RevokeRole(acting record.Address, commitmentId uint64, role record.RoleId, grantee record.Address, currentTime uint64) error {
	r.Lock()
	defer r.Unlock()

	assignment := r.getAssignment(commitmentId, role)
	if nil == assignment {
		return fault.ErrRoleAssignmentNotFound
	}
	if assignment.Grantee != grantee {
		return fault.ErrGranteeMismatch
	}

	granteeSide := r.approvals.CanActFor(acting, assignment.Grantee, assignment.TokenAddress, assignment.TokenId)
	grantorSide := r.approvals.CanActFor(acting, assignment.Grantor, assignment.TokenAddress, assignment.TokenId)

	if assignment.IsLocked(currentTime) {
		if !granteeSide {
			if grantorSide {
				return fault.ErrNotRevocableAndNotExpired
			}
			return fault.ErrUnauthorized
		}
	} else if !granteeSide && !grantorSide {
		return fault.ErrUnauthorized
	}

	// pending deletes are not visible to a range scan until commit,
	// so decide "last assignment" before deleting
	lastAssignment := r.options.ReleaseOnRevoke && 1 == len(r.assignmentKeys(commitmentId))

	err := r.trx.Begin()
	if nil != err {
		return err
	}

	r.assignments.Delete(record.AssignmentKey(commitmentId, role))

	var released *record.Commitment
	if lastAssignment {
		released, err = r.custody.Release(commitmentId)
		if nil != err {
			r.trx.Abort()
			return err
		}
		depositKey := record.DepositDigest(released.Grantor, released.TokenAddress, released.TokenId)
		r.slots.Delete(depositKey[:])
	}

	err = r.trx.Commit()
	if nil != err {
		return err
	}

	// lock index mutation only after the batch reached the disk
	if !assignment.Revocable {
		_ = r.locks.Remove(lockGroup(commitmentId), lockNodeId(commitmentId, role))
	}

	r.log.Infof("revoke: commitment: %d  role: %s  grantee: %s", commitmentId, role, grantee)

	messagebus.Send(messagebus.CommandRoleRevoked, messagebus.RoleRevoked{
		CommitmentId: commitmentId,
		Role:         role,
		Grantee:      grantee,
	})
	if nil != released {
		messagebus.Send(messagebus.CommandTokensReleased, messagebus.CustodyChanged{
			CommitmentId: commitmentId,
			Grantor:      released.Grantor,
			TokenAddress: released.TokenAddress,
			TokenId:      released.TokenId,
			TokenAmount:  released.TokenAmount,
		})
	}

	return nil
}

// RevokeRoleFrom - revoke addressed by the grantor/token/tokenId
// tuple instead of the commitment id
func (r *Registry) RevokeRoleFrom(acting record.Address, grantor record.Address, tokenAddress record.Address, tokenId *uint256.Int, role record.RoleId, grantee record.Address, currentTime uint64) error {
	commitmentId, ok := r.commitmentIdOf(grantor, tokenAddress, tokenId)
	if !ok {
		return fault.ErrRoleAssignmentNotFound
	}
	return r.RevokeRole(acting, commitmentId, role, grantee, currentTime)
}
