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

// Withdraw - release a commitment and return its tokens
//
// the acting account must be the commitment's grantor or an operator
// approved by it, the call fails with StillLocked while the lock
// index holds any expiration still in the future, residual expired
// assignments and their stale lock nodes are cleared here
func (r *Registry) Withdraw(acting record.Address, commitmentId uint64, currentTime uint64) error {
	r.Lock()
	defer r.Unlock()

	commitment, err := r.custody.Get(commitmentId)
	if nil != err {
		return err
	}

	if !r.approvals.CanActFor(acting, commitment.Grantor, commitment.TokenAddress, commitment.TokenId) {
		return fault.ErrUnauthorized
	}

	group := lockGroup(commitmentId)
	if _, expiration, ok := r.locks.Head(group); ok && expiration > currentTime {
		return fault.ErrStillLocked
	}

	err = r.trx.Begin()
	if nil != err {
		return err
	}

	removed := []record.RoleId(nil)
	for _, key := range r.assignmentKeys(commitmentId) {
		r.assignments.Delete(key)
		role := record.RoleId{}
		copy(role[:], key[8:])
		removed = append(removed, role)
	}

	released, err := r.custody.Release(commitmentId)
	if nil != err {
		r.trx.Abort()
		return err
	}

	depositKey := record.DepositDigest(released.Grantor, released.TokenAddress, released.TokenId)
	r.slots.Delete(depositKey[:])

	err = r.trx.Commit()
	if nil != err {
		return err
	}

	r.log.Infof("withdraw: commitment: %d  grantor: %s  amount: %s",
		commitmentId, released.Grantor, released.TokenAmount)

	// lock index mutation only after the batch reached the disk
	for _, role := range removed {
		_ = r.locks.Remove(group, lockNodeId(commitmentId, role))
		messagebus.Send(messagebus.CommandRoleWithdrawn, messagebus.RoleRevoked{
			CommitmentId: commitmentId,
			Role:         role,
		})
	}
	messagebus.Send(messagebus.CommandTokensReleased, messagebus.CustodyChanged{
		CommitmentId: commitmentId,
		Grantor:      released.Grantor,
		TokenAddress: released.TokenAddress,
		TokenId:      released.TokenId,
		TokenAmount:  released.TokenAmount,
	})

	return nil
}

// WithdrawFrom - withdraw addressed by the grantor/token/tokenId
// tuple instead of the commitment id
func (r *Registry) WithdrawFrom(acting record.Address, grantor record.Address, tokenAddress record.Address, tokenId *uint256.Int, currentTime uint64) error {
	commitmentId, ok := r.commitmentIdOf(grantor, tokenAddress, tokenId)
	if !ok {
		return fault.ErrCommitmentNotFound
	}
	return r.Withdraw(acting, commitmentId, currentTime)
}
