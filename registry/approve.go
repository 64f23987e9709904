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

// SetApprovalForAll - let an operator act for the acting account on
// every token of a collection, or withdraw that right
//
// the acting account is always the principal, nobody can edit another
// account's approvals
func (r *Registry) SetApprovalForAll(acting record.Address, operator record.Address, tokenAddress record.Address, approved bool) error {
	if acting == operator {
		return fault.ErrApprovalForSelf
	}

	r.Lock()
	defer r.Unlock()

	err := r.trx.Begin()
	if nil != err {
		return err
	}
	r.approvals.SetApprovalForAll(acting, operator, tokenAddress, approved)
	err = r.trx.Commit()
	if nil != err {
		return err
	}

	messagebus.Send(messagebus.CommandApprovalChanged, messagebus.ApprovalChanged{
		Principal:    acting,
		Operator:     operator,
		TokenAddress: tokenAddress,
		Approved:     approved,
	})
	return nil
}

// Approve - operator approval scoped to one token instance
func (r *Registry) Approve(acting record.Address, operator record.Address, tokenAddress record.Address, tokenId *uint256.Int, approved bool) error {
	if acting == operator {
		return fault.ErrApprovalForSelf
	}
	if nil == tokenId {
		tokenId = new(uint256.Int)
	}

	r.Lock()
	defer r.Unlock()

	err := r.trx.Begin()
	if nil != err {
		return err
	}
	r.approvals.Approve(acting, operator, tokenAddress, tokenId, approved)
	err = r.trx.Commit()
	if nil != err {
		return err
	}

	messagebus.Send(messagebus.CommandApprovalChanged, messagebus.ApprovalChanged{
		Principal:    acting,
		Operator:     operator,
		TokenAddress: tokenAddress,
		Approved:     approved,
	})
	return nil
}

// IsApprovedForAll - query one approval edge
func (r *Registry) IsApprovedForAll(principal record.Address, operator record.Address, tokenAddress record.Address, tokenId *uint256.Int) bool {
	if nil == tokenId {
		tokenId = new(uint256.Int)
	}
	r.RLock()
	defer r.RUnlock()
	return r.approvals.IsApproved(principal, operator, tokenAddress, tokenId)
}
