// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - the commitment ledger
//
// every token unit the engine holds is backed by exactly one
// commitment record, the ledger keeps the stored amounts and the
// transferor's balances moving in lock step: a record is only
// written after the matching transfer has succeeded
package custody

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/roleregistry/fault"
	"github.com/bitmark-inc/roleregistry/record"
	"github.com/bitmark-inc/roleregistry/storage"
	"github.com/bitmark-inc/roleregistry/token"
)

// key under which the next free commitment id is stored
var nextIdKey = []byte("next")

// Ledger - commitment records plus their custody movements
type Ledger struct {
	commitments storage.RangeHandle
	nextId      storage.Handle
	transferor  token.Transferor
}

// New - create the ledger around its pools and transferor
func New(commitments storage.RangeHandle, nextId storage.Handle, transferor token.Transferor) *Ledger {
	return &Ledger{
		commitments: commitments,
		nextId:      nextId,
		transferor:  transferor,
	}
}

// Deposit - take token units into custody under a fresh commitment
//
// commitment ids are sequential starting from one, zero is never
// allocated so it can act as a missing value elsewhere
func (l *Ledger) Deposit(grantor record.Address, tokenAddress record.Address, tokenId *uint256.Int, amount *uint256.Int) (uint64, error) {
	if nil == amount || amount.IsZero() {
		return 0, fault.ErrZeroAmount
	}

	err := l.transferor.TransferIn(grantor, tokenAddress, tokenId, amount)
	if nil != err {
		return 0, err
	}

	commitmentId, ok := l.nextId.GetN(nextIdKey)
	if !ok {
		commitmentId = 1
	}
	l.nextId.PutN(nextIdKey, commitmentId+1)

	commitment := &record.Commitment{
		Grantor:      grantor,
		TokenAddress: tokenAddress,
		TokenId:      tokenId,
		TokenAmount:  amount,
	}
	l.commitments.Put(record.CommitmentKey(commitmentId), commitment.Pack())

	return commitmentId, nil
}

// Reconcile - adjust a commitment to a new amount
//
// an increase pulls the difference from the grantor, a decrease
// refunds it, reconciling to zero is rejected: use Release
func (l *Ledger) Reconcile(commitmentId uint64, amount *uint256.Int) error {
	if nil == amount || amount.IsZero() {
		return fault.ErrZeroAmount
	}

	commitment, err := l.Get(commitmentId)
	if nil != err {
		return err
	}

	switch {
	case commitment.TokenAmount.Lt(amount):
		delta := new(uint256.Int).Sub(amount, commitment.TokenAmount)
		err = l.transferor.TransferIn(commitment.Grantor, commitment.TokenAddress, commitment.TokenId, delta)

	case amount.Lt(commitment.TokenAmount):
		delta := new(uint256.Int).Sub(commitment.TokenAmount, amount)
		err = l.transferor.TransferOut(commitment.Grantor, commitment.TokenAddress, commitment.TokenId, delta)

	default: // unchanged
		return nil
	}
	if nil != err {
		return err
	}

	commitment.TokenAmount = amount
	l.commitments.Put(record.CommitmentKey(commitmentId), commitment.Pack())
	return nil
}

// Release - return the full committed amount to the grantor and
// delete the commitment record
func (l *Ledger) Release(commitmentId uint64) (*record.Commitment, error) {
	commitment, err := l.Get(commitmentId)
	if nil != err {
		return nil, err
	}

	err = l.transferor.TransferOut(commitment.Grantor, commitment.TokenAddress, commitment.TokenId, commitment.TokenAmount)
	if nil != err {
		return nil, err
	}

	l.commitments.Delete(record.CommitmentKey(commitmentId))
	return commitment, nil
}

// Get - fetch a commitment record
func (l *Ledger) Get(commitmentId uint64) (*record.Commitment, error) {
	packed := l.commitments.Get(record.CommitmentKey(commitmentId))
	if nil == packed {
		return nil, fault.ErrCommitmentNotFound
	}
	return record.UnpackCommitment(packed)
}

// CommittedBalance - total units held in custody for one grantor
// over one token instance, summed across all of its commitments
func (l *Ledger) CommittedBalance(grantor record.Address, tokenAddress record.Address, tokenId *uint256.Int) *uint256.Int {
	total := new(uint256.Int)
	l.commitments.Range(func(key []byte, value []byte) {
		commitment, err := record.UnpackCommitment(value)
		if nil != err {
			return
		}
		if commitment.Grantor != grantor || commitment.TokenAddress != tokenAddress {
			return
		}
		if !commitment.TokenId.Eq(tokenId) {
			return
		}
		total.Add(total, commitment.TokenAmount)
	})
	return total
}
