// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/roleregistry/custody"
	"github.com/bitmark-inc/roleregistry/fault"
	"github.com/bitmark-inc/roleregistry/record"
	"github.com/bitmark-inc/roleregistry/storage"
	"github.com/bitmark-inc/roleregistry/token"
	"github.com/bitmark-inc/roleregistry/token/mocks"
)

func makeAddress(fill byte) record.Address {
	address := record.Address{}
	for i := 0; i < record.AddressLength; i += 1 {
		address[i] = fill
	}
	return address
}

func u(n uint64) *uint256.Int {
	return new(uint256.Int).SetUint64(n)
}

// a custody ledger wired to a real token ledger, alice owns 100
// units of the test token and has approved the custodian
func setup(t *testing.T) (*custody.Ledger, *token.Ledger, record.Address, record.Address, *uint256.Int) {
	custodian := makeAddress(0xcc)
	alice := makeAddress(0x01)
	tokenAddress := makeAddress(0xa0)
	tokenId := u(7)

	tokens := token.NewLedger(storage.NewMemoryHandle(), storage.NewMemoryHandle(), custodian)
	tokens.Mint(alice, tokenAddress, tokenId, u(100))
	tokens.SetOperator(alice, custodian, true)

	ledger := custody.New(storage.NewMemoryHandle(), storage.NewMemoryHandle(), tokens)
	return ledger, tokens, alice, tokenAddress, tokenId
}

func TestDepositAndGet(t *testing.T) {
	ledger, tokens, alice, tokenAddress, tokenId := setup(t)
	custodian := makeAddress(0xcc)

	commitmentId, err := ledger.Deposit(alice, tokenAddress, tokenId, u(30))
	assert.Nil(t, err, "deposit error")
	assert.Equal(t, uint64(1), commitmentId, "first commitment id")

	assert.Equal(t, u(70), tokens.BalanceOf(alice, tokenAddress, tokenId), "grantor balance")
	assert.Equal(t, u(30), tokens.BalanceOf(custodian, tokenAddress, tokenId), "custodian balance")

	commitment, err := ledger.Get(commitmentId)
	assert.Nil(t, err, "get error")
	assert.Equal(t, alice, commitment.Grantor, "grantor")
	assert.Equal(t, u(30), commitment.TokenAmount, "amount")

	// ids are sequential
	second, err := ledger.Deposit(alice, tokenAddress, tokenId, u(10))
	assert.Nil(t, err, "second deposit error")
	assert.Equal(t, uint64(2), second, "second commitment id")
}

func TestDepositZeroAmount(t *testing.T) {
	ledger, _, alice, tokenAddress, tokenId := setup(t)

	_, err := ledger.Deposit(alice, tokenAddress, tokenId, u(0))
	assert.Equal(t, fault.ErrZeroAmount, err, "zero deposit accepted")
}

func TestDepositInsufficientBalance(t *testing.T) {
	ledger, tokens, alice, tokenAddress, tokenId := setup(t)
	custodian := makeAddress(0xcc)

	_, err := ledger.Deposit(alice, tokenAddress, tokenId, u(500))
	assert.Equal(t, fault.ErrInsufficientTokenBalance, err, "oversized deposit accepted")

	// nothing moved and no record was written
	assert.Equal(t, u(100), tokens.BalanceOf(alice, tokenAddress, tokenId), "grantor balance")
	assert.True(t, tokens.BalanceOf(custodian, tokenAddress, tokenId).IsZero(), "custodian balance")
	_, err = ledger.Get(1)
	assert.Equal(t, fault.ErrCommitmentNotFound, err, "phantom commitment")
}

func TestReconcile(t *testing.T) {
	ledger, tokens, alice, tokenAddress, tokenId := setup(t)
	custodian := makeAddress(0xcc)

	commitmentId, err := ledger.Deposit(alice, tokenAddress, tokenId, u(30))
	assert.Nil(t, err, "deposit error")

	// increase pulls the difference in
	err = ledger.Reconcile(commitmentId, u(50))
	assert.Nil(t, err, "increase error")
	assert.Equal(t, u(50), tokens.BalanceOf(custodian, tokenAddress, tokenId), "custodian balance after increase")

	// decrease refunds the difference
	err = ledger.Reconcile(commitmentId, u(20))
	assert.Nil(t, err, "decrease error")
	assert.Equal(t, u(80), tokens.BalanceOf(alice, tokenAddress, tokenId), "grantor balance after decrease")

	// unchanged amount is a no-op
	err = ledger.Reconcile(commitmentId, u(20))
	assert.Nil(t, err, "no-op error")

	commitment, err := ledger.Get(commitmentId)
	assert.Nil(t, err, "get error")
	assert.Equal(t, u(20), commitment.TokenAmount, "stored amount")

	err = ledger.Reconcile(commitmentId, u(0))
	assert.Equal(t, fault.ErrZeroAmount, err, "reconcile to zero accepted")

	err = ledger.Reconcile(99, u(5))
	assert.Equal(t, fault.ErrCommitmentNotFound, err, "missing commitment reconciled")
}

func TestRelease(t *testing.T) {
	ledger, tokens, alice, tokenAddress, tokenId := setup(t)
	custodian := makeAddress(0xcc)

	commitmentId, err := ledger.Deposit(alice, tokenAddress, tokenId, u(30))
	assert.Nil(t, err, "deposit error")

	commitment, err := ledger.Release(commitmentId)
	assert.Nil(t, err, "release error")
	assert.Equal(t, u(30), commitment.TokenAmount, "released amount")

	// everything back with the grantor, record gone
	assert.Equal(t, u(100), tokens.BalanceOf(alice, tokenAddress, tokenId), "grantor balance")
	assert.True(t, tokens.BalanceOf(custodian, tokenAddress, tokenId).IsZero(), "custodian balance")
	_, err = ledger.Get(commitmentId)
	assert.Equal(t, fault.ErrCommitmentNotFound, err, "released commitment still present")

	_, err = ledger.Release(commitmentId)
	assert.Equal(t, fault.ErrCommitmentNotFound, err, "double release accepted")
}

func TestCollaboratorFailurePropagates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	alice := makeAddress(0x01)
	tokenAddress := makeAddress(0xa0)
	tokenId := u(7)
	broken := errors.New("transfer reverted")

	transferor := mocks.NewMockTransferor(ctl)
	transferor.EXPECT().TransferIn(alice, tokenAddress, tokenId, u(30)).Return(nil)
	transferor.EXPECT().TransferOut(alice, tokenAddress, tokenId, u(30)).Return(broken)

	ledger := custody.New(storage.NewMemoryHandle(), storage.NewMemoryHandle(), transferor)

	commitmentId, err := ledger.Deposit(alice, tokenAddress, tokenId, u(30))
	assert.Nil(t, err, "deposit error")

	// a failed transfer is surfaced verbatim and keeps the record
	_, err = ledger.Release(commitmentId)
	assert.Equal(t, broken, err, "transfer failure not propagated")
	_, err = ledger.Get(commitmentId)
	assert.Nil(t, err, "commitment vanished on failed release")
}

func TestCommittedBalance(t *testing.T) {
	ledger, tokens, alice, tokenAddress, tokenId := setup(t)

	bob := makeAddress(0x02)
	tokens.Mint(bob, tokenAddress, tokenId, u(50))
	tokens.SetOperator(bob, makeAddress(0xcc), true)

	_, err := ledger.Deposit(alice, tokenAddress, tokenId, u(30))
	assert.Nil(t, err, "first deposit error")
	_, err = ledger.Deposit(alice, tokenAddress, tokenId, u(20))
	assert.Nil(t, err, "second deposit error")
	_, err = ledger.Deposit(bob, tokenAddress, tokenId, u(40))
	assert.Nil(t, err, "bob deposit error")

	assert.Equal(t, u(50), ledger.CommittedBalance(alice, tokenAddress, tokenId), "alice committed")
	assert.Equal(t, u(40), ledger.CommittedBalance(bob, tokenAddress, tokenId), "bob committed")
	assert.True(t, ledger.CommittedBalance(alice, tokenAddress, u(9)).IsZero(), "phantom commitment")
}
