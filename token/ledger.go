// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/roleregistry/fault"
	"github.com/bitmark-inc/roleregistry/record"
	"github.com/bitmark-inc/roleregistry/storage"
)

// Ledger - a multi-token balance book
//
// balances are keyed owner ⧺ token ⧺ id and hold a fixed 32 byte big
// endian amount, operators are keyed owner ⧺ operator with a flag
// byte, mirroring the approval model of the usual multi-token
// contracts
type Ledger struct {
	balances  storage.Handle
	operators storage.Handle
	custodian record.Address
}

// NewLedger - create a ledger around its two pools
//
// custodian is the account that holds everything taken into custody
func NewLedger(balances storage.Handle, operators storage.Handle, custodian record.Address) *Ledger {
	return &Ledger{
		balances:  balances,
		operators: operators,
		custodian: custodian,
	}
}

// balance storage key
func balanceKey(owner record.Address, tokenAddress record.Address, tokenId *uint256.Int) []byte {
	key := make([]byte, 0, 2*record.AddressLength+32)
	key = append(key, owner[:]...)
	key = append(key, tokenAddress[:]...)
	b32 := tokenId.Bytes32()
	return append(key, b32[:]...)
}

// operator storage key
func operatorKey(owner record.Address, operator record.Address) []byte {
	key := make([]byte, 0, 2*record.AddressLength)
	key = append(key, owner[:]...)
	return append(key, operator[:]...)
}

// BalanceOf - current balance of one owner/token/id triple
func (ledger *Ledger) BalanceOf(owner record.Address, tokenAddress record.Address, tokenId *uint256.Int) *uint256.Int {
	buffer := ledger.balances.Get(balanceKey(owner, tokenAddress, tokenId))
	if nil == buffer {
		return new(uint256.Int)
	}
	return new(uint256.Int).SetBytes(buffer)
}

// Mint - create token units out of nothing
//
// for tests and locally issued collections, a real chain would have
// its own issuance rules
func (ledger *Ledger) Mint(to record.Address, tokenAddress record.Address, tokenId *uint256.Int, amount *uint256.Int) {
	balance := ledger.BalanceOf(to, tokenAddress, tokenId)
	balance = new(uint256.Int).Add(balance, amount)
	ledger.setBalance(to, tokenAddress, tokenId, balance)
}

// SetOperator - owner grants or removes an operator over all of its
// token units
func (ledger *Ledger) SetOperator(owner record.Address, operator record.Address, approved bool) {
	key := operatorKey(owner, operator)
	if approved {
		ledger.operators.Put(key, []byte{0x01})
	} else {
		ledger.operators.Delete(key)
	}
}

// IsOperator - check an operator approval
func (ledger *Ledger) IsOperator(owner record.Address, operator record.Address) bool {
	return ledger.operators.Has(operatorKey(owner, operator))
}

// Transfer - move token units, the acting account must be the owner
// or one of the owner's operators
func (ledger *Ledger) Transfer(acting record.Address, from record.Address, to record.Address, tokenAddress record.Address, tokenId *uint256.Int, amount *uint256.Int) error {
	if acting != from && !ledger.IsOperator(from, acting) {
		return fault.ErrTransferNotApproved
	}

	fromBalance := ledger.BalanceOf(from, tokenAddress, tokenId)
	if fromBalance.Lt(amount) {
		return fault.ErrInsufficientTokenBalance
	}

	ledger.setBalance(from, tokenAddress, tokenId, new(uint256.Int).Sub(fromBalance, amount))

	toBalance := ledger.BalanceOf(to, tokenAddress, tokenId)
	ledger.setBalance(to, tokenAddress, tokenId, new(uint256.Int).Add(toBalance, amount))
	return nil
}

// TransferIn - Transferor interface: owner to custodian
func (ledger *Ledger) TransferIn(from record.Address, tokenAddress record.Address, tokenId *uint256.Int, amount *uint256.Int) error {
	return ledger.Transfer(ledger.custodian, from, ledger.custodian, tokenAddress, tokenId, amount)
}

// TransferOut - Transferor interface: custodian back to owner
func (ledger *Ledger) TransferOut(to record.Address, tokenAddress record.Address, tokenId *uint256.Int, amount *uint256.Int) error {
	return ledger.Transfer(ledger.custodian, ledger.custodian, to, tokenAddress, tokenId, amount)
}

// write or clear one balance record
func (ledger *Ledger) setBalance(owner record.Address, tokenAddress record.Address, tokenId *uint256.Int, balance *uint256.Int) {
	key := balanceKey(owner, tokenAddress, tokenId)
	if balance.IsZero() {
		ledger.balances.Delete(key)
		return
	}
	b32 := balance.Bytes32()
	ledger.balances.Put(key, b32[:])
}
