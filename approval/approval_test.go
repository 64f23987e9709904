// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package approval_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/roleregistry/approval"
	"github.com/bitmark-inc/roleregistry/record"
	"github.com/bitmark-inc/roleregistry/storage"
)

func makeAddress(fill byte) record.Address {
	address := record.Address{}
	for i := 0; i < record.AddressLength; i += 1 {
		address[i] = fill
	}
	return address
}

func TestCollectionApproval(t *testing.T) {
	r := approval.New(storage.NewMemoryHandle())

	alice := makeAddress(0x01)
	bob := makeAddress(0x02)
	token := makeAddress(0xa0)
	id := new(uint256.Int).SetUint64(7)

	assert.False(t, r.IsApproved(alice, bob, token, id), "unexpected approval")

	r.SetApprovalForAll(alice, bob, token, true)
	assert.True(t, r.IsApproved(alice, bob, token, id), "missing approval")
	assert.True(t, r.IsApproved(alice, bob, token, new(uint256.Int).SetUint64(99)), "approval not collection wide")

	r.SetApprovalForAll(alice, bob, token, false)
	assert.False(t, r.IsApproved(alice, bob, token, id), "revoked approval still present")
}

func TestInstanceApproval(t *testing.T) {
	r := approval.New(storage.NewMemoryHandle())

	alice := makeAddress(0x01)
	bob := makeAddress(0x02)
	token := makeAddress(0xa0)
	seven := new(uint256.Int).SetUint64(7)
	eight := new(uint256.Int).SetUint64(8)

	r.Approve(alice, bob, token, seven, true)
	assert.True(t, r.IsApproved(alice, bob, token, seven), "missing approval")
	assert.False(t, r.IsApproved(alice, bob, token, eight), "approval leaked to another id")

	r.Approve(alice, bob, token, seven, false)
	assert.False(t, r.IsApproved(alice, bob, token, seven), "revoked approval still present")
}

func TestApprovalScopesAreIndependent(t *testing.T) {
	r := approval.New(storage.NewMemoryHandle())

	alice := makeAddress(0x01)
	bob := makeAddress(0x02)
	token := makeAddress(0xa0)
	seven := new(uint256.Int).SetUint64(7)

	r.SetApprovalForAll(alice, bob, token, true)
	r.Approve(alice, bob, token, seven, true)

	// dropping the instance approval leaves the collection one
	r.Approve(alice, bob, token, seven, false)
	assert.True(t, r.IsApproved(alice, bob, token, seven), "collection approval lost")

	r.SetApprovalForAll(alice, bob, token, false)
	assert.False(t, r.IsApproved(alice, bob, token, seven), "approval outlived both scopes")
}

func TestCanActFor(t *testing.T) {
	r := approval.New(storage.NewMemoryHandle())

	alice := makeAddress(0x01)
	bob := makeAddress(0x02)
	token := makeAddress(0xa0)
	id := new(uint256.Int).SetUint64(1)

	assert.True(t, r.CanActFor(alice, alice, token, id), "self action rejected")
	assert.False(t, r.CanActFor(bob, alice, token, id), "stranger accepted")

	r.SetApprovalForAll(alice, bob, token, true)
	assert.True(t, r.CanActFor(bob, alice, token, id), "operator rejected")
	assert.False(t, r.CanActFor(alice, bob, token, id), "approval is one way only")
}
