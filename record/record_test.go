// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/roleregistry/fault"
	"github.com/bitmark-inc/roleregistry/record"
)

func makeAddress(fill byte) record.Address {
	address := record.Address{}
	for i := 0; i < record.AddressLength; i += 1 {
		address[i] = fill
	}
	return address
}

func TestAddressText(t *testing.T) {
	address := makeAddress(0x42)

	text, err := address.MarshalText()
	assert.NoError(t, err)

	decoded := record.Address{}
	assert.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, address, decoded)

	// wrong length must be rejected
	err = decoded.UnmarshalText([]byte("3yZe7d"))
	assert.Equal(t, fault.ErrInvalidKeyLength, err)
}

func TestRoleIdDerivation(t *testing.T) {
	manager := record.NewRoleId("manager")
	tenant := record.NewRoleId("tenant")

	assert.NotEqual(t, manager, tenant)
	assert.Equal(t, manager, record.NewRoleId("manager"))
	assert.False(t, manager.IsZero())
	assert.True(t, record.RoleId{}.IsZero())
}

func TestRoleAssignmentPack(t *testing.T) {
	assignment := &record.RoleAssignment{
		Role:           record.NewRoleId("manager"),
		TokenAddress:   makeAddress(0x11),
		TokenId:        new(uint256.Int).SetUint64(7),
		TokenAmount:    new(uint256.Int).SetUint64(10),
		Grantor:        makeAddress(0x22),
		Grantee:        makeAddress(0x33),
		ExpirationDate: 1700000000,
		Revocable:      true,
		Data:           []byte("lease terms"),
	}

	unpacked, err := record.UnpackRoleAssignment(assignment.Pack())
	assert.NoError(t, err)
	assert.Equal(t, assignment, unpacked)
}

func TestRoleAssignmentUnpackErrors(t *testing.T) {
	assignment := &record.RoleAssignment{
		Role:         record.NewRoleId("manager"),
		TokenAddress: makeAddress(0x11),
		TokenId:      new(uint256.Int).SetUint64(7),
		TokenAmount:  new(uint256.Int).SetUint64(1),
		Grantor:      makeAddress(0x22),
		Grantee:      makeAddress(0x33),
	}
	packed := assignment.Pack()

	_, err := record.UnpackRoleAssignment(packed[:10])
	assert.Equal(t, fault.ErrRecordTooShort, err)

	commitment := &record.Commitment{
		Grantor:      makeAddress(0x22),
		TokenAddress: makeAddress(0x11),
		TokenId:      new(uint256.Int).SetUint64(7),
		TokenAmount:  new(uint256.Int).SetUint64(10),
	}
	_, err = record.UnpackRoleAssignment(commitment.Pack())
	assert.Equal(t, fault.ErrRecordTag, err)
}

func TestCommitmentPack(t *testing.T) {
	commitment := &record.Commitment{
		Grantor:      makeAddress(0x22),
		TokenAddress: makeAddress(0x11),
		TokenId:      new(uint256.Int).SetUint64(7),
		TokenAmount:  new(uint256.Int).SetUint64(1000),
	}

	unpacked, err := record.UnpackCommitment(commitment.Pack())
	assert.NoError(t, err)
	assert.Equal(t, commitment, unpacked)
}

func TestLiveness(t *testing.T) {
	assignment := &record.RoleAssignment{
		ExpirationDate: 1000,
		Revocable:      false,
	}

	assert.True(t, assignment.IsActive(999))
	assert.False(t, assignment.IsActive(1000), "expiration is not strict")
	assert.False(t, assignment.IsActive(1001))

	assert.True(t, assignment.IsLocked(999))
	assert.False(t, assignment.IsLocked(1000))

	assignment.Revocable = true
	assert.False(t, assignment.IsLocked(999))
}

func TestDepositDigest(t *testing.T) {
	grantor := makeAddress(0x22)
	token := makeAddress(0x11)
	id := new(uint256.Int).SetUint64(7)

	digest := record.DepositDigest(grantor, token, id)
	assert.Equal(t, digest, record.DepositDigest(grantor, token, id))

	other := record.DepositDigest(grantor, token, new(uint256.Int).SetUint64(8))
	assert.NotEqual(t, digest, other)
}
