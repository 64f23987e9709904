// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/roleregistry/fault"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded as a Uvarint at the start of the packed bytes
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	RoleAssignmentTag = TagType(iota)
	CommitmentTag     = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// RoleAssignment - one granted role over custodied token units
type RoleAssignment struct {
	Role           RoleId       `json:"role"`
	TokenAddress   Address      `json:"tokenAddress"`
	TokenId        *uint256.Int `json:"tokenId"`
	TokenAmount    *uint256.Int `json:"tokenAmount"`
	Grantor        Address      `json:"grantor"`
	Grantee        Address      `json:"grantee"`
	ExpirationDate uint64       `json:"expirationDate,string"`
	Revocable      bool         `json:"revocable"`
	Data           []byte       `json:"data"`
}

// IsActive - the liveness test shared by every mutation and query
// path, expiration is lazy so no record change is needed to expire
func (assignment *RoleAssignment) IsActive(currentTime uint64) bool {
	return assignment.ExpirationDate > currentTime
}

// IsLocked - a live non-revocable assignment blocks its commitment
func (assignment *RoleAssignment) IsLocked(currentTime uint64) bool {
	return !assignment.Revocable && assignment.IsActive(currentTime)
}

// Pack - concatenate the assignment fields
//
// Uvarint(tag) ⧺ role ⧺ tokenAddress ⧺ tokenId ⧺ tokenAmount ⧺
// grantor ⧺ grantee ⧺ Uvarint(expiration) ⧺ revocable byte ⧺
// Uvarint(len(data)) ⧺ data
func (assignment *RoleAssignment) Pack() Packed {
	message := appendUvarint(nil, uint64(RoleAssignmentTag))
	message = append(message, assignment.Role[:]...)
	message = append(message, assignment.TokenAddress[:]...)
	message = appendUint256(message, assignment.TokenId)
	message = appendUint256(message, assignment.TokenAmount)
	message = append(message, assignment.Grantor[:]...)
	message = append(message, assignment.Grantee[:]...)
	message = appendUvarint(message, assignment.ExpirationDate)
	if assignment.Revocable {
		message = append(message, 0x01)
	} else {
		message = append(message, 0x00)
	}
	message = appendUvarint(message, uint64(len(assignment.Data)))
	return append(message, assignment.Data...)
}

// UnpackRoleAssignment - decode a packed assignment
func UnpackRoleAssignment(buffer Packed) (*RoleAssignment, error) {
	tag, n := binary.Uvarint(buffer)
	if n <= 0 || uint64(RoleAssignmentTag) != tag {
		return nil, fault.ErrRecordTag
	}
	buffer = buffer[n:]

	assignment := &RoleAssignment{}

	if len(buffer) < RoleIdLength {
		return nil, fault.ErrRecordTooShort
	}
	copy(assignment.Role[:], buffer[:RoleIdLength])
	buffer = buffer[RoleIdLength:]

	if len(buffer) < AddressLength {
		return nil, fault.ErrRecordTooShort
	}
	copy(assignment.TokenAddress[:], buffer[:AddressLength])
	buffer = buffer[AddressLength:]

	var err error
	assignment.TokenId, buffer, err = nextUint256(buffer)
	if nil != err {
		return nil, err
	}
	assignment.TokenAmount, buffer, err = nextUint256(buffer)
	if nil != err {
		return nil, err
	}

	if len(buffer) < 2*AddressLength {
		return nil, fault.ErrRecordTooShort
	}
	copy(assignment.Grantor[:], buffer[:AddressLength])
	buffer = buffer[AddressLength:]
	copy(assignment.Grantee[:], buffer[:AddressLength])
	buffer = buffer[AddressLength:]

	assignment.ExpirationDate, n = binary.Uvarint(buffer)
	if n <= 0 {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]

	if len(buffer) < 1 {
		return nil, fault.ErrRecordTooShort
	}
	assignment.Revocable = 0x00 != buffer[0]
	buffer = buffer[1:]

	dataLength, n := binary.Uvarint(buffer)
	if n <= 0 {
		return nil, fault.ErrRecordTooShort
	}
	buffer = buffer[n:]
	if uint64(len(buffer)) != dataLength {
		return nil, fault.ErrRecordTooShort
	}
	if 0 != dataLength {
		assignment.Data = make([]byte, dataLength)
		copy(assignment.Data, buffer)
	}

	return assignment, nil
}

// internal helpers shared by the record codecs

func appendUvarint(buffer []byte, value uint64) []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, value)
	return append(buffer, scratch[:n]...)
}

// a 256 bit value is stored as its fixed 32 byte big endian form
func appendUint256(buffer []byte, value *uint256.Int) []byte {
	b32 := value.Bytes32()
	return append(buffer, b32[:]...)
}

func nextUint256(buffer Packed) (*uint256.Int, Packed, error) {
	if len(buffer) < 32 {
		return nil, nil, fault.ErrRecordTooShort
	}
	value := new(uint256.Int).SetBytes(buffer[:32])
	return value, buffer[32:], nil
}
