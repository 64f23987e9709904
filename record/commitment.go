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

// Commitment - token units held in custody for one grantor
type Commitment struct {
	Grantor      Address      `json:"grantor"`
	TokenAddress Address      `json:"tokenAddress"`
	TokenId      *uint256.Int `json:"tokenId"`
	TokenAmount  *uint256.Int `json:"tokenAmount"`
}

// Pack - concatenate the commitment fields
//
// Uvarint(tag) ⧺ grantor ⧺ tokenAddress ⧺ tokenId ⧺ tokenAmount
func (commitment *Commitment) Pack() Packed {
	message := appendUvarint(nil, uint64(CommitmentTag))
	message = append(message, commitment.Grantor[:]...)
	message = append(message, commitment.TokenAddress[:]...)
	message = appendUint256(message, commitment.TokenId)
	return appendUint256(message, commitment.TokenAmount)
}

// UnpackCommitment - decode a packed commitment
func UnpackCommitment(buffer Packed) (*Commitment, error) {
	tag, n := binary.Uvarint(buffer)
	if n <= 0 || uint64(CommitmentTag) != tag {
		return nil, fault.ErrRecordTag
	}
	buffer = buffer[n:]

	commitment := &Commitment{}

	if len(buffer) < 2*AddressLength {
		return nil, fault.ErrRecordTooShort
	}
	copy(commitment.Grantor[:], buffer[:AddressLength])
	buffer = buffer[AddressLength:]
	copy(commitment.TokenAddress[:], buffer[:AddressLength])
	buffer = buffer[AddressLength:]

	var err error
	commitment.TokenId, buffer, err = nextUint256(buffer)
	if nil != err {
		return nil, err
	}
	commitment.TokenAmount, buffer, err = nextUint256(buffer)
	if nil != err {
		return nil, err
	}
	if 0 != len(buffer) {
		return nil, fault.ErrRecordTooShort
	}

	return commitment, nil
}
