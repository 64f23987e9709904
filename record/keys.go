// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// the nested grantor → token → id → role mappings collapse to flat
// storage keys: either a commitment id plus role suffix, or a digest
// of the identifying tuple

// CommitmentKey - storage key of a commitment
func CommitmentKey(commitmentId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, commitmentId)
	return key
}

// AssignmentKey - storage key of the role slot of one commitment
func AssignmentKey(commitmentId uint64, role RoleId) []byte {
	return append(CommitmentKey(commitmentId), role[:]...)
}

// DepositDigest - digest identifying the custody deposit of the
// grantor/token/tokenId tuple, shared by every role granted on it
func DepositDigest(grantor Address, tokenAddress Address, tokenId *uint256.Int) Digest {
	buffer := make([]byte, 0, 2*AddressLength+32)
	buffer = append(buffer, grantor[:]...)
	buffer = append(buffer, tokenAddress[:]...)
	buffer = appendUint256(buffer, tokenId)
	return NewDigest(buffer)
}
