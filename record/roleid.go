// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/roleregistry/fault"
)

// RoleIdLength - number of bytes in a role identifier
const RoleIdLength = 32

// RoleId - opaque capability identifier
//
// the registry attaches no semantics beyond equality, a human
// readable role name is reduced to an id by hashing
type RoleId [RoleIdLength]byte

// NewRoleId - derive a role id from a role name
func NewRoleId(name string) RoleId {
	return RoleId(sha3.Sum256([]byte(name)))
}

// IsZero - true for the all zero role id
func (role RoleId) IsZero() bool {
	return RoleId{} == role
}

// String - hex form for use by the fmt package (for %s)
func (role RoleId) String() string {
	return hex.EncodeToString(role[:])
}

// GoString - hex form for use by the fmt package (for %#v)
func (role RoleId) GoString() string {
	return "<role:" + hex.EncodeToString(role[:]) + ">"
}

// MarshalText - role id to hex text
func (role RoleId) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(RoleIdLength))
	hex.Encode(buffer, role[:])
	return buffer, nil
}

// UnmarshalText - hex text to role id
func (role *RoleId) UnmarshalText(s []byte) error {
	if RoleIdLength != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidKeyLength
	}
	_, err := hex.Decode(role[:], s)
	return err
}
