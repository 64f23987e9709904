// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/roleregistry/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 20

// Address - an account or token contract identifier
// represented as base58 text
type Address [AddressLength]byte

// AddressFromBase58 - convert base58 text to an address
func AddressFromBase58(s string) (Address, error) {
	address := Address{}
	decoded, err := base58.Decode(s)
	if nil != err {
		return address, err
	}
	if AddressLength != len(decoded) {
		return address, fault.ErrInvalidKeyLength
	}
	copy(address[:], decoded)
	return address, nil
}

// Bytes - the raw address bytes
func (address Address) Bytes() []byte {
	return address[:]
}

// IsZero - true for the all zero address
func (address Address) IsZero() bool {
	return bytes.Equal(address[:], make([]byte, AddressLength))
}

// String - base58 form for use by the fmt package (for %s)
func (address Address) String() string {
	return base58.Encode(address[:])
}

// GoString - base58 form for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + base58.Encode(address[:]) + ">"
}

// MarshalText - address to base58 text
func (address Address) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(address[:])), nil
}

// UnmarshalText - base58 text to address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}
