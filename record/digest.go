// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// DigestLength - number of bytes in a digest
const DigestLength = 32

// Digest - SHA3-256 digest used to reduce a composite key tuple to a
// single flat storage key
type Digest [DigestLength]byte

// NewDigest - create a digest from a byte slice
func NewDigest(buffer []byte) Digest {
	return Digest(sha3.Sum256(buffer))
}

// String - hex form for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - hex form for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(digest[:]) + ">"
}
