// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/roleregistry/record"
)

// Transferor - custody movement as seen by the registry engine
//
// a failure is propagated verbatim and must leave balances unchanged,
// the engine never retries or interprets it
type Transferor interface {

	// TransferIn - move token units from an owner into custody
	TransferIn(from record.Address, tokenAddress record.Address, tokenId *uint256.Int, amount *uint256.Int) error

	// TransferOut - return custodied token units to an owner
	TransferOut(to record.Address, tokenAddress record.Address, tokenId *uint256.Int, amount *uint256.Int) error
}
