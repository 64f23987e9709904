// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"bytes"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/roleregistry/record"
	"github.com/bitmark-inc/roleregistry/storage"
)

// HoldingInfo - one balance row of an owner
type HoldingInfo struct {
	TokenAddress record.Address `json:"tokenAddress"`
	TokenId      *uint256.Int   `json:"tokenId"`
	Balance      *uint256.Int   `json:"balance"`
}

// Holdings - list the balances of one owner
//
// start from the beginning of the owner's token range and return up
// to count rows
func Holdings(pool *storage.PoolHandle, owner record.Address, count int) ([]HoldingInfo, error) {

	ownerBytes := owner.Bytes()

	cursor := pool.NewFetchCursor().Seek(ownerBytes)

	// owner ⧺ token ⧺ id → amount
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]HoldingInfo, 0, len(items))

loop:
	for _, item := range items {
		if len(item.Key) != 2*record.AddressLength+32 {
			continue loop
		}
		itemOwner := item.Key[:record.AddressLength]
		if !bytes.Equal(ownerBytes, itemOwner) {
			break loop
		}

		info := HoldingInfo{
			TokenId: new(uint256.Int).SetBytes(item.Key[2*record.AddressLength:]),
			Balance: new(uint256.Int).SetBytes(item.Value),
		}
		copy(info.TokenAddress[:], item.Key[record.AddressLength:2*record.AddressLength])

		records = append(records, info)
	}

	return records, nil
}
