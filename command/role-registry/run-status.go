// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runStatus(c *cli.Context) error {

	m := getMetadata(c)

	grantor, err := checkAddress(c, "grantor")
	if nil != err {
		return err
	}
	tokenAddress, err := checkAddress(c, "token")
	if nil != err {
		return err
	}
	tokenId, err := checkAmount(c, "tokenid")
	if nil != err {
		return err
	}

	result := map[string]interface{}{
		"grantor":   grantor,
		"token":     tokenAddress,
		"tokenId":   tokenId.ToBig().String(),
		"committed": m.engine.CommittedBalance(grantor, tokenAddress, tokenId).ToBig().String(),
	}

	commitmentId, found := m.engine.CommitmentOf(grantor, tokenAddress, tokenId)
	result["active"] = found
	if found {
		result["commitmentId"] = commitmentId
		result["outstandingLocks"] = m.engine.OutstandingLocks(commitmentId)
	}

	printJson(m.w, result)
	return nil
}
