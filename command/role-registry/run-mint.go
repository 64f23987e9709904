// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/roleregistry/fault"
)

func runMint(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := checkAddress(c, "owner")
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
	amount, err := checkAmount(c, "amount")
	if nil != err {
		return err
	}
	if amount.IsZero() {
		return fault.ErrZeroAmount
	}

	err = m.trx.Begin()
	if nil != err {
		return err
	}
	m.tokens.Mint(owner, tokenAddress, tokenId, amount)
	err = m.trx.Commit()
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"owner":   owner,
		"balance": m.tokens.BalanceOf(owner, tokenAddress, tokenId).ToBig().String(),
	})
	return nil
}

func runAuthorize(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := checkAddress(c, "owner")
	if nil != err {
		return err
	}

	approved := !c.Bool("remove")

	err = m.trx.Begin()
	if nil != err {
		return err
	}
	m.tokens.SetOperator(owner, m.custodian, approved)
	err = m.trx.Commit()
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"owner":      owner,
		"custodian":  m.custodian,
		"authorized": approved,
	})
	return nil
}
