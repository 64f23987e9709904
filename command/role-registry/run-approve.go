// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runApprove(c *cli.Context) error {

	m := getMetadata(c)

	principal, err := checkAddress(c, "principal")
	if nil != err {
		return err
	}
	operator, err := checkAddress(c, "operator")
	if nil != err {
		return err
	}
	tokenAddress, err := checkAddress(c, "token")
	if nil != err {
		return err
	}

	approved := !c.Bool("remove")

	// instance scope when a token id is given, else collection wide
	if "" != c.String("tokenid") {
		tokenId, err := checkAmount(c, "tokenid")
		if nil != err {
			return err
		}
		err = m.engine.Approve(principal, operator, tokenAddress, tokenId, approved)
		if nil != err {
			return err
		}
	} else {
		err = m.engine.SetApprovalForAll(principal, operator, tokenAddress, approved)
		if nil != err {
			return err
		}
	}

	printJson(m.w, map[string]interface{}{
		"principal": principal,
		"operator":  operator,
		"approved":  approved,
	})
	return nil
}
