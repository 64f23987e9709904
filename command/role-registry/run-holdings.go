// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/roleregistry/storage"
	"github.com/bitmark-inc/roleregistry/token"
)

func runHoldings(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := checkAddress(c, "owner")
	if nil != err {
		return err
	}

	records, err := token.Holdings(storage.Pool.Balances, owner, c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"owner":    owner,
		"holdings": records,
	})
	return nil
}
