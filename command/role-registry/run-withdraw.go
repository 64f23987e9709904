// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runWithdraw(c *cli.Context) error {

	m := getMetadata(c)

	commitmentId := c.Uint64("commitment")
	acting, err := checkAddress(c, "acting")
	if nil != err {
		return err
	}

	err = m.engine.Withdraw(acting, commitmentId, currentTime())
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"withdrawn":    true,
		"commitmentId": commitmentId,
	})
	return nil
}
