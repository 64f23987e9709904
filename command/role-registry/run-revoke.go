// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runRevoke(c *cli.Context) error {

	m := getMetadata(c)

	commitmentId := c.Uint64("commitment")
	role, err := checkRole(c, "role")
	if nil != err {
		return err
	}
	grantee, err := checkAddress(c, "grantee")
	if nil != err {
		return err
	}
	acting, err := checkAddress(c, "acting")
	if nil != err {
		return err
	}

	err = m.engine.RevokeRole(acting, commitmentId, role, grantee, currentTime())
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"revoked":      true,
		"commitmentId": commitmentId,
	})
	return nil
}
