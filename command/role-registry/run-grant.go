// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/roleregistry/record"
)

func runGrant(c *cli.Context) error {

	m := getMetadata(c)

	grantor, err := checkAddress(c, "grantor")
	if nil != err {
		return err
	}
	grantee, err := checkAddress(c, "grantee")
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
	role, err := checkRole(c, "role")
	if nil != err {
		return err
	}

	data := []byte(nil)
	if s := c.String("data"); "" != s {
		data, err = hex.DecodeString(s)
		if nil != err {
			return fmt.Errorf("data: %q error: %s", s, err)
		}
	}

	acting := grantor
	if "" != c.String("acting") {
		acting, err = checkAddress(c, "acting")
		if nil != err {
			return err
		}
	}

	assignment := &record.RoleAssignment{
		Role:           role,
		TokenAddress:   tokenAddress,
		TokenId:        tokenId,
		TokenAmount:    amount,
		Grantor:        grantor,
		Grantee:        grantee,
		ExpirationDate: c.Uint64("expires"),
		Revocable:      c.Bool("revocable"),
		Data:           data,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "grantor: %s  grantee: %s  role: %s\n", grantor, grantee, role)
	}

	commitmentId, err := m.engine.GrantRole(acting, assignment, currentTime())
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"commitmentId": commitmentId,
		"assignment":   assignment,
	})
	return nil
}
