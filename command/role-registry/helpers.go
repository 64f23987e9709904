// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/holiman/uint256"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/roleregistry/configuration"
	"github.com/bitmark-inc/roleregistry/record"
	"github.com/bitmark-inc/roleregistry/registry"
	"github.com/bitmark-inc/roleregistry/storage"
	"github.com/bitmark-inc/roleregistry/token"
)

type metadata struct {
	config    *configuration.Configuration
	engine    *registry.Registry
	tokens    *token.Ledger
	trx       storage.Transaction
	custodian record.Address
	verbose   bool
	e         io.Writer
	w         io.Writer
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["m"].(*metadata)
}

func currentTime() uint64 {
	return uint64(time.Now().Unix())
}

// a required address flag
func checkAddress(c *cli.Context, name string) (record.Address, error) {
	s := c.String(name)
	if "" == s {
		return record.Address{}, fmt.Errorf("missing %s address", name)
	}
	address, err := record.AddressFromBase58(s)
	if nil != err {
		return record.Address{}, fmt.Errorf("%s: %q error: %s", name, s, err)
	}
	return address, nil
}

// a decimal 256 bit number flag
func checkAmount(c *cli.Context, name string) (*uint256.Int, error) {
	s := c.String(name)
	if "" == s {
		s = "0"
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not a decimal number", name, s)
	}
	value, overflow := uint256.FromBig(b)
	if overflow || b.Sign() < 0 {
		return nil, fmt.Errorf("%s: %q is out of range", name, s)
	}
	return value, nil
}

// a required role name flag, reduced to its id
func checkRole(c *cli.Context, name string) (record.RoleId, error) {
	s := c.String(name)
	if "" == s {
		return record.RoleId{}, fmt.Errorf("missing %s name", name)
	}
	return record.NewRoleId(s), nil
}

func printJson(w io.Writer, result interface{}) {
	buffer, err := json.MarshalIndent(result, "", "  ")
	if nil != err {
		fmt.Fprintf(w, "error: %s\n", err)
		return
	}
	fmt.Fprintf(w, "%s\n", buffer)
}
