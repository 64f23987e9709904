// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/roleregistry/approval"
	"github.com/bitmark-inc/roleregistry/configuration"
	"github.com/bitmark-inc/roleregistry/custody"
	"github.com/bitmark-inc/roleregistry/record"
	"github.com/bitmark-inc/roleregistry/registry"
	"github.com/bitmark-inc/roleregistry/storage"
	"github.com/bitmark-inc/roleregistry/token"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "role-registry"
	app.Usage = "token role registry operations"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "role-registry.conf",
			Usage: " configuration `FILE`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "grant",
			Usage:     "grant a role over custodied token units",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "grantor, g", Usage: "*grantor `ADDRESS`"},
				cli.StringFlag{Name: "grantee, e", Usage: "*grantee `ADDRESS`"},
				cli.StringFlag{Name: "token, k", Usage: "*token contract `ADDRESS`"},
				cli.StringFlag{Name: "tokenid, i", Value: "0", Usage: " token id `NUMBER`"},
				cli.StringFlag{Name: "amount, a", Value: "1", Usage: " token amount `NUMBER`"},
				cli.StringFlag{Name: "role, r", Usage: "*role `NAME`"},
				cli.Uint64Flag{Name: "expires, x", Usage: "*expiration `TIMESTAMP`"},
				cli.BoolFlag{Name: "revocable", Usage: " grantor may cancel before expiration"},
				cli.StringFlag{Name: "data, d", Usage: " opaque data `HEX`"},
				cli.StringFlag{Name: "acting", Usage: " acting account `ADDRESS` default grantor"},
			},
			Action: runGrant,
		},
		{
			Name:      "revoke",
			Usage:     "revoke a role assignment",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{Name: "commitment, m", Usage: "*commitment `ID`"},
				cli.StringFlag{Name: "role, r", Usage: "*role `NAME`"},
				cli.StringFlag{Name: "grantee, e", Usage: "*grantee `ADDRESS`"},
				cli.StringFlag{Name: "acting", Usage: "*acting account `ADDRESS`"},
			},
			Action: runRevoke,
		},
		{
			Name:      "withdraw",
			Usage:     "release a commitment and return its tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{Name: "commitment, m", Usage: "*commitment `ID`"},
				cli.StringFlag{Name: "acting", Usage: "*acting account `ADDRESS`"},
			},
			Action: runWithdraw,
		},
		{
			Name:      "approve",
			Usage:     "set or clear an operator approval",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "principal, p", Usage: "*principal `ADDRESS`"},
				cli.StringFlag{Name: "operator, o", Usage: "*operator `ADDRESS`"},
				cli.StringFlag{Name: "token, k", Usage: "*token contract `ADDRESS`"},
				cli.StringFlag{Name: "tokenid, i", Usage: " limit to one token id `NUMBER`"},
				cli.BoolFlag{Name: "remove", Usage: " clear the approval instead"},
			},
			Action: runApprove,
		},
		{
			Name:      "mint",
			Usage:     "mint test tokens into the built-in ledger",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "owner, o", Usage: "*owner `ADDRESS`"},
				cli.StringFlag{Name: "token, k", Usage: "*token contract `ADDRESS`"},
				cli.StringFlag{Name: "tokenid, i", Value: "0", Usage: " token id `NUMBER`"},
				cli.StringFlag{Name: "amount, a", Usage: "*token amount `NUMBER`"},
			},
			Action: runMint,
		},
		{
			Name:      "authorize",
			Usage:     "let the registry custodian move an owner's tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "owner, o", Usage: "*owner `ADDRESS`"},
				cli.BoolFlag{Name: "remove", Usage: " clear the authorization instead"},
			},
			Action: runAuthorize,
		},
		{
			Name:      "holdings",
			Usage:     "list token balances of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "owner, o", Usage: "*owner `ADDRESS`"},
				cli.IntFlag{Name: "count, n", Value: 20, Usage: " maximum records to output `COUNT`"},
			},
			Action: runHoldings,
		},
		{
			Name:      "status",
			Usage:     "show the commitment state of a deposit",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "grantor, g", Usage: "*grantor `ADDRESS`"},
				cli.StringFlag{Name: "token, k", Usage: "*token contract `ADDRESS`"},
				cli.StringFlag{Name: "tokenid, i", Value: "0", Usage: " token id `NUMBER`"},
			},
			Action: runStatus,
		},
	}

	app.Before = func(c *cli.Context) error {

		// no database access for these
		switch c.Args().Get(0) {
		case "", "help", "h":
			return nil
		}

		cfg, err := configuration.GetConfiguration(c.GlobalString("config-file"))
		if nil != err {
			return err
		}

		err = logger.Initialise(logger.Configuration{
			Directory: cfg.Logging.Directory,
			File:      cfg.Logging.File,
			Size:      cfg.Logging.Size,
			Count:     cfg.Logging.Count,
			Console:   cfg.Logging.Console,
			Levels:    cfg.Logging.Levels,
		})
		if nil != err {
			return err
		}

		custodian, err := record.AddressFromBase58(cfg.Registry.Custodian)
		if nil != err {
			return fmt.Errorf("registry.custodian: %q error: %s", cfg.Registry.Custodian, err)
		}

		err = storage.Initialise(cfg.Database.Name, storage.ReadWrite)
		if nil != err {
			return err
		}

		tokens := token.NewLedger(storage.Pool.Balances, storage.Pool.Operators, custodian)
		custodyLedger := custody.New(storage.Pool.Commitments, storage.Pool.NextCommitmentId, tokens)
		approvals := approval.New(storage.Pool.Approvals)

		trx, err := storage.NewTransaction()
		if nil != err {
			return err
		}

		supported := make([]record.RoleId, 0, len(cfg.Registry.SupportedRoles))
		for _, name := range cfg.Registry.SupportedRoles {
			supported = append(supported, record.NewRoleId(name))
		}

		engine, err := registry.New(
			storage.Pool.Assignments,
			storage.Pool.Slots,
			custodyLedger,
			approvals,
			trx,
			registry.Options{
				UseTreeIndex:    cfg.Registry.UseTreeIndex,
				ReleaseOnRevoke: cfg.Registry.ReleaseOnRevoke,
				SupportedRoles:  supported,
			},
		)
		if nil != err {
			return err
		}

		c.App.Metadata["m"] = &metadata{
			config:    cfg,
			engine:    engine,
			tokens:    tokens,
			trx:       trx,
			custodian: custodian,
			verbose:   c.GlobalBool("verbose"),
			e:         c.App.ErrWriter,
			w:         c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["m"].(*metadata); ok {
			storage.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}
