// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// operator command line for a local role registry database
//
// grants, revokes and withdrawals run against the engine directly,
// the mint and authorize commands drive the built-in token ledger so
// a registry can be exercised without an external token contract
package main
