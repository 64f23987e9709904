// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the role registry engine
//
// composes the assignment ledger, the commitment ledger, the
// approval registry and the lock index into the grant, revoke and
// withdraw operations
//
// every mutating call runs to completion under the engine mutex and
// writes all of its records through one storage transaction, so a
// failed call leaves no partial state behind
//
// time is an explicit parameter on every operation, an assignment
// expires lazily when its expiration date passes and no record
// change is needed for that
package registry
