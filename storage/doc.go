// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledgers
//
// a single LevelDB database split into logical pools by a one byte
// key prefix, with a batch transaction so that a grant or withdraw
// mutates every ledger it touches atomically
package storage
