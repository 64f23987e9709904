// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/roleregistry/fault"
)

// Transaction - all-or-nothing mutation of the pools
//
// writes through any Handle accumulate in the underlying batch and
// reach the disk only on Commit, Abort discards every pending write
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
}

type dbTransaction struct{}

// NewTransaction - the transaction over the opened database
func NewTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.access {
		return nil, fault.ErrNotInitialised
	}
	return &dbTransaction{}, nil
}

func (t *dbTransaction) Begin() error {
	return poolData.access.Begin()
}

func (t *dbTransaction) Commit() error {
	return poolData.access.Commit()
}

func (t *dbTransaction) Abort() {
	poolData.access.Abort()
}

func (t *dbTransaction) InUse() bool {
	return poolData.access.InUse()
}
