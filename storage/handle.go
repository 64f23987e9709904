// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Handle - the subset of pool operations the ledgers depend on,
// allowing isolated in-memory instances for tests
type Handle interface {
	Put(key []byte, value []byte)
	PutN(key []byte, value uint64)
	Get(key []byte) []byte
	GetN(key []byte) (uint64, bool)
	Has(key []byte) bool
	Delete(key []byte)
}

// RangeHandle - a Handle that can also enumerate every record it
// holds, used to rebuild in-memory indexes on startup
type RangeHandle interface {
	Handle
	Range(f func(key []byte, value []byte))
}

// PoolHandle - a logical table inside the single database
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair
func (p *PoolHandle) Put(key []byte, value []byte) {
	if nil == p.dataAccess {
		logger.Panic("pool.Put nil data access")
		return
	}
	p.dataAccess.Put(p.prefixKey(key), value)
}

// PutN - store an unsigned number as an 8 byte big endian record
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Get - read a value for a given key
//
// returns nil if the key does not exist
func (p *PoolHandle) Get(key []byte) []byte {
	if nil == p.dataAccess {
		return nil
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode as big endian uint64
//
// second return is false if the record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("pool.GetN record has invalid length: %d", len(buffer))
	}
	return binary.BigEndian.Uint64(buffer), true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	if nil == p.dataAccess {
		return false
	}
	found, err := p.dataAccess.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return found
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	if nil == p.dataAccess {
		logger.Panic("pool.Delete nil data access")
		return
	}
	p.dataAccess.Delete(p.prefixKey(key))
}
