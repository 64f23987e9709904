// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"
)

// MemoryHandle - a map backed Handle so the ledger packages can be
// tested in isolation without a database on disk
type MemoryHandle struct {
	sync.RWMutex
	items map[string][]byte
}

// NewMemoryHandle - create an empty in-memory pool
func NewMemoryHandle() *MemoryHandle {
	return &MemoryHandle{
		items: make(map[string][]byte),
	}
}

// Put - store a key/value bytes pair
func (m *MemoryHandle) Put(key []byte, value []byte) {
	m.Lock()
	defer m.Unlock()
	data := make([]byte, len(value))
	copy(data, value)
	m.items[string(key)] = data
}

// PutN - store an unsigned number as an 8 byte big endian record
func (m *MemoryHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	m.Put(key, buffer)
}

// Get - read a value, nil if the key does not exist
func (m *MemoryHandle) Get(key []byte) []byte {
	m.RLock()
	defer m.RUnlock()
	value, ok := m.items[string(key)]
	if !ok {
		return nil
	}
	return value
}

// GetN - read a record and decode as big endian uint64
func (m *MemoryHandle) GetN(key []byte) (uint64, bool) {
	buffer := m.Get(key)
	if nil == buffer {
		return 0, false
	}
	if 8 != len(buffer) {
		logger.Panicf("memory.GetN record has invalid length: %d", len(buffer))
	}
	return binary.BigEndian.Uint64(buffer), true
}

// Has - check if a key exists
func (m *MemoryHandle) Has(key []byte) bool {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.items[string(key)]
	return ok
}

// Delete - remove a key
func (m *MemoryHandle) Delete(key []byte) {
	m.Lock()
	defer m.Unlock()
	delete(m.items, string(key))
}

// Count - number of stored records
func (m *MemoryHandle) Count() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.items)
}

// Range - call a function for every stored record
//
// iteration order is unspecified
func (m *MemoryHandle) Range(f func(key []byte, value []byte)) {
	m.RLock()
	defer m.RUnlock()
	for key, value := range m.items {
		f([]byte(key), value)
	}
}

// memoryTransaction - satisfies Transaction for in-memory tests,
// writes to a MemoryHandle are immediate so this only tracks nesting
type memoryTransaction struct {
	sync.Mutex
	inUse bool
}

// NewMemoryTransaction - a Transaction for in-memory pools
func NewMemoryTransaction() Transaction {
	return &memoryTransaction{}
}

func (t *memoryTransaction) Begin() error {
	t.Lock()
	defer t.Unlock()
	t.inUse = true
	return nil
}

func (t *memoryTransaction) Commit() error {
	t.Lock()
	defer t.Unlock()
	t.inUse = false
	return nil
}

func (t *memoryTransaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.inUse = false
}

func (t *memoryTransaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
