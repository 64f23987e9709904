// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/roleregistry/fault"
)

// Element - a binary key/value pair
type Element struct {
	Key   []byte
	Value []byte
}

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to a specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return some elements starting from the cursor position
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if nil == cursor.pool.dataAccess {
		return nil, nil
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)
	defer iter.Release()

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {

		// contents of the returned slices must not be modified, and
		// are only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		n += 1
		if n >= count {
			break iterating
		}
	}

	if 0 != len(results) {
		// continue from the next key
		cursor.maxRange.Start = packedKeyAfter(cursor.pool.prefix, results[len(results)-1].Key)
	}
	return results, iter.Error()
}

// Range - call a function for every record in the pool in key order
func (p *PoolHandle) Range(f func(key []byte, value []byte)) {
	if nil == p.dataAccess {
		return
	}

	iter := p.dataAccess.Iterator(&util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	})
	defer iter.Release()

	for iter.Next() {
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		f(dataKey, dataValue)
	}
}

// the smallest key strictly greater than the given one
func packedKeyAfter(prefix byte, key []byte) []byte {
	after := make([]byte, 1, len(key)+2)
	after[0] = prefix
	after = append(after, key...)
	return append(after, 0x00)
}
