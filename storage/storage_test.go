// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/roleregistry/storage"
)

const databaseDirectory = "test-storage-data"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(databaseDirectory)
	if err := os.MkdirAll(databaseDirectory, 0o700); nil != err {
		panic(err)
	}
	if err := storage.Initialise(databaseDirectory+"/test", storage.ReadWrite); nil != err {
		panic(err)
	}

	rc := m.Run()

	storage.Finalise()
	_ = os.RemoveAll(databaseDirectory)
	os.Exit(rc)
}

func commit(t *testing.T) {
	trx, err := storage.NewTransaction()
	assert.NoError(t, err)
	assert.NoError(t, trx.Commit())
}

func TestPutGetDelete(t *testing.T) {
	pool := storage.Pool.TestData

	key := []byte("key-one")
	value := []byte("value-one")

	pool.Put(key, value)
	commit(t)

	assert.Equal(t, value, pool.Get(key))
	assert.True(t, pool.Has(key))

	pool.Delete(key)
	commit(t)

	assert.Nil(t, pool.Get(key))
	assert.False(t, pool.Has(key))
}

func TestPutNGetN(t *testing.T) {
	pool := storage.Pool.TestData

	key := []byte("counter")

	_, ok := pool.GetN(key)
	assert.False(t, ok)

	pool.PutN(key, 42)
	commit(t)

	n, ok := pool.GetN(key)
	assert.True(t, ok)
	assert.Equal(t, uint64(42), n)
}

// reads inside an open transaction must observe pending writes and
// an abort must discard them
func TestTransactionVisibility(t *testing.T) {
	pool := storage.Pool.TestData

	trx, err := storage.NewTransaction()
	assert.NoError(t, err)
	assert.NoError(t, trx.Begin())

	key := []byte("pending")
	pool.Put(key, []byte("pending-value"))

	assert.Equal(t, []byte("pending-value"), pool.Get(key))

	trx.Abort()

	assert.Nil(t, pool.Get(key), "aborted write leaked to the database")
}

func TestTransactionExclusion(t *testing.T) {
	trx, err := storage.NewTransaction()
	assert.NoError(t, err)

	assert.NoError(t, trx.Begin())
	assert.Error(t, trx.Begin(), "nested Begin must fail")
	trx.Abort()
}

func TestCursor(t *testing.T) {
	pool := storage.Pool.TestData

	records := []struct {
		key   string
		value string
	}{
		{"scan.1", "one"},
		{"scan.2", "two"},
		{"scan.3", "three"},
		{"scan.4", "four"},
	}
	for _, r := range records {
		pool.Put([]byte(r.key), []byte(r.value))
	}
	commit(t)

	cursor := pool.NewFetchCursor().Seek([]byte("scan."))

	first, err := cursor.Fetch(2)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(first))
	assert.Equal(t, []byte("scan.1"), first[0].Key)
	assert.Equal(t, []byte("one"), first[0].Value)

	// fetch continues from where the last one stopped
	rest, err := cursor.Fetch(10)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(rest))
	assert.Equal(t, []byte("scan.3"), rest[0].Key)
	assert.Equal(t, []byte("scan.4"), rest[1].Key)

	for _, r := range records {
		pool.Delete([]byte(r.key))
	}
	commit(t)
}

func TestMemoryHandle(t *testing.T) {
	pool := storage.NewMemoryHandle()

	pool.Put([]byte("a"), []byte("alpha"))
	pool.PutN([]byte("n"), 7)

	assert.Equal(t, []byte("alpha"), pool.Get([]byte("a")))
	n, ok := pool.GetN([]byte("n"))
	assert.True(t, ok)
	assert.Equal(t, uint64(7), n)
	assert.Equal(t, 2, pool.Count())

	pool.Delete([]byte("a"))
	assert.False(t, pool.Has([]byte("a")))
	assert.Equal(t, 1, pool.Count())
}
