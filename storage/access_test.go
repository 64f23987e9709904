// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"
)

// a refused batch write must discard the pending writes and leave
// the transaction reusable
func TestCommitFailureResets(t *testing.T) {
	dir, err := ioutil.TempDir("", "access-commit")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := leveldb.OpenFile(dir, nil)
	assert.NoError(t, err)

	access := newAccess(db, new(leveldb.Batch), newCache())

	assert.NoError(t, access.Begin())
	access.Put([]byte("key"), []byte("value"))

	db.Close()

	assert.Error(t, access.Commit(), "commit on a closed database succeeded")
	assert.False(t, access.InUse(), "transaction left in use")

	// the discarded write must not be served from the cache
	_, err = access.Get([]byte("key"))
	assert.Error(t, err, "stale cached value after failed commit")

	assert.NoError(t, access.Begin(), "next transaction refused")
	access.Abort()
}
