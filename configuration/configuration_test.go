// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/roleregistry/configuration"
)

const testConfiguration = `
local M = {}

M.data_directory = "."

M.database = {
    name = "registry-test",
}

M.registry = {
    custodian = "3rVCASpyQTvfmMnV1HJXRNY9qGA7",
    release_on_revoke = true,
    use_tree_index = false,
    supported_roles = { "manager", "tenant" },
}

M.logging = {
    size = 4096,
    count = 5,
    console = true,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func TestGetConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err, "tempdir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "registry.conf")
	err = ioutil.WriteFile(fileName, []byte(testConfiguration), 0o600)
	assert.Nil(t, err, "write error")

	options, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, filepath.Join(dir, "data", "registry-test"), options.Database.Name, "database name")
	assert.Equal(t, "3rVCASpyQTvfmMnV1HJXRNY9qGA7", options.Registry.Custodian, "custodian")
	assert.True(t, options.Registry.ReleaseOnRevoke, "release on revoke")
	assert.False(t, options.Registry.UseTreeIndex, "tree index")
	assert.Equal(t, []string{"manager", "tenant"}, options.Registry.SupportedRoles, "roles")

	assert.Equal(t, 4096, options.Logging.Size, "log size")
	assert.Equal(t, 5, options.Logging.Count, "log count")
	assert.True(t, options.Logging.Console, "log console")
	assert.Equal(t, filepath.Join(dir, "log", "role-registry.log"), options.Logging.File, "log file")

	// directories were created
	info, err := os.Stat(options.Database.Directory)
	assert.Nil(t, err, "database directory missing")
	assert.True(t, info.IsDir(), "database directory is a file")
}

func TestBadStructPointer(t *testing.T) {
	err := configuration.ParseConfigurationFile("no-such-file.conf", 42)
	assert.NotNil(t, err, "non-pointer accepted")
}

func TestMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration("/nonexistent/registry.conf")
	assert.NotNil(t, err, "missing file accepted")
}
