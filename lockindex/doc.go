// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lockindex - the ordered index contract the registry engine
// consults to decide whether a commitment is still encumbered
//
// two implementations are available: the locklist forest for the
// expected small groups and an AVL backed forest for registries whose
// groups are allowed to grow large
package lockindex
