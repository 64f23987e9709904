// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - the underlying token collaborator
//
// the registry only needs an ownership-or-approval gated transfer
// primitive, a built-in multi-token balance book provides one for
// registries that custody locally issued tokens, anything else can
// satisfy the Transferor interface
package token
