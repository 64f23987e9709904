// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the role registry record set and its byte codecs
//
// records are framed as: Uvarint(tag) followed by the fields in
// struct order, fixed width fields raw and variable width fields
// length prefixed
package record
