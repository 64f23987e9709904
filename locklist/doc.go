// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package locklist - a forest of doubly linked lists, one list per
// group key, each held in descending expiration date order
//
// the head of a group's list is the longest outstanding lock, so the
// test for "is anything in this group still locked" is a single head
// read.  insert is a linear scan which is acceptable as a group only
// holds the locks of one commitment and stays small
package locklist
