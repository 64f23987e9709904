// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/roleregistry/record"
)

// internal constants
const (
	queueSize = 1000
)

// event names
const (
	CommandRoleGranted     = "role.granted"
	CommandRoleRevoked     = "role.revoked"
	CommandRoleWithdrawn   = "role.withdrawn"
	CommandTokensCommitted = "tokens.committed"
	CommandTokensReleased  = "tokens.released"
	CommandApprovalChanged = "approval.changed"
)

// Message - one event, Item holds the matching payload struct
type Message struct {
	Command string
	Item    interface{}
}

// RoleGranted - payload of a grant
type RoleGranted struct {
	CommitmentId   uint64
	Role           record.RoleId
	TokenAddress   record.Address
	TokenId        *uint256.Int
	Grantor        record.Address
	Grantee        record.Address
	ExpirationDate uint64
	Revocable      bool
	Data           []byte
}

// RoleRevoked - payload of a revocation or a withdrawal removing a slot
type RoleRevoked struct {
	CommitmentId uint64
	Role         record.RoleId
	Grantee      record.Address
}

// CustodyChanged - payload of tokens moving into or out of custody
type CustodyChanged struct {
	CommitmentId uint64
	Grantor      record.Address
	TokenAddress record.Address
	TokenId      *uint256.Int
	TokenAmount  *uint256.Int
}

// ApprovalChanged - payload of an operator approval update
type ApprovalChanged struct {
	Principal    record.Address
	Operator     record.Address
	TokenAddress record.Address
	Approved     bool
}

var (
	// for queueing data
	queue = make(chan Message, queueSize)
)

// Send - queue an event, dropped if the queue is full
func Send(command string, item interface{}) {
	select {
	case queue <- Message{Command: command, Item: item}:
	default:
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}

// Drain - discard all queued messages, tests use this to start clean
func Drain() {
loop:
	for {
		select {
		case <-queue:
		default:
			break loop
		}
	}
}
