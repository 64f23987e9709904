// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/bitmark-inc/roleregistry/messagebus"
	"github.com/bitmark-inc/roleregistry/record"
)

func TestQueue(t *testing.T) {
	messagebus.Drain()

	commands := []string{
		messagebus.CommandRoleGranted,
		messagebus.CommandTokensCommitted,
		messagebus.CommandRoleRevoked,
	}

	for i, command := range commands {
		messagebus.Send(command, messagebus.RoleRevoked{CommitmentId: uint64(i + 1)})
	}

	queue := messagebus.Chan()
	for i, command := range commands {
		received := <-queue
		if received.Command != command {
			t.Errorf("actual: %q  expected: %q", received.Command, command)
		}
		item, ok := received.Item.(messagebus.RoleRevoked)
		if !ok {
			t.Fatalf("unexpected item type: %T", received.Item)
		}
		if item.CommitmentId != uint64(i+1) {
			t.Errorf("actual id: %d  expected: %d", item.CommitmentId, i+1)
		}
	}
}

func TestSendNeverBlocks(t *testing.T) {
	messagebus.Drain()

	// far more than the queue can hold, with nothing listening
	for i := 0; i < 5000; i += 1 {
		messagebus.Send(messagebus.CommandApprovalChanged, messagebus.ApprovalChanged{
			Principal: record.Address{byte(i)},
			Approved:  true,
		})
	}

	messagebus.Drain()
}
