// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/roleregistry/approval"
	"github.com/bitmark-inc/roleregistry/custody"
	"github.com/bitmark-inc/roleregistry/lockindex"
	"github.com/bitmark-inc/roleregistry/record"
	"github.com/bitmark-inc/roleregistry/storage"
)

// Options - engine policy switches
type Options struct {

	// UseTreeIndex - index locks with AVL trees instead of linked lists
	UseTreeIndex bool

	// ReleaseOnRevoke - revoking the last assignment of a commitment
	// also returns its custodied tokens, fusing revoke and withdraw
	ReleaseOnRevoke bool

	// SupportedRoles - restrict grants to these roles, empty allows any
	SupportedRoles []record.RoleId
}

// Registry - the engine over its ledgers
type Registry struct {
	sync.RWMutex

	log         *logger.L
	assignments storage.RangeHandle
	slots       storage.Handle
	custody     *custody.Ledger
	approvals   *approval.Registry
	locks       lockindex.Index
	trx         storage.Transaction
	options     Options
	supported   map[record.RoleId]struct{}
}

// New - assemble the engine and rebuild the lock index from the
// stored assignments
func New(
	assignments storage.RangeHandle,
	slots storage.Handle,
	custodyLedger *custody.Ledger,
	approvals *approval.Registry,
	transaction storage.Transaction,
	options Options,
) (*Registry, error) {

	r := &Registry{
		log:         logger.New("registry"),
		assignments: assignments,
		slots:       slots,
		custody:     custodyLedger,
		approvals:   approvals,
		trx:         transaction,
		options:     options,
	}

	if options.UseTreeIndex {
		r.locks = lockindex.NewTree()
	} else {
		r.locks = lockindex.NewList()
	}

	if 0 != len(options.SupportedRoles) {
		r.supported = make(map[record.RoleId]struct{})
		for _, role := range options.SupportedRoles {
			r.supported[role] = struct{}{}
		}
	}

	// non-revocable assignments are re-indexed on startup, expired
	// ones included since withdraw clears those lazily
	var rebuildError error
	assignments.Range(func(key []byte, value []byte) {
		if nil != rebuildError || 8+record.RoleIdLength != len(key) {
			return
		}
		assignment, err := record.UnpackRoleAssignment(value)
		if nil != err {
			rebuildError = err
			return
		}
		if assignment.Revocable {
			return
		}
		commitmentId := binary.BigEndian.Uint64(key[:8])
		err = r.locks.Insert(lockGroup(commitmentId), lockNodeId(commitmentId, assignment.Role), assignment.ExpirationDate)
		if nil != err {
			rebuildError = err
		}
	})
	if nil != rebuildError {
		return nil, rebuildError
	}

	return r, nil
}

// the lock index group of one commitment
func lockGroup(commitmentId uint64) string {
	return string(record.CommitmentKey(commitmentId))
}

// stable non-zero node id for the lock entry of one role slot
func lockNodeId(commitmentId uint64, role record.RoleId) uint64 {
	digest := record.NewDigest(record.AssignmentKey(commitmentId, role))
	id := binary.BigEndian.Uint64(digest[:8])
	if 0 == id {
		id = 1
	}
	return id
}

// fetch and decode one assignment, nil when absent
func (r *Registry) getAssignment(commitmentId uint64, role record.RoleId) *record.RoleAssignment {
	packed := r.assignments.Get(record.AssignmentKey(commitmentId, role))
	if nil == packed {
		return nil
	}
	assignment, err := record.UnpackRoleAssignment(packed)
	if nil != err {
		r.log.Errorf("corrupt assignment: commitment: %d  role: %s  error: %s", commitmentId, role, err)
		return nil
	}
	return assignment
}

// largest token amount still pinned by a live non-revocable
// assignment of one commitment, the slot being replaced excluded
func (r *Registry) encumberedAmount(commitmentId uint64, exclude record.RoleId, currentTime uint64) *uint256.Int {
	floor := new(uint256.Int)
	for _, key := range r.assignmentKeys(commitmentId) {
		role := record.RoleId{}
		copy(role[:], key[8:])
		if role == exclude {
			continue
		}
		assignment := r.getAssignment(commitmentId, role)
		if nil == assignment || !assignment.IsLocked(currentTime) {
			continue
		}
		if floor.Lt(assignment.TokenAmount) {
			floor.Set(assignment.TokenAmount)
		}
	}
	return floor
}

// keys of every assignment referencing one commitment
func (r *Registry) assignmentKeys(commitmentId uint64) [][]byte {
	prefix := record.CommitmentKey(commitmentId)
	keys := [][]byte(nil)
	r.assignments.Range(func(key []byte, value []byte) {
		if 8+record.RoleIdLength != len(key) || !bytes.Equal(key[:8], prefix) {
			return
		}
		k := make([]byte, len(key))
		copy(k, key)
		keys = append(keys, k)
	})
	return keys
}
