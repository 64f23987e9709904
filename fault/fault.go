// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrApprovalForSelf            = InvalidError("operator cannot be the principal")
	ErrCommitmentNotFound         = NotFoundError("commitment not found")
	ErrDatabaseVersion            = ProcessError("database version mismatch")
	ErrExpirationInPast           = InvalidError("expiration date is not in the future")
	ErrGranteeMismatch            = InvalidError("grantee does not match assignment")
	ErrInsufficientTokenBalance   = ProcessError("insufficient token balance")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidCursor              = InvalidError("invalid cursor")
	ErrInvalidKeyLength           = InvalidError("key length is invalid")
	ErrInvalidNodeId              = InvalidError("node id cannot be zero")
	ErrInvalidRole                = InvalidError("role is not supported by this registry")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrNodeAlreadyExists          = ExistsError("node already exists")
	ErrNodeNotFound               = NotFoundError("node not found")
	ErrNotInitialised             = ProcessError("not initialised")
	ErrNotRevocableAndNotExpired  = InvalidError("assignment is neither revocable nor expired")
	ErrRecordTooShort             = InvalidError("record too short")
	ErrRecordTag                  = InvalidError("record tag is not valid")
	ErrRoleAssignmentNotFound     = NotFoundError("role assignment not found")
	ErrSlotOccupiedAndActive      = ExistsError("slot is occupied by an active assignment")
	ErrStillLocked                = ProcessError("commitment is still locked")
	ErrTransactionInUse           = ProcessError("transaction already in use")
	ErrTransferNotApproved        = ProcessError("token transfer is not approved")
	ErrUnauthorized               = InvalidError("caller is not authorised")
	ErrWrongGroup                 = InvalidError("node does not belong to the group")
	ErrZeroAmount                 = InvalidError("token amount cannot be zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine if an error belongs to the exists class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an error belongs to the invalid class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine if an error belongs to the not found class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if an error belongs to the process class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
