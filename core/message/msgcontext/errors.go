// Copyright 2026 The sandbox-runtime Authors
// This file is part of the sandbox-runtime library.
//
// The sandbox-runtime library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The sandbox-runtime library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the sandbox-runtime library. If not, see <http://www.gnu.org/licenses/>.

// Package msgcontext implements the per-invocation message-execution context:
// the operational façade that binds an incoming message, a persisted store
// and a transient outcome, and mediates every side effect a program may
// record during one execution.
package msgcontext

import "errors"

// ErrorKind discriminates the closed set of failures a MessageContext
// operation can signal. Callers should compare against the sentinel errors
// below with errors.Is rather than switching on this type directly.
type ErrorKind uint8

const (
	// ErrorKindLimitExceeded signals that the outgoing-message limit would be
	// exceeded by this allocation.
	ErrorKindLimitExceeded ErrorKind = iota
	// ErrorKindDuplicateReply signals a second attempt to commit a reply.
	ErrorKindDuplicateReply
	// ErrorKindDuplicateWaking signals a repeated wake of the same message id.
	ErrorKindDuplicateWaking
	// ErrorKindLateAccess signals push/commit against an already-tombstoned
	// handle, or any reply operation after the reply was already sent.
	ErrorKindLateAccess
	// ErrorKindOutOfBounds signals a handle that was never opened.
	ErrorKindOutOfBounds
	// ErrorKindDuplicateInit signals a second init of an already-initialized
	// destination.
	ErrorKindDuplicateInit
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindLimitExceeded:
		return "message limit exceeded"
	case ErrorKindDuplicateReply:
		return "duplicate reply message"
	case ErrorKindDuplicateWaking:
		return "duplicate waking message"
	case ErrorKindLateAccess:
		return "an attempt to commit or push a payload into an already formed message"
	case ErrorKindOutOfBounds:
		return "message with given handle is not found"
	case ErrorKindDuplicateInit:
		return "duplicated program initialization message"
	default:
		return "unknown message error"
	}
}

// MessageError is the error type every MessageContext operation returns.
// It carries exactly one ErrorKind from the closed taxonomy; nothing outside
// this package constructs one.
type MessageError struct {
	kind ErrorKind
}

// Error implements the error interface.
func (e *MessageError) Error() string { return e.kind.String() }

// Kind returns the discriminated error kind.
func (e *MessageError) Kind() ErrorKind { return e.kind }

// Sentinel errors programs and hosts can compare against with errors.Is.
var (
	ErrLimitExceeded  = &MessageError{ErrorKindLimitExceeded}
	ErrDuplicateReply = &MessageError{ErrorKindDuplicateReply}
	ErrDuplicateWake  = &MessageError{ErrorKindDuplicateWaking}
	ErrLateAccess     = &MessageError{ErrorKindLateAccess}
	ErrOutOfBounds    = &MessageError{ErrorKindOutOfBounds}
	ErrDuplicateInit  = &MessageError{ErrorKindDuplicateInit}
)

// Is allows errors.Is(err, ErrDuplicateInit) to match regardless of pointer
// identity, so callers never need to reach into the package for comparison.
func (e *MessageError) Is(target error) bool {
	var other *MessageError
	if !errors.As(target, &other) {
		return false
	}
	return e.kind == other.kind
}
