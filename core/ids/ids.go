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

// Package ids defines the opaque fixed-width identifiers used throughout the
// message-execution core, and the deterministic derivation rules that turn a
// handle or exit code into a new identifier.
package ids

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
)

// Length is the byte width of every identifier in the system.
const Length = 32

// MessageID uniquely identifies a message: incoming, outgoing or reply.
type MessageID [Length]byte

// ProgramID uniquely identifies a program (existing or awaiting creation).
type ProgramID [Length]byte

// ZeroMessageID is the default, unset MessageID.
var ZeroMessageID MessageID

// ZeroProgramID is the default, unset ProgramID.
var ZeroProgramID ProgramID

// BytesToMessageID sets the rightmost bytes of b into a MessageID, truncating
// from the left if b is larger than Length, matching common.BytesToHash.
func BytesToMessageID(b []byte) MessageID {
	var id MessageID
	id.SetBytes(b)
	return id
}

// BytesToProgramID sets the rightmost bytes of b into a ProgramID.
func BytesToProgramID(b []byte) ProgramID {
	var id ProgramID
	id.SetBytes(b)
	return id
}

// SetBytes sets the identifier to the value of b, right-aligned.
func (id *MessageID) SetBytes(b []byte) {
	if len(b) > Length {
		b = b[len(b)-Length:]
	}
	copy(id[Length-len(b):], b)
}

// SetBytes sets the identifier to the value of b, right-aligned.
func (id *ProgramID) SetBytes(b []byte) {
	if len(b) > Length {
		b = b[len(b)-Length:]
	}
	copy(id[Length-len(b):], b)
}

// Bytes returns the raw identifier bytes.
func (id MessageID) Bytes() []byte { return id[:] }

// Bytes returns the raw identifier bytes.
func (id ProgramID) Bytes() []byte { return id[:] }

// Hex returns the 0x-prefixed hex encoding of the identifier.
func (id MessageID) Hex() string { return "0x" + hex.EncodeToString(id[:]) }

// Hex returns the 0x-prefixed hex encoding of the identifier.
func (id ProgramID) Hex() string { return "0x" + hex.EncodeToString(id[:]) }

// String implements fmt.Stringer.
func (id MessageID) String() string { return id.Hex() }

// String implements fmt.Stringer.
func (id ProgramID) String() string { return id.Hex() }

// IsZero reports whether id is the zero value.
func (id MessageID) IsZero() bool { return id == ZeroMessageID }

// IsZero reports whether id is the zero value.
func (id ProgramID) IsZero() bool { return id == ZeroProgramID }

// Less reports whether id sorts strictly before other, compared
// lexicographically over the raw bytes. Used to keep persisted sets in
// deterministic, hash-stable order.
func (id MessageID) Less(other MessageID) bool {
	for i := range id {
		if id[i] != other[i] {
			return id[i] < other[i]
		}
	}
	return false
}

// Less reports whether id sorts strictly before other, compared
// lexicographically over the raw bytes.
func (id ProgramID) Less(other ProgramID) bool {
	for i := range id {
		if id[i] != other[i] {
			return id[i] < other[i]
		}
	}
	return false
}

// GenerateOutgoing derives the identifier of the handle-th message emitted
// while processing incoming. It is a pure function of (incoming, handle):
// two hosts executing the identical operation sequence against the same
// incoming message produce bitwise-identical outgoing identifiers.
func GenerateOutgoing(incoming MessageID, handle uint32) MessageID {
	var buf [Length + 4]byte
	copy(buf[:Length], incoming[:])
	binary.BigEndian.PutUint32(buf[Length:], handle)
	return BytesToMessageID(crypto.Keccak256(buf[:]))
}

// GenerateReply derives the identifier of the reply emitted while processing
// incoming, keyed additionally by the reply's exit code so that distinct
// outcomes of the same incoming message never alias identifiers.
func GenerateReply(incoming MessageID, exitCode int32) MessageID {
	var buf [Length + 4]byte
	copy(buf[:Length], incoming[:])
	binary.BigEndian.PutUint32(buf[Length:], uint32(exitCode))
	return BytesToMessageID(crypto.Keccak256(buf[:]))
}
