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

package message

import (
	"github.com/holiman/uint256"

	"github.com/relaychain/sandbox-runtime/core/ids"
)

// InitPacket is a partially specified message asking the host to create a new
// program. Destination is derived from the code hash by the host; the core
// treats it as an opaque identifier.
type InitPacket struct {
	destination ids.ProgramID
	value       *uint256.Int
	gasLimit    uint64
	delay       uint32
	payload     Payload
}

// NewInitPacket builds an InitPacket ready to hand to MessageContext.InitProgram.
func NewInitPacket(destination ids.ProgramID, payload []byte, value *uint256.Int, gasLimit uint64, delay uint32) InitPacket {
	return InitPacket{
		destination: destination,
		value:       valueOrZero(value),
		gasLimit:    gasLimit,
		delay:       delay,
		payload:     Payload(payload).Clone(),
	}
}

// Destination returns the program identifier this packet would create.
func (p InitPacket) Destination() ids.ProgramID { return p.destination }

// Value returns the balance attached to the init message.
func (p InitPacket) Value() *uint256.Int { return p.value }

// GasLimit returns the gas limit attached to the init message.
func (p InitPacket) GasLimit() uint64 { return p.gasLimit }

// Delay returns the number of blocks the host should postpone dispatch by.
func (p InitPacket) Delay() uint32 { return p.delay }

// Payload returns the packet's own payload, excluding anything later prepended.
func (p InitPacket) Payload() Payload { return p.payload }

// Prepend splices previously streamed bytes in front of the packet's payload.
func (p *InitPacket) Prepend(b []byte) { p.payload.Prepend(b) }

// HandlePacket is a partially specified message addressed to an existing program.
type HandlePacket struct {
	destination ids.ProgramID
	value       *uint256.Int
	gasLimit    uint64
	delay       uint32
	payload     Payload
}

// NewHandlePacket builds a HandlePacket ready to hand to MessageContext.SendCommit.
func NewHandlePacket(destination ids.ProgramID, payload []byte, value *uint256.Int, gasLimit uint64, delay uint32) HandlePacket {
	return HandlePacket{
		destination: destination,
		value:       valueOrZero(value),
		gasLimit:    gasLimit,
		delay:       delay,
		payload:     Payload(payload).Clone(),
	}
}

// Destination returns the existing program this packet is addressed to.
func (p HandlePacket) Destination() ids.ProgramID { return p.destination }

// Value returns the balance attached to the handle message.
func (p HandlePacket) Value() *uint256.Int { return p.value }

// GasLimit returns the gas limit attached to the handle message.
func (p HandlePacket) GasLimit() uint64 { return p.gasLimit }

// Delay returns the number of blocks the host should postpone dispatch by.
func (p HandlePacket) Delay() uint32 { return p.delay }

// Payload returns the packet's own payload, excluding anything later prepended.
func (p HandlePacket) Payload() Payload { return p.payload }

// Prepend splices previously streamed bytes in front of the packet's payload.
func (p *HandlePacket) Prepend(b []byte) { p.payload.Prepend(b) }

// ReplyPacket is a partially specified reply; it has no explicit destination
// because replies always route back to the source of the incoming message.
type ReplyPacket struct {
	value    *uint256.Int
	gasLimit uint64
	exitCode int32
	payload  Payload
}

// NewReplyPacket builds a ReplyPacket ready to hand to MessageContext.ReplyCommit.
func NewReplyPacket(payload []byte, exitCode int32) ReplyPacket {
	return ReplyPacket{
		value:    uint256.NewInt(0),
		exitCode: exitCode,
		payload:  Payload(payload).Clone(),
	}
}

// NewReplyPacketWithValue is NewReplyPacket plus an attached balance transfer.
func NewReplyPacketWithValue(payload []byte, exitCode int32, value *uint256.Int, gasLimit uint64) ReplyPacket {
	return ReplyPacket{
		value:    valueOrZero(value),
		gasLimit: gasLimit,
		exitCode: exitCode,
		payload:  Payload(payload).Clone(),
	}
}

// Value returns the balance attached to the reply.
func (p ReplyPacket) Value() *uint256.Int { return p.value }

// GasLimit returns the gas limit attached to the reply.
func (p ReplyPacket) GasLimit() uint64 { return p.gasLimit }

// ExitCode returns the exit code the reply carries, used to derive the
// reply's identifier alongside the incoming message id.
func (p ReplyPacket) ExitCode() int32 { return p.exitCode }

// Payload returns the packet's own payload, excluding anything later prepended.
func (p ReplyPacket) Payload() Payload { return p.payload }

// Prepend splices previously streamed bytes in front of the packet's payload.
func (p *ReplyPacket) Prepend(b []byte) { p.payload.Prepend(b) }

func valueOrZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return uint256.NewInt(0)
	}
	return v
}
