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

// DispatchKind discriminates the three shapes a Dispatch can carry.
type DispatchKind uint8

const (
	// DispatchInit asks the host to create a new program.
	DispatchInit DispatchKind = iota
	// DispatchHandle invokes an existing program.
	DispatchHandle
	// DispatchReply answers the source of the incoming message.
	DispatchReply
)

// String implements fmt.Stringer for readable logging.
func (k DispatchKind) String() string {
	switch k {
	case DispatchInit:
		return "init"
	case DispatchHandle:
		return "handle"
	case DispatchReply:
		return "reply"
	default:
		return "unknown"
	}
}

// Dispatch is the uniform record the host schedules, regardless of which
// message variant produced it.
type Dispatch struct {
	Kind        DispatchKind
	ID          ids.MessageID
	Source      ids.ProgramID // the program whose execution emitted this dispatch
	Destination ids.ProgramID // for Init/Handle: recipient; for Reply: the original sender
	Value       *uint256.Int
	GasLimit    uint64
	Delay       uint32
	Payload     Payload
	ReplyTo     ids.MessageID // for Reply only: the message being answered
	ExitCode    int32         // for Reply only
}

// InitMessage is a fully formed init dispatch, already carrying its generated
// identifier.
type InitMessage struct {
	id     ids.MessageID
	packet InitPacket
}

// NewInitMessage pairs a generated identifier with the packet it was built from.
func NewInitMessage(id ids.MessageID, packet InitPacket) InitMessage {
	return InitMessage{id: id, packet: packet}
}

// IntoDispatch converts the init message into a Dispatch emitted by programID.
func (m InitMessage) IntoDispatch(programID ids.ProgramID) Dispatch {
	return Dispatch{
		Kind:        DispatchInit,
		ID:          m.id,
		Source:      programID,
		Destination: m.packet.Destination(),
		Value:       m.packet.Value(),
		GasLimit:    m.packet.GasLimit(),
		Delay:       m.packet.Delay(),
		Payload:     m.packet.Payload(),
	}
}

// HandleMessage is a fully formed handle dispatch, already carrying its
// generated identifier.
type HandleMessage struct {
	id     ids.MessageID
	packet HandlePacket
}

// NewHandleMessage pairs a generated identifier with the packet it was built from.
func NewHandleMessage(id ids.MessageID, packet HandlePacket) HandleMessage {
	return HandleMessage{id: id, packet: packet}
}

// Payload returns the committed payload bytes: any bytes streamed through
// send_push followed by the committing packet's own payload.
func (m HandleMessage) Payload() Payload { return m.packet.Payload() }

// IntoDispatch converts the handle message into a Dispatch emitted by programID.
func (m HandleMessage) IntoDispatch(programID ids.ProgramID) Dispatch {
	return Dispatch{
		Kind:        DispatchHandle,
		ID:          m.id,
		Source:      programID,
		Destination: m.packet.Destination(),
		Value:       m.packet.Value(),
		GasLimit:    m.packet.GasLimit(),
		Delay:       m.packet.Delay(),
		Payload:     m.packet.Payload(),
	}
}

// ReplyMessage is a fully formed reply dispatch, already carrying its
// generated identifier. Unlike Init/Handle it has no destination of its own;
// the destination is the source of the incoming message it replies to.
type ReplyMessage struct {
	id     ids.MessageID
	packet ReplyPacket
}

// NewReplyMessage pairs a generated identifier with the packet it was built from.
func NewReplyMessage(id ids.MessageID, packet ReplyPacket) ReplyMessage {
	return ReplyMessage{id: id, packet: packet}
}

// Payload returns the committed reply payload bytes.
func (m ReplyMessage) Payload() Payload { return m.packet.Payload() }

// IntoDispatch converts the reply message into a Dispatch. programID is the
// emitting program, source is the original incoming message's sender, and
// originMsgID is the incoming message being replied to.
func (m ReplyMessage) IntoDispatch(programID, source ids.ProgramID, originMsgID ids.MessageID) Dispatch {
	return Dispatch{
		Kind:        DispatchReply,
		ID:          m.id,
		Source:      programID,
		Destination: source,
		Value:       m.packet.Value(),
		GasLimit:    m.packet.GasLimit(),
		Payload:     m.packet.Payload(),
		ReplyTo:     originMsgID,
		ExitCode:    m.packet.ExitCode(),
	}
}
