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

// ReplyDetails links an incoming message back to the message it replies to,
// carrying the exit code the replied-to execution finished with.
type ReplyDetails struct {
	replyTo  ids.MessageID
	exitCode int32
}

// NewReplyDetails builds a ReplyDetails pair.
func NewReplyDetails(replyTo ids.MessageID, exitCode int32) ReplyDetails {
	return ReplyDetails{replyTo: replyTo, exitCode: exitCode}
}

// ReplyTo returns the message identifier this is a reply to.
func (d ReplyDetails) ReplyTo() ids.MessageID { return d.replyTo }

// ExitCode returns the exit code of the replied-to execution.
func (d ReplyDetails) ExitCode() int32 { return d.exitCode }

// IncomingMessage is the message whose delivery triggered the current
// execution. It is read-only for the lifetime of a MessageContext: no core
// operation ever mutates it.
type IncomingMessage struct {
	id       ids.MessageID
	source   ids.ProgramID
	payload  Payload
	value    *uint256.Int
	gasLimit uint64
	reply    *ReplyDetails
}

// NewIncomingMessage builds an IncomingMessage. reply is nil unless this
// message is itself a reply to a previously sent message.
func NewIncomingMessage(id ids.MessageID, source ids.ProgramID, payload []byte, value *uint256.Int, gasLimit uint64, reply *ReplyDetails) IncomingMessage {
	return IncomingMessage{
		id:       id,
		source:   source,
		payload:  Payload(payload).Clone(),
		value:    valueOrZero(value),
		gasLimit: gasLimit,
		reply:    reply,
	}
}

// ID returns the incoming message's own identifier.
func (m IncomingMessage) ID() ids.MessageID { return m.id }

// Source returns the program (or external origin) that sent this message.
func (m IncomingMessage) Source() ids.ProgramID { return m.source }

// Payload returns the message's payload bytes.
func (m IncomingMessage) Payload() Payload { return m.payload }

// Value returns the balance attached to this message.
func (m IncomingMessage) Value() *uint256.Int { return m.value }

// GasLimit returns the gas limit this message was dispatched with.
func (m IncomingMessage) GasLimit() uint64 { return m.gasLimit }

// ReplyDetails returns the reply linkage, or nil if this message is not a reply.
func (m IncomingMessage) ReplyDetails() *ReplyDetails { return m.reply }

// IsReply reports whether this incoming message is itself a reply.
func (m IncomingMessage) IsReply() bool { return m.reply != nil }
