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

package msgcontext

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/relaychain/sandbox-runtime/core/ids"
	"github.com/relaychain/sandbox-runtime/core/message"
)

// MessageContext is the operational façade a program executes against: it
// binds the incoming message, the store persisted across wait/wake
// boundaries, the transient outcome being accumulated, and the settings
// snapshot for this invocation. Every mutating method either succeeds,
// updating store and outcome atomically, or fails and leaves both
// untouched; there is no partial-effect state.
type MessageContext struct {
	current  message.IncomingMessage
	store    *Store
	outcome  *Outcome
	settings Settings
}

// New builds a MessageContext with DefaultSettings. store may be nil, in
// which case a fresh, empty store is used; pass the store returned by a
// prior Drain to resume a previously suspended execution.
func New(incoming message.IncomingMessage, programID ids.ProgramID, store *Store) *MessageContext {
	return NewWithSettings(incoming, programID, store, DefaultSettings())
}

// NewWithSettings is New with an explicit Settings snapshot.
func NewWithSettings(incoming message.IncomingMessage, programID ids.ProgramID, store *Store, settings Settings) *MessageContext {
	if store == nil {
		store = NewStore()
	}
	return &MessageContext{
		current:  incoming,
		store:    store,
		outcome:  newOutcome(programID, incoming.Source(), incoming.ID()),
		settings: settings,
	}
}

// InitProgram records the intent to create a new program with an initial
// message. The handle the init consumes is born tombstoned: the payload is
// fully supplied by packet, so no further SendPush/SendCommit against it is
// ever permitted.
func (c *MessageContext) InitProgram(packet message.InitPacket) (ids.ProgramID, ids.MessageID, error) {
	destination := packet.Destination()

	if c.store.initializedHas(destination) {
		return ids.ProgramID{}, ids.MessageID{}, ErrDuplicateInit
	}

	handle := c.store.OutgoingLen()
	if handle >= c.settings.OutgoingLimit {
		return ids.ProgramID{}, ids.MessageID{}, ErrLimitExceeded
	}

	msgID := ids.GenerateOutgoing(c.current.ID(), handle)
	initMsg := message.NewInitMessage(msgID, packet)

	c.store.outgoingTombstone(handle)
	c.store.initializedInsert(destination)
	c.outcome.init = append(c.outcome.init, initMsg)

	log.Debug("message context: init_program recorded", "program", destination, "handle", handle, "msg", msgID)

	return destination, msgID, nil
}

// SendInit reserves a new handle for streaming construction via SendPush,
// later finalized by SendCommit.
func (c *MessageContext) SendInit() (uint32, error) {
	handle := c.store.OutgoingLen()
	if handle >= c.settings.OutgoingLimit {
		return 0, ErrLimitExceeded
	}

	c.store.outgoingOpen(handle)

	return handle, nil
}

// SendPush appends bytes to an open handle's buffer.
func (c *MessageContext) SendPush(handle uint32, data []byte) error {
	slot, found := c.store.outgoingGet(handle)
	if !found {
		return ErrOutOfBounds
	}
	if slot.payload == nil {
		return ErrLateAccess
	}

	slot.payload.Append(data)

	return nil
}

// SendCommit finalizes an open handle into a handle-kind dispatch. The
// bytes previously streamed through SendPush precede whatever payload packet
// itself supplies.
func (c *MessageContext) SendCommit(handle uint32, packet message.HandlePacket) (ids.MessageID, error) {
	taken, exists, ok := c.store.outgoingTake(handle)
	if !exists {
		return ids.MessageID{}, ErrOutOfBounds
	}
	if !ok {
		return ids.MessageID{}, ErrLateAccess
	}

	packet.Prepend(taken.Bytes())

	msgID := ids.GenerateOutgoing(c.current.ID(), handle)
	handleMsg := message.NewHandleMessage(msgID, packet)
	c.outcome.handle = append(c.outcome.handle, handleMsg)

	log.Debug("message context: send_commit recorded", "handle", handle, "msg", msgID, "bytes", len(handleMsg.Payload()))

	return msgID, nil
}

// ReplyPush appends bytes to the pending reply buffer, lazily creating it on
// first call.
func (c *MessageContext) ReplyPush(data []byte) error {
	if c.store.replySent {
		return ErrLateAccess
	}

	c.store.replyPush(data)

	return nil
}

// ReplyCommit finalizes the single reply this execution is allowed to send.
// A missing pending buffer is treated as an empty payload.
func (c *MessageContext) ReplyCommit(packet message.ReplyPacket) (ids.MessageID, error) {
	if c.store.replySent {
		return ids.MessageID{}, ErrDuplicateReply
	}

	taken := c.store.replyTake()
	packet.Prepend(taken.Bytes())

	msgID := ids.GenerateReply(c.current.ID(), packet.ExitCode())
	replyMsg := message.NewReplyMessage(msgID, packet)
	c.outcome.reply = &replyMsg
	c.store.replySent = true

	log.Debug("message context: reply_commit recorded", "msg", msgID, "exit_code", packet.ExitCode())

	return msgID, nil
}

// Wake records intent to resume a previously suspended message. Waking the
// same id twice in one execution is rejected rather than silently coalesced,
// so the host never schedules a duplicate wake.
func (c *MessageContext) Wake(wakerID ids.MessageID) error {
	if !c.store.awakenInsert(wakerID) {
		return ErrDuplicateWake
	}

	c.outcome.awakening = append(c.outcome.awakening, wakerID)

	return nil
}

// Current returns the incoming message this context was built around.
func (c *MessageContext) Current() message.IncomingMessage { return c.current }

// ProgramID returns the identifier of the program currently executing.
func (c *MessageContext) ProgramID() ids.ProgramID { return c.outcome.ProgramID() }

// Drain consumes the context and returns its outcome and store halves. There
// is no validation here: both halves are handed to the host exactly as
// accumulated, for the host to commit (discarding the store) or persist
// across a wait (discarding nothing).
func (c *MessageContext) Drain() (*Outcome, *Store) {
	return c.outcome, c.store
}
