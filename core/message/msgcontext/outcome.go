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
	"github.com/relaychain/sandbox-runtime/core/ids"
	"github.com/relaychain/sandbox-runtime/core/message"
)

// Outcome accumulates everything a single execution asked to happen: the
// programs to initialize, the messages to deliver, the at-most-one reply and
// the messages to wake. It never survives a wait; a waiting execution's
// pending work lives in Store instead.
type Outcome struct {
	init      []message.InitMessage
	handle    []message.HandleMessage
	reply     *message.ReplyMessage
	awakening []ids.MessageID

	programID   ids.ProgramID
	source      ids.ProgramID
	originMsgID ids.MessageID
}

// newOutcome builds an empty Outcome fixed to the identity of the current
// execution: the program running, the sender of the incoming message, and
// the incoming message's own id.
func newOutcome(programID, source ids.ProgramID, originMsgID ids.MessageID) *Outcome {
	return &Outcome{
		programID:   programID,
		source:      source,
		originMsgID: originMsgID,
	}
}

// ProgramID returns the identifier of the program whose execution produced
// this outcome.
func (o *Outcome) ProgramID() ids.ProgramID { return o.programID }

// Drain consumes the outcome and returns the dispatches ready for the host
// queues together with the message ids to wake. Dispatch order is
// normative: all init messages in push order, then all handle messages in
// commit order, then the reply if one was committed.
func (o *Outcome) Drain() ([]message.Dispatch, []ids.MessageID) {
	dispatches := make([]message.Dispatch, 0, len(o.init)+len(o.handle)+1)

	for _, m := range o.init {
		dispatches = append(dispatches, m.IntoDispatch(o.programID))
	}
	for _, m := range o.handle {
		dispatches = append(dispatches, m.IntoDispatch(o.programID))
	}
	if o.reply != nil {
		dispatches = append(dispatches, o.reply.IntoDispatch(o.programID, o.source, o.originMsgID))
	}

	return dispatches, o.awakening
}
