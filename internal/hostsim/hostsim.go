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

// Package hostsim is a minimal stand-in for the host responsibilities the
// core itself stays silent about: scheduling dispatches onto a queue,
// persisting a store across a wait, and discarding both on trap. It exists
// so the message-execution core can be exercised end to end without pulling
// in WASM instantiation, gas metering or chain storage.
package hostsim

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"

	mctx "github.com/relaychain/sandbox-runtime/core/message/msgcontext"
	"github.com/relaychain/sandbox-runtime/core/ids"
	"github.com/relaychain/sandbox-runtime/core/message"
)

var (
	dispatchesEmittedMeter = metrics.NewRegisteredMeter("sandbox/dispatches/emitted", nil)
	wakesRequestedMeter    = metrics.NewRegisteredMeter("sandbox/wakes/requested", nil)
	suspendedExecutions    = metrics.NewRegisteredCounter("sandbox/executions/suspended", nil)
)

// ExecutionOutcome is what the host learns once an invocation finishes: the
// dispatches to enqueue, the waiting messages to wake, and, only if the
// program suspended rather than exited, the store to persist for the
// resuming invocation.
type ExecutionOutcome struct {
	Dispatches []message.Dispatch
	Awakening  []ids.MessageID
	Suspended  bool
	Store      *mctx.Store
}

// Queue is the host-side destination for dispatches and wakes, kept here as
// an in-memory stand-in for the persistent queues and waitlists the real
// runtime maintains outside the core's scope.
type Queue struct {
	Dispatches []message.Dispatch
	Woken      []ids.MessageID
}

// Apply commits an ExecutionOutcome: every dispatch is scheduled and every
// wake is recorded, unconditionally and without partial application, mirroring
// the "apply atomically after execution completes" contract the core hands
// the host. Apply must never be called for a trapped execution: the host is
// expected to discard the outcome and store in that case instead.
func (q *Queue) Apply(outcome ExecutionOutcome) {
	q.Dispatches = append(q.Dispatches, outcome.Dispatches...)
	q.Woken = append(q.Woken, outcome.Awakening...)

	dispatchesEmittedMeter.Mark(int64(len(outcome.Dispatches)))
	wakesRequestedMeter.Mark(int64(len(outcome.Awakening)))
	if outcome.Suspended {
		suspendedExecutions.Inc(1)
	}

	log.Info("hostsim: applied execution outcome",
		"dispatches", len(outcome.Dispatches),
		"wakes", len(outcome.Awakening),
		"suspended", outcome.Suspended,
	)
}

// Finish drains ctx and classifies the result: a suspended execution keeps
// its store for the next invocation; any other outcome discards it, since a
// non-suspended context has no further resumption to persist state for.
func Finish(ctx *mctx.MessageContext, suspended bool) ExecutionOutcome {
	outcome, store := ctx.Drain()
	dispatches, awakening := outcome.Drain()

	result := ExecutionOutcome{
		Dispatches: dispatches,
		Awakening:  awakening,
		Suspended:  suspended,
	}
	if suspended {
		result.Store = store
	}

	return result
}

// Trap discards both outcome and store, matching the "host aborts" contract:
// no compensating operations are required and nothing from this execution
// is ever committed.
func Trap(ctx *mctx.MessageContext, reason error) {
	log.Warn("hostsim: execution trapped, discarding outcome and store", "reason", reason)
	ctx.Drain() // consumed and dropped; neither half is inspected further
}

// DescribeDispatch renders a Dispatch the way a host log line or block
// explorer would, useful for the example harness and for debugging tests.
func DescribeDispatch(d message.Dispatch) string {
	switch d.Kind {
	case message.DispatchReply:
		return fmt.Sprintf("reply %s -> %s (exit=%d, %d bytes)", d.ID, d.Destination, d.ExitCode, len(d.Payload))
	default:
		return fmt.Sprintf("%s %s -> %s (%d bytes)", d.Kind, d.ID, d.Destination, len(d.Payload))
	}
}
