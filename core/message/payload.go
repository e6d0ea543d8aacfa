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

// Package message holds the wire-level building blocks the execution core
// deals in: payload buffers, outgoing packets and the three message variants
// they flow into.
package message

// Payload is an ordered byte sequence carried by a message. The platform-wide
// maximum payload size is enforced by the host, not here; the core only ever
// appends or prepends bytes.
type Payload []byte

// Append adds b to the end of the payload.
func (p *Payload) Append(b []byte) {
	*p = append(*p, b...)
}

// Prepend splices b at the front of the payload. The previously accumulated
// bytes always precede whatever the committing packet supplies, which is why
// this is a distinct operation from Append rather than a reversed argument
// order.
func (p *Payload) Prepend(b []byte) {
	if len(b) == 0 {
		return
	}
	merged := make(Payload, 0, len(b)+len(*p))
	merged = append(merged, b...)
	merged = append(merged, *p...)
	*p = merged
}

// Bytes returns the raw payload bytes.
func (p Payload) Bytes() []byte {
	return []byte(p)
}

// Clone returns an independent copy of the payload.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	copy(out, p)
	return out
}
