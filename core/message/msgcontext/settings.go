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

// OutgoingLimit is the default hard cap on the number of handles a single
// execution may ever open, across init_program and send_init calls combined.
const OutgoingLimit uint32 = 1024

// Settings enumerates the tunables a host may configure for one invocation.
type Settings struct {
	// SendingFee is the gas cost attributed per emitted outgoing message. The
	// context records it for host accounting; it does not deduct gas itself.
	SendingFee uint64
	// OutgoingLimit hard-caps the total number of handles ever opened during
	// one execution.
	OutgoingLimit uint32
}

// NewSettings builds a Settings value from explicit tunables.
func NewSettings(sendingFee uint64, outgoingLimit uint32) Settings {
	return Settings{SendingFee: sendingFee, OutgoingLimit: outgoingLimit}
}

// DefaultSettings returns (sendingFee=0, outgoingLimit=1024).
func DefaultSettings() Settings {
	return NewSettings(0, OutgoingLimit)
}
