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
	"io"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/google/btree"

	"github.com/relaychain/sandbox-runtime/core/ids"
	"github.com/relaychain/sandbox-runtime/core/message"
)

const btreeDegree = 32

// outgoingSlot is one entry of Store.outgoing: a handle paired with either an
// open buffer (payload != nil) or a tombstone (payload == nil) recording that
// the handle was already committed and must never be reused.
type outgoingSlot struct {
	handle  uint32
	payload *message.Payload
}

func lessOutgoingSlot(a, b outgoingSlot) bool { return a.handle < b.handle }

func lessProgramID(a, b ids.ProgramID) bool { return a.Less(b) }

func lessMessageID(a, b ids.MessageID) bool { return a.Less(b) }

// Store is the slice of MessageContext state that survives a wait/wake
// boundary: pending outgoing buffers keyed by handle, the pending reply
// buffer, the set of destinations already asked to initialize, the set of
// message ids already asked to wake, and the reply-sent latch. Iteration
// order over every collection here is part of the external, hash-stable
// serialization contract, so all three collections are kept in a
// self-balancing ordered tree rather than an unordered map.
type Store struct {
	outgoing    *btree.BTreeG[outgoingSlot]
	reply       *message.Payload
	initialized *btree.BTreeG[ids.ProgramID]
	awaken      *btree.BTreeG[ids.MessageID]
	replySent   bool
}

// NewStore returns an empty store, as used when an execution begins fresh
// rather than resuming from a prior wait.
func NewStore() *Store {
	return &Store{
		outgoing:    btree.NewG(btreeDegree, lessOutgoingSlot),
		initialized: btree.NewG(btreeDegree, lessProgramID),
		awaken:      btree.NewG(btreeDegree, lessMessageID),
	}
}

// Clone returns an independent deep copy of the store, suitable for a host
// to snapshot before handing it to an execution it does not fully trust.
func (s *Store) Clone() *Store {
	clone := NewStore()

	s.outgoing.Ascend(func(slot outgoingSlot) bool {
		if slot.payload == nil {
			clone.outgoing.ReplaceOrInsert(outgoingSlot{handle: slot.handle})
		} else {
			buf := slot.payload.Clone()
			clone.outgoing.ReplaceOrInsert(outgoingSlot{handle: slot.handle, payload: &buf})
		}
		return true
	})
	if s.reply != nil {
		buf := s.reply.Clone()
		clone.reply = &buf
	}
	s.initialized.Ascend(func(id ids.ProgramID) bool {
		clone.initialized.ReplaceOrInsert(id)
		return true
	})
	s.awaken.Ascend(func(id ids.MessageID) bool {
		clone.awaken.ReplaceOrInsert(id)
		return true
	})
	clone.replySent = s.replySent

	return clone
}

// OutgoingLen reports how many handles have ever been opened (buffering or
// tombstoned) during this execution; it is the basis of the outgoing-limit
// check and of handle allocation (the next handle is always OutgoingLen()).
func (s *Store) OutgoingLen() uint32 { return uint32(s.outgoing.Len()) }

// outgoingGet returns the slot for handle and whether it exists at all.
func (s *Store) outgoingGet(handle uint32) (outgoingSlot, bool) {
	return s.outgoing.Get(outgoingSlot{handle: handle})
}

// outgoingOpen allocates handle in the buffering state with an empty payload.
func (s *Store) outgoingOpen(handle uint32) {
	buf := message.Payload{}
	s.outgoing.ReplaceOrInsert(outgoingSlot{handle: handle, payload: &buf})
}

// outgoingTombstone allocates handle already in the tombstoned state, used
// by InitProgram where the payload is fully supplied up front and no further
// streaming is ever permitted against this handle.
func (s *Store) outgoingTombstone(handle uint32) {
	s.outgoing.ReplaceOrInsert(outgoingSlot{handle: handle})
}

// outgoingTake removes and returns the buffer for handle, transitioning the
// slot to tombstoned in the same step. ok is false if the handle does not
// exist or was already tombstoned; callers must not mutate the store on that
// path.
func (s *Store) outgoingTake(handle uint32) (payload *message.Payload, exists bool, ok bool) {
	slot, found := s.outgoingGet(handle)
	if !found {
		return nil, false, false
	}
	if slot.payload == nil {
		return nil, true, false
	}
	taken := slot.payload
	s.outgoingTombstone(handle)
	return taken, true, true
}

// initializedHas reports whether destination was already asked to initialize.
func (s *Store) initializedHas(destination ids.ProgramID) bool {
	_, found := s.initialized.Get(destination)
	return found
}

// initializedInsert records that destination has now been asked to initialize.
func (s *Store) initializedInsert(destination ids.ProgramID) {
	s.initialized.ReplaceOrInsert(destination)
}

// awakenInsert records id as woken, returning false if it was already present
// (the duplicate-wake case).
func (s *Store) awakenInsert(id ids.MessageID) bool {
	if _, found := s.awaken.Get(id); found {
		return false
	}
	s.awaken.ReplaceOrInsert(id)
	return true
}

// replyPush lazily creates the reply buffer on first call, then appends.
func (s *Store) replyPush(b []byte) {
	if s.reply == nil {
		s.reply = &message.Payload{}
	}
	s.reply.Append(b)
}

// replyTake removes and returns the pending reply buffer, treating a missing
// buffer as an empty one per the permissive semantics documented for
// ReplyCommit.
func (s *Store) replyTake() message.Payload {
	if s.reply == nil {
		return message.Payload{}
	}
	taken := *s.reply
	s.reply = nil
	return taken
}

// encodedOutgoingSlot is the RLP wire shape of one outgoing entry: RLP has no
// native optional-value encoding, so the tombstone/open distinction is
// carried explicitly rather than via a nil payload.
type encodedOutgoingSlot struct {
	Handle     uint32
	Tombstoned bool
	Payload    []byte
}

// encodedStore is the canonical, hash-stable persisted layout described in
// the store's external interface contract: the outgoing mapping sorted by
// handle ascending, the optional reply buffer, the initialized set sorted
// lexicographically, the awaken set sorted, and the reply-sent flag, in that
// exact order.
type encodedStore struct {
	Outgoing    []encodedOutgoingSlot
	HasReply    bool
	Reply       []byte
	Initialized [][ids.Length]byte
	Awaken      [][ids.Length]byte
	ReplySent   bool
}

// EncodeRLP implements rlp.Encoder, giving Store a deterministic,
// cross-node-stable byte representation fit for the host's persistence
// layer.
func (s *Store) EncodeRLP(w io.Writer) error {
	enc := encodedStore{ReplySent: s.replySent}

	s.outgoing.Ascend(func(slot outgoingSlot) bool {
		e := encodedOutgoingSlot{Handle: slot.handle}
		if slot.payload == nil {
			e.Tombstoned = true
		} else {
			e.Payload = slot.payload.Bytes()
		}
		enc.Outgoing = append(enc.Outgoing, e)
		return true
	})

	if s.reply != nil {
		enc.HasReply = true
		enc.Reply = s.reply.Bytes()
	}

	s.initialized.Ascend(func(id ids.ProgramID) bool {
		enc.Initialized = append(enc.Initialized, [ids.Length]byte(id))
		return true
	})
	s.awaken.Ascend(func(id ids.MessageID) bool {
		enc.Awaken = append(enc.Awaken, [ids.Length]byte(id))
		return true
	})

	return rlp.Encode(w, &enc)
}

// DecodeRLP implements rlp.Decoder, the inverse of EncodeRLP.
func (s *Store) DecodeRLP(stream *rlp.Stream) error {
	var enc encodedStore
	if err := stream.Decode(&enc); err != nil {
		return err
	}

	fresh := NewStore()
	for _, e := range enc.Outgoing {
		if e.Tombstoned {
			fresh.outgoingTombstone(e.Handle)
			continue
		}
		buf := message.Payload(e.Payload)
		fresh.outgoing.ReplaceOrInsert(outgoingSlot{handle: e.Handle, payload: &buf})
	}
	if enc.HasReply {
		buf := message.Payload(enc.Reply)
		fresh.reply = &buf
	}
	for _, raw := range enc.Initialized {
		fresh.initializedInsert(ids.ProgramID(raw))
	}
	for _, raw := range enc.Awaken {
		fresh.awaken.ReplaceOrInsert(ids.MessageID(raw))
	}
	fresh.replySent = enc.ReplySent

	*s = *fresh
	return nil
}

// Equal reports whether two stores hold identical state, field for field.
// Used by round-trip tests comparing a decoded store against the original.
func (s *Store) Equal(other *Store) bool {
	if s.replySent != other.replySent {
		return false
	}
	if (s.reply == nil) != (other.reply == nil) {
		return false
	}
	if s.reply != nil && string(s.reply.Bytes()) != string(other.reply.Bytes()) {
		return false
	}
	if s.outgoing.Len() != other.outgoing.Len() {
		return false
	}
	if s.initialized.Len() != other.initialized.Len() {
		return false
	}
	if s.awaken.Len() != other.awaken.Len() {
		return false
	}

	equal := true
	s.outgoing.Ascend(func(slot outgoingSlot) bool {
		otherSlot, found := other.outgoingGet(slot.handle)
		if !found || (slot.payload == nil) != (otherSlot.payload == nil) {
			equal = false
			return false
		}
		if slot.payload != nil && string(slot.payload.Bytes()) != string(otherSlot.payload.Bytes()) {
			equal = false
			return false
		}
		return true
	})
	if !equal {
		return false
	}

	s.initialized.Ascend(func(id ids.ProgramID) bool {
		if !other.initializedHas(id) {
			equal = false
			return false
		}
		return true
	})
	if !equal {
		return false
	}

	s.awaken.Ascend(func(id ids.MessageID) bool {
		if _, found := other.awaken.Get(id); !found {
			equal = false
			return false
		}
		return true
	})

	return equal
}
