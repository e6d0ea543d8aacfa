package msgcontext

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/relaychain/sandbox-runtime/core/ids"
)

func TestStoreRoundTripsThroughRLP(t *testing.T) {
	s := NewStore()
	s.outgoingOpen(0)
	s.outgoingGetOrPanic(t, 0).payload.Append([]byte{1, 2, 3})
	s.outgoingTombstone(1)
	s.replyPush([]byte{9, 9})
	s.initializedInsert(ids.BytesToProgramID([]byte{5}))
	s.initializedInsert(ids.BytesToProgramID([]byte{1}))
	s.awaken.ReplaceOrInsert(ids.BytesToMessageID([]byte{3}))
	s.replySent = false

	var buf bytes.Buffer
	if err := s.EncodeRLP(&buf); err != nil {
		t.Fatalf("EncodeRLP: %v", err)
	}

	decoded := &Store{}
	stream := rlp.NewStream(&buf, 0)
	if err := decoded.DecodeRLP(stream); err != nil {
		t.Fatalf("DecodeRLP: %v", err)
	}

	if !s.Equal(decoded) {
		t.Fatalf("decoded store does not equal original")
	}
}

func TestStoreDecodedOutgoingAscendsByHandle(t *testing.T) {
	s := NewStore()
	s.outgoingTombstone(2)
	s.outgoingOpen(0)
	s.outgoingTombstone(1)

	var buf bytes.Buffer
	if err := s.EncodeRLP(&buf); err != nil {
		t.Fatalf("EncodeRLP: %v", err)
	}

	decoded := &Store{}
	if err := decoded.DecodeRLP(rlp.NewStream(&buf, 0)); err != nil {
		t.Fatalf("DecodeRLP: %v", err)
	}

	var seen []uint32
	decoded.outgoing.Ascend(func(slot outgoingSlot) bool {
		seen = append(seen, slot.handle)
		return true
	})

	for i := 1; i < len(seen); i++ {
		if seen[i-1] >= seen[i] {
			t.Fatalf("expected strictly ascending handles, got %v", seen)
		}
	}
}

func TestOutgoingTakeTransitionsToTombstone(t *testing.T) {
	s := NewStore()
	s.outgoingOpen(0)

	payload, exists, ok := s.outgoingTake(0)
	if !exists || !ok {
		t.Fatalf("expected take to succeed, exists=%v ok=%v", exists, ok)
	}
	if payload == nil {
		t.Fatalf("expected non-nil payload")
	}

	_, exists, ok = s.outgoingTake(0)
	if !exists {
		t.Fatalf("expected slot to still exist after tombstoning")
	}
	if ok {
		t.Fatalf("expected second take on a tombstoned slot to fail")
	}
}

func TestAwakenInsertRejectsDuplicates(t *testing.T) {
	s := NewStore()
	id := ids.BytesToMessageID([]byte{1})

	if !s.awakenInsert(id) {
		t.Fatalf("expected first insert to report newly inserted")
	}
	if s.awakenInsert(id) {
		t.Fatalf("expected second insert of the same id to report already present")
	}
}

// outgoingGetOrPanic is a small test helper mirroring the original Rust
// test's direct field access into store.outgoing, for building fixtures.
func (s *Store) outgoingGetOrPanic(t *testing.T, handle uint32) outgoingSlot {
	t.Helper()
	slot, found := s.outgoingGet(handle)
	if !found {
		t.Fatalf("expected handle %d to exist", handle)
	}
	return slot
}
