package message

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"

	"github.com/relaychain/sandbox-runtime/core/ids"
)

func TestPayloadPrependOrdersBytesBeforeExisting(t *testing.T) {
	p := Payload([]byte{9})
	p.Prepend([]byte{5, 7})

	if !bytes.Equal(p.Bytes(), []byte{5, 7, 9}) {
		t.Fatalf("expected [5 7 9], got %v", p.Bytes())
	}
}

func TestPayloadPrependEmptyIsNoop(t *testing.T) {
	p := Payload([]byte{1, 2})
	p.Prepend(nil)

	if !bytes.Equal(p.Bytes(), []byte{1, 2}) {
		t.Fatalf("expected unchanged payload, got %v", p.Bytes())
	}
}

func TestInitMessageIntoDispatch(t *testing.T) {
	dest := ids.BytesToProgramID([]byte{1})
	pkt := NewInitPacket(dest, []byte{1, 2}, uint256.NewInt(5), 100, 0)
	id := ids.BytesToMessageID([]byte{0xAA})
	msg := NewInitMessage(id, pkt)

	programID := ids.BytesToProgramID([]byte{0xFF})
	d := msg.IntoDispatch(programID)

	if d.Kind != DispatchInit {
		t.Fatalf("expected DispatchInit, got %v", d.Kind)
	}
	if d.Destination != dest {
		t.Fatalf("expected destination %s, got %s", dest, d.Destination)
	}
	if d.Source != programID {
		t.Fatalf("expected source %s, got %s", programID, d.Source)
	}
	if d.Value.Cmp(uint256.NewInt(5)) != 0 {
		t.Fatalf("expected value 5, got %s", d.Value)
	}
}

func TestReplyMessageIntoDispatchRoutesToSource(t *testing.T) {
	pkt := NewReplyPacket([]byte{1, 2, 3}, 0)
	id := ids.BytesToMessageID([]byte{0xBB})
	msg := NewReplyMessage(id, pkt)

	programID := ids.BytesToProgramID([]byte{1})
	source := ids.BytesToProgramID([]byte{2})
	origin := ids.BytesToMessageID([]byte{3})

	d := msg.IntoDispatch(programID, source, origin)

	if d.Kind != DispatchReply {
		t.Fatalf("expected DispatchReply, got %v", d.Kind)
	}
	if d.Destination != source {
		t.Fatalf("expected reply to route to source %s, got %s", source, d.Destination)
	}
	if d.ReplyTo != origin {
		t.Fatalf("expected ReplyTo %s, got %s", origin, d.ReplyTo)
	}
}
