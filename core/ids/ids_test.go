package ids

import "testing"

func TestBytesConversion(t *testing.T) {
	b := []byte{5}
	id := BytesToMessageID(b)

	var exp MessageID
	exp[31] = 5

	if id != exp {
		t.Errorf("expected %x got %x", exp, id)
	}
}

func TestSetBytesTruncatesFromLeft(t *testing.T) {
	long := make([]byte, Length+4)
	for i := range long {
		long[i] = byte(i)
	}

	id := BytesToProgramID(long)
	if id != BytesToProgramID(long[4:]) {
		t.Errorf("expected overlong input to truncate from the left")
	}
}

func TestGenerateOutgoingIsPureAndDeterministic(t *testing.T) {
	incoming := BytesToMessageID([]byte{3})

	a := GenerateOutgoing(incoming, 0)
	b := GenerateOutgoing(incoming, 0)
	if a != b {
		t.Fatalf("GenerateOutgoing is not deterministic: %x != %x", a, b)
	}

	c := GenerateOutgoing(incoming, 1)
	if a == c {
		t.Fatalf("GenerateOutgoing collided across distinct handles")
	}
}

func TestGenerateReplyDependsOnExitCode(t *testing.T) {
	incoming := BytesToMessageID([]byte{3})

	a := GenerateReply(incoming, 0)
	b := GenerateReply(incoming, 1)
	if a == b {
		t.Fatalf("GenerateReply collided across distinct exit codes")
	}

	// Negative exit codes must still derive a stable identifier.
	c := GenerateReply(incoming, -1)
	d := GenerateReply(incoming, -1)
	if c != d {
		t.Fatalf("GenerateReply is not deterministic for negative exit codes")
	}
}

func TestIDOrdering(t *testing.T) {
	a := BytesToMessageID([]byte{1})
	b := BytesToMessageID([]byte{2})

	if !a.Less(b) {
		t.Errorf("expected %s < %s", a, b)
	}
	if b.Less(a) {
		t.Errorf("did not expect %s < %s", b, a)
	}
	if a.Less(a) {
		t.Errorf("id must not be less than itself")
	}
}

func TestIsZero(t *testing.T) {
	if !ZeroMessageID.IsZero() {
		t.Errorf("expected zero value to report IsZero")
	}
	if BytesToMessageID([]byte{1}).IsZero() {
		t.Errorf("did not expect non-zero value to report IsZero")
	}
}
