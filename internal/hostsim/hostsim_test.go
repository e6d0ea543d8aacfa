package hostsim

import (
	"errors"
	"testing"

	mctx "github.com/relaychain/sandbox-runtime/core/message/msgcontext"
	"github.com/relaychain/sandbox-runtime/core/ids"
	"github.com/relaychain/sandbox-runtime/core/message"
)

func TestFinishCommitsDispatchesAndDiscardsStoreWhenNotSuspended(t *testing.T) {
	incoming := message.NewIncomingMessage(ids.BytesToMessageID([]byte{1}), ids.ProgramID{}, nil, nil, 0, nil)
	ctx := mctx.New(incoming, ids.BytesToProgramID([]byte{9}), nil)

	if _, err := ctx.ReplyCommit(message.NewReplyPacket([]byte{1}, 0)); err != nil {
		t.Fatalf("reply_commit: %v", err)
	}

	outcome := Finish(ctx, false)
	if len(outcome.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(outcome.Dispatches))
	}
	if outcome.Store != nil {
		t.Fatalf("expected no store to persist for a non-suspended execution")
	}

	q := &Queue{}
	q.Apply(outcome)
	if len(q.Dispatches) != 1 {
		t.Fatalf("expected queue to hold 1 dispatch, got %d", len(q.Dispatches))
	}
}

func TestFinishPersistsStoreWhenSuspended(t *testing.T) {
	incoming := message.NewIncomingMessage(ids.BytesToMessageID([]byte{1}), ids.ProgramID{}, nil, nil, 0, nil)
	ctx := mctx.New(incoming, ids.BytesToProgramID([]byte{9}), nil)

	if _, err := ctx.SendInit(); err != nil {
		t.Fatalf("send_init: %v", err)
	}

	outcome := Finish(ctx, true)
	if outcome.Store == nil {
		t.Fatalf("expected suspended execution to persist its store")
	}
	if outcome.Store.OutgoingLen() != 1 {
		t.Fatalf("expected persisted store to retain the open handle")
	}
}

func TestResumeFromPersistedStoreSeesPriorHandle(t *testing.T) {
	incoming := message.NewIncomingMessage(ids.BytesToMessageID([]byte{1}), ids.ProgramID{}, nil, nil, 0, nil)
	first := mctx.New(incoming, ids.BytesToProgramID([]byte{9}), nil)
	if _, err := first.SendInit(); err != nil {
		t.Fatalf("send_init: %v", err)
	}
	suspended := Finish(first, true)

	resumed := mctx.New(incoming, ids.BytesToProgramID([]byte{9}), suspended.Store)
	if _, err := resumed.SendCommit(0, message.HandlePacket{}); err != nil {
		t.Fatalf("expected resumed context to commit the previously opened handle: %v", err)
	}
}

func TestTrapDiscardsOutcome(t *testing.T) {
	incoming := message.NewIncomingMessage(ids.BytesToMessageID([]byte{1}), ids.ProgramID{}, nil, nil, 0, nil)
	ctx := mctx.New(incoming, ids.BytesToProgramID([]byte{9}), nil)

	if _, err := ctx.SendInit(); err != nil {
		t.Fatalf("send_init: %v", err)
	}

	Trap(ctx, errors.New("out of gas"))
	// Nothing to assert beyond "did not panic": trap intentionally drops both halves.
}

func TestDescribeDispatch(t *testing.T) {
	incoming := message.NewIncomingMessage(ids.BytesToMessageID([]byte{1}), ids.ProgramID{}, nil, nil, 0, nil)
	ctx := mctx.New(incoming, ids.BytesToProgramID([]byte{9}), nil)

	if _, err := ctx.ReplyCommit(message.NewReplyPacket([]byte{1, 2}, 0)); err != nil {
		t.Fatalf("reply_commit: %v", err)
	}

	outcome := Finish(ctx, false)
	desc := DescribeDispatch(outcome.Dispatches[0])
	if desc == "" {
		t.Fatalf("expected a non-empty description")
	}
}
