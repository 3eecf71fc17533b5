package core

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	logger := zerolog.Nop()
	hub := NewHub(&logger, "guest")
	go hub.Run(ctx)
	return hub
}

// nextEvent reads the next event in order, failing on timeout.
func nextEvent(t *testing.T, ch <-chan *Event) *Event {
	t.Helper()

	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatalf("event channel closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
		return nil
	}
}

// mustEvent skips events until one of the wanted kind arrives.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatalf("event channel closed before kind %v arrived", kind)
			}
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("expected event kind %v not received", kind)
			return nil
		}
	}
}

// connect registers a fresh session and consumes the three bootstrap
// records (newidentity, roomchange, roomcontents), returning the
// assigned identity.
func connect(t *testing.T, hub *Hub, id string) (*Session, string) {
	t.Helper()

	s := NewSession(id)
	hub.Register(s)

	assigned := nextEvent(t, s.Events)
	if assigned.Kind != EventNewIdentity || assigned.Former != "" {
		t.Fatalf("expected initial identity assignment, got %+v", assigned)
	}
	moved := nextEvent(t, s.Events)
	if moved.Kind != EventRoomChange || moved.Room != MainHallID {
		t.Fatalf("expected MainHall room change, got %+v", moved)
	}
	contents := nextEvent(t, s.Events)
	if contents.Kind != EventRoomContents || contents.Room != MainHallID {
		t.Fatalf("expected MainHall contents, got %+v", contents)
	}

	return s, assigned.Identity
}
