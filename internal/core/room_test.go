package core

import (
	"testing"

	"github.com/rs/zerolog"
)

func memberSession(identity string) *Session {
	s := NewSession(identity)
	s.identity = identity
	return s
}

func TestRoomMembershipStaysInSync(t *testing.T) {
	r := newRoom("devs")

	alice := memberSession("alice")
	bob := memberSession("bob")

	if !r.join(alice) || !r.join(bob) {
		t.Fatalf("join failed")
	}
	if r.join(alice) {
		t.Fatalf("double join must be a no-op")
	}

	checkSync := func() {
		t.Helper()
		if len(r.members) != len(r.sessions) {
			t.Fatalf("members/sessions diverged: %v vs %d entries", r.members, len(r.sessions))
		}
		for _, m := range r.members {
			if _, ok := r.sessions[m]; !ok {
				t.Fatalf("member %s has no session", m)
			}
		}
	}
	checkSync()

	if got := r.Members(); len(got) != 2 || got[0] != "alice" || got[1] != "bob" {
		t.Fatalf("unexpected member order: %v", got)
	}

	if s := r.leave("alice"); s != alice {
		t.Fatalf("leave returned wrong session")
	}
	checkSync()
	if s := r.leave("alice"); s != nil {
		t.Fatalf("leaving twice returned %v", s)
	}
	if !r.Empty() {
		r.leave("bob")
	}
	if !r.Empty() {
		t.Fatalf("room should be empty")
	}
	checkSync()
}

func TestRoomRenamePreservesOrder(t *testing.T) {
	r := newRoom("devs")
	r.join(memberSession("alice"))
	r.join(memberSession("bob"))
	r.join(memberSession("carol"))

	r.rename("bob", "robert")

	got := r.Members()
	if got[0] != "alice" || got[1] != "robert" || got[2] != "carol" {
		t.Fatalf("rename broke member order: %v", got)
	}
	if _, ok := r.sessions["bob"]; ok {
		t.Fatalf("old identity still mapped")
	}
	if _, ok := r.sessions["robert"]; !ok {
		t.Fatalf("new identity not mapped")
	}
}

func TestRoomOwnership(t *testing.T) {
	r := newRoom("devs")

	if owner, ok := r.Owner(); ok || owner != "" {
		t.Fatalf("fresh room should have no owner")
	}
	r.setOwner("alice")
	if owner, ok := r.Owner(); !ok || owner != "alice" {
		t.Fatalf("owner not set")
	}
	r.clearOwner()
	if _, ok := r.Owner(); ok {
		t.Fatalf("owner not cleared")
	}
}

func TestRoomReclaimable(t *testing.T) {
	main := newRoom(MainHallID)
	if main.reclaimable() {
		t.Fatalf("MainHall must never be reclaimable")
	}

	r := newRoom("devs")
	r.setOwner("alice")
	if r.reclaimable() {
		t.Fatalf("owned room must not be reclaimable")
	}

	r.clearOwner()
	if !r.reclaimable() {
		t.Fatalf("ownerless empty room must be reclaimable")
	}

	r.join(memberSession("bob"))
	if r.reclaimable() {
		t.Fatalf("populated room must not be reclaimable")
	}
}

func TestBroadcastIsolatesSlowRecipients(t *testing.T) {
	logger := zerolog.Nop()
	r := newRoom("devs")

	healthy := memberSession("alice")
	stuck := memberSession("bob")
	r.join(healthy)
	r.join(stuck)

	// Fill bob's queue so further deliveries to him are dropped.
	for range eventQueueSize {
		stuck.Events <- &Event{Kind: EventMessage}
	}

	ev := &Event{Kind: EventMessage, Identity: "alice", Content: "hi"}
	if delivered := r.Broadcast(ev, &logger); delivered != 1 {
		t.Fatalf("delivered = %d, want 1", delivered)
	}

	select {
	case got := <-healthy.Events:
		if got != ev {
			t.Fatalf("wrong event delivered")
		}
	default:
		t.Fatalf("healthy recipient missed the event")
	}
}

func TestUnionSessionsDeduplicates(t *testing.T) {
	a := memberSession("alice")
	b := memberSession("bob")
	c := memberSession("carol")

	got := unionSessions([]*Session{a, b}, []*Session{b, c}, nil)
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("unexpected union: %v", got)
	}
}
