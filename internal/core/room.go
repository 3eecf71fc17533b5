package core

import "github.com/rs/zerolog"

// MainHallID is the reserved id of the permanent, ownerless room every
// session starts in.
const MainHallID = "MainHall"

// Room groups the sessions currently chatting together. The ordered
// member list and the session map are kept in one-to-one
// correspondence; a session appears in at most one room at a time.
// Rooms are owned by the hub goroutine.
type Room struct {
	id       string
	owner    string // empty means unowned
	members  []string
	sessions map[string]*Session
}

func newRoom(id string) *Room {
	return &Room{
		id:       id,
		sessions: make(map[string]*Session),
	}
}

// ID returns the room id.
func (r *Room) ID() string {
	return r.id
}

// Owner returns the owning identity and whether the room has one.
// MainHall and reclaim-pending rooms have none.
func (r *Room) Owner() (string, bool) {
	return r.owner, r.owner != ""
}

func (r *Room) setOwner(identity string) {
	r.owner = identity
}

func (r *Room) clearOwner() {
	r.owner = ""
}

// join adds the session to the room. Returns false if its identity is
// already a member, which is a no-op.
func (r *Room) join(s *Session) bool {
	if _, in := r.sessions[s.identity]; in {
		return false
	}
	r.members = append(r.members, s.identity)
	r.sessions[s.identity] = s
	return true
}

// leave removes the member with the given identity and returns its
// session, or nil if it was not a member.
func (r *Room) leave(identity string) *Session {
	s, in := r.sessions[identity]
	if !in {
		return nil
	}
	delete(r.sessions, identity)
	for i, m := range r.members {
		if m == identity {
			r.members = append(r.members[:i], r.members[i+1:]...)
			break
		}
	}
	return s
}

// rename rewrites a member's identity in place, preserving its position
// in the member list. Ownership is re-pointed by the hub, not here.
func (r *Room) rename(old, next string) {
	s, in := r.sessions[old]
	if !in {
		return
	}
	delete(r.sessions, old)
	r.sessions[next] = s
	for i, m := range r.members {
		if m == old {
			r.members[i] = next
			break
		}
	}
}

// Members returns a copy of the ordered member identities.
func (r *Room) Members() []string {
	out := make([]string, len(r.members))
	copy(out, r.members)
	return out
}

// Size returns the current member count.
func (r *Room) Size() int {
	return len(r.members)
}

// Empty reports whether the room has no members.
func (r *Room) Empty() bool {
	return len(r.members) == 0
}

// memberSessions returns the sessions of all current members.
func (r *Room) memberSessions() []*Session {
	out := make([]*Session, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, r.sessions[m])
	}
	return out
}

// Broadcast delivers ev to every current member, best effort.
func (r *Room) Broadcast(ev *Event, log *zerolog.Logger) int {
	return fanOut(r.memberSessions(), ev, log)
}

// reclaimable reports whether the room is garbage: not MainHall, no
// owner, no members.
func (r *Room) reclaimable() bool {
	return r.id != MainHallID && r.owner == "" && len(r.members) == 0
}
