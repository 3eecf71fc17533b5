package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Hub is the coordinating actor that owns all shared chat state: the
// identity registry, the room registry, and every room's membership.
// All mutations run on the single Run goroutine, so compound operations
// (a move touching two rooms, a rename touching registry, room and
// ownership, force-moving a deleted room's members) are atomic as
// observed by any reader, and every broadcast is sent only after its
// mutation is fully applied.
type Hub struct {
	commands    chan hubCommand
	register    chan *Session
	disconnects chan *Session
	done        chan struct{}

	sessions map[*Session]struct{}
	rooms    *RoomRegistry
	idents   *IdentityRegistry

	log *zerolog.Logger
}

type hubCommand struct {
	session *Session
	cmd     Command
}

// DefaultGuestPrefix is used for auto-assigned identities when the
// configuration does not override it.
const DefaultGuestPrefix = "guest"

// NewHub constructs a hub with an empty session set and a room registry
// holding only MainHall.
func NewHub(logger *zerolog.Logger, guestPrefix string) *Hub {
	if guestPrefix == "" {
		guestPrefix = DefaultGuestPrefix
	}
	return &Hub{
		commands:    make(chan hubCommand, 64),
		register:    make(chan *Session),
		disconnects: make(chan *Session),
		done:        make(chan struct{}),
		sessions:    make(map[*Session]struct{}),
		rooms:       NewRoomRegistry(),
		idents:      NewIdentityRegistry(guestPrefix),
		log:         logger,
	}
}

// Register hands a freshly accepted session to the hub. The hub assigns
// it a guest identity, places it in MainHall and replies with the
// MainHall contents.
func (h *Hub) Register(s *Session) {
	select {
	case h.register <- s:
	case <-h.done:
		close(s.Events)
	}
}

// Disconnect reports an abrupt transport EOF. Cleanup is identical to
// an explicit quit; calling it for an already-departed session is a
// no-op.
func (h *Hub) Disconnect(s *Session) {
	select {
	case h.disconnects <- s:
	case <-h.done:
	}
}

// Run executes the hub loop until ctx is cancelled. After every
// processed command the room registry is swept, so an ownerless empty
// room is never observable by a subsequent list or who.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case s := <-h.register:
			h.handleRegister(s)
		case s := <-h.disconnects:
			h.teardown(s)
		case hc := <-h.commands:
			h.dispatch(hc.session, hc.cmd)
		}
		h.reclaim()
	}
}

func (h *Hub) handleRegister(s *Session) {
	s.identity = h.idents.NextGuest()
	h.sessions[s] = struct{}{}

	main := h.rooms.MainHall()
	main.join(s)
	s.room = main

	h.deliver(s, &Event{Kind: EventNewIdentity, Former: "", Identity: s.identity})
	main.Broadcast(&Event{
		Kind:     EventRoomChange,
		Identity: s.identity,
		Former:   "",
		Room:     MainHallID,
	}, h.log)
	h.deliver(s, h.roomContents(main))

	// Forward the session's inbound queue into the hub, preserving
	// per-session FIFO order. Ends when the transport closes Commands.
	go func() {
		for cmd := range s.Commands {
			select {
			case h.commands <- hubCommand{session: s, cmd: cmd}:
			case <-h.done:
				return
			}
		}
	}()

	h.log.Info().
		Str("identity", s.identity).
		Str("session_id", s.ID).
		Msg("session connected")
}

func (h *Hub) dispatch(s *Session, cmd Command) {
	if _, live := h.sessions[s]; !live {
		// Commands may still be queued after teardown.
		return
	}

	switch cmd.Kind {
	case CommandIdentityChange:
		h.handleIdentityChange(s, cmd.Identity)
	case CommandJoinRoom:
		h.handleJoin(s, cmd.Room)
	case CommandCreateRoom:
		h.handleCreateRoom(s, cmd.Room)
	case CommandDeleteRoom:
		h.handleDeleteRoom(s, cmd.Room)
	case CommandWho:
		h.handleWho(s, cmd.Room)
	case CommandListRooms:
		h.deliver(s, h.roomList(""))
	case CommandSendMessage:
		s.room.Broadcast(&Event{
			Kind:     EventMessage,
			Identity: s.identity,
			Content:  cmd.Content,
		}, h.log)
	case CommandQuit:
		h.teardown(s)
	default:
		h.log.Warn().Int("kind", int(cmd.Kind)).Msg("unknown command kind")
	}
}

// handleIdentityChange renames the session. The registry, the session,
// its room's member list and the ownership of every room it owns are
// all updated before the change is broadcast, so a concurrent who or
// list never observes a stale identity.
func (h *Hub) handleIdentityChange(s *Session, candidate string) {
	former := s.identity
	if candidate == "" || h.idents.Rename(former, candidate) != nil {
		// Rejected: the identity == former echo tells the caller.
		h.deliver(s, &Event{Kind: EventNewIdentity, Former: former, Identity: former})
		return
	}

	s.identity = candidate
	s.room.rename(former, candidate)
	for _, room := range h.rooms.OwnedBy(former) {
		room.setOwner(candidate)
	}

	h.broadcastAll(&Event{Kind: EventNewIdentity, Former: former, Identity: candidate})
	h.log.Info().Str("former", former).Str("identity", candidate).Msg("identity changed")
}

func (h *Hub) handleJoin(s *Session, roomID string) {
	target := h.rooms.Find(roomID)
	if target == nil || target == s.room {
		// Absent, malformed or current room: route the caller back
		// into their current room with a no-op echo.
		cur := s.room.ID()
		h.deliver(s, &Event{Kind: EventRoomChange, Identity: s.identity, Former: cur, Room: cur})
		return
	}
	h.move(s, target)
}

// move relocates s into target and notifies the union of the old and
// new rooms' membership once the move is fully applied.
func (h *Hub) move(s *Session, target *Room) {
	old := s.room
	audience := unionSessions(old.memberSessions(), target.memberSessions())

	old.leave(s.identity)
	target.join(s)
	s.room = target

	fanOut(audience, &Event{
		Kind:     EventRoomChange,
		Identity: s.identity,
		Former:   old.ID(),
		Room:     target.ID(),
	}, h.log)
}

func (h *Hub) handleCreateRoom(s *Session, roomID string) {
	if _, err := h.rooms.Create(roomID, s.identity); err != nil {
		h.deliver(s, h.roomList(fmt.Sprintf("Room %s is invalid or already in use.", roomID)))
		return
	}
	h.deliver(s, h.roomList(fmt.Sprintf("Room %s created.", roomID)))
	h.log.Info().Str("room", roomID).Str("owner", s.identity).Msg("room created")
}

func (h *Hub) handleDeleteRoom(s *Session, roomID string) {
	room := h.rooms.Find(roomID)
	if room == nil {
		h.deliver(s, h.roomList(s.identity+" is trying to delete an invalid room, please try again"))
		return
	}
	if room.ID() == MainHallID {
		h.deliver(s, h.roomList(s.identity+" doesn't have authority to delete the MainHall"))
		return
	}
	if owner, ok := room.Owner(); !ok || owner != s.identity {
		h.deliver(s, h.roomList(s.identity+" doesn't have authority to delete the room"))
		return
	}

	// Force every member, the caller included, back to MainHall with a
	// room-change broadcast per member, then drop the room.
	main := h.rooms.MainHall()
	for _, member := range room.memberSessions() {
		h.move(member, main)
	}
	if err := h.rooms.Delete(roomID); err != nil {
		h.log.Error().Err(err).Str("room", roomID).Msg("delete emptied room")
		return
	}
	h.deliver(s, h.roomList(""))
	h.log.Info().Str("room", roomID).Str("owner", s.identity).Msg("room deleted")
}

func (h *Hub) handleWho(s *Session, roomID string) {
	room := h.rooms.Find(roomID)
	if room == nil {
		// Absent room: silent no-op.
		return
	}
	h.deliver(s, h.roomContents(room))
}

// teardown is the single cleanup path shared by quit and abrupt
// disconnect: leave the current room, release the identity, clear
// ownership everywhere, and tell the old room (and the departing
// session itself) about the departure.
func (h *Hub) teardown(s *Session) {
	if _, live := h.sessions[s]; !live {
		return
	}
	delete(h.sessions, s)

	old := s.room
	audience := old.memberSessions()
	old.leave(s.identity)
	s.room = nil

	for _, room := range h.rooms.OwnedBy(s.identity) {
		room.clearOwner()
	}
	h.idents.Release(s.identity)

	fanOut(audience, &Event{
		Kind:     EventRoomChange,
		Identity: s.identity,
		Former:   old.ID(),
		Departed: true,
	}, h.log)
	close(s.Events)

	h.log.Info().
		Str("identity", s.identity).
		Str("session_id", s.ID).
		Msg("session disconnected")
}

func (h *Hub) reclaim() {
	for _, id := range h.rooms.Reclaim() {
		h.log.Info().Str("room", id).Msg("reclaimed empty ownerless room")
	}
}

func (h *Hub) shutdown() {
	for s := range h.sessions {
		close(s.Events)
	}
	h.sessions = make(map[*Session]struct{})
	h.log.Info().Msg("hub stopped")
}

func (h *Hub) deliver(s *Session, ev *Event) {
	fanOut([]*Session{s}, ev, h.log)
}

func (h *Hub) broadcastAll(ev *Event) {
	all := make([]*Session, 0, len(h.sessions))
	for s := range h.sessions {
		all = append(all, s)
	}
	fanOut(all, ev, h.log)
}

func (h *Hub) roomContents(room *Room) *Event {
	owner, _ := room.Owner()
	return &Event{
		Kind:       EventRoomContents,
		Room:       room.ID(),
		Owner:      owner,
		Identities: room.Members(),
	}
}

func (h *Hub) roomList(words string) *Event {
	return &Event{
		Kind:  EventRoomList,
		Rooms: h.rooms.ListWithCounts(),
		Words: words,
	}
}
