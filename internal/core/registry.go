package core

// RoomRegistry is the ordered set of live rooms. Index 0 is always
// MainHall. Owned by the hub goroutine.
type RoomRegistry struct {
	rooms []*Room
}

// NewRoomRegistry builds a registry containing only MainHall.
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: []*Room{newRoom(MainHallID)},
	}
}

// MainHall returns the permanent default room.
func (rr *RoomRegistry) MainHall() *Room {
	return rr.rooms[0]
}

// Find returns the room with the given id, or nil. Room counts are
// small; a linear scan keeps the registry an ordered slice.
func (rr *RoomRegistry) Find(id string) *Room {
	for _, room := range rr.rooms {
		if room.id == id {
			return room
		}
	}
	return nil
}

// Create appends a new room owned by owner. The id must be format-valid
// and unused.
func (rr *RoomRegistry) Create(id, owner string) (*Room, error) {
	if !ValidRoomID(id) {
		return nil, ErrInvalidRoomID
	}
	if rr.Find(id) != nil {
		return nil, ErrRoomExists
	}
	room := newRoom(id)
	room.setOwner(owner)
	rr.rooms = append(rr.rooms, room)
	return room, nil
}

// Delete removes the room with the given id. MainHall is immortal.
// The ownership check belongs to the dispatcher, not the registry.
func (rr *RoomRegistry) Delete(id string) error {
	if id == MainHallID {
		return ErrMainHall
	}
	for i, room := range rr.rooms {
		if room.id == id {
			rr.rooms = append(rr.rooms[:i], rr.rooms[i+1:]...)
			return nil
		}
	}
	return ErrRoomNotFound
}

// ListWithCounts snapshots all rooms with their member counts.
func (rr *RoomRegistry) ListWithCounts() []RoomCount {
	out := make([]RoomCount, 0, len(rr.rooms))
	for _, room := range rr.rooms {
		out = append(out, RoomCount{RoomID: room.id, Count: room.Size()})
	}
	return out
}

// OwnedBy returns every room owned by identity.
func (rr *RoomRegistry) OwnedBy(identity string) []*Room {
	var out []*Room
	for _, room := range rr.rooms {
		if room.owner == identity {
			out = append(out, room)
		}
	}
	return out
}

// Reclaim removes every ownerless, empty, non-MainHall room and returns
// the removed ids. The hub runs this after every mutation so no reader
// ever observes a garbage room.
func (rr *RoomRegistry) Reclaim() []string {
	var removed []string
	kept := rr.rooms[:0]
	for _, room := range rr.rooms {
		if room.reclaimable() {
			removed = append(removed, room.id)
			continue
		}
		kept = append(kept, room)
	}
	rr.rooms = kept
	return removed
}
