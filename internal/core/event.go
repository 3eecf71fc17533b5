package core

// EventKind is a notification the core emits to sessions.
type EventKind int

const (
	// EventNewIdentity reports an identity assignment or change.
	// Identity == Former signals a rejected change.
	EventNewIdentity EventKind = iota
	// EventRoomContents lists the members of one room.
	EventRoomContents
	// EventRoomChange reports a session moving between rooms or, when
	// Departed is set, leaving the system.
	EventRoomChange
	// EventRoomList carries a snapshot of all rooms with member counts.
	// Words, when non-empty, is an error or confirmation in lieu of a
	// plain listing.
	EventRoomList
	// EventMessage is a chat message broadcast within a room.
	EventMessage
)

// RoomCount pairs a room id with its current member count.
type RoomCount struct {
	RoomID string
	Count  int
}

// Event is sent to sessions to describe what happened. Which fields
// are meaningful depends on Kind.
type Event struct {
	Kind       EventKind
	Identity   string // subject of the event
	Former     string // previous identity or previous room
	Room       string
	Owner      string // empty when the room has no owner
	Identities []string
	Rooms      []RoomCount
	Words      string
	Content    string
	// Departed marks a room change that leaves the system entirely,
	// as opposed to a move into Room.
	Departed bool
}
