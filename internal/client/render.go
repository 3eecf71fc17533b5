package client

import (
	"fmt"
	"strings"

	"github.com/hallchat/hallchat-server/internal/proto"
)

// bootstrapRecords is how many records the server sends when a
// connection is established (newidentity, roomchange, roomcontents);
// the prompt appears once all three have arrived.
const bootstrapRecords = 3

// State tracks what the terminal front end knows about its own session:
// the identity the server assigned it and the room it is currently in.
type State struct {
	host     string
	identity string
	room     string
	seen     int
}

// NewState builds the render state for a connection to host.
func NewState(host string) *State {
	return &State{host: host}
}

// Identity returns the identity the client is currently known by.
func (st *State) Identity() string {
	return st.identity
}

// Room returns the room the client is currently in.
func (st *State) Room() string {
	return st.room
}

// Prompt returns the input prompt once the connection bootstrap has
// completed.
func (st *State) Prompt() (string, bool) {
	if st.seen < bootstrapRecords {
		return "", false
	}
	return fmt.Sprintf("[%s] %s> ", st.room, st.identity), true
}

// Apply folds one server record into the state and returns the text to
// show the user. done is true when the record is the client's own
// departure from the system.
func (st *State) Apply(record proto.Outbound) (line string, done bool) {
	switch record.Type {
	case proto.TypeNewIdentity:
		return st.applyNewIdentity(record), false
	case proto.TypeRoomContents:
		st.seen++
		return renderRoomContents(record), false
	case proto.TypeRoomList:
		return renderRoomList(record), false
	case proto.TypeMessage:
		return record.Identity + ": " + record.Content, false
	case proto.TypeRoomChange:
		return st.applyRoomChange(record)
	default:
		return "", false
	}
}

func (st *State) applyNewIdentity(record proto.Outbound) string {
	switch {
	case st.identity == "":
		// First record after connecting: the auto-assigned identity.
		st.identity = record.Identity
		st.seen++
		return fmt.Sprintf("Connected to %s as %s", st.host, record.Identity)
	case record.Identity == record.Former:
		return "Requested identity invalid or in use"
	default:
		if record.Former == st.identity {
			st.identity = record.Identity
		}
		return fmt.Sprintf("%s is now %s", record.Former, record.Identity)
	}
}

func (st *State) applyRoomChange(record proto.Outbound) (string, bool) {
	if record.RoomID == "" {
		// Departure from the system entirely.
		line := fmt.Sprintf("%s leaves %s", record.Identity, record.Former)
		if record.Identity == st.identity {
			return line + "\nDisconnected from " + st.host, true
		}
		return line, false
	}

	if record.Identity == st.identity {
		st.room = record.RoomID
		st.seen++
	}

	switch {
	case record.RoomID == record.Former:
		return "The requested room is invalid or non existent.", false
	case record.Former == "":
		return fmt.Sprintf("%s moves to %s", record.Identity, record.RoomID), false
	default:
		return fmt.Sprintf("%s moves from %s to %s", record.Identity, record.Former, record.RoomID), false
	}
}

// renderRoomContents lists a room's members with the owner starred.
func renderRoomContents(record proto.Outbound) string {
	var b strings.Builder
	b.WriteString(record.RoomID)
	b.WriteString(" contains")
	for _, member := range record.Identities {
		b.WriteByte(' ')
		b.WriteString(member)
		if record.Owner != "" && member == record.Owner {
			b.WriteByte('*')
		}
	}
	return b.String()
}

func renderRoomList(record proto.Outbound) string {
	if record.Words != "" {
		return record.Words
	}
	lines := make([]string, 0, len(record.Rooms))
	for _, room := range record.Rooms {
		noun := "guests"
		if room.Count == 1 {
			noun = "guest"
		}
		lines = append(lines, fmt.Sprintf("%s: %d %s", room.RoomID, room.Count, noun))
	}
	return strings.Join(lines, "\n")
}
