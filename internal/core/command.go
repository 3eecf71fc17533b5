package core

// CommandKind describes what a session wants to do.
type CommandKind int

const (
	// CommandIdentityChange requests a new identity for the session.
	CommandIdentityChange CommandKind = iota
	// CommandJoinRoom moves the session into another room.
	CommandJoinRoom
	// CommandCreateRoom creates a room owned by the session.
	CommandCreateRoom
	// CommandDeleteRoom deletes a room the session owns.
	CommandDeleteRoom
	// CommandWho asks for the contents of a room.
	CommandWho
	// CommandListRooms asks for all rooms with member counts.
	CommandListRooms
	// CommandSendMessage broadcasts a chat message to the current room.
	CommandSendMessage
	// CommandQuit gracefully disconnects the session.
	CommandQuit
)

// Command is one decoded protocol record from a session. Which fields
// are meaningful depends on Kind.
type Command struct {
	Kind     CommandKind
	Identity string
	Room     string
	Content  string
}
