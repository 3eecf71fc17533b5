package core

// Session is one connected client as seen by the core layer. The
// transport owns the network connection and the two channels: it feeds
// decoded records into Commands and drains Events onto the wire. The
// identity and room fields are owned by the hub goroutine.
type Session struct {
	// ID is a transport-level identifier, distinct from the
	// user-facing identity.
	ID string

	Commands chan Command
	Events   chan *Event

	identity string
	room     *Room
}

const (
	commandQueueSize = 16
	eventQueueSize   = 32
)

// NewSession constructs a session with initialized queues.
func NewSession(id string) *Session {
	return &Session{
		ID:       id,
		Commands: make(chan Command, commandQueueSize),
		Events:   make(chan *Event, eventQueueSize),
	}
}

// Identity returns the identity the session is currently known by.
// Only valid from the hub goroutine or after the hub has stopped.
func (s *Session) Identity() string {
	return s.identity
}
