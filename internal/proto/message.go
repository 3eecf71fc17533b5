// Package proto defines the JSON records exchanged between client and
// server. Every record carries a "type" discriminator; one record
// travels per websocket frame, so the frame boundary delimits records.
package proto

// Client-to-server record types.
const (
	TypeIdentityChange = "identitychange"
	TypeJoin           = "join"
	TypeCreateRoom     = "createroom"
	TypeDelete         = "delete"
	TypeWho            = "who"
	TypeList           = "list"
	TypeMessage        = "message"
	TypeQuit           = "quit"
)

// Server-to-client record types. TypeMessage is shared: inbound it
// carries only content, outbound it is tagged with the sender identity.
const (
	TypeNewIdentity  = "newidentity"
	TypeRoomContents = "roomcontents"
	TypeRoomChange   = "roomchange"
	TypeRoomList     = "roomlist"
)

// Inbound is a client-to-server record. All inbound record types fit a
// single flat shape; unused fields stay empty.
type Inbound struct {
	Type     string `json:"type"`
	Identity string `json:"identity,omitempty"`
	RoomID   string `json:"roomid,omitempty"`
	Content  string `json:"content,omitempty"`
}

// KnownInboundType reports whether t is a record type a client may send.
func KnownInboundType(t string) bool {
	switch t {
	case TypeIdentityChange, TypeJoin, TypeCreateRoom, TypeDelete,
		TypeWho, TypeList, TypeMessage, TypeQuit:
		return true
	}
	return false
}

// NewIdentity reports an identity assignment or change. A record whose
// identity equals former signals a rejected change request.
type NewIdentity struct {
	Type     string `json:"type"`
	Former   string `json:"former"`
	Identity string `json:"identity"`
}

// RoomContents lists the members of one room. Owner is empty for
// MainHall, which has none.
type RoomContents struct {
	Type       string   `json:"type"`
	RoomID     string   `json:"roomid"`
	Owner      string   `json:"owner"`
	Identities []string `json:"identities"`
}

// RoomChange reports a user moving between rooms. An empty roomid means
// the user left the system entirely; a record whose roomid equals
// former echoes a rejected or no-op join back to the requester.
type RoomChange struct {
	Type     string `json:"type"`
	Identity string `json:"identity"`
	Former   string `json:"former"`
	RoomID   string `json:"roomid"`
}

// RoomInfo is one entry of a room list.
type RoomInfo struct {
	RoomID string `json:"roomid"`
	Count  int    `json:"count"`
}

// RoomList is a snapshot of all rooms. A non-empty words field carries
// an error or confirmation text in lieu of a plain listing.
type RoomList struct {
	Type  string     `json:"type"`
	Rooms []RoomInfo `json:"rooms"`
	Words string     `json:"words"`
}

// Message is a chat message broadcast within a room, tagged with the
// sender's identity.
type Message struct {
	Type     string `json:"type"`
	Identity string `json:"identity"`
	Content  string `json:"content"`
}

// Outbound is the union shape a client decodes every server record
// into before switching on Type.
type Outbound struct {
	Type       string     `json:"type"`
	Former     string     `json:"former"`
	Identity   string     `json:"identity"`
	RoomID     string     `json:"roomid"`
	Owner      string     `json:"owner"`
	Identities []string   `json:"identities"`
	Rooms      []RoomInfo `json:"rooms"`
	Words      string     `json:"words"`
	Content    string     `json:"content"`
}
