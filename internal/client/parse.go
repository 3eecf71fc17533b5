package client

import (
	"errors"
	"strings"

	"github.com/hallchat/hallchat-server/internal/proto"
)

// ParseLine turns one terminal line into a wire record. Lines starting
// with '#' are commands; anything else is a plain chat message. The
// returned error text is shown to the user verbatim.
func ParseLine(line string) (proto.Inbound, error) {
	if !strings.HasPrefix(line, "#") {
		return proto.Inbound{Type: proto.TypeMessage, Content: line}, nil
	}

	fields := strings.Fields(line)
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch fields[0] {
	case "#identitychange":
		if arg == "" {
			return proto.Inbound{}, errors.New("empty name is not allowed")
		}
		return proto.Inbound{Type: proto.TypeIdentityChange, Identity: arg}, nil
	case "#createroom":
		if arg == "" {
			return proto.Inbound{}, errors.New("please enter a room name")
		}
		return proto.Inbound{Type: proto.TypeCreateRoom, RoomID: arg}, nil
	case "#join":
		if arg == "" {
			return proto.Inbound{}, errors.New("please enter the room name to join")
		}
		return proto.Inbound{Type: proto.TypeJoin, RoomID: arg}, nil
	case "#delete":
		if arg == "" {
			return proto.Inbound{}, errors.New("please enter the room name to delete")
		}
		return proto.Inbound{Type: proto.TypeDelete, RoomID: arg}, nil
	case "#who":
		if arg == "" {
			return proto.Inbound{}, errors.New("please enter the room name to check contents")
		}
		return proto.Inbound{Type: proto.TypeWho, RoomID: arg}, nil
	case "#list":
		return proto.Inbound{Type: proto.TypeList}, nil
	case "#quit":
		return proto.Inbound{Type: proto.TypeQuit}, nil
	default:
		return proto.Inbound{}, errors.New("wrong command")
	}
}
