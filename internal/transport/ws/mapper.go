package ws

import (
	"github.com/hallchat/hallchat-server/internal/core"
	"github.com/hallchat/hallchat-server/internal/proto"
)

// commandFromInbound maps a decoded wire record onto a core command.
// Returns false for record types the protocol does not define.
func commandFromInbound(in proto.Inbound) (core.Command, bool) {
	switch in.Type {
	case proto.TypeIdentityChange:
		return core.Command{Kind: core.CommandIdentityChange, Identity: in.Identity}, true
	case proto.TypeJoin:
		return core.Command{Kind: core.CommandJoinRoom, Room: in.RoomID}, true
	case proto.TypeCreateRoom:
		return core.Command{Kind: core.CommandCreateRoom, Room: in.RoomID}, true
	case proto.TypeDelete:
		return core.Command{Kind: core.CommandDeleteRoom, Room: in.RoomID}, true
	case proto.TypeWho:
		return core.Command{Kind: core.CommandWho, Room: in.RoomID}, true
	case proto.TypeList:
		return core.Command{Kind: core.CommandListRooms}, true
	case proto.TypeMessage:
		return core.Command{Kind: core.CommandSendMessage, Content: in.Content}, true
	case proto.TypeQuit:
		return core.Command{Kind: core.CommandQuit}, true
	default:
		return core.Command{}, false
	}
}

// outboundFromEvent maps a core event onto its wire record. The
// explicit departed flag collapses to the protocol's empty-roomid
// encoding here, at the boundary only.
func outboundFromEvent(event *core.Event) any {
	switch event.Kind {
	case core.EventNewIdentity:
		return proto.NewIdentity{
			Type:     proto.TypeNewIdentity,
			Former:   event.Former,
			Identity: event.Identity,
		}
	case core.EventRoomContents:
		return proto.RoomContents{
			Type:       proto.TypeRoomContents,
			RoomID:     event.Room,
			Owner:      event.Owner,
			Identities: event.Identities,
		}
	case core.EventRoomChange:
		roomID := event.Room
		if event.Departed {
			roomID = ""
		}
		return proto.RoomChange{
			Type:     proto.TypeRoomChange,
			Identity: event.Identity,
			Former:   event.Former,
			RoomID:   roomID,
		}
	case core.EventRoomList:
		rooms := make([]proto.RoomInfo, 0, len(event.Rooms))
		for _, rc := range event.Rooms {
			rooms = append(rooms, proto.RoomInfo{RoomID: rc.RoomID, Count: rc.Count})
		}
		return proto.RoomList{
			Type:  proto.TypeRoomList,
			Rooms: rooms,
			Words: event.Words,
		}
	case core.EventMessage:
		return proto.Message{
			Type:     proto.TypeMessage,
			Identity: event.Identity,
			Content:  event.Content,
		}
	default:
		return proto.Outbound{Type: "unknown"}
	}
}
