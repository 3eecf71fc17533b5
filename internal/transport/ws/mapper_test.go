package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallchat/hallchat-server/internal/core"
	"github.com/hallchat/hallchat-server/internal/proto"
)

func TestCommandFromInbound(t *testing.T) {
	cmd, ok := commandFromInbound(proto.Inbound{Type: proto.TypeJoin, RoomID: "devs"})
	require.True(t, ok)
	assert.Equal(t, core.Command{Kind: core.CommandJoinRoom, Room: "devs"}, cmd)

	cmd, ok = commandFromInbound(proto.Inbound{Type: proto.TypeMessage, Content: "hi"})
	require.True(t, ok)
	assert.Equal(t, core.Command{Kind: core.CommandSendMessage, Content: "hi"}, cmd)

	_, ok = commandFromInbound(proto.Inbound{Type: "roomchange"})
	assert.False(t, ok, "server-to-client types are not accepted inbound")
}

func TestOutboundFromEventDepartureCollapsesRoomID(t *testing.T) {
	record := outboundFromEvent(&core.Event{
		Kind:     core.EventRoomChange,
		Identity: "alice",
		Former:   "devs",
		Room:     "devs",
		Departed: true,
	})

	change, ok := record.(proto.RoomChange)
	require.True(t, ok)
	assert.Equal(t, "alice", change.Identity)
	assert.Equal(t, "devs", change.Former)
	assert.Empty(t, change.RoomID)
}

func TestOutboundFromEventRoomList(t *testing.T) {
	record := outboundFromEvent(&core.Event{
		Kind:  core.EventRoomList,
		Rooms: []core.RoomCount{{RoomID: core.MainHallID, Count: 3}},
	})

	list, ok := record.(proto.RoomList)
	require.True(t, ok)
	assert.Equal(t, proto.TypeRoomList, list.Type)
	assert.Equal(t, []proto.RoomInfo{{RoomID: core.MainHallID, Count: 3}}, list.Rooms)
	assert.Empty(t, list.Words)
}
