package core

import "errors"

var (
	// ErrInvalidIdentity is returned for identities that violate the
	// 3-16 character alphanumeric, letter-first format.
	ErrInvalidIdentity = errors.New("invalid identity")
	// ErrIdentityTaken is returned when another live session already
	// holds the requested identity.
	ErrIdentityTaken = errors.New("identity already in use")
	// ErrInvalidRoomID is returned for room ids that violate the
	// 3-32 character alphanumeric, letter-first format.
	ErrInvalidRoomID = errors.New("invalid room id")
	// ErrRoomExists is returned when creating a room whose id is taken.
	ErrRoomExists = errors.New("room id already in use")
	// ErrRoomNotFound is returned for operations on an absent room.
	ErrRoomNotFound = errors.New("room not found")
	// ErrNotOwner is returned when a non-owner tries to delete a room.
	ErrNotOwner = errors.New("not the room owner")
	// ErrMainHall is returned for any attempt to delete MainHall.
	ErrMainHall = errors.New("MainHall cannot be deleted")
)
