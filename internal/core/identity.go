package core

import "strconv"

const (
	identityMinLen = 3
	identityMaxLen = 16
	roomIDMinLen   = 3
	roomIDMaxLen   = 32
)

// ValidIdentity reports whether s is a legal user identity: 3-16
// alphanumeric ASCII characters, the first of which is a letter.
func ValidIdentity(s string) bool {
	return validName(s, identityMinLen, identityMaxLen)
}

// ValidRoomID reports whether s is a legal room id: 3-32 alphanumeric
// ASCII characters, the first of which is a letter.
func ValidRoomID(s string) bool {
	return validName(s, roomIDMinLen, roomIDMaxLen)
}

func validName(s string, min, max int) bool {
	if len(s) < min || len(s) > max {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IdentityRegistry tracks the identities of all live sessions. It is
// owned by the hub goroutine and needs no internal locking.
type IdentityRegistry struct {
	live        map[string]struct{}
	guestPrefix string
	guestSeq    int
}

// NewIdentityRegistry builds an empty registry. Auto-assigned identities
// are prefix followed by an ever-increasing number; numbers are never
// reused, even after the holder disconnects.
func NewIdentityRegistry(prefix string) *IdentityRegistry {
	return &IdentityRegistry{
		live:        make(map[string]struct{}),
		guestPrefix: prefix,
	}
}

// Register adds candidate to the registry. It fails with
// ErrInvalidIdentity or ErrIdentityTaken and mutates nothing on failure.
func (ir *IdentityRegistry) Register(candidate string) error {
	if !ValidIdentity(candidate) {
		return ErrInvalidIdentity
	}
	if _, taken := ir.live[candidate]; taken {
		return ErrIdentityTaken
	}
	ir.live[candidate] = struct{}{}
	return nil
}

// Rename atomically replaces old with next. The same validity and
// uniqueness rules as Register apply; on failure old stays registered.
func (ir *IdentityRegistry) Rename(old, next string) error {
	if !ValidIdentity(next) {
		return ErrInvalidIdentity
	}
	if _, taken := ir.live[next]; taken {
		return ErrIdentityTaken
	}
	delete(ir.live, old)
	ir.live[next] = struct{}{}
	return nil
}

// Release removes an identity when its session disconnects.
func (ir *IdentityRegistry) Release(identity string) {
	delete(ir.live, identity)
}

// Has reports whether identity belongs to a live session.
func (ir *IdentityRegistry) Has(identity string) bool {
	_, ok := ir.live[identity]
	return ok
}

// NextGuest mints and registers the next free auto-assigned identity.
// A user may have renamed themselves to a pending guest name, so the
// sequence advances until registration succeeds.
func (ir *IdentityRegistry) NextGuest() string {
	for {
		ir.guestSeq++
		candidate := ir.guestPrefix + strconv.Itoa(ir.guestSeq)
		if err := ir.Register(candidate); err == nil {
			return candidate
		}
	}
}
