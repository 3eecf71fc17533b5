package core

import "github.com/rs/zerolog"

// fanOut delivers ev to every session's event queue without blocking.
// Each delivery is independent: a recipient whose queue is full loses
// this event but never delays delivery to the rest of the audience.
// Returns the number of sessions that accepted the event.
func fanOut(sessions []*Session, ev *Event, log *zerolog.Logger) int {
	delivered := 0
	for _, s := range sessions {
		select {
		case s.Events <- ev:
			delivered++
		default:
			log.Warn().
				Str("session_id", s.ID).
				Str("identity", s.identity).
				Msg("event queue full, dropping event")
		}
	}
	return delivered
}

// unionSessions merges session groups, dropping duplicates while
// preserving first-seen order. Used to build the audience of a room
// move, which must reach old and new room members exactly once.
func unionSessions(groups ...[]*Session) []*Session {
	seen := make(map[*Session]struct{})
	var out []*Session
	for _, group := range groups {
		for _, s := range group {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
