package cru

import "fmt"

// Session is one scheduled occurrence of a course: a lecture, lab or tutorial
// at a fixed weekday and time window in a room. Sessions are built by the
// parser and never mutated afterwards.
type Session struct {
	Type     string
	Capacity int
	Day      string
	Start    TimeOfDay
	End      TimeOfDay
	SubGroup string
	Room     string
}

// NewSession validates and builds a Session. The weekday is not validated
// here: unrecognized day tokens pass through verbatim so that queries can
// still surface them.
func NewSession(sessionType string, capacity int, day string, start, end TimeOfDay, subGroup, room string) (Session, error) {
	if sessionType == "" {
		return Session{}, fmt.Errorf("session type must not be empty")
	}
	if capacity < 0 {
		return Session{}, fmt.Errorf("capacity %d must not be negative", capacity)
	}

	return Session{
		Type:     sessionType,
		Capacity: capacity,
		Day:      day,
		Start:    start,
		End:      end,
		SubGroup: subGroup,
		Room:     room,
	}, nil
}

func (s Session) String() string {
	return fmt.Sprintf("%s %s %s-%s room=%s subgroup=%s capacity=%d",
		s.Type, s.Day, s.Start, s.End, s.Room, s.SubGroup, s.Capacity)
}

// Course is a course code plus its sessions in file order. The code is set
// once at creation and never changes.
type Course struct {
	Code     string
	Sessions []Session
}

// AddSession appends a session. Duplicate values are allowed: a session is a
// value, not an identity.
func (c *Course) AddSession(s Session) {
	c.Sessions = append(c.Sessions, s)
}
