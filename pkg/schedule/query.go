package schedule

import (
	"strings"

	"glowutt/pkg/cru"
)

// CourseSessions pairs a course code with a filtered subset of its sessions.
type CourseSessions struct {
	Code     string
	Sessions []cru.Session
}

// SessionsOfCourse returns the sessions of the course matching code,
// case-insensitively. An unknown code yields an empty result, not an error.
func SessionsOfCourse(courses []*cru.Course, code string) []cru.Session {
	for _, c := range courses {
		if strings.EqualFold(c.Code, code) {
			return c.Sessions
		}
	}
	return nil
}

// SessionsOfRoom returns every session held in the named room, in corpus
// order. Room comparison is case-insensitive; sessions without a room never
// match.
func SessionsOfRoom(courses []*cru.Course, room string) []cru.Session {
	var sessions []cru.Session
	for _, c := range courses {
		for _, s := range c.Sessions {
			if s.Room != "" && strings.EqualFold(s.Room, room) {
				sessions = append(sessions, s)
			}
		}
	}
	return sessions
}

// MaxRoomCapacity returns the largest session capacity recorded for the room,
// or 0 if the room is unknown.
func MaxRoomCapacity(courses []*cru.Course, room string) int {
	max := 0
	for _, s := range SessionsOfRoom(courses, room) {
		if s.Capacity > max {
			max = s.Capacity
		}
	}
	return max
}

// FilterByCourseAndDayRange keeps the sessions falling on a weekday between
// startDay and endDay inclusive (wrapping forward past Sunday when needed).
// An empty selectedCodes slice selects every course. Courses left with no
// matching session are dropped from the result entirely.
func FilterByCourseAndDayRange(courses []*cru.Course, selectedCodes []string, startDay, endDay string) ([]CourseSessions, error) {
	days, err := DayRange(startDay, endDay)
	if err != nil {
		return nil, err
	}

	inRange := make(map[string]bool, len(days))
	for _, d := range days {
		inRange[strings.ToLower(d)] = true
	}

	selected := make(map[string]bool, len(selectedCodes))
	for _, code := range selectedCodes {
		selected[strings.ToLower(code)] = true
	}

	var result []CourseSessions
	for _, c := range courses {
		if len(selected) > 0 && !selected[strings.ToLower(c.Code)] {
			continue
		}

		var matching []cru.Session
		for _, s := range c.Sessions {
			if inRange[strings.ToLower(s.Day)] {
				matching = append(matching, s)
			}
		}
		if len(matching) > 0 {
			result = append(result, CourseSessions{Code: c.Code, Sessions: matching})
		}
	}
	return result, nil
}
