package schedule

import (
	"fmt"
	"sort"
	"strings"

	"glowutt/pkg/cru"
)

// FreeInterval is a free time window with inclusive wall-clock bounds for
// display and export purposes.
type FreeInterval struct {
	Start cru.TimeOfDay
	End   cru.TimeOfDay
}

func (f FreeInterval) String() string {
	return fmt.Sprintf("%s-%s", f.Start, f.End)
}

// FreeIntervalOptions controls FreeIntervalsForRoom.
//
// Historically every busy interval of the room blocks all five working days,
// whatever weekday its session is on. MatchSessionDay enables the corrected
// behavior where a session only blocks its own weekday.
type FreeIntervalOptions struct {
	MatchSessionDay bool
}

// ParseTimeWindow parses a "HH:MM-HH:MM" argument into an Interval.
func ParseTimeWindow(s string) (Interval, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("invalid time window %q: expected HH:MM-HH:MM", s)
	}

	start, err := cru.ParseTimeOfDay(parts[0])
	if err != nil {
		return Interval{}, err
	}
	end, err := cru.ParseTimeOfDay(parts[1])
	if err != nil {
		return Interval{}, err
	}

	return Interval{Start: start.Minutes(), End: end.Minutes()}, nil
}

func sessionInterval(s cru.Session) Interval {
	return Interval{Start: s.Start.Minutes(), End: s.End.Minutes()}
}

// RoomsFreeAt returns the rooms free on the given day, sorted by name. With
// a nil window any session on that day occupies its room for the whole day;
// with a window only sessions overlapping it disqualify the room. A single
// disqualifying session anywhere in the corpus removes the room for good,
// regardless of scan order.
func RoomsFreeAt(courses []*cru.Course, day string, window *Interval) ([]string, error) {
	if _, err := weekdayIndex(day); err != nil {
		return nil, err
	}

	available := make(map[string]bool)
	unavailable := make(map[string]bool)

	for _, c := range courses {
		for _, s := range c.Sessions {
			if s.Room == "" {
				continue
			}
			room := strings.ToUpper(s.Room)

			if !strings.EqualFold(s.Day, day) {
				// A session on another day never disqualifies the room.
				available[room] = true
				continue
			}

			if window == nil || sessionInterval(s).Overlaps(*window) {
				unavailable[room] = true
			} else {
				available[room] = true
			}
		}
	}

	var rooms []string
	for room := range available {
		if !unavailable[room] {
			rooms = append(rooms, room)
		}
	}
	sort.Strings(rooms)
	return rooms, nil
}

// FreeIntervalsForRoom computes, for each working day, the free sub-intervals
// of the full day [00:00, 23:59] left after subtracting the room's busy
// intervals. The result is in ascending start order per day.
func FreeIntervalsForRoom(roomSessions []cru.Session, opts FreeIntervalOptions) map[string][]FreeInterval {
	base := Interval{Start: dayStartMinute, End: dayEndMinute}

	result := make(map[string][]FreeInterval, len(WorkingDays))
	for _, day := range WorkingDays {
		var busy []Interval
		for _, s := range roomSessions {
			if opts.MatchSessionDay && !strings.EqualFold(s.Day, day) {
				continue
			}
			busy = append(busy, sessionInterval(s))
		}

		free := SubtractAll(base, busy)
		intervals := make([]FreeInterval, 0, len(free))
		for _, f := range free {
			intervals = append(intervals, FreeInterval{
				Start: cru.TimeOfDay{Hour: f.Start / 60, Minute: f.Start % 60},
				End:   cru.TimeOfDay{Hour: f.End / 60, Minute: f.End % 60},
			})
		}
		result[day] = intervals
	}
	return result
}
