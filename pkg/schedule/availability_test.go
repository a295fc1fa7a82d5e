package schedule

import (
	"reflect"
	"testing"

	"glowutt/pkg/cru"
)

func singleRoomCorpus(t *testing.T) []*cru.Course {
	t.Helper()
	return []*cru.Course{
		{
			Code: "MT01",
			Sessions: []cru.Session{
				session(t, "Monday", "09:00", "10:00", "R101", 40),
				session(t, "Tuesday", "09:00", "10:00", "B110", 30),
			},
		},
	}
}

func TestRoomsFreeAtWholeDay(t *testing.T) {
	rooms, err := RoomsFreeAt(singleRoomCorpus(t), "Monday", nil)
	if err != nil {
		t.Fatalf("RoomsFreeAt failed: %v", err)
	}

	// R101 is busy at some point on Monday, so for the whole-day query only
	// B110 survives.
	if !reflect.DeepEqual(rooms, []string{"B110"}) {
		t.Errorf("expected [B110], got %v", rooms)
	}
}

func TestRoomsFreeAtWithOverlappingWindow(t *testing.T) {
	window, err := ParseTimeWindow("09:30-09:45")
	if err != nil {
		t.Fatalf("ParseTimeWindow failed: %v", err)
	}

	rooms, err := RoomsFreeAt(singleRoomCorpus(t), "Monday", &window)
	if err != nil {
		t.Fatalf("RoomsFreeAt failed: %v", err)
	}

	if !reflect.DeepEqual(rooms, []string{"B110"}) {
		t.Errorf("R101 overlaps the window and must be excluded, got %v", rooms)
	}
}

func TestRoomsFreeAtBoundaryTouchDoesNotOverlap(t *testing.T) {
	// The session ends at 10:00; a 10:00-11:00 query touches the boundary
	// but does not overlap under the asymmetric rule.
	window, _ := ParseTimeWindow("10:00-11:00")

	rooms, err := RoomsFreeAt(singleRoomCorpus(t), "Monday", &window)
	if err != nil {
		t.Fatalf("RoomsFreeAt failed: %v", err)
	}

	if !reflect.DeepEqual(rooms, []string{"B110", "R101"}) {
		t.Errorf("expected R101 to stay free for a boundary-touching window, got %v", rooms)
	}
}

func TestRoomsFreeAtDifferentDay(t *testing.T) {
	rooms, err := RoomsFreeAt(singleRoomCorpus(t), "Wednesday", nil)
	if err != nil {
		t.Fatalf("RoomsFreeAt failed: %v", err)
	}

	if !reflect.DeepEqual(rooms, []string{"B110", "R101"}) {
		t.Errorf("all rooms should be free on a day with no sessions, got %v", rooms)
	}
}

func TestRoomsFreeAtDisqualificationIsPermanent(t *testing.T) {
	// The same room appears once on another day (marking it available) and
	// once on the query day; the busy occurrence must win whatever the order.
	corpus := []*cru.Course{
		{
			Code: "MT01",
			Sessions: []cru.Session{
				session(t, "Tuesday", "09:00", "10:00", "R101", 40),
				session(t, "Monday", "09:00", "10:00", "r101", 40),
				session(t, "Tuesday", "10:00", "11:00", "R101", 40),
			},
		},
	}

	rooms, err := RoomsFreeAt(corpus, "Monday", nil)
	if err != nil {
		t.Fatalf("RoomsFreeAt failed: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("expected no free rooms, got %v", rooms)
	}
}

func TestRoomsFreeAtInvalidDay(t *testing.T) {
	if _, err := RoomsFreeAt(singleRoomCorpus(t), "Blursday", nil); err == nil {
		t.Error("expected an error for a non-canonical day")
	}
}

func TestFreeIntervalsForRoomNoSessions(t *testing.T) {
	free := FreeIntervalsForRoom(nil, FreeIntervalOptions{})

	if len(free) != 5 {
		t.Fatalf("expected entries for the five working days, got %d", len(free))
	}
	for day, intervals := range free {
		if len(intervals) != 1 {
			t.Fatalf("expected one full-day interval for %s, got %v", day, intervals)
		}
		if intervals[0].String() != "00:00-23:59" {
			t.Errorf("expected the full day for %s, got %s", day, intervals[0])
		}
	}
}

func TestFreeIntervalsForRoomOneBusyInterval(t *testing.T) {
	sessions := []cru.Session{session(t, "Monday", "09:00", "10:00", "R101", 40)}

	free := FreeIntervalsForRoom(sessions, FreeIntervalOptions{})

	// Busy intervals apply uniformly to all five days by default, so every
	// day shows the same two free windows.
	for day, intervals := range free {
		if len(intervals) != 2 {
			t.Fatalf("expected two free intervals for %s, got %v", day, intervals)
		}
		if intervals[0].String() != "00:00-09:00" || intervals[1].String() != "10:00-23:59" {
			t.Errorf("unexpected free intervals for %s: %v", day, intervals)
		}
	}
}

func TestFreeIntervalsForRoomMatchSessionDay(t *testing.T) {
	sessions := []cru.Session{session(t, "Monday", "09:00", "10:00", "R101", 40)}

	free := FreeIntervalsForRoom(sessions, FreeIntervalOptions{MatchSessionDay: true})

	if len(free["Monday"]) != 2 {
		t.Errorf("Monday should be split in two, got %v", free["Monday"])
	}
	for _, day := range []string{"Tuesday", "Wednesday", "Thursday", "Friday"} {
		if len(free[day]) != 1 || free[day][0].String() != "00:00-23:59" {
			t.Errorf("%s should stay fully free with day matching on, got %v", day, free[day])
		}
	}
}

func TestParseTimeWindowRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "09:00", "09:00-25:00", "9-10"} {
		if _, err := ParseTimeWindow(in); err == nil {
			t.Errorf("expected ParseTimeWindow(%q) to fail", in)
		}
	}
}
