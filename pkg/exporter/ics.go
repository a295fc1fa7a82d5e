package exporter

import (
	"fmt"
	"io"
	"time"

	"glowutt/pkg/schedule"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes an iCalendar file containing one event per session of
// the given courses. Each session is anchored to the next occurrence of its
// weekday on or after ref, in ref's location.
func GenerateICS(courses []schedule.CourseSessions, ref time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc := ref.Location()
	seq := 0

	for _, course := range courses {
		for _, s := range course.Sessions {
			date, err := schedule.DateForWeekday(s.Day, ref)
			if err != nil {
				continue // Sessions on unrecognized day tokens have no calendar date
			}

			startTime := time.Date(date.Year(), date.Month(), date.Day(), s.Start.Hour, s.Start.Minute, 0, 0, loc)
			endTime := time.Date(date.Year(), date.Month(), date.Day(), s.End.Hour, s.End.Minute, 0, 0, loc)

			event := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), seq))
			seq++
			event.SetCreatedTime(time.Now())
			event.SetDtStampTime(time.Now())
			event.SetModifiedAt(time.Now())
			event.SetStartAt(startTime)
			event.SetEndAt(endTime)
			event.SetSummary(fmt.Sprintf("%s (%s)", course.Code, s.Type))
			event.SetLocation(s.Room)

			description := fmt.Sprintf("Type: %s\nSubgroup: %s\nCapacity: %d", s.Type, s.SubGroup, s.Capacity)
			event.SetDescription(description)
		}
	}

	return cal.SerializeTo(w)
}
