package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Weekdays is the canonical week, in order. Every day argument crossing into
// this package must be one of these seven names.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// WorkingDays is the subset free-interval reports cover.
var WorkingDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func weekdayIndex(name string) (int, error) {
	for i, d := range Weekdays {
		if strings.EqualFold(d, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid day %q: expected one of %s", name, strings.Join(Weekdays, ", "))
}

// DayRange returns the inclusive run of weekdays from startDay to endDay,
// walking the week forward. When startDay falls later in the week than
// endDay the range wraps past Sunday, so Friday..Monday yields Friday,
// Saturday, Sunday, Monday.
func DayRange(startDay, endDay string) ([]string, error) {
	start, err := weekdayIndex(startDay)
	if err != nil {
		return nil, err
	}
	end, err := weekdayIndex(endDay)
	if err != nil {
		return nil, err
	}

	span := (end - start + 7) % 7
	days := make([]string, 0, span+1)
	for k := 0; k <= span; k++ {
		days = append(days, Weekdays[(start+k)%7])
	}
	return days, nil
}

// DateForWeekday returns the next calendar date falling on the named weekday,
// on or after ref: if ref already is that weekday, ref's own date is used.
func DateForWeekday(name string, ref time.Time) (time.Time, error) {
	idx, err := weekdayIndex(name)
	if err != nil {
		return time.Time{}, err
	}

	// time.Weekday counts Sunday=0..Saturday=6 while Weekdays starts at
	// Monday, hence the +1 shift.
	target := (idx + 1) % 7
	diff := (target - int(ref.Weekday()) + 7) % 7
	return ref.AddDate(0, 0, diff), nil
}
