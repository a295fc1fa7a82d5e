package schedule

// Interval is a half-open [Start, End) range expressed in minutes since
// midnight. Keeping the arithmetic on plain ints keeps the subtraction
// algorithm testable without any time-of-day plumbing.
type Interval struct {
	Start int
	End   int
}

// The base interval a room is considered free for: 00:00 up to 23:59.
const (
	dayStartMinute = 0
	dayEndMinute   = 23*60 + 59
)

// Overlaps reports whether i and q overlap. The boundary rule is
// deliberately asymmetric: i.End > q.Start on one side but i.Start <= q.End
// on the other, so an interval ending exactly at q.Start does not overlap
// while one starting exactly at q.End does. This matches the historical
// availability behavior and must not be "fixed" to a symmetric rule.
func (i Interval) Overlaps(q Interval) bool {
	return i.End > q.Start && i.Start <= q.End
}

// subtract removes busy from every interval in free, splitting intervals the
// busy range lands inside. Intervals it does not touch pass through verbatim.
func subtract(free []Interval, busy Interval) []Interval {
	var result []Interval
	for _, f := range free {
		if busy.End <= f.Start || busy.Start >= f.End {
			result = append(result, f)
			continue
		}
		if busy.Start > f.Start {
			result = append(result, Interval{Start: f.Start, End: busy.Start})
		}
		if busy.End < f.End {
			result = append(result, Interval{Start: busy.End, End: f.End})
		}
	}
	return result
}

// SubtractAll removes every busy interval from base, in input order, and
// returns the remaining free intervals in ascending start order.
func SubtractAll(base Interval, busy []Interval) []Interval {
	free := []Interval{base}
	for _, b := range busy {
		free = subtract(free, b)
	}
	return free
}
