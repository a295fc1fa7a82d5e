package cru

import (
	"fmt"
	"strconv"
	"strings"
)

// courseExclusionPrefix marks placeholder course codes that must never enter
// the corpus. Their session lines are dropped along with them.
const courseExclusionPrefix = "UVUV"

// dayAbbreviations maps the day tokens used inside H= fields to canonical
// weekday names. Unknown tokens pass through verbatim.
var dayAbbreviations = map[string]string{
	"L":  "Monday",
	"MA": "Tuesday",
	"ME": "Wednesday",
	"J":  "Thursday",
	"V":  "Friday",
}

// Parser turns course resource files into a corpus of Courses. One Parser
// instance covers one parsing run; feed it several sources and they share the
// corpus and the duplicate-code set.
//
// The grammar is deliberately tolerant: lines that fail to yield a complete
// session are dropped, and only lines with unparsable sub-values inside a
// recognized field are reported as diagnostics.
type Parser struct {
	courses  []*Course
	seen     map[string]bool
	current  *Course
	errors   []string
	warnings []string
}

// NewParser creates an empty parser with no courses.
func NewParser() *Parser {
	return &Parser{
		seen: make(map[string]bool),
	}
}

// Courses returns the parsed corpus in file order. Callers must treat the
// result as read-only.
func (p *Parser) Courses() []*Course {
	return p.courses
}

// ErrorCount returns the number of lines dropped due to unparsable values.
func (p *Parser) ErrorCount() int {
	return len(p.errors)
}

// Errors returns the per-line diagnostics collected so far.
func (p *Parser) Errors() []string {
	return p.errors
}

// Warnings returns data-quality notes, such as sessions whose start time is
// not before their end time. Warned sessions are still kept.
func (p *Parser) Warnings() []string {
	return p.warnings
}

// ParseMany parses a batch of raw texts sequentially into the shared corpus.
func (p *Parser) ParseMany(sources []string) {
	for _, src := range sources {
		p.ParseSource(src)
	}
}

// ParseSource parses one course resource file. Courses accumulate across
// calls; a code already seen in this run is skipped together with its
// session lines (first occurrence wins).
func (p *Parser) ParseSource(text string) {
	for n, raw := range strings.Split(text, "\n") {
		p.processLine(n+1, strings.TrimSpace(raw))
	}
}

func (p *Parser) processLine(lineNo int, line string) {
	if line == "" {
		return
	}

	if strings.HasPrefix(line, "+") {
		p.startCourse(strings.TrimSpace(line[1:]))
		return
	}

	// Session lines without a current course are dropped: they belong to a
	// skipped or duplicate course, or the file starts mid-stream.
	if p.current == nil {
		return
	}

	session, ok, err := p.parseSessionLine(line)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("line %d: %v", lineNo, err))
		return
	}
	if !ok {
		return
	}

	if !session.Start.Before(session.End) {
		p.warnings = append(p.warnings, fmt.Sprintf(
			"line %d: session start %s is not before end %s", lineNo, session.Start, session.End))
	}

	p.current.AddSession(session)
}

// startCourse handles a "+CODE" marker line. Excluded and duplicate codes
// clear the current course so following session lines fall through.
func (p *Parser) startCourse(code string) {
	if strings.HasPrefix(code, courseExclusionPrefix) {
		p.current = nil
		return
	}
	if p.seen[code] {
		p.current = nil
		return
	}

	course := &Course{Code: code}
	p.courses = append(p.courses, course)
	p.seen[code] = true
	p.current = course
}

// parseSessionLine applies the tagged-field grammar to one session line.
// ok is false when the line is silently incomplete; err reports unparsable
// values inside a recognized field.
func (p *Parser) parseSessionLine(line string) (Session, bool, error) {
	line = strings.TrimSpace(strings.TrimSuffix(line, "//"))

	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return Session{}, false, nil
	}

	sessionType := strings.TrimSpace(fields[1])

	subGroup := ""
	if len(fields) > 4 {
		subGroup = strings.TrimSpace(fields[4])
	}

	var (
		capacity      int
		capacityFound bool
		day           string
		start, end    TimeOfDay
		timesFound    bool
		room          string
	)

	// Tagged fields may appear in any order; anything unrecognized is ignored.
	for _, f := range fields {
		f = strings.TrimSpace(f)
		switch {
		case strings.HasPrefix(f, "P="):
			n, err := strconv.Atoi(f[2:])
			if err != nil {
				return Session{}, false, fmt.Errorf("invalid capacity %q: %w", f, err)
			}
			capacity = n
			capacityFound = true
		case strings.HasPrefix(f, "H="):
			d, s, e, err := parseDayTime(f[2:])
			if err != nil {
				return Session{}, false, err
			}
			day = d
			start, end = s, e
			timesFound = true
		case strings.HasPrefix(f, "S="):
			room = strings.TrimSpace(f[2:])
		}
	}

	if !capacityFound || !timesFound || day == "" || room == "" {
		return Session{}, false, nil
	}

	session, err := NewSession(sessionType, capacity, day, start, end, subGroup, room)
	if err != nil {
		return Session{}, false, err
	}
	return session, true, nil
}

// parseDayTime splits an H= payload like "J 8:00-10:00" into a canonical
// weekday and a start/end pair.
func parseDayTime(payload string) (string, TimeOfDay, TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(payload), " ", 2)
	if len(parts) != 2 {
		return "", TimeOfDay{}, TimeOfDay{}, fmt.Errorf("invalid day/time %q: expected \"DAY HH:MM-HH:MM\"", payload)
	}

	day := parts[0]
	if full, ok := dayAbbreviations[day]; ok {
		day = full
	}

	times := strings.SplitN(strings.TrimSpace(parts[1]), "-", 2)
	if len(times) != 2 {
		return "", TimeOfDay{}, TimeOfDay{}, fmt.Errorf("invalid time range %q: expected HH:MM-HH:MM", parts[1])
	}

	start, err := ParseTimeOfDay(times[0])
	if err != nil {
		return "", TimeOfDay{}, TimeOfDay{}, err
	}
	end, err := ParseTimeOfDay(times[1])
	if err != nil {
		return "", TimeOfDay{}, TimeOfDay{}, err
	}

	return day, start, end, nil
}
