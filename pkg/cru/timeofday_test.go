package cru

import "testing"

func TestParseTimeOfDayRoundTrip(t *testing.T) {
	inputs := []string{"00:00", "08:15", "09:05", "12:30", "23:59"}

	for _, in := range inputs {
		tod, err := ParseTimeOfDay(in)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) failed: %v", in, err)
		}
		if got := tod.String(); got != in {
			t.Errorf("round trip of %q produced %q", in, got)
		}
	}
}

func TestParseTimeOfDayPadsSingleDigitHours(t *testing.T) {
	tod, err := ParseTimeOfDay("8:00")
	if err != nil {
		t.Fatalf("ParseTimeOfDay failed: %v", err)
	}
	if tod.String() != "08:00" {
		t.Errorf("expected zero-padded 08:00, got %s", tod.String())
	}
}

func TestParseTimeOfDayRejectsInvalid(t *testing.T) {
	bad := []string{"24:00", "12:60", "-1:00", "12", "ab:cd", "12:00:00", ""}

	for _, in := range bad {
		if _, err := ParseTimeOfDay(in); err == nil {
			t.Errorf("expected ParseTimeOfDay(%q) to fail", in)
		}
	}
}

func TestTimeOfDayOrdering(t *testing.T) {
	early, _ := NewTimeOfDay(9, 30)
	late, _ := NewTimeOfDay(10, 0)

	if !early.Before(late) {
		t.Error("09:30 should be before 10:00")
	}
	if late.Before(early) {
		t.Error("10:00 should not be before 09:30")
	}
	if early.Before(early) {
		t.Error("a time should not be before itself")
	}
}

func TestTimeOfDayMinutes(t *testing.T) {
	tod, _ := NewTimeOfDay(10, 15)
	if tod.Minutes() != 615 {
		t.Errorf("expected 615 minutes since midnight, got %d", tod.Minutes())
	}
}
