package schedule

import (
	"reflect"
	"testing"
)

func TestSubtractAllNoBusy(t *testing.T) {
	free := SubtractAll(Interval{0, 1439}, nil)
	if !reflect.DeepEqual(free, []Interval{{0, 1439}}) {
		t.Errorf("expected the untouched base interval, got %v", free)
	}
}

func TestSubtractAllSplitsInTheMiddle(t *testing.T) {
	free := SubtractAll(Interval{0, 1439}, []Interval{{540, 600}})
	want := []Interval{{0, 540}, {600, 1439}}
	if !reflect.DeepEqual(free, want) {
		t.Errorf("expected %v, got %v", want, free)
	}
}

func TestSubtractAllEdgeTouching(t *testing.T) {
	// Busy intervals flush with the base bounds trim instead of splitting.
	free := SubtractAll(Interval{0, 1439}, []Interval{{0, 480}, {1000, 1439}})
	want := []Interval{{480, 1000}}
	if !reflect.DeepEqual(free, want) {
		t.Errorf("expected %v, got %v", want, free)
	}
}

func TestSubtractAllDisjointBusyInAnyOrder(t *testing.T) {
	busy := []Interval{{800, 900}, {100, 200}, {400, 500}}
	free := SubtractAll(Interval{0, 1439}, busy)
	want := []Interval{{0, 100}, {200, 400}, {500, 800}, {900, 1439}}
	if !reflect.DeepEqual(free, want) {
		t.Errorf("expected %v, got %v", want, free)
	}
}

func TestSubtractAllOverlappingBusy(t *testing.T) {
	// The second busy interval partially covers the first's hole.
	busy := []Interval{{100, 300}, {200, 400}}
	free := SubtractAll(Interval{0, 1439}, busy)
	want := []Interval{{0, 100}, {400, 1439}}
	if !reflect.DeepEqual(free, want) {
		t.Errorf("expected %v, got %v", want, free)
	}
}

func TestSubtractAllFullCover(t *testing.T) {
	free := SubtractAll(Interval{0, 1439}, []Interval{{0, 1439}})
	if len(free) != 0 {
		t.Errorf("expected no free intervals, got %v", free)
	}
}

func TestOverlapsAsymmetricBoundary(t *testing.T) {
	query := Interval{Start: 600, End: 660} // 10:00-11:00

	// Ending exactly at the query start does not overlap.
	if (Interval{Start: 540, End: 600}).Overlaps(query) {
		t.Error("interval ending at query start should not overlap")
	}

	// Starting exactly at the query end does overlap, by the asymmetric rule.
	if !(Interval{Start: 660, End: 720}).Overlaps(query) {
		t.Error("interval starting at query end should overlap under the asymmetric rule")
	}

	if !(Interval{Start: 570, End: 630}).Overlaps(query) {
		t.Error("straddling interval should overlap")
	}
}
