package wordfreq

import (
	"errors"
	"reflect"
	"testing"
)

// TestHistogramBuckets verifies the descending bucket ordering and the
// distinct-word cardinalities.
func TestHistogramBuckets(t *testing.T) {
	table := buildTable("apple", "banana", "apple", "cherry")

	hist := NewHistogram()
	hist.Rebuild(table)

	// apple has count 2; banana and cherry have count 1.
	want := []Bucket{
		{Count: 2, Words: 1},
		{Count: 1, Words: 2},
	}
	if got := hist.Buckets(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestHistogramMinMax verifies O(1) retrieval from both ends.
func TestHistogramMinMax(t *testing.T) {
	table := buildTable(
		"a", "a", "a", "a",
		"b", "b",
		"c",
	)

	hist := NewHistogram()
	hist.Rebuild(table)

	min, err := hist.Min()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 1 {
		t.Errorf("expected min 1, got %d", min)
	}

	max, err := hist.Max()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if max != 4 {
		t.Errorf("expected max 4, got %d", max)
	}
}

// TestHistogramEmpty verifies that Min and Max surface ErrEmpty rather than
// a numeric sentinel when no words exist.
func TestHistogramEmpty(t *testing.T) {
	hist := NewHistogram()

	if _, err := hist.Min(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty from Min, got %v", err)
	}
	if _, err := hist.Max(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty from Max, got %v", err)
	}

	// Rebuilding from an empty table keeps the empty state.
	hist.Rebuild(NewFrequencyTable())
	if _, err := hist.Min(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty after empty rebuild, got %v", err)
	}
}

// TestHistogramRebuildReplacesBuckets verifies that stale buckets do not
// survive a rebuild.
func TestHistogramRebuildReplacesBuckets(t *testing.T) {
	hist := NewHistogram()
	hist.Rebuild(buildTable("a", "a", "b"))

	table := buildTable("x", "x", "x")
	hist.Rebuild(table)

	want := []Bucket{{Count: 3, Words: 1}}
	if got := hist.Buckets(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	min, err := hist.Min()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 3 {
		t.Errorf("expected min 3 after rebuild, got %d", min)
	}
}
