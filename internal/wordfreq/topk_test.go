package wordfreq

import (
	"reflect"
	"testing"
)

func buildTable(words ...string) *FrequencyTable {
	table := NewFrequencyTable()
	table.Add(words)
	return table
}

// TestTopListOrdering verifies the composite (-count, word) ordering.
func TestTopListOrdering(t *testing.T) {
	table := buildTable("apple", "banana", "apple", "cherry")

	top := NewTopList(5)
	top.Rebuild(table)

	want := []Entry{
		{Word: "apple", Count: 2},
		{Word: "banana", Count: 1},
		{Word: "cherry", Count: 1},
	}
	if got := top.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestTopListTruncation verifies that only the first K entries survive when
// more than K distinct words exist.
func TestTopListTruncation(t *testing.T) {
	table := buildTable(
		"a", "a", "a",
		"b", "b",
		"c", "c",
		"d",
		"e",
		"f",
		"g",
	)

	top := NewTopList(5)
	top.Rebuild(table)

	got := top.Entries()
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}

	// Ties at the K-th boundary resolve alphabetically, same as interior
	// ties: d, e, f, g all have count 1, and only d and e fit.
	want := []Entry{
		{Word: "a", Count: 3},
		{Word: "b", Count: 2},
		{Word: "c", Count: 2},
		{Word: "d", Count: 1},
		{Word: "e", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestTopListTieBreakIgnoresInsertionOrder verifies that equal counts are
// ordered purely alphabetically, however the words arrived.
func TestTopListTieBreakIgnoresInsertionOrder(t *testing.T) {
	top := NewTopList(5)

	top.Rebuild(buildTable("zebra", "apple", "mango"))
	first := top.Entries()

	top.Rebuild(buildTable("mango", "zebra", "apple"))
	second := top.Entries()

	want := []Entry{
		{Word: "apple", Count: 1},
		{Word: "mango", Count: 1},
		{Word: "zebra", Count: 1},
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("expected %v, got %v", want, first)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ordering depends on insertion order: %v vs %v", first, second)
	}
}

// TestTopListShorterThanK verifies that the list is never padded.
func TestTopListShorterThanK(t *testing.T) {
	top := NewTopList(5)
	top.Rebuild(buildTable("solo"))

	if got := top.Entries(); len(got) != 1 {
		t.Errorf("expected 1 entry, got %d", len(got))
	}
}

// TestTopListEmpty verifies that an unbuilt or empty list returns an empty
// sequence, not an error.
func TestTopListEmpty(t *testing.T) {
	top := NewTopList(5)

	if got := top.Entries(); len(got) != 0 {
		t.Errorf("expected empty entries before first rebuild, got %v", got)
	}

	top.Rebuild(NewFrequencyTable())
	if got := top.Entries(); len(got) != 0 {
		t.Errorf("expected empty entries for empty table, got %v", got)
	}
}

// TestTopListDefaultK verifies that non-positive capacities fall back to
// DefaultK.
func TestTopListDefaultK(t *testing.T) {
	if got := NewTopList(0).K(); got != DefaultK {
		t.Errorf("expected default K %d, got %d", DefaultK, got)
	}
	if got := NewTopList(-3).K(); got != DefaultK {
		t.Errorf("expected default K %d, got %d", DefaultK, got)
	}
	if got := NewTopList(2).K(); got != 2 {
		t.Errorf("expected K 2, got %d", got)
	}
}

// TestTopListEntriesIsCopy verifies that callers cannot mutate the cached
// list through the returned slice.
func TestTopListEntriesIsCopy(t *testing.T) {
	top := NewTopList(5)
	top.Rebuild(buildTable("apple"))

	got := top.Entries()
	got[0].Count = 99

	if again := top.Entries(); again[0].Count != 1 {
		t.Errorf("returned slice aliases the cache: count = %d", again[0].Count)
	}
}
