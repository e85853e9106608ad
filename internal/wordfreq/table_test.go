package wordfreq

import "testing"

// TestNormalize verifies trimming, lowercasing, and empty-token rejection.
func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"apple", "apple", true},
		{"  Apple ", "apple", true},
		{"APPLE", "apple", true},
		{"", "", false},
		{"   ", "", false},
		{"\tbanana\n", "banana", true},
	}

	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

// TestTableAdd verifies counting and the returned added total.
func TestTableAdd(t *testing.T) {
	table := NewFrequencyTable()

	added := table.Add([]string{"apple", "banana", "apple", "cherry"})
	if added != 4 {
		t.Errorf("expected 4 added, got %d", added)
	}

	if got := table.Count("apple"); got != 2 {
		t.Errorf("expected apple count 2, got %d", got)
	}
	if got := table.Count("banana"); got != 1 {
		t.Errorf("expected banana count 1, got %d", got)
	}
	if got := table.Count("missing"); got != 0 {
		t.Errorf("expected missing count 0, got %d", got)
	}
	if got := table.Len(); got != 3 {
		t.Errorf("expected 3 distinct words, got %d", got)
	}
}

// TestTableAddFiltersEmptyTokens verifies that empty and whitespace-only
// tokens are dropped silently and excluded from the added total.
func TestTableAddFiltersEmptyTokens(t *testing.T) {
	table := NewFrequencyTable()

	added := table.Add([]string{"apple", "", "   ", "\t", "banana"})
	if added != 2 {
		t.Errorf("expected 2 added, got %d", added)
	}
	if got := table.Len(); got != 2 {
		t.Errorf("expected 2 distinct words, got %d", got)
	}

	// An all-empty batch is legal and adds nothing.
	if added := table.Add([]string{"", "  "}); added != 0 {
		t.Errorf("expected 0 added for empty batch, got %d", added)
	}
}

// TestTableNormalizesOnAdd verifies that mixed casing and surrounding
// whitespace collapse into a single normalized entry.
func TestTableNormalizesOnAdd(t *testing.T) {
	table := NewFrequencyTable()

	table.Add([]string{"Apple", " apple ", "APPLE"})

	if got := table.Count("apple"); got != 3 {
		t.Errorf("expected apple count 3, got %d", got)
	}
	if got := table.Len(); got != 1 {
		t.Errorf("expected 1 distinct word, got %d", got)
	}

	// Count normalizes its argument the same way.
	if got := table.Count("  APPLE "); got != 3 {
		t.Errorf("expected normalized lookup count 3, got %d", got)
	}
}

// TestTableEntriesIsSnapshot verifies that mutating a returned snapshot does
// not affect the table.
func TestTableEntriesIsSnapshot(t *testing.T) {
	table := NewFrequencyTable()
	table.Add([]string{"apple"})

	snapshot := table.Entries()
	snapshot["apple"] = 99
	snapshot["rogue"] = 1

	if got := table.Count("apple"); got != 1 {
		t.Errorf("snapshot mutation leaked into table: apple = %d", got)
	}
	if got := table.Count("rogue"); got != 0 {
		t.Errorf("snapshot mutation leaked into table: rogue = %d", got)
	}
}

// TestTableClear verifies that Clear resets every count to zero.
func TestTableClear(t *testing.T) {
	table := NewFrequencyTable()
	table.Add([]string{"apple", "banana", "apple"})

	table.Clear()

	if got := table.Len(); got != 0 {
		t.Errorf("expected empty table after clear, got %d words", got)
	}
	if got := table.Count("apple"); got != 0 {
		t.Errorf("expected apple count 0 after clear, got %d", got)
	}
}
