package wordfreq

import "strings"

// FrequencyTable is the single source of truth for "what is the count of
// word W". Keys are normalized words; every present key has count >= 1. A
// word absent from the table has implicit count 0.
//
// The table itself is not safe for concurrent use; the Analyzer serializes
// access to it.
type FrequencyTable struct {
	counts map[string]int
}

// NewFrequencyTable creates an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Normalize trims surrounding whitespace and lowercases a raw token. The
// second return value is false for tokens that normalize to the empty
// string, which are dropped rather than counted.
func Normalize(token string) (string, bool) {
	word := strings.ToLower(strings.TrimSpace(token))
	return word, word != ""
}

// Add increments the count of each normalized token by one and returns the
// number of tokens actually added, after empty and whitespace-only tokens
// have been filtered out.
func (t *FrequencyTable) Add(tokens []string) int {
	added := 0
	for _, token := range tokens {
		word, ok := Normalize(token)
		if !ok {
			continue
		}
		t.counts[word]++
		added++
	}
	return added
}

// Count returns the current count of word, 0 if never seen. The argument is
// normalized before the lookup.
func (t *FrequencyTable) Count(word string) int {
	normalized, ok := Normalize(word)
	if !ok {
		return 0
	}
	return t.counts[normalized]
}

// Len returns the number of distinct words in the table.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}

// Entries returns a snapshot copy of the word -> count mapping. Iteration
// order is unspecified; callers who need sorted output sort it themselves.
func (t *FrequencyTable) Entries() map[string]int {
	snapshot := make(map[string]int, len(t.counts))
	for word, count := range t.counts {
		snapshot[word] = count
	}
	return snapshot
}

// CountValues returns the count of every distinct word, one sample per word,
// in unspecified order. This is the input to the median calculation.
func (t *FrequencyTable) CountValues() []int {
	values := make([]int, 0, len(t.counts))
	for _, count := range t.counts {
		values = append(values, count)
	}
	return values
}

// Clear resets the table to empty.
func (t *FrequencyTable) Clear() {
	clear(t.counts)
}
