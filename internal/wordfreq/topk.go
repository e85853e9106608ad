package wordfreq

import "sort"

// DefaultK is the top-list capacity used when the caller does not specify
// one.
const DefaultK = 5

// Entry is one position in the top-K list: a word and its count at the time
// of the last rebuild. Entries are copies, not references into the table, so
// a handed-out list stays valid until the next rebuild.
type Entry struct {
	Word  string
	Count int
}

// TopList caches the K most frequent words. It is entirely derived state:
// recomputed wholesale from the table after each batch add, never patched
// incrementally. Handing the cached result back is O(K).
type TopList struct {
	k       int
	entries []Entry
}

// NewTopList creates an empty top list with capacity k. k <= 0 selects
// DefaultK.
func NewTopList(k int) *TopList {
	if k <= 0 {
		k = DefaultK
	}
	return &TopList{k: k}
}

// K returns the list capacity.
func (l *TopList) K() int { return l.k }

// Rebuild recomputes the list from the table: all (word, count) pairs sorted
// by count descending, alphabetically ascending for equal counts, truncated
// to the first K. The composite key makes the ordering total, so ties at the
// K-th boundary are resolved exactly like interior ties.
//
// Cost is O(n log n) in the number of distinct words. That is paid once per
// batch add, not once per query, and n is bounded by vocabulary size rather
// than input volume.
func (l *TopList) Rebuild(table *FrequencyTable) {
	entries := make([]Entry, 0, table.Len())
	for word, count := range table.Entries() {
		entries = append(entries, Entry{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	if len(entries) > l.k {
		entries = entries[:l.k]
	}
	l.entries = entries
}

// Entries returns a copy of the cached list. It is empty, never nil-padded,
// when fewer than K distinct words exist or Rebuild has never run.
func (l *TopList) Entries() []Entry {
	result := make([]Entry, len(l.entries))
	copy(result, l.entries)
	return result
}

// Clear discards the cached list.
func (l *TopList) Clear() {
	l.entries = nil
}
