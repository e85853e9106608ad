// Package wordfreq maintains running word-frequency statistics over an
// incrementally growing multiset of words.
//
// The package answers three questions about the words seen so far: which K
// words are the most frequent, what is the smallest frequency currently
// present, and what is the median of the per-word frequency distribution.
//
// Maintain-on-Update vs Rescan-on-Query
// =====================================
//
// A naive implementation would rescan the whole frequency table on every
// query. Instead, the Analyzer pays an O(n log n) rebuild cost once per
// batch of added words and keeps two ordered auxiliary structures current:
//
// Top-K List: the K most frequent words, ordered by count descending with an
// alphabetical tie-break. Handing it back is O(K), effectively constant for
// the default K=5.
//
// Histogram: for every frequency value present in the table, how many
// distinct words have exactly that frequency, ordered by frequency
// descending. Because the ordering is maintained on every rebuild, the
// minimum frequency is always the last bucket; retrieving it never scans.
//
// The median is the exception: it is recomputed from the table on each query
// rather than maintained incrementally. The cost is O(n log n) in the number
// of distinct words, which is bounded by vocabulary size rather than input
// volume, and the query is rare compared to adds.
//
// Concurrency
// ===========
//
// Each Analyzer carries one RWMutex. A batch add mutates the table and
// rebuilds both auxiliary structures under the write lock, so a reader never
// observes a rebuilt histogram paired with a stale top-K list. Pure queries
// take the read lock and only touch cached derived state (plus the table for
// the median).
package wordfreq

import (
	"errors"
	"sync"
)

// ErrEmpty is returned by queries that are undefined when no words have been
// recorded: minimum frequency, maximum frequency, and median. A numeric
// sentinel like 0 or -1 would be indistinguishable from a real frequency.
var ErrEmpty = errors.New("wordfreq: no words recorded")

// Analyzer is the shared state of one counting session. The zero value is
// not usable; construct with New. Multiple independent sessions are just
// multiple Analyzer instances.
type Analyzer struct {
	mu    sync.RWMutex
	table *FrequencyTable
	top   *TopList
	hist  *Histogram

	// totalWords counts occurrences (not distinct words) added since the
	// last Clear. Exposed in the debug view.
	totalWords int
}

// New creates an empty Analyzer tracking the top k words. k <= 0 selects
// DefaultK.
func New(k int) *Analyzer {
	return &Analyzer{
		table: NewFrequencyTable(),
		top:   NewTopList(k),
		hist:  NewHistogram(),
	}
}

// AddWords normalizes each token (trim, lowercase), drops empties, and
// increments the surviving words' counts by one each. It returns the number
// of tokens actually added. The top-K list and the histogram are rebuilt
// before the method returns, as one atomic unit with the table mutation.
//
// An empty batch (or a batch of only whitespace tokens) is legal and leaves
// all state untouched.
func (a *Analyzer) AddWords(tokens []string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	added := a.table.Add(tokens)
	if added == 0 {
		// Nothing changed; the derived structures are still current.
		return 0
	}

	a.totalWords += added
	a.top.Rebuild(a.table)
	a.hist.Rebuild(a.table)
	return added
}

// Count returns the current count of word, 0 if it has never been seen.
// The argument is normalized the same way AddWords normalizes tokens, so
// Count("  Apple ") and Count("apple") agree.
func (a *Analyzer) Count(word string) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.table.Count(word)
}

// DistinctWords returns the number of distinct words currently tracked.
func (a *Analyzer) DistinctWords() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.table.Len()
}

// TotalWords returns the number of occurrences added since the last Clear.
func (a *Analyzer) TotalWords() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.totalWords
}

// TopK returns a copy of the current top-K list, ordered by count descending
// and alphabetically for equal counts. The result is shorter than K when
// fewer than K distinct words exist, and empty for a fresh or cleared
// Analyzer. Repeated calls without an intervening AddWords return identical
// results.
func (a *Analyzer) TopK() []Entry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.top.Entries()
}

// K returns the configured top-list capacity.
func (a *Analyzer) K() int {
	return a.top.K()
}

// MinFrequency returns the smallest frequency present in the table. It
// returns ErrEmpty when no words have been recorded.
func (a *Analyzer) MinFrequency() (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.hist.Min()
}

// MaxFrequency returns the largest frequency present in the table. It
// returns ErrEmpty when no words have been recorded.
func (a *Analyzer) MaxFrequency() (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.hist.Max()
}

// MedianFrequency returns the median of the per-word frequency values. Each
// distinct word contributes exactly one sample (its count), so a word seen
// 1000 times weighs the same as a word seen once. It returns ErrEmpty when
// no words have been recorded.
//
// Unlike the top-K list and the histogram, this value is recomputed from the
// table on every call.
func (a *Analyzer) MedianFrequency() (float64, error) {
	a.mu.RLock()
	values := a.table.CountValues()
	a.mu.RUnlock()
	return Median(values)
}

// Frequencies returns a snapshot copy of the word -> count mapping.
func (a *Analyzer) Frequencies() map[string]int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.table.Entries()
}

// Statistics is the aggregate read used to render the statistics view.
// MinFrequency and MedianFrequency are only meaningful when HasData is true.
type Statistics struct {
	Frequencies     map[string]int
	TopK            []Entry
	MinFrequency    int
	MedianFrequency float64
	HasData         bool
}

// Statistics returns one consistent snapshot of all three derived queries
// plus the full frequency mapping. Taking them under a single read lock
// guarantees the pieces agree with each other.
func (a *Analyzer) Statistics() Statistics {
	a.mu.RLock()
	defer a.mu.RUnlock()

	stats := Statistics{
		Frequencies: a.table.Entries(),
		TopK:        a.top.Entries(),
	}

	min, err := a.hist.Min()
	if err != nil {
		return stats
	}

	median, err := Median(a.table.CountValues())
	if err != nil {
		return stats
	}

	stats.MinFrequency = min
	stats.MedianFrequency = median
	stats.HasData = true
	return stats
}

// DebugState exposes the internal structures for diagnostics: the raw top-K
// list, the raw histogram buckets, the full mapping, and the running
// occurrence tally.
type DebugState struct {
	TotalWords  int
	TopK        []Entry
	Buckets     []Bucket
	Frequencies map[string]int
}

// Debug returns one consistent snapshot of the internal state.
func (a *Analyzer) Debug() DebugState {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return DebugState{
		TotalWords:  a.totalWords,
		TopK:        a.top.Entries(),
		Buckets:     a.hist.Buckets(),
		Frequencies: a.table.Entries(),
	}
}

// Clear resets the Analyzer to its initial empty state. Subsequent
// MinFrequency and MedianFrequency calls return ErrEmpty until words are
// added again.
func (a *Analyzer) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.table.Clear()
	a.top.Clear()
	a.hist.Clear()
	a.totalWords = 0
}
