// handlers_words.go implements the WF.* command family: one counting session
// per key, with the three derived queries the sessions exist to answer.
//
// Empty-State Semantics
// =====================
//
// WF.MIN, WF.MAX, and WF.MEDIAN are undefined before the first word reaches
// a session. Those commands reply "-ERR no words recorded" instead of a
// numeric sentinel, which a client could mistake for a real frequency. A key
// that was never created behaves exactly like a created-but-empty session:
// WF.COUNT returns 0, WF.TOPK returns an empty array, and the undefined
// queries return the empty-state error. Read commands therefore never create
// sessions as a side effect; only WF.ADD does.

package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"wordstats.lopezb.com/internal/wordfreq"
)

// handleAdd handles the WF.ADD command.
// Syntax: WF.ADD key word [word ...]
//
// Adds a batch of words to the session named by key, creating the session on
// first use. Tokens are trimmed and lowercased; tokens that normalize to the
// empty string are dropped. Returns the number of words actually added.
func (app *application) handleAdd(w io.Writer, args []string) {
	if len(args) < 2 {
		app.wrongNumberOfArgsResponse(w, "WF.ADD")
		return
	}

	key := args[0]
	analyzer := app.store.GetOrCreate(key)
	added := analyzer.AddWords(args[1:])

	app.logger.Debug("words added", "key", key, "added", added)

	_ = app.writeIntegerResponse(w, added)
}

// handleCount handles the WF.COUNT command.
// Syntax: WF.COUNT key word
//
// Returns the current count of word in the session, 0 if the word (or the
// session itself) has never been seen.
func (app *application) handleCount(w io.Writer, args []string) {
	if len(args) != 2 {
		app.wrongNumberOfArgsResponse(w, "WF.COUNT")
		return
	}

	analyzer, ok := app.store.Get(args[0])
	if !ok {
		_ = app.writeIntegerResponse(w, 0)
		return
	}

	_ = app.writeIntegerResponse(w, analyzer.Count(args[1]))
}

// handleTopK handles the WF.TOPK command.
// Syntax: WF.TOPK key
//
// Returns the session's top-K words as a flat array alternating word and
// count, ordered by count descending with an alphabetical tie-break. The
// array is shorter than 2*K when fewer than K distinct words exist, and
// empty for a missing or empty session.
func (app *application) handleTopK(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "WF.TOPK")
		return
	}

	analyzer, ok := app.store.Get(args[0])
	if !ok {
		_ = app.writeEntriesResponse(w, nil)
		return
	}

	_ = app.writeEntriesResponse(w, analyzer.TopK())
}

// handleMin handles the WF.MIN command.
// Syntax: WF.MIN key
//
// Returns the smallest frequency present in the session.
func (app *application) handleMin(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "WF.MIN")
		return
	}

	analyzer, ok := app.store.Get(args[0])
	if !ok {
		app.emptyStateResponse(w)
		return
	}

	min, err := analyzer.MinFrequency()
	if err != nil {
		app.emptyStateResponse(w)
		return
	}

	_ = app.writeIntegerResponse(w, min)
}

// handleMax handles the WF.MAX command.
// Syntax: WF.MAX key
//
// Returns the largest frequency present in the session.
func (app *application) handleMax(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "WF.MAX")
		return
	}

	analyzer, ok := app.store.Get(args[0])
	if !ok {
		app.emptyStateResponse(w)
		return
	}

	max, err := analyzer.MaxFrequency()
	if err != nil {
		app.emptyStateResponse(w)
		return
	}

	_ = app.writeIntegerResponse(w, max)
}

// handleMedian handles the WF.MEDIAN command.
// Syntax: WF.MEDIAN key
//
// Returns the median of the session's per-word frequency values as a bulk
// string with one fractional digit. Each distinct word contributes one
// sample, so the result is a median over the vocabulary, not over the raw
// occurrence stream.
func (app *application) handleMedian(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "WF.MEDIAN")
		return
	}

	analyzer, ok := app.store.Get(args[0])
	if !ok {
		app.emptyStateResponse(w)
		return
	}

	median, err := analyzer.MedianFrequency()
	if err != nil {
		if errors.Is(err, wordfreq.ErrEmpty) {
			app.emptyStateResponse(w)
			return
		}
		_ = app.writeErrorResponse(w, "ERR "+err.Error())
		return
	}

	_ = app.writeFloatResponse(w, median)
}

// handleStats handles the WF.STATS command.
// Syntax: WF.STATS key
//
// Returns the statistics view as a bulk-string report in the INFO format:
// all word frequencies, the top-K list, and the min/median queries. The
// undefined queries render as "undefined" rather than a number when the
// session is empty.
func (app *application) handleStats(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "WF.STATS")
		return
	}

	var stats wordfreq.Statistics
	if analyzer, ok := app.store.Get(args[0]); ok {
		stats = analyzer.Statistics()
	}

	var b strings.Builder

	b.WriteString("# Statistics\r\n")
	b.WriteString(fmt.Sprintf("words_distinct:%d\r\n", len(stats.Frequencies)))
	if stats.HasData {
		b.WriteString(fmt.Sprintf("min_frequency:%d\r\n", stats.MinFrequency))
		b.WriteString("median_frequency:" + strconv.FormatFloat(stats.MedianFrequency, 'f', 1, 64) + "\r\n")
	} else {
		b.WriteString("min_frequency:undefined\r\n")
		b.WriteString("median_frequency:undefined\r\n")
	}

	b.WriteString("# TopK\r\n")
	for _, e := range stats.TopK {
		b.WriteString(fmt.Sprintf("%s:%d\r\n", e.Word, e.Count))
	}

	b.WriteString("# Frequencies\r\n")
	writeSortedFrequencies(&b, stats.Frequencies)

	_ = app.writeBulkStringResponse(w, b.String())
}

// handleDebug handles the WF.DEBUG command.
// Syntax: WF.DEBUG key
//
// Returns the debug view: the running occurrence tally, the raw top-K list,
// the raw histogram buckets (frequency:distinct-words, descending), and the
// full word -> count mapping. This intentionally exposes internal structure
// for diagnostics.
func (app *application) handleDebug(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "WF.DEBUG")
		return
	}

	var debug wordfreq.DebugState
	if analyzer, ok := app.store.Get(args[0]); ok {
		debug = analyzer.Debug()
	}

	var b strings.Builder

	b.WriteString("# Debug\r\n")
	b.WriteString(fmt.Sprintf("words_total:%d\r\n", debug.TotalWords))

	b.WriteString("# TopK\r\n")
	for _, e := range debug.TopK {
		b.WriteString(fmt.Sprintf("%s:%d\r\n", e.Word, e.Count))
	}

	b.WriteString("# Histogram\r\n")
	for _, bucket := range debug.Buckets {
		b.WriteString(fmt.Sprintf("%d:%d\r\n", bucket.Count, bucket.Words))
	}

	b.WriteString("# Frequencies\r\n")
	writeSortedFrequencies(&b, debug.Frequencies)

	_ = app.writeBulkStringResponse(w, b.String())
}

// handleClear handles the WF.CLEAR command.
// Syntax: WF.CLEAR key
//
// Resets the session to empty. The session itself survives (unlike DEL);
// clearing a missing session is a no-op.
func (app *application) handleClear(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "WF.CLEAR")
		return
	}

	if analyzer, ok := app.store.Get(args[0]); ok {
		analyzer.Clear()
		app.logger.Debug("session cleared", "key", args[0])
	}

	_ = app.writeSimpleStringResponse(w, "OK")
}

// writeSortedFrequencies appends word:count lines in alphabetical order so
// report output is deterministic.
func writeSortedFrequencies(b *strings.Builder, frequencies map[string]int) {
	words := make([]string, 0, len(frequencies))
	for word := range frequencies {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		b.WriteString(fmt.Sprintf("%s:%d\r\n", word, frequencies[word]))
	}
}
