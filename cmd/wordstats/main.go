// wordstats is an interactive word-frequency console for a single counting
// session. It reads lines from stdin: a line of comma-separated words adds
// them to the session, and a handful of keywords query or manage it.
//
// Usage
// =====
//
//	wordstats [-k 5]
//
//	> apple, banana, apple, cherry
//	Added 4 word(s).
//	> statistics
//	...
//
// Commands
// ========
//
//	statistics  Show all word frequencies, the top-K list, the lowest
//	            frequency, and the median frequency.
//	debug       Show the internal state: occurrence tally, raw top-K list,
//	            histogram buckets, and the full mapping.
//	clear       Reset the session to empty.
//	help        Show the command summary.
//	quit        Exit.
//
// Any other non-empty line is treated as comma-separated words. Tokens are
// trimmed and lowercased; empty tokens between commas are dropped.
//
// The tokenizer and the report formatting live here, outside the counting
// core: they carry no algorithmic weight and other frontends (the TCP
// server) format the same snapshots differently.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"wordstats.lopezb.com/internal/wordfreq"
)

func main() {
	k := flag.Int("k", wordfreq.DefaultK, "Top-K list capacity")
	flag.Parse()

	fmt.Println("=== Word Frequency Analyzer ===")
	fmt.Println("Enter comma-separated words to add them.")
	fmt.Println("Type 'help' for commands, 'quit' to exit.")
	fmt.Println()

	runSession(os.Stdin, os.Stdout, wordfreq.New(*k))
}

// runSession drives one interactive session to completion. It is separated
// from main so tests can feed scripted input and capture the output.
func runSession(r io.Reader, w io.Writer, analyzer *wordfreq.Analyzer) {
	scanner := bufio.NewScanner(r)

	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "quit":
			fmt.Fprintln(w, "Goodbye!")
			return
		case "help":
			printHelp(w)
		case "clear":
			analyzer.Clear()
			fmt.Fprintln(w, "Session cleared.")
		case "debug":
			printDebug(w, analyzer.Debug())
		case "statistics":
			printStatistics(w, analyzer.Statistics())
		case "":
			fmt.Fprintln(w, "Please enter some words or a command.")
		default:
			added := analyzer.AddWords(strings.Split(line, ","))
			fmt.Fprintf(w, "Added %d word(s).\n", added)
		}
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Available commands:")
	fmt.Fprintln(w, "  <words>      Add comma-separated words to the session")
	fmt.Fprintln(w, "  statistics   Show word frequency statistics")
	fmt.Fprintln(w, "  debug        Show internal state")
	fmt.Fprintln(w, "  clear        Reset the session")
	fmt.Fprintln(w, "  help         Show this message")
	fmt.Fprintln(w, "  quit         Exit")
}

func printStatistics(w io.Writer, stats wordfreq.Statistics) {
	if !stats.HasData {
		fmt.Fprintln(w, "No words recorded. Add some words first.")
		return
	}

	fmt.Fprintln(w, "=== Word Frequency Statistics ===")

	fmt.Fprintln(w, "All word frequencies:")
	for _, word := range sortedWords(stats.Frequencies) {
		fmt.Fprintf(w, "  %s: %d\n", word, stats.Frequencies[word])
	}

	fmt.Fprintf(w, "Top %d most frequent words:\n", len(stats.TopK))
	for i, e := range stats.TopK {
		fmt.Fprintf(w, "  %d. %s: %d\n", i+1, e.Word, e.Count)
	}

	fmt.Fprintf(w, "Lowest frequency: %d\n", stats.MinFrequency)
	fmt.Fprintf(w, "Median frequency: %.1f\n", stats.MedianFrequency)
}

func printDebug(w io.Writer, debug wordfreq.DebugState) {
	fmt.Fprintln(w, "=== Internal State ===")
	fmt.Fprintf(w, "Total words added: %d\n", debug.TotalWords)

	fmt.Fprintln(w, "Top-K list:")
	for _, e := range debug.TopK {
		fmt.Fprintf(w, "  %s: %d\n", e.Word, e.Count)
	}

	fmt.Fprintln(w, "Histogram (frequency: distinct words):")
	for _, bucket := range debug.Buckets {
		fmt.Fprintf(w, "  %d: %d\n", bucket.Count, bucket.Words)
	}

	fmt.Fprintln(w, "All frequencies:")
	for _, word := range sortedWords(debug.Frequencies) {
		fmt.Fprintf(w, "  %s: %d\n", word, debug.Frequencies[word])
	}
}

func sortedWords(frequencies map[string]int) []string {
	words := make([]string, 0, len(frequencies))
	for word := range frequencies {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
