// store.go implements the sharded registry of named counting sessions.
//
// Each key names one independent wordfreq.Analyzer, so a single server can
// track any number of unrelated word populations ("logs", "search-terms",
// "fruit") without them contaminating each other's statistics.
//
// Sharding Strategy
// =================
//
// The registry partitions keys across 64 independent shards, each with its
// own RWMutex. Two clients creating or resolving different keys will
// typically hit different shards and proceed in parallel. Shard selection
// hashes the key with xxhash; with a power-of-two shard count the modulo
// reduces to a bitwise AND.
//
// The shard lock only guards the key -> analyzer map. Every Analyzer carries
// its own lock for the mutate-and-rebuild sequence, so a long batch add on
// one key never blocks lookups of other keys in the same shard beyond the
// map read itself.

package main

import (
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"

	"wordstats.lopezb.com/internal/wordfreq"
)

// shardCount determines how many independent maps the registry maintains.
// Sessions are far fewer than the keys of a general-purpose cache, so 64 is
// plenty to keep contention negligible. Must be a power of two.
const shardCount = 64

// shard is a single slice of the registry with its own lock.
type shard struct {
	mu       sync.RWMutex
	sessions map[string]*wordfreq.Analyzer
}

// Store is the sharded key -> Analyzer registry.
type Store struct {
	shards [shardCount]*shard

	// topK is the capacity handed to every new Analyzer.
	topK int
}

// NewStore creates an empty registry. Analyzers created through it track the
// top k words each; k <= 0 selects the wordfreq default.
func NewStore(k int) *Store {
	s := &Store{topK: k}
	for i := range s.shards {
		s.shards[i] = &shard{sessions: make(map[string]*wordfreq.Analyzer)}
	}
	return s
}

// shardFor selects the shard responsible for a key.
func (s *Store) shardFor(key string) *shard {
	return s.shards[xxhash.Sum64String(key)&(shardCount-1)]
}

// Get returns the analyzer for key, or (nil, false) if none exists.
func (s *Store) Get(key string) (*wordfreq.Analyzer, bool) {
	sh := s.shardFor(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	a, ok := sh.sessions[key]
	return a, ok
}

// GetOrCreate returns the analyzer for key, creating an empty one on first
// use. Creation is idempotent under concurrency: the double-checked write
// lock ensures exactly one analyzer ever exists per key.
func (s *Store) GetOrCreate(key string) *wordfreq.Analyzer {
	sh := s.shardFor(key)

	sh.mu.RLock()
	a, ok := sh.sessions[key]
	sh.mu.RUnlock()
	if ok {
		return a
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()

	// Re-check: another goroutine may have created it between the locks.
	if a, ok := sh.sessions[key]; ok {
		return a
	}

	a = wordfreq.New(s.topK)
	sh.sessions[key] = a
	return a
}

// Delete removes the analyzer for key, reporting whether it existed.
func (s *Store) Delete(key string) bool {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.sessions[key]; !ok {
		return false
	}
	delete(sh.sessions, key)
	return true
}

// Len returns the number of sessions across all shards.
func (s *Store) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.sessions)
		sh.mu.RUnlock()
	}
	return total
}

// Keys returns every session key, sorted, for the INFO report. Shards are
// locked one at a time, so the result is a per-shard-consistent snapshot.
func (s *Store) Keys() []string {
	var keys []string
	for _, sh := range s.shards {
		sh.mu.RLock()
		for key := range sh.sessions {
			keys = append(keys, key)
		}
		sh.mu.RUnlock()
	}
	sort.Strings(keys)
	return keys
}
