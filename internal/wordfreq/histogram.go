package wordfreq

import "sort"

// Bucket says that Words distinct words currently have exactly frequency
// Count. Words >= 1 for every present bucket.
type Bucket struct {
	Count int // the frequency value
	Words int // how many distinct words have it
}

// Histogram maps each frequency value present in the table to the number of
// distinct words carrying it, kept ordered by frequency descending. Because
// the ordering is maintained on every rebuild, the minimum frequency is
// always the last bucket and the maximum the first; neither query scans.
//
// Like the top list, the histogram is derived state rebuilt wholesale after
// each batch add.
type Histogram struct {
	buckets []Bucket
}

// NewHistogram creates an empty histogram.
func NewHistogram() *Histogram {
	return &Histogram{}
}

// Rebuild recomputes the buckets from the table. The frequencies present
// afterwards are exactly the set of distinct count values in the table.
func (h *Histogram) Rebuild(table *FrequencyTable) {
	byCount := make(map[int]int)
	for _, count := range table.Entries() {
		byCount[count]++
	}

	buckets := make([]Bucket, 0, len(byCount))
	for count, words := range byCount {
		buckets = append(buckets, Bucket{Count: count, Words: words})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	h.buckets = buckets
}

// Min returns the smallest frequency present, reading the tail bucket in
// O(1). It returns ErrEmpty when the table had no words at the last rebuild.
func (h *Histogram) Min() (int, error) {
	if len(h.buckets) == 0 {
		return 0, ErrEmpty
	}
	return h.buckets[len(h.buckets)-1].Count, nil
}

// Max returns the largest frequency present, reading the head bucket in
// O(1). It returns ErrEmpty when the table had no words at the last rebuild.
func (h *Histogram) Max() (int, error) {
	if len(h.buckets) == 0 {
		return 0, ErrEmpty
	}
	return h.buckets[0].Count, nil
}

// Buckets returns a copy of the buckets, ordered by frequency descending.
func (h *Histogram) Buckets() []Bucket {
	result := make([]Bucket, len(h.buckets))
	copy(result, h.buckets)
	return result
}

// Clear discards all buckets.
func (h *Histogram) Clear() {
	h.buckets = nil
}
