package wordfreq

import "sort"

// Median returns the textbook median of the given frequency values: sort
// ascending, then take the single central value for odd n or the arithmetic
// mean of the two central values for even n. It returns ErrEmpty for an
// empty input.
//
// The input slice is not modified; the sort happens on a copy.
func Median(values []int) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmpty
	}

	sorted := make([]int, n)
	copy(sorted, values)
	sort.Ints(sorted)

	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2, nil
	}
	return float64(sorted[n/2]), nil
}
