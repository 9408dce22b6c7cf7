// Package kmer implements the pure solution computation for challenge
// strings: counting the occurrences of every substring of a fixed
// length k ("k-mer") under a sliding window.
package kmer

// Count slides a window of length k across s one byte at a time and
// returns the number of occurrences of each distinct k-mer. Keys are
// case-sensitive. If len(s) < k or k <= 0, the result is an empty map,
// not an error. The function is pure: the same input always yields the
// same mapping.
func Count(s string, k int) map[string]uint64 {
	counts := make(map[string]uint64)

	if k <= 0 {
		return counts
	}

	for i := 0; i+k <= len(s); i++ {
		counts[s[i:i+k]]++
	}

	return counts
}

// Equal reports whether two k-mer count mappings are exactly equal:
// the same set of keys with the same count for each key.
func Equal(a, b map[string]uint64) bool {
	if len(a) != len(b) {
		return false
	}

	for key, count := range a {
		if other, ok := b[key]; !ok || other != count {
			return false
		}
	}

	return true
}
