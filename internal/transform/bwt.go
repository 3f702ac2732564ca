package transform

import "sort"

// BWT returns the Burrows-Wheeler Transform of s: the last byte of each of
// s's cyclic rotations, taken in byte-wise sorted order of the rotations.
//
// No sentinel is added, so the transform can't be inverted. It's only used
// because it groups repeated symbols together, which helps the compressors.
//
// Rotations are ranked by prefix doubling: after the round for k, the rank of a
// rotation orders it by its first 2k bytes. Rotations that tie all the way to n
// bytes are identical and so end with the same byte.
func BWT(s []byte) []byte {
	n := len(s)
	out := make([]byte, n)
	if n == 0 {
		return out
	}

	rotations := make([]int, n) // start index of each rotation, in sorted order
	rank := make([]int, n)
	next := make([]int, n)
	for i := range s {
		rotations[i] = i
		rank[i] = int(s[i])
	}

	for k := 1; ; k <<= 1 {
		less := func(i, j int) bool {
			if rank[i] != rank[j] {
				return rank[i] < rank[j]
			}
			return rank[(i+k)%n] < rank[(j+k)%n]
		}
		sort.Slice(rotations, func(a, b int) bool { return less(rotations[a], rotations[b]) })

		next[rotations[0]] = 0
		for j := 1; j < n; j++ {
			next[rotations[j]] = next[rotations[j-1]]
			if less(rotations[j-1], rotations[j]) {
				next[rotations[j]]++
			}
		}
		copy(rank, next)

		if rank[rotations[n-1]] == n-1 || 2*k >= n {
			break
		}
	}

	for j, start := range rotations {
		out[j] = s[(start+n-1)%n]
	}
	return out
}
