package triplet

import (
	"slices"

	"github.com/katalvlaran/twopointers/internal/intsum"
)

// BruteForce enumerates every index triple i < j < k and keeps the
// value-distinct triplets summing to zero, sorted lexicographically.
//
// It exists as a reference for ZeroSum: both return the same triplets, and
// for ZeroSum the discovery order already matches this lexicographic order.
//
// Complexity: O(n³) time, O(r) memory for r distinct triplets.
func BruteForce(values []int) []Triplet {
	seen := make(map[Triplet]struct{})
	triplets := make([]Triplet, 0)
	n := len(values)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if intsum.Compare(0, values[i], values[j], values[k]) != 0 {
					continue
				}
				t := ordered(values[i], values[j], values[k])
				if _, dup := seen[t]; dup {
					continue
				}
				seen[t] = struct{}{}
				triplets = append(triplets, t)
			}
		}
	}
	slices.SortFunc(triplets, Triplet.Compare)

	return triplets
}
