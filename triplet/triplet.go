package triplet

import (
	"slices"

	"github.com/katalvlaran/twopointers/internal/intsum"
)

// ZeroSum returns every value-distinct triplet of values summing to zero.
//
// The input is not modified. Inputs shorter than three elements, or inputs
// without a solution, yield an empty (non-nil) slice.
//
// Example:
//
//	ZeroSum([]int{0, -1, 2, -3, 1}) // [(-3, 1, 2) (-1, 0, 1)]
func ZeroSum(values []int) []Triplet {
	return TargetSum(values, 0)
}

// TargetSum returns every value-distinct triplet of values summing to target,
// in discovery order (non-decreasing by the first, then the second value).
//
// Sums are compared exactly, so values anywhere in the int range are
// accepted: a pair sum past math.MaxInt is never mistaken for a small one.
func TargetSum(values []int, target int) []Triplet {
	triplets := make([]Triplet, 0)
	n := len(values)
	if n < 3 {
		return triplets
	}

	s := slices.Clone(values)
	slices.Sort(s)

	// 3·a > target ⇔ a > ⌊target/3⌋ for integer a; avoids overflowing 3·a.
	limit := floorDiv3(target)
	for i := 0; i < n-2; i++ {
		a := s[i]
		// b and c are ≥ a, so no remaining anchor can reach the target.
		if a > limit {
			break
		}
		// a was already explored as an anchor.
		if i > 0 && a == s[i-1] {
			continue
		}
		triplets = sweep(s, i, target, triplets)
	}

	return triplets
}

// sweep appends (s[i], b, c) for every distinct pair with s[i] + b + c ==
// target found in s[i+1:], which must be sorted ascending.
func sweep(s []int, i, target int, dst []Triplet) []Triplet {
	left, right := i+1, len(s)-1
	for left < right {
		switch intsum.Compare(target, s[i], s[left], s[right]) {
		case 0:
			dst = append(dst, Triplet{s[i], s[left], s[right]})
			left++
			// each distinct b contributes at most once per anchor
			for left < right && s[left] == s[left-1] {
				left++
			}
		case -1:
			left++
		default:
			right--
		}
	}

	return dst
}

// floorDiv3 returns ⌊x/3⌋ (Go's / truncates toward zero).
func floorDiv3(x int) int {
	q := x / 3
	if x%3 != 0 && x < 0 {
		q--
	}

	return q
}
