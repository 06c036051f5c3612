// Package triplet finds every value-distinct triplet of integers whose sum
// equals a target, using a sorted two-pointer sweep with duplicate suppression.
//
// What
//
//   - ZeroSum(values) returns all triplets (a, b, c) with a + b + c == 0.
//   - TargetSum(values, target) generalizes the sweep to any target sum.
//   - BruteForce(values) is the O(n³) reference used to cross-check results.
//   - Each Triplet is ordered (a ≤ b ≤ c) and no two triplets are equal.
//   - A value may appear in a triplet only as many times as it occurs in the
//     input: (0, 0, 0) requires three zeros.
//
// Why
//
//	Sorting turns the cubic enumeration into a quadratic one. With the anchor a
//	fixed, the pair (b, c) is found by moving two indices inward from the ends
//	of the remaining range, and equal neighbours are skipped instead of being
//	tracked in a seen-set.
//
// Algorithm
//
//  1. Copy the input and sort the copy ascending.
//  2. For each anchor index i (a = s[i]):
//     stop once 3·a > target (for target 0: a > 0);
//     skip i when s[i] == s[i-1].
//  3. Sweep left = i+1, right = n-1 comparing a+s[left]+s[right] to target
//     exactly (no int wrap-around near math.MinInt or math.MaxInt):
//     on a hit emit (a, s[left], s[right]), advance left past equal values;
//     below target advance left; above target retreat right.
//  4. Triplets are returned in discovery order: by a, then by b.
//
// Determinism
//
//	The result depends only on the multiset of input values. Calling ZeroSum
//	twice on the same data yields identical slices.
//
// Ownership
//
//	The caller's slice is never mutated; the sort runs on a private copy, so
//	concurrent callers may share one input slice.
//
// Complexity
//
//   - Time:   O(n log n + n²)
//   - Memory: O(n) for the working copy, plus the result.
//
// Usage
//
//	for _, t := range triplet.ZeroSum([]int{-1, 0, 1, 2, -1, -4}) {
//		fmt.Println(t) // (-1, -1, 2) then (-1, 0, 1)
//	}
package triplet
