// Package pairsum locates pairs of values that add up to a target.
//
// The Sorted* functions expect input sorted ascending and run a two-pointer
// sweep in O(n) time and O(1) memory: when the current sum is too small the
// left index moves right, when it is too large the right index moves left.
// Unsorted trades O(n) memory for a single pass with a hash map and accepts
// input in any order.
//
// Positions are 1-based, matching the usual statement of the problem.
//
// Errors:
//   - ErrNoPair if no two positions sum to the target.
package pairsum
