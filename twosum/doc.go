// Package twosum returns the indices of two elements summing to a target,
// with several interchangeable strategies.
//
// What
//
//   - TwoSum:     one pass with a value→index map.          O(n) time, O(n) memory.
//   - BruteForce: every index pair in order.                O(n²) time, O(1) memory.
//   - Sorted:     sort (value, index) records, then sweep.  O(n log n), O(n) memory.
//   - Counter:    value frequencies plus first/second index. O(n) time, O(n) memory.
//   - AllPairs:   every index pair summing to the target.   O(n + k) for k pairs.
//
// Indices are 0-based and returned ascending. None of the functions mutate
// their input.
//
// Tracing
//
//	TwoSum accepts functional options. WithTrace registers a callback invoked
//	once per scanned element with the complement it looked for and whether
//	it was found, which lets callers print or log a step-by-step trace:
//
//		pair, err := twosum.TwoSum(nums, 9, twosum.WithTrace(func(s twosum.Step) {
//			log.Printf("i=%d v=%d want=%d found=%v", s.Index, s.Value, s.Complement, s.Found)
//		}))
//
// Errors
//
//   - ErrNoSolution if no two distinct indices sum to the target.
package twosum
