// Package twopointers is a collection of classic array and string problems,
// each solved with more than one strategy so the strategies can be compared
// and cross-checked.
//
// 🚀 What is inside?
//
//	triplet/    all value-distinct triplets summing to zero (sorted two-pointer sweep)
//	pairsum/    pair search on sorted input (two pointers) and unsorted input (hash map)
//	twosum/     two-sum by hash map, brute force, sorting, counting; step tracing
//	container/  container with most water: sweep, brute force, ASCII rendering
//	palindrome/ valid palindrome: Unicode two pointers, recursion, clean+reverse, ASCII
//
//	internal/harness runs every strategy against a reference on YAML or random scenarios
//	internal/intsum  exact comparison of int sums shared by the sweeps
//	cmd/twopointers  command-line front end
//
// ✨ Conventions
//
//   - Pure functions: no package state, no logging, inputs are never mutated.
//   - Deterministic results: the same input always yields the same output.
//   - Sentinel errors (ErrNoPair, ErrNoSolution, ...) instead of sentinel values.
//   - Functional options (WithTrace) to observe an algorithm step by step.
//
// Quick example:
//
//	triplet.ZeroSum([]int{-1, 0, 1, 2, -1, -4}) // [(-1, -1, 2) (-1, 0, 1)]
//
//	go get github.com/katalvlaran/twopointers
package twopointers
