package pairsum

import "errors"

// ErrNoPair is returned when no two positions sum to the target.
var ErrNoPair = errors.New("pairsum: no pair sums to target")

// Pair holds either two 1-based positions (first < second) or two values,
// depending on the function that produced it.
type Pair [2]int
