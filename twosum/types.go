package twosum

import "errors"

// ErrNoSolution is returned when no two distinct indices sum to the target.
var ErrNoSolution = errors.New("twosum: no two elements sum to target")

// Pair holds two 0-based indices, Pair[0] < Pair[1].
type Pair [2]int

// Step describes one element scanned by TwoSum.
type Step struct {
	// Index and Value of the element being scanned.
	Index int
	Value int

	// Complement is target - Value, the value looked up among earlier elements.
	Complement int

	// Unreachable reports that target - Value lies outside the int range. No
	// element can complete the pair, Complement is 0 and nothing is looked up.
	Unreachable bool

	// Seen is the number of distinct values recorded before this step.
	Seen int

	// Found reports whether Complement had been seen; Match is its index.
	Found bool
	Match int
}

// Option configures TwoSum via functional arguments.
type Option func(*Options)

// Options holds the parameters for TwoSum.
type Options struct {
	// OnStep is called for each scanned element. Never nil after DefaultOptions.
	OnStep func(Step)
}

// DefaultOptions returns Options with a no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		OnStep: func(Step) {},
	}
}

// WithTrace registers fn to observe every scanned element.
// A nil fn keeps the no-op hook.
func WithTrace(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
