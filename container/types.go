package container

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeHeight indicates a wall with height below zero.
	ErrNegativeHeight = errors.New("container: negative wall height")

	// ErrAreaOverflow indicates a wall tall enough that width · height may
	// not fit in an int.
	ErrAreaOverflow = errors.New("container: area overflows int")
)

// Container identifies two walls by index and the water area between them.
type Container struct {
	Left, Right int
	Area        int
}

// Step describes one iteration of the sweep.
type Step struct {
	Left, Right int
	Width       int
	Height      int // min of the two walls
	Area        int
	Best        int  // best area including this step
	Improved    bool // Area became the new Best
	MovedLeft   bool // the left wall moves next; otherwise the right one does
}

// Option configures MaxArea.
type Option func(*Options)

// Options holds the parameters for MaxArea.
type Options struct {
	// OnStep is called once per sweep iteration. Never nil after DefaultOptions.
	OnStep func(Step)
}

// DefaultOptions returns Options with a no-op OnStep hook.
func DefaultOptions() Options {
	return Options{OnStep: func(Step) {}}
}

// WithTrace registers fn to observe every sweep iteration.
func WithTrace(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Validate returns ErrNegativeHeight or ErrAreaOverflow, wrapped with the
// offending index, for the first invalid wall. With n walls every height
// must be at most math.MaxInt / (n-1), so no area can overflow.
func Validate(height []int) error {
	limit := math.MaxInt
	if n := len(height); n > 1 {
		limit /= n - 1
	}
	for i, h := range height {
		if h < 0 {
			return fmt.Errorf("%w: height[%d] = %d", ErrNegativeHeight, i, h)
		}
		if h > limit {
			return fmt.Errorf("%w: height[%d] = %d exceeds %d for %d walls", ErrAreaOverflow, i, h, limit, len(height))
		}
	}

	return nil
}
