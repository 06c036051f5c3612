package triplet

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/twopointers/internal/intsum"
)

// Triplet is an ordered triple of values (a ≤ b ≤ c) taken from three
// distinct positions of the input.
type Triplet [3]int

// Sum returns a + b + c. It wraps like any int addition when the values
// are near the ends of the int range; use SumsTo to test a sum exactly.
func (t Triplet) Sum() int {
	return t[0] + t[1] + t[2]
}

// SumsTo reports whether a + b + c equals target without overflow.
func (t Triplet) SumsTo(target int) bool {
	return intsum.Compare(target, t[0], t[1], t[2]) == 0
}

// Compare orders triplets lexicographically. It returns -1, 0 or +1.
func (t Triplet) Compare(u Triplet) int {
	for k := range t {
		if c := cmp.Compare(t[k], u[k]); c != 0 {
			return c
		}
	}

	return 0
}

// String renders the triplet as "(a, b, c)".
func (t Triplet) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t[0], t[1], t[2])
}

// ordered returns the triple with its values sorted ascending.
func ordered(a, b, c int) Triplet {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return Triplet{a, b, c}
}
