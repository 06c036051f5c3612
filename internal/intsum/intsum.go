// Package intsum compares sums of ints exactly, without wrapping on
// overflow. The two-pointer sweeps use it so that values near math.MinInt
// or math.MaxInt still move the correct pointer.
package intsum

import (
	"cmp"
	"math/bits"
)

// wide is a 128-bit two's complement integer: hi·2⁶⁴ + lo.
type wide struct {
	hi int64
	lo uint64
}

func widen(v int) wide {
	w := wide{lo: uint64(int64(v))}
	if v < 0 {
		w.hi = -1
	}

	return w
}

func (w wide) add(v int) wide {
	x := widen(v)
	lo, carry := bits.Add64(w.lo, x.lo, 0)

	return wide{hi: w.hi + x.hi + int64(carry), lo: lo}
}

func (w wide) compare(u wide) int {
	if c := cmp.Compare(w.hi, u.hi); c != 0 {
		return c
	}

	return cmp.Compare(w.lo, u.lo)
}

// Compare returns -1, 0 or +1 as the exact sum of terms is less than, equal
// to, or greater than target.
func Compare(target int, terms ...int) int {
	var sum wide
	for _, v := range terms {
		sum = sum.add(v)
	}

	return sum.compare(widen(target))
}

// Sub returns a - b and whether the difference fits in an int.
func Sub(a, b int) (int, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}

	return d, true
}
