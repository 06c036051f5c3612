package twosum_test

import (
	"math"
	"slices"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twopointers/twosum"
)

// strategy adapts every single-answer function to one signature.
type strategy struct {
	name string
	fn   func([]int, int) (twosum.Pair, error)
}

var strategies = []strategy{
	{"TwoSum", func(n []int, t int) (twosum.Pair, error) { return twosum.TwoSum(n, t) }},
	{"BruteForce", twosum.BruteForce},
	{"Sorted", twosum.Sorted},
	{"Counter", twosum.Counter},
}

// TestStrategies_Scenarios runs every strategy over inputs with one answer.
func TestStrategies_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		nums   []int
		target int
		want   twosum.Pair
	}{
		{"classic", []int{2, 7, 11, 15}, 9, twosum.Pair{0, 1}},
		{"middle", []int{3, 2, 4}, 6, twosum.Pair{1, 2}},
		{"same value twice", []int{3, 3}, 6, twosum.Pair{0, 1}},
		{"negatives", []int{-3, 4, 3, 90}, 0, twosum.Pair{0, 2}},
		{"zero target", []int{0, 4, 3, 0}, 0, twosum.Pair{0, 3}},
		{"max values around", []int{2, math.MaxInt, 3, math.MaxInt}, 5, twosum.Pair{0, 2}},
		{"min and max", []int{1, math.MinInt, math.MaxInt}, -1, twosum.Pair{1, 2}},
	}
	for _, s := range strategies {
		for _, tc := range cases {
			t.Run(s.name+"/"+tc.name, func(t *testing.T) {
				got, err := s.fn(tc.nums, tc.target)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

// TestStrategies_NoSolution verifies ErrNoSolution, including the case where
// the only candidate would reuse one element.
func TestStrategies_NoSolution(t *testing.T) {
	inputs := []struct {
		nums   []int
		target int
	}{
		{nil, 0},
		{[]int{5}, 10},
		{[]int{3, 4}, 6},
		{[]int{1, 2, 3}, 100},
		{[]int{math.MinInt, math.MinInt + 5}, 5},
		{[]int{math.MaxInt, math.MaxInt}, -2},
	}
	for _, s := range strategies {
		for _, in := range inputs {
			_, err := s.fn(in.nums, in.target)
			assert.ErrorIs(t, err, twosum.ErrNoSolution, "%s(%v, %d)", s.name, in.nums, in.target)
		}
	}
}

// TestStrategies_Agree checks on random inputs that all strategies agree on
// whether a solution exists and that each answer is valid.
func TestStrategies_Agree(t *testing.T) {
	for round := 0; round < 200; round++ {
		nums := make([]int, randomdata.Number(0, 12))
		for i := range nums {
			nums[i] = randomdata.Number(-10, 11)
		}
		target := randomdata.Number(-15, 16)
		_, refErr := twosum.BruteForce(nums, target)

		for _, s := range strategies {
			got, err := s.fn(nums, target)
			assert.Equal(t, refErr == nil, err == nil, "%s(%v, %d)", s.name, nums, target)
			if err != nil {
				continue
			}
			assert.Less(t, got[0], got[1], "%s must return ascending indices", s.name)
			assert.Equal(t, target, nums[got[0]]+nums[got[1]], "%s(%v, %d)", s.name, nums, target)
		}
		assert.Equal(t, refErr == nil, len(twosum.AllPairs(nums, target)) > 0)
	}
}

// TestSorted_DoesNotMutateInput verifies Sorted works on its own records.
func TestSorted_DoesNotMutateInput(t *testing.T) {
	nums := []int{15, 11, 7, 2}
	before := slices.Clone(nums)
	got, err := twosum.Sorted(nums, 9)
	require.NoError(t, err)
	assert.Equal(t, twosum.Pair{2, 3}, got)
	assert.Equal(t, before, nums)
}

// TestAllPairs lists every index combination, duplicates included.
func TestAllPairs(t *testing.T) {
	got := twosum.AllPairs([]int{1, 3, 2, 2, 3}, 4)
	want := []twosum.Pair{{0, 1}, {2, 3}, {0, 4}}
	assert.Equal(t, want, got)

	assert.Empty(t, twosum.AllPairs([]int{1, 1}, 5))
}

// TestCounter_SelfPairNeedsTwo verifies a value pairs with itself only
// when it occurs at least twice.
func TestCounter_SelfPairNeedsTwo(t *testing.T) {
	_, err := twosum.Counter([]int{3, 1}, 6)
	assert.ErrorIs(t, err, twosum.ErrNoSolution)

	got, err := twosum.Counter([]int{1, 3, 5, 3}, 6)
	require.NoError(t, err)
	assert.Equal(t, twosum.Pair{0, 2}, got, "1+5 is tried before 3+3")

	got, err = twosum.Counter([]int{3, 0, 3, 3}, 6)
	require.NoError(t, err)
	assert.Equal(t, twosum.Pair{0, 2}, got)
}

// TestTwoSum_Trace checks the steps reported through WithTrace.
func TestTwoSum_Trace(t *testing.T) {
	var steps []twosum.Step
	got, err := twosum.TwoSum([]int{2, 7, 11, 15}, 18, twosum.WithTrace(func(s twosum.Step) {
		steps = append(steps, s)
	}))
	require.NoError(t, err)
	assert.Equal(t, twosum.Pair{1, 2}, got)

	want := []twosum.Step{
		{Index: 0, Value: 2, Complement: 16, Seen: 0},
		{Index: 1, Value: 7, Complement: 11, Seen: 1},
		{Index: 2, Value: 11, Complement: 7, Seen: 2, Found: true, Match: 1},
	}
	assert.Equal(t, want, steps)
}

// TestTwoSum_NilTraceIgnored verifies a nil hook is not installed.
func TestTwoSum_NilTraceIgnored(t *testing.T) {
	assert.NotPanics(t, func() {
		_, _ = twosum.TwoSum([]int{1, 2}, 3, twosum.WithTrace(nil))
	})
}

// TestTwoSum_UnreachableComplement checks elements whose complement lies
// outside the int range.
func TestTwoSum_UnreachableComplement(t *testing.T) {
	var steps []twosum.Step
	_, err := twosum.TwoSum([]int{math.MinInt, math.MinInt + 5}, 5, twosum.WithTrace(func(s twosum.Step) {
		steps = append(steps, s)
	}))
	require.ErrorIs(t, err, twosum.ErrNoSolution)
	require.Len(t, steps, 2)
	for _, s := range steps {
		assert.True(t, s.Unreachable)
		assert.Zero(t, s.Complement)
		assert.False(t, s.Found)
	}

	assert.Empty(t, twosum.AllPairs([]int{math.MaxInt, math.MaxInt, 3}, -2))
	assert.Equal(t, []twosum.Pair{{1, 2}}, twosum.AllPairs([]int{1, math.MinInt, math.MaxInt}, -1))
}
