package pairsum

import "github.com/katalvlaran/twopointers/internal/intsum"

// Sorted returns the 1-based positions of the first pair found by the inward
// sweep whose values sum to target. nums must be sorted ascending.
func Sorted(nums []int, target int) (Pair, error) {
	left, right, ok := find(nums, target)
	if !ok {
		return Pair{}, ErrNoPair
	}

	return Pair{left + 1, right + 1}, nil
}

// SortedValues is Sorted returning the two values instead of positions.
func SortedValues(nums []int, target int) (Pair, error) {
	left, right, ok := find(nums, target)
	if !ok {
		return Pair{}, ErrNoPair
	}

	return Pair{nums[left], nums[right]}, nil
}

// SortedAll returns the 1-based positions of every value-distinct pair summing
// to target, outermost first. After a hit both indices move inward past any
// run of equal values, so each value pair is reported once.
// nums must be sorted ascending.
func SortedAll(nums []int, target int) []Pair {
	pairs := make([]Pair, 0)
	left, right := 0, len(nums)-1
	for left < right {
		switch intsum.Compare(target, nums[left], nums[right]) {
		case 0:
			pairs = append(pairs, Pair{left + 1, right + 1})
			left++
			right--
			for left < right && nums[left] == nums[left-1] {
				left++
			}
			for left < right && nums[right] == nums[right+1] {
				right--
			}
		case -1:
			left++
		default:
			right--
		}
	}

	return pairs
}

// Unsorted returns the 1-based positions of the first pair summing to target
// in input order, using a map from value to its latest position. An element
// whose complement target - v lies outside the int range cannot pair.
func Unsorted(nums []int, target int) (Pair, error) {
	seen := make(map[int]int, len(nums))
	for i, v := range nums {
		want, ok := intsum.Sub(target, v)
		if !ok {
			seen[v] = i
			continue
		}
		if j, ok := seen[want]; ok {
			return Pair{j + 1, i + 1}, nil
		}
		seen[v] = i
	}

	return Pair{}, ErrNoPair
}

// find runs the two-pointer sweep and returns 0-based indices. Pair sums are
// compared exactly, so they never wrap past math.MaxInt or math.MinInt.
func find(nums []int, target int) (left, right int, ok bool) {
	left, right = 0, len(nums)-1
	for left < right {
		switch intsum.Compare(target, nums[left], nums[right]) {
		case 0:
			return left, right, true
		case -1:
			left++
		default:
			right--
		}
	}

	return 0, 0, false
}
