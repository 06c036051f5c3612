package twosum

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/twopointers/internal/intsum"
)

// TwoSum returns the indices of the first pair (by the later index) whose
// values sum to target. Earlier elements are remembered in a map from value
// to index, so each element only needs one lookup for its complement.
func TwoSum(nums []int, target int, opts ...Option) (Pair, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seen := make(map[int]int, len(nums))
	for i, v := range nums {
		want, ok := intsum.Sub(target, v)
		step := Step{Index: i, Value: v, Complement: want, Unreachable: !ok, Seen: len(seen)}
		if j, found := seen[want]; ok && found {
			step.Found, step.Match = true, j
			o.OnStep(step)

			return Pair{j, i}, nil
		}
		o.OnStep(step)
		seen[v] = i
	}

	return Pair{}, ErrNoSolution
}

// BruteForce checks every index pair (i, j), i < j, in order.
func BruteForce(nums []int, target int) (Pair, error) {
	for i := range nums {
		for j := i + 1; j < len(nums); j++ {
			if intsum.Compare(target, nums[i], nums[j]) == 0 {
				return Pair{i, j}, nil
			}
		}
	}

	return Pair{}, ErrNoSolution
}

// indexed is a value with its position in the original input.
type indexed struct {
	value, index int
}

// Sorted sorts (value, index) records by value and sweeps them with two
// pointers, returning the original indices in ascending order.
func Sorted(nums []int, target int) (Pair, error) {
	recs := make([]indexed, len(nums))
	for i, v := range nums {
		recs[i] = indexed{value: v, index: i}
	}
	slices.SortFunc(recs, func(a, b indexed) int {
		if c := cmp.Compare(a.value, b.value); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})

	left, right := 0, len(recs)-1
	for left < right {
		switch intsum.Compare(target, recs[left].value, recs[right].value) {
		case 0:
			return ascending(recs[left].index, recs[right].index), nil
		case -1:
			left++
		default:
			right--
		}
	}

	return Pair{}, ErrNoSolution
}

// AllPairs returns every index pair (i, j), i < j, whose values sum to
// target, ordered by j and then by i.
func AllPairs(nums []int, target int) []Pair {
	pairs := make([]Pair, 0)
	seen := make(map[int][]int, len(nums))
	for j, v := range nums {
		if want, ok := intsum.Sub(target, v); ok {
			for _, i := range seen[want] {
				pairs = append(pairs, Pair{i, j})
			}
		}
		seen[v] = append(seen[v], j)
	}

	return pairs
}

// Counter counts occurrences of each value and remembers the first two
// indices of each. A value may pair with itself only when it occurs at
// least twice. Candidates are tried in order of first occurrence.
func Counter(nums []int, target int) (Pair, error) {
	type occurrence struct {
		count         int
		first, second int
	}
	occ := make(map[int]*occurrence, len(nums))
	order := make([]int, 0, len(nums))
	for i, v := range nums {
		o, ok := occ[v]
		if !ok {
			occ[v] = &occurrence{count: 1, first: i}
			order = append(order, v)
			continue
		}
		if o.count == 1 {
			o.second = i
		}
		o.count++
	}

	for _, v := range order {
		want, ok := intsum.Sub(target, v)
		if !ok {
			continue
		}
		c, ok := occ[want]
		if !ok {
			continue
		}
		if want == v {
			if c.count >= 2 {
				return Pair{c.first, c.second}, nil
			}
			continue
		}

		return ascending(occ[v].first, c.first), nil
	}

	return Pair{}, ErrNoSolution
}

// ascending orders two indices.
func ascending(i, j int) Pair {
	if i > j {
		i, j = j, i
	}

	return Pair{i, j}
}
