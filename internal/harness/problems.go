package harness

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"unicode"

	"go.uber.org/zap"

	"github.com/katalvlaran/twopointers/container"
	"github.com/katalvlaran/twopointers/internal/intsum"
	"github.com/katalvlaran/twopointers/pairsum"
	"github.com/katalvlaran/twopointers/palindrome"
	"github.com/katalvlaran/twopointers/triplet"
	"github.com/katalvlaran/twopointers/twosum"
)

// Canonical answers for problems whose strategies may legitimately return
// different pairs.
const (
	answerFound = "found"
	answerNone  = "none"
)

// env is what a strategy may use besides its scenario.
type env struct {
	logger *zap.Logger
	trace  bool
}

// strategy computes a canonical answer; answers are compared as strings.
type strategy struct {
	name    string
	run     func(s Scenario, e env) string
	applies func(s Scenario) bool // nil means always
}

type problemEntry struct {
	reference  strategy
	strategies []strategy
}

var registry = map[Problem]problemEntry{
	Triplets: {
		reference: strategy{name: "BruteForce", run: func(s Scenario, _ env) string {
			return fmt.Sprint(triplet.BruteForce(s.Values))
		}},
		strategies: []strategy{
			{name: "ZeroSum", run: func(s Scenario, _ env) string {
				return fmt.Sprint(triplet.ZeroSum(s.Values))
			}},
			{name: "TargetSum", run: func(s Scenario, _ env) string {
				return fmt.Sprint(triplet.TargetSum(s.Values, 0))
			}},
		},
	},
	PairSum: {
		reference: strategy{name: "twosum.BruteForce", run: func(s Scenario, _ env) string {
			p, err := twosum.BruteForce(s.Values, s.Target)
			return pairAnswer(s.Values, s.Target, p[0], p[1], err)
		}},
		strategies: []strategy{
			{name: "Sorted", run: func(s Scenario, _ env) string {
				nums := sortedCopy(s.Values)
				p, err := pairsum.Sorted(nums, s.Target)
				return pairAnswer(nums, s.Target, p[0]-1, p[1]-1, err)
			}},
			{name: "SortedValues", run: func(s Scenario, _ env) string {
				p, err := pairsum.SortedValues(sortedCopy(s.Values), s.Target)
				if err != nil {
					return pairAnswer(nil, 0, 0, 0, err)
				}
				return pairAnswer(p[:], s.Target, 0, 1, nil)
			}},
			{name: "SortedAll", run: func(s Scenario, _ env) string {
				nums := sortedCopy(s.Values)
				all := pairsum.SortedAll(nums, s.Target)
				if len(all) == 0 {
					return answerNone
				}
				for _, p := range all {
					if a := pairAnswer(nums, s.Target, p[0]-1, p[1]-1, nil); a != answerFound {
						return a
					}
				}
				return answerFound
			}},
			{name: "Unsorted", run: func(s Scenario, _ env) string {
				p, err := pairsum.Unsorted(s.Values, s.Target)
				return pairAnswer(s.Values, s.Target, p[0]-1, p[1]-1, err)
			}},
		},
	},
	TwoSum: {
		reference: strategy{name: "BruteForce", run: func(s Scenario, _ env) string {
			p, err := twosum.BruteForce(s.Values, s.Target)
			return pairAnswer(s.Values, s.Target, p[0], p[1], err)
		}},
		strategies: []strategy{
			{name: "TwoSum", run: func(s Scenario, e env) string {
				var opts []twosum.Option
				if e.trace {
					opts = append(opts, twosum.WithTrace(func(st twosum.Step) {
						e.logger.Debug("twosum step",
							zap.String("scenario", s.Name),
							zap.Int("index", st.Index),
							zap.Int("value", st.Value),
							zap.Int("complement", st.Complement),
							zap.Bool("unreachable", st.Unreachable),
							zap.Int("seen", st.Seen),
							zap.Bool("found", st.Found))
					}))
				}
				p, err := twosum.TwoSum(s.Values, s.Target, opts...)
				return pairAnswer(s.Values, s.Target, p[0], p[1], err)
			}},
			{name: "Sorted", run: func(s Scenario, _ env) string {
				p, err := twosum.Sorted(s.Values, s.Target)
				return pairAnswer(s.Values, s.Target, p[0], p[1], err)
			}},
			{name: "Counter", run: func(s Scenario, _ env) string {
				p, err := twosum.Counter(s.Values, s.Target)
				return pairAnswer(s.Values, s.Target, p[0], p[1], err)
			}},
			{name: "AllPairs", run: func(s Scenario, _ env) string {
				all := twosum.AllPairs(s.Values, s.Target)
				if len(all) == 0 {
					return answerNone
				}
				for _, p := range all {
					if a := pairAnswer(s.Values, s.Target, p[0], p[1], nil); a != answerFound {
						return a
					}
				}
				return answerFound
			}},
		},
	},
	Container: {
		reference: strategy{name: "BruteForce", run: func(s Scenario, _ env) string {
			return strconv.Itoa(container.BruteForce(s.Values))
		}},
		strategies: []strategy{
			{name: "MaxArea", run: func(s Scenario, e env) string {
				var opts []container.Option
				if e.trace {
					opts = append(opts, container.WithTrace(func(st container.Step) {
						e.logger.Debug("container step",
							zap.String("scenario", s.Name),
							zap.Int("left", st.Left),
							zap.Int("right", st.Right),
							zap.Int("area", st.Area),
							zap.Int("best", st.Best),
							zap.Bool("moved_left", st.MovedLeft))
					}))
				}
				return strconv.Itoa(container.MaxArea(s.Values, opts...))
			}},
			{name: "OptimizedBruteForce", run: func(s Scenario, _ env) string {
				return strconv.Itoa(container.OptimizedBruteForce(s.Values))
			}},
			{name: "Optimal", run: func(s Scenario, _ env) string {
				return strconv.Itoa(container.Optimal(s.Values).Area)
			}},
		},
	},
	Palindrome: {
		reference: strategy{name: "CleanReverse", run: func(s Scenario, _ env) string {
			return strconv.FormatBool(palindrome.CleanReverse(s.Text))
		}},
		strategies: []strategy{
			{name: "IsPalindrome", run: func(s Scenario, _ env) string {
				return strconv.FormatBool(palindrome.IsPalindrome(s.Text))
			}},
			{name: "Recursive", run: func(s Scenario, _ env) string {
				return strconv.FormatBool(palindrome.Recursive(s.Text))
			}},
			{
				name: "ASCII",
				run: func(s Scenario, _ env) string {
					return strconv.FormatBool(palindrome.ASCII(s.Text))
				},
				applies: func(s Scenario) bool { return isASCII(s.Text) },
			},
		},
	},
}

// pairAnswer maps a pair search outcome to answerFound or answerNone, or to a
// description of the defect when the returned indices do not sum to target.
func pairAnswer(nums []int, target, i, j int, err error) string {
	switch {
	case errors.Is(err, pairsum.ErrNoPair), errors.Is(err, twosum.ErrNoSolution):
		return answerNone
	case err != nil:
		return "error: " + err.Error()
	case i < 0 || j >= len(nums) || i >= j:
		return fmt.Sprintf("bad indices (%d, %d)", i, j)
	case intsum.Compare(target, nums[i], nums[j]) != 0:
		return fmt.Sprintf("wrong sum %d+%d != %d", nums[i], nums[j], target)
	}

	return answerFound
}

func sortedCopy(values []int) []int {
	s := slices.Clone(values)
	slices.Sort(s)

	return s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}

	return true
}
