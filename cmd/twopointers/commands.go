package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/twopointers/container"
	"github.com/katalvlaran/twopointers/internal/config"
	"github.com/katalvlaran/twopointers/internal/harness"
	"github.com/katalvlaran/twopointers/pairsum"
	"github.com/katalvlaran/twopointers/palindrome"
	"github.com/katalvlaran/twopointers/triplet"
	"github.com/katalvlaran/twopointers/twosum"
)

// errUsage marks errors caused by bad command-line input.
var errUsage = errors.New("usage")

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
}

func (a *app) dispatch(cmd string, args []string) error {
	switch cmd {
	case "triplets":
		return a.triplets(args)
	case "pairsum":
		return a.pairsum(args)
	case "twosum":
		return a.twosum(args)
	case "container":
		return a.container(args)
	case "palindrome":
		return a.palindrome(args)
	case "run":
		return a.run(args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

// parse wraps flag errors so they map to the usage exit code.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}

	return nil
}

// parseInts parses a comma-separated list such as "-1, 0,2".
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: bad integer %q", errUsage, p)
		}
		values = append(values, v)
	}

	return values, nil
}

func (a *app) triplets(args []string) error {
	fs := newFlagSet("triplets")
	raw := fs.String("values", "", "comma-separated integers")
	target := fs.Int("target", 0, "triplet sum to look for")
	brute := fs.Bool("brute", false, "use the O(n³) reference (zero target only)")
	if err := parse(fs, args); err != nil {
		return err
	}
	values, err := parseInts(*raw)
	if err != nil {
		return err
	}

	var found []triplet.Triplet
	switch {
	case *brute && *target != 0:
		return fmt.Errorf("%w: -brute supports only -target 0", errUsage)
	case *brute:
		found = triplet.BruteForce(values)
	default:
		found = triplet.TargetSum(values, *target)
	}
	a.logger.Debug("triplets", zap.Ints("values", values), zap.Int("target", *target), zap.Int("found", len(found)))
	if len(found) == 0 {
		fmt.Fprintln(a.out, "no triplets")
		return nil
	}
	for _, t := range found {
		fmt.Fprintln(a.out, t)
	}

	return nil
}

func (a *app) pairsum(args []string) error {
	fs := newFlagSet("pairsum")
	raw := fs.String("values", "", "comma-separated integers, sorted unless -unsorted")
	target := fs.Int("target", 0, "pair sum to look for")
	all := fs.Bool("all", false, "list every value-distinct pair")
	unsorted := fs.Bool("unsorted", false, "input is unsorted; use the hash-map search")
	if err := parse(fs, args); err != nil {
		return err
	}
	nums, err := parseInts(*raw)
	if err != nil {
		return err
	}

	switch {
	case *unsorted:
		p, err := pairsum.Unsorted(nums, *target)
		return a.printPositions(p, err)
	case *all:
		pairs := pairsum.SortedAll(nums, *target)
		if len(pairs) == 0 {
			fmt.Fprintln(a.out, "no pair")
		}
		for _, p := range pairs {
			fmt.Fprintf(a.out, "positions %d and %d: %d + %d = %d\n", p[0], p[1], nums[p[0]-1], nums[p[1]-1], *target)
		}
		return nil
	default:
		p, err := pairsum.Sorted(nums, *target)
		return a.printPositions(p, err)
	}
}

func (a *app) printPositions(p pairsum.Pair, err error) error {
	if errors.Is(err, pairsum.ErrNoPair) {
		fmt.Fprintln(a.out, "no pair")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "positions %d and %d\n", p[0], p[1])

	return nil
}

func (a *app) twosum(args []string) error {
	fs := newFlagSet("twosum")
	raw := fs.String("values", "", "comma-separated integers")
	target := fs.Int("target", 0, "pair sum to look for")
	all := fs.Bool("all", false, "list every index pair")
	trace := fs.Bool("trace", false, "print every lookup")
	if err := parse(fs, args); err != nil {
		return err
	}
	nums, err := parseInts(*raw)
	if err != nil {
		return err
	}

	if *all {
		pairs := twosum.AllPairs(nums, *target)
		if len(pairs) == 0 {
			fmt.Fprintln(a.out, "no solution")
		}
		for _, p := range pairs {
			fmt.Fprintf(a.out, "indices %d and %d\n", p[0], p[1])
		}
		return nil
	}

	var opts []twosum.Option
	if *trace {
		opts = append(opts, twosum.WithTrace(func(s twosum.Step) {
			fmt.Fprintf(a.out, "step %d: value=%d complement=%d seen=%d", s.Index+1, s.Value, s.Complement, s.Seen)
			if s.Found {
				fmt.Fprintf(a.out, " -> found at index %d", s.Match)
			}
			fmt.Fprintln(a.out)
		}))
	}
	p, err := twosum.TwoSum(nums, *target, opts...)
	if errors.Is(err, twosum.ErrNoSolution) {
		fmt.Fprintln(a.out, "no solution")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "indices %d and %d\n", p[0], p[1])

	return nil
}

func (a *app) container(args []string) error {
	fs := newFlagSet("container")
	raw := fs.String("values", "", "comma-separated wall heights")
	trace := fs.Bool("trace", false, "print every sweep step")
	render := fs.Bool("render", false, "draw the optimal container")
	if err := parse(fs, args); err != nil {
		return err
	}
	height, err := parseInts(*raw)
	if err != nil {
		return err
	}
	if err := container.Validate(height); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var opts []container.Option
	if *trace {
		opts = append(opts, container.WithTrace(func(s container.Step) {
			moved := "right"
			if s.MovedLeft {
				moved = "left"
			}
			fmt.Fprintf(a.out, "left=%d right=%d width=%d height=%d area=%d best=%d move=%s\n",
				s.Left, s.Right, s.Width, s.Height, s.Area, s.Best, moved)
		}))
	}
	area := container.MaxArea(height, opts...)
	best := container.Optimal(height)
	fmt.Fprintf(a.out, "max area %d (walls %d and %d)\n", area, best.Left, best.Right)
	if *render {
		fmt.Fprint(a.out, container.Render(height))
	}

	return nil
}

func (a *app) palindrome(args []string) error {
	fs := newFlagSet("palindrome")
	text := fs.String("text", "", "phrase to check; remaining arguments are joined when empty")
	if err := parse(fs, args); err != nil {
		return err
	}
	s := *text
	if s == "" {
		s = strings.Join(fs.Args(), " ")
	}
	fmt.Fprintln(a.out, palindrome.IsPalindrome(s))

	return nil
}

func (a *app) run(args []string) error {
	fs := newFlagSet("run")
	scenarios := fs.String("scenarios", a.cfg.Harness.Scenarios, "YAML scenario file; random scenarios when empty")
	count := fs.Int("random", a.cfg.Harness.Random.Count, "number of random scenarios")
	trace := fs.Bool("trace", a.cfg.Harness.Trace, "log per-step traces at debug level")
	verbose := fs.Bool("v", false, "print every result")
	if err := parse(fs, args); err != nil {
		return err
	}

	var list []harness.Scenario
	if *scenarios != "" {
		loaded, err := harness.LoadScenarioFile(*scenarios)
		if err != nil {
			return err
		}
		list = loaded
	} else {
		rc := a.cfg.Harness.Random
		rc.Count = *count
		list = harness.RandomScenarios(rc)
	}

	runner, err := harness.NewRunner(a.logger, harness.WithTrace(*trace))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := runner.Run(ctx, list)
	if err != nil {
		return err
	}
	a.printReport(report, *verbose)
	a.printStats(runner.Gatherer())

	return report.Err()
}

// printStats prints per-strategy timings. A gather failure only costs the
// summary, so it is logged rather than returned.
func (a *app) printStats(g prometheus.Gatherer) {
	stats, err := harness.Summarize(g)
	if err != nil {
		a.logger.Warn("metrics summary unavailable", zap.Error(err))
		return
	}
	for _, st := range stats {
		fmt.Fprintf(a.out, "%-10s %-20s runs=%-4d mean=%v\n", st.Problem, st.Strategy, st.Runs, st.Mean)
	}
}

func (a *app) printReport(report *harness.Report, verbose bool) {
	fmt.Fprintf(a.out, "run %s: %d results, %d mismatches\n", report.RunID, len(report.Results), report.Mismatches)
	for _, r := range report.Results {
		if !verbose && r.Match {
			continue
		}
		status := "ok"
		if !r.Match {
			status = "MISMATCH"
		}
		fmt.Fprintf(a.out, "%-8s %-28s %-20s answer=%s expected=%s (%v)\n",
			status, r.Scenario, r.Strategy, r.Answer, r.Expected, r.Duration)
	}
}
