package harness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ErrMismatch is returned by Report.Err when a strategy disagreed with its
// problem's reference.
var ErrMismatch = errors.New("harness: strategy disagrees with reference")

// Result is the outcome of one strategy on one scenario.
type Result struct {
	Scenario string
	Problem  Problem
	Strategy string
	Answer   string
	Expected string // the reference strategy's answer
	Match    bool
	Duration time.Duration
}

// Report collects the results of one Run.
type Report struct {
	RunID      uuid.UUID
	Results    []Result
	Mismatches int
}

// Err returns nil when every strategy matched, ErrMismatch otherwise.
func (r *Report) Err() error {
	if r.Mismatches == 0 {
		return nil
	}

	return fmt.Errorf("%w: %d of %d runs", ErrMismatch, r.Mismatches, len(r.Results))
}

// Option configures a Runner.
type Option func(*Options)

// Options holds Runner parameters.
type Options struct {
	// Trace forwards per-step hooks of the traced strategies to the logger
	// at debug level.
	Trace bool

	// Registry receives the runner's metrics. A private registry is used
	// when nil.
	Registry *prometheus.Registry
}

// WithTrace enables step tracing.
func WithTrace(on bool) Option {
	return func(o *Options) { o.Trace = on }
}

// WithRegistry sets the registry for the runner's metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *Options) {
		if reg != nil {
			o.Registry = reg
		}
	}
}

// Runner executes scenarios. It is not safe for concurrent use.
type Runner struct {
	logger   *zap.Logger
	env      env
	registry *prometheus.Registry
	metrics  *metrics
}

// NewRunner returns a Runner logging to logger (zap.NewNop when nil).
func NewRunner(logger *zap.Logger, opts ...Option) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Registry == nil {
		o.Registry = prometheus.NewRegistry()
	}
	m, err := newMetrics(o.Registry)
	if err != nil {
		return nil, err
	}

	return &Runner{
		logger:   logger,
		env:      env{logger: logger, trace: o.Trace},
		registry: o.Registry,
		metrics:  m,
	}, nil
}

// Gatherer exposes the runner's metrics.
func (r *Runner) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Run executes every applicable strategy of each scenario and compares it
// with the problem's reference. Cancellation is checked between scenarios;
// on cancellation the partial report is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (*Report, error) {
	report := &Report{RunID: uuid.New()}
	log := r.logger.With(zap.String("run_id", report.RunID.String()))
	log.Info("run started", zap.Int("scenarios", len(scenarios)))

	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		entry, ok := registry[s.Problem]
		if !ok {
			return report, fmt.Errorf("%w: %q in scenario %s", ErrUnknownProblem, s.Problem, s.Name)
		}

		expected, _ := r.timed(s, entry.reference)
		for _, st := range entry.strategies {
			if st.applies != nil && !st.applies(s) {
				log.Debug("strategy skipped", zap.String("scenario", s.Name), zap.String("strategy", st.name))
				continue
			}
			answer, d := r.timed(s, st)
			res := Result{
				Scenario: s.Name,
				Problem:  s.Problem,
				Strategy: st.name,
				Answer:   answer,
				Expected: expected,
				Match:    answer == expected,
				Duration: d,
			}
			r.metrics.observe(s.Problem, st.name, res.Match, d)
			report.Results = append(report.Results, res)
			if !res.Match {
				report.Mismatches++
				log.Warn("strategy mismatch",
					zap.String("scenario", s.Name),
					zap.String("problem", string(s.Problem)),
					zap.String("strategy", st.name),
					zap.String("answer", answer),
					zap.String("expected", expected))
				continue
			}
			log.Debug("strategy matched",
				zap.String("scenario", s.Name),
				zap.String("strategy", st.name),
				zap.Duration("duration", d))
		}
	}
	log.Info("run finished", zap.Int("results", len(report.Results)), zap.Int("mismatches", report.Mismatches))

	return report, nil
}

func (r *Runner) timed(s Scenario, st strategy) (string, time.Duration) {
	start := time.Now()
	answer := st.run(s, r.env)

	return answer, time.Since(start)
}
