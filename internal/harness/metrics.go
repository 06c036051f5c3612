package harness

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metric names exported by the runner.
const (
	metricRuns     = "twopointers_strategy_runs_total"
	metricDuration = "twopointers_strategy_duration_seconds"
)

// metrics holds the runner's collectors.
type metrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricRuns,
			Help: "Strategy runs by problem, strategy and outcome (match or mismatch).",
		}, []string{"problem", "strategy", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricDuration,
			Help:    "Wall time of a single strategy run.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"problem", "strategy"}),
	}
	for _, c := range []prometheus.Collector{m.runs, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("harness: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *metrics) observe(p Problem, strategy string, match bool, d time.Duration) {
	outcome := "match"
	if !match {
		outcome = "mismatch"
	}
	m.runs.WithLabelValues(string(p), strategy, outcome).Inc()
	m.duration.WithLabelValues(string(p), strategy).Observe(d.Seconds())
}

// StrategyStats summarises the duration histogram of one strategy.
type StrategyStats struct {
	Problem  Problem
	Strategy string
	Runs     uint64
	Mean     time.Duration
}

// Summarize reads the duration histogram from g and returns one entry per
// (problem, strategy), sorted by problem then strategy.
func Summarize(g prometheus.Gatherer) ([]StrategyStats, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("harness: gather metrics: %w", err)
	}

	var stats []StrategyStats
	for _, mf := range families {
		if mf.GetName() != metricDuration || mf.GetType() != dto.MetricType_HISTOGRAM {
			continue
		}
		for _, m := range mf.GetMetric() {
			h := m.GetHistogram()
			st := StrategyStats{Runs: h.GetSampleCount()}
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "problem":
					st.Problem = Problem(lp.GetValue())
				case "strategy":
					st.Strategy = lp.GetValue()
				}
			}
			if st.Runs > 0 {
				st.Mean = time.Duration(h.GetSampleSum() / float64(st.Runs) * float64(time.Second))
			}
			stats = append(stats, st)
		}
	}
	slices.SortFunc(stats, func(a, b StrategyStats) int {
		if c := strings.Compare(string(a.Problem), string(b.Problem)); c != 0 {
			return c
		}
		return strings.Compare(a.Strategy, b.Strategy)
	})

	return stats, nil
}
