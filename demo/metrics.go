package demo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors a demonstration run reports to.
type Metrics struct {
	trials   *prometheus.CounterVec
	duration prometheus.Histogram
	elements prometheus.Counter
	depth    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		trials: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "treesort_trials_total",
			Help: "The total number of sort trials, by outcome",
		}, []string{"outcome"}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "treesort_trial_duration_seconds",
			Help:    "Time spent building and flattening the tree in a trial",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14), //nolint:mnd
		}),

		elements: factory.NewCounter(prometheus.CounterOpts{
			Name: "treesort_elements_sorted_total",
			Help: "The total number of elements sorted successfully",
		}),

		depth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "treesort_tree_depth",
			Help: "Depth of the tree built by the most recent trial",
		}),
	}
}

func (m *Metrics) observe(trial Trial) {
	if m == nil {
		return
	}

	m.duration.Observe(trial.Elapsed.Seconds())
	m.depth.Set(float64(trial.Stats.Depth))

	if trial.Err != nil {
		m.trials.WithLabelValues("failed").Inc()

		return
	}

	m.trials.WithLabelValues("ok").Inc()
	m.elements.Add(float64(len(trial.Output)))
}
