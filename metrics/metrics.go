// Package metrics exports Prometheus instrumentation for the Markov
// cache and decision layer, grounded on the same counter/gauge adapter
// pattern the teacher's shardcache-style metrics package uses.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Adapter wraps the engine's Prometheus metrics. Safe for concurrent use;
// all Prometheus metric types are goroutine-safe.
type Adapter struct {
	cacheBuilds    *prometheus.CounterVec
	cacheBuildTime *prometheus.HistogramVec
	decisionCalls  *prometheus.CounterVec
	decisionErrors *prometheus.CounterVec
	decisionTime   *prometheus.HistogramVec
}

// New constructs a metrics adapter and registers its collectors with reg.
// A nil reg registers against prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		cacheBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "markov_cache_builds_total",
			Help:        "Stationary-distribution solves performed, by jail policy",
			ConstLabels: constLabels,
		}, []string{"policy"}),
		cacheBuildTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "markov_cache_build_seconds",
			Help:        "Wall time of each stationary-distribution solve",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"policy"}),
		decisionCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "decision_calls_total",
			Help:        "Decision procedure invocations, by procedure",
			ConstLabels: constLabels,
		}, []string{"procedure"}),
		decisionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "decision_errors_total",
			Help:        "Decision procedure invocations that returned an error, by procedure and kind",
			ConstLabels: constLabels,
		}, []string{"procedure", "kind"}),
		decisionTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "decision_seconds",
			Help:        "Wall time of each decision procedure call",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"procedure"}),
	}
	reg.MustRegister(a.cacheBuilds, a.cacheBuildTime, a.decisionCalls, a.decisionErrors, a.decisionTime)
	return a
}

// ObserveCacheBuild records one Markov stationary-distribution solve.
func (a *Adapter) ObserveCacheBuild(policy string, d time.Duration) {
	a.cacheBuilds.WithLabelValues(policy).Inc()
	a.cacheBuildTime.WithLabelValues(policy).Observe(d.Seconds())
}

// ObserveDecision records one decision procedure call, succeeded or not.
func (a *Adapter) ObserveDecision(procedure string, d time.Duration, errKind string) {
	a.decisionCalls.WithLabelValues(procedure).Inc()
	a.decisionTime.WithLabelValues(procedure).Observe(d.Seconds())
	if errKind != "" {
		a.decisionErrors.WithLabelValues(procedure, errKind).Inc()
	}
}
