// Package metrics exposes Prometheus instrumentation for the Case API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for case processing.
type Metrics struct {
	CasesTotal       *prometheus.CounterVec
	ArticlesAnalyzed prometheus.Counter
	PartialCases     prometheus.Counter
	CaseDuration     prometheus.Histogram
}

// New creates and registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CasesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kyclens",
			Name:      "cases_total",
			Help:      "Completed compliance cases by final decision.",
		}, []string{"decision"}),
		ArticlesAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kyclens",
			Name:      "articles_analyzed_total",
			Help:      "Media hits analyzed across all cases.",
		}),
		PartialCases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kyclens",
			Name:      "partial_cases_total",
			Help:      "Cases that hit the case deadline before all articles completed.",
		}),
		CaseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kyclens",
			Name:      "case_duration_seconds",
			Help:      "Wall-clock duration of case processing.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.CasesTotal, m.ArticlesAnalyzed, m.PartialCases, m.CaseDuration)
	return m
}
