package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bundesrecht",
		Subsystem: "search",
		Name:      "calls_total",
		Help:      "External document search calls, by priority tier.",
	}, []string{"tier"})

	searchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bundesrecht",
		Subsystem: "search",
		Name:      "failures_total",
		Help:      "Failed external document search calls, by priority tier.",
	}, []string{"tier"})

	documentsFoundTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bundesrecht",
		Subsystem: "search",
		Name:      "documents_total",
		Help:      "Documents returned by external search calls before deduplication.",
	})

	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bundesrecht",
		Subsystem: "pipeline",
		Name:      "queries_total",
		Help:      "Completed pipeline runs, by terminal state.",
	}, []string{"state"})
)
