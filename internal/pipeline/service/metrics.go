package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultDAG    = "dag"
	resultCyclic = "cyclic"
	resultError  = "error"
)

var (
	// parseTotal counts parse calls by outcome
	parseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pipeline_parse_total",
		Help: "Total pipeline parse requests by result",
	}, []string{"result"})

	parseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pipeline_parse_duration_seconds",
		Help:    "Graph build plus cycle detection time in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
	})

	graphNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pipeline_graph_nodes",
		Help:    "Materialized node count per parsed pipeline",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	graphEdges = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pipeline_graph_edges",
		Help:    "Edge count per parsed pipeline",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
)
