package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textgraph_queries_total",
		Help: "Total API queries by operation and outcome",
	}, []string{"op", "outcome"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "textgraph_query_duration_seconds",
		Help:    "API query duration by operation",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
	}, []string{"op"})

	graphWords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "textgraph_graph_words",
		Help: "Number of words in the served graph",
	})

	graphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "textgraph_graph_edges",
		Help: "Number of distinct edges in the served graph",
	})

	graphSwaps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "textgraph_graph_swaps_total",
		Help: "Number of times the served graph was replaced",
	})
)

// outcome buckets a status code into a low-cardinality label.
func outcome(status int) string {
	switch {
	case status < 400:
		return "ok"
	case status == 404:
		return "not_found"
	case status < 500:
		return "bad_request"
	default:
		return "error"
	}
}

// metricsMiddleware records one counter increment and one latency sample per
// routed request. Unrouted paths are not recorded.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		op := c.FullPath()
		if op == "" || op == "/metrics" {
			return
		}
		queryTotal.WithLabelValues(op, outcome(c.Writer.Status())).Inc()
		queryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
