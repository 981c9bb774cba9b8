// Package metrics provides Prometheus instrumentation for the matching engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Match attempt outcomes.
const (
	OutcomeMatched    = "matched"
	OutcomeNoMatch    = "no_match"
	OutcomeReadError  = "read_error"
	OutcomeWriteError = "write_error"
	OutcomeInternal   = "internal_error"
	OutcomeDuplicate  = "duplicate"
)

var (
	// MatchAttemptsTotal counts matching attempts, partitioned by outcome.
	MatchAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sme_match_attempts_total",
		Help: "Total matching attempts by outcome",
	}, []string{"outcome"})

	// MatchDuration tracks end-to-end matching attempt duration.
	MatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sme_match_duration_seconds",
		Help:    "Matching attempt duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// CandidatesScored counts solver candidates evaluated across attempts.
	CandidatesScored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sme_candidates_scored_total",
		Help: "Solver candidates evaluated for eligibility and score",
	})

	// AssignRetriesTotal counts assignSolver submissions beyond the first
	// attempt of a matching run.
	AssignRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sme_assign_retries_total",
		Help: "assignSolver attempts beyond the first",
	})

	// PaymentEventsTotal counts payment-creation notifications received.
	PaymentEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sme_payment_events_total",
		Help: "PaymentCreated notifications received by the watcher",
	})

	// InFlightMatches tracks currently running matching attempts.
	InFlightMatches = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sme_in_flight_matches",
		Help: "Matching attempts currently in flight",
	})

	// HTTPRequestsTotal counts operational API requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sme_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sme_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// ObserveHTTP records one operational API request.
func ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
