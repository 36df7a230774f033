// Package metrics exposes Prometheus collectors for the HTTP layer and the ledger.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

var (
	// Registry holds the service's collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "puzzle_ledger",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "puzzle_ledger",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.002, 2, 12),
		},
		[]string{"method", "route"},
	)

	redemptions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "puzzle_ledger",
			Subsystem: "mining",
			Name:      "redemptions_total",
			Help:      "Puzzles redeemed.",
		},
	)

	minted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "puzzle_ledger",
			Subsystem: "mining",
			Name:      "minted_total",
			Help:      "Sum of mining rewards paid.",
		},
	)

	rateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "puzzle_ledger",
			Subsystem: "mining",
			Name:      "rate_limited_total",
			Help:      "Redemptions rejected by the rate limiter.",
		},
	)

	transfers = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "puzzle_ledger",
			Subsystem: "transfer",
			Name:      "transfers_total",
			Help:      "Committed transfers.",
		},
	)

	transferred = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "puzzle_ledger",
			Subsystem: "transfer",
			Name:      "amount_total",
			Help:      "Sum of transferred amounts.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		redemptions,
		minted,
		rateLimited,
		transfers,
		transferred,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler records request count and latency labelled by the chi route pattern.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func RecordRedemption(reward decimal.Decimal) {
	redemptions.Inc()
	minted.Add(reward.InexactFloat64())
}

func RecordRateLimited() {
	rateLimited.Inc()
}

func RecordTransfer(amount decimal.Decimal) {
	transfers.Inc()
	transferred.Add(amount.InexactFloat64())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
