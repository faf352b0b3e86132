package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundvault_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fundvault_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundvault_auth_attempts_total",
			Help: "Total number of register, login and reset attempts by outcome",
		},
		[]string{"action", "outcome"},
	)

	TokensIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundvault_tokens_issued_total",
			Help: "Total number of bearer tokens issued",
		},
		[]string{"strategy"},
	)

	SavedFundMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundvault_saved_fund_mutations_total",
			Help: "Total number of saved-fund list mutations",
		},
		[]string{"operation"},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// RecordAuth counts an authentication related attempt.
func RecordAuth(action string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	AuthAttemptsTotal.WithLabelValues(action, outcome).Inc()
}

// Handler exposes the default registry in Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
