// Package metrics defines and registers all custom Prometheus metrics for the
// booking authentication API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking_auth"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "rejected" (bad credentials), or "error" (store/hash failure)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "success", "duplicate", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts session-middleware decisions.
// Label:
//   - result: "valid", "invalid" (bad signature or expired), or "missing" (no cookie)
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of session token validations, by result.",
	},
	[]string{"result"},
)

// LoginDuration measures end-to-end login latency. The bcrypt comparison
// dominates, so the buckets skew higher than the default HTTP set.
var LoginDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login processing including password verification.",
		Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5},
	},
)
