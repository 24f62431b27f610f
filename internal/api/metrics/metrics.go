// Package metrics defines and registers all custom Prometheus metrics for
// the account system. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto and register with the default registry at package
// load; the /metrics route is wired in the router.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/userportal/account-system/internal/core/domain"
)

const namespace = "accounts"

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "created", "duplicate_username", "duplicate_email", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ProfileUpdatesTotal counts profile update attempts.
// Label:
//   - result: "ok" or "error"
var ProfileUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_updates_total",
		Help:      "Total number of profile update attempts, by result.",
	},
	[]string{"result"},
)

// ObserveRegistration increments RegistrationsTotal with the outcome label
// matching the given error.
func ObserveRegistration(err error) {
	switch {
	case err == nil:
		RegistrationsTotal.WithLabelValues("created").Inc()
	case errors.Is(err, domain.ErrDuplicateUsername):
		RegistrationsTotal.WithLabelValues("duplicate_username").Inc()
	case errors.Is(err, domain.ErrDuplicateEmail):
		RegistrationsTotal.WithLabelValues("duplicate_email").Inc()
	default:
		RegistrationsTotal.WithLabelValues("error").Inc()
	}
}
