// Package metrics defines and registers the custom Prometheus metrics of the
// staff API. It is the single source of truth for metric names, labels and
// help strings.
//
// The metrics are registered with the default Prometheus registry at package
// init, so /metrics exposes them as soon as the HTTP server starts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/practicum/employee-model/internal/core/domain"
)

const namespace = "staff"

// HiresRejectedTotal counts hire attempts refused at construction time.
// Label:
//   - reason: "invalid_age", "invalid_salary", "unknown_currency" or "other"
var HiresRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hires_rejected_total",
		Help:      "Total number of hire attempts rejected by validation.",
	},
	[]string{"reason"},
)

// PremiumsGrantedTotal counts premium payouts.
// Label:
//   - kind: "engineer" or "manager"
var PremiumsGrantedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "premiums_granted_total",
		Help:      "Total number of premiums granted, by staff kind.",
	},
	[]string{"kind"},
)

// FraudSuspicionsTotal counts manager salary changes flagged as suspicious.
var FraudSuspicionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fraud_suspicions_total",
		Help:      "Total number of manager salary raises above the fraud threshold.",
	},
)

// CurrencyChangesTotal counts currency change attempts.
// Label:
//   - result: "ok" or "rejected"
var CurrencyChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "currency_changes_total",
		Help:      "Total number of salary currency changes, by outcome.",
	},
	[]string{"result"},
)

// Recorder forwards service events to the Prometheus collectors above.
type Recorder struct{}

func NewRecorder() *Recorder { return &Recorder{} }

func (Recorder) HireRejected(reason string) {
	HiresRejectedTotal.WithLabelValues(reason).Inc()
}

func (Recorder) PremiumGranted(kind domain.Kind) {
	PremiumsGrantedTotal.WithLabelValues(string(kind)).Inc()
}

func (Recorder) FraudSuspected() {
	FraudSuspicionsTotal.Inc()
}

func (Recorder) CurrencyChanged(result string) {
	CurrencyChangesTotal.WithLabelValues(result).Inc()
}
