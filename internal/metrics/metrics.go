// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Draw results.
const (
	DrawServed    = "served"
	DrawExhausted = "exhausted"
)

// Validation kinds.
const (
	ValidationSingle = "single"
	ValidationList   = "list"
)

var (
	// Draws counts pool draws per mode and result.
	Draws = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "draws_total",
		Help:      "Question draws by mode and result.",
	}, []string{"mode", "result"})

	// Validations counts answer checks per kind and outcome.
	Validations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "validations_total",
		Help:      "Answer validations by kind and outcome.",
	}, []string{"kind", "result"})

	// ActiveSessions tracks live game sessions.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "trivia",
		Name:      "active_sessions",
		Help:      "Game sessions currently held in memory.",
	})
)

// Outcome maps a boolean check to a label value.
func Outcome(ok bool) string {
	if ok {
		return "match"
	}
	return "miss"
}
