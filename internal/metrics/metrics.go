// Package metrics declares the prometheus collectors of the deposit service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deposit_sessions_active",
		Help: "open deposit sessions",
	})
	PixCharges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deposit_pix_charges_total",
		Help: "pix charge generations by result",
	}, []string{"result"})
	PixStatusChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deposit_pix_status_checks_total",
		Help: "pix status checks by observed status",
	}, []string{"status"})
	CardCharges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deposit_card_charges_total",
		Help: "card charge submissions by result",
	}, []string{"result"})
	Outcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deposit_outcomes_total",
		Help: "journaled attempt status changes",
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(ActiveSessions, PixCharges, PixStatusChecks, CardCharges, Outcomes)
}
