// Package metrics holds the Prometheus counters the service exports on
// /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application counters. A nil *Metrics is valid and
// records nothing, which keeps handler tests free of registry setup.
type Metrics struct {
	UsersRegistered         prometheus.Counter
	DonationsCreated        prometheus.Counter
	DonorsAssigned          prometheus.Counter
	AssignmentCompensations prometheus.Counter
	PaymentIntents          *prometheus.CounterVec
	FundingsRecorded        prometheus.Counter
	ContactMessages         prometheus.Counter
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		UsersRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "roktosheba_users_registered_total",
			Help: "Total number of users registered",
		}),
		DonationsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "roktosheba_donation_requests_created_total",
			Help: "Total number of donation requests created",
		}),
		DonorsAssigned: f.NewCounter(prometheus.CounterOpts{
			Name: "roktosheba_donors_assigned_total",
			Help: "Total number of donors assigned to donation requests",
		}),
		AssignmentCompensations: f.NewCounter(prometheus.CounterOpts{
			Name: "roktosheba_assignment_compensations_total",
			Help: "Donor assignments reverted because the assignment record could not be written",
		}),
		PaymentIntents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "roktosheba_payment_intents_total",
			Help: "Payment intents requested from the payment provider, by outcome",
		}, []string{"outcome"}),
		FundingsRecorded: f.NewCounter(prometheus.CounterOpts{
			Name: "roktosheba_fundings_recorded_total",
			Help: "Total number of funding entries recorded",
		}),
		ContactMessages: f.NewCounter(prometheus.CounterOpts{
			Name: "roktosheba_contact_messages_total",
			Help: "Total number of contact form submissions",
		}),
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func (m *Metrics) IncUsersRegistered() {
	if m != nil {
		m.UsersRegistered.Inc()
	}
}

func (m *Metrics) IncDonationsCreated() {
	if m != nil {
		m.DonationsCreated.Inc()
	}
}

func (m *Metrics) IncDonorsAssigned() {
	if m != nil {
		m.DonorsAssigned.Inc()
	}
}

func (m *Metrics) IncAssignmentCompensations() {
	if m != nil {
		m.AssignmentCompensations.Inc()
	}
}

// IncPaymentIntents counts a provider call; outcome is "ok" or "error".
func (m *Metrics) IncPaymentIntents(outcome string) {
	if m != nil {
		m.PaymentIntents.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncFundingsRecorded() {
	if m != nil {
		m.FundingsRecorded.Inc()
	}
}

func (m *Metrics) IncContactMessages() {
	if m != nil {
		m.ContactMessages.Inc()
	}
}
