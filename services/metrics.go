package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Fetch and submission outcomes used as metric labels
const (
	OutcomeSuccess     = "success"
	OutcomeNetwork     = "network_error"
	OutcomeApplication = "application_error"
	OutcomeCanceled    = "canceled"
	OutcomeDuplicate   = "duplicate"
)

// LandingMetrics counts backend fetches and contact submissions
type LandingMetrics struct {
	fetches     *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

// NewLandingMetrics creates the collectors and registers them on reg
func NewLandingMetrics(reg prometheus.Registerer) *LandingMetrics {
	m := &LandingMetrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nebula",
			Name:      "section_fetches_total",
			Help:      "Section fetches by section and outcome.",
		}, []string{"section", "outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nebula",
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.fetches, m.submissions)
	return m
}

// Metrics is the process wide instance, registered on the default registry
var Metrics = NewLandingMetrics(prometheus.DefaultRegisterer)

// ObserveFetch records the outcome of one section mount
func (m *LandingMetrics) ObserveFetch(section string, err error) {
	m.fetches.WithLabelValues(section, Outcome(err)).Inc()
}

// ObserveSubmission records the outcome of one contact submission
func (m *LandingMetrics) ObserveSubmission(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

// Outcome classifies an error returned by the backend client
func Outcome(err error) string {
	var appErr *ApplicationError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	case errors.As(err, &appErr):
		return OutcomeApplication
	default:
		return OutcomeNetwork
	}
}
