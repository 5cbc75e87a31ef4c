package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlp_classifications_total",
			Help: "Total number of ticket classifications by resulting labels",
		},
		[]string{"sentiment", "priority", "issue_type"},
	)

	ClassificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlp_classification_failures_total",
			Help: "Total number of failed classification attempts",
		},
		[]string{"backend"},
	)

	ClassificationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "nlp_classification_duration_seconds",
			Help: "Duration of ticket classification in seconds",
		},
		[]string{"backend"},
	)
)
