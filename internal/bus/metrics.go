package bus

import "github.com/prometheus/client_golang/prometheus"

var (
	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fridged",
			Subsystem: "bus",
			Name:      "events_published_total",
			Help:      "Total events published, by kind",
		},
		[]string{"kind"},
	)

	handlerErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fridged",
			Subsystem: "bus",
			Name:      "handler_errors_total",
			Help:      "Total recovered handler panics, by event kind",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(eventsPublished, handlerErrors)
}
