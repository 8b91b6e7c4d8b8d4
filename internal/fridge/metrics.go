package fridge

import "github.com/prometheus/client_golang/prometheus"

var (
	placementsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fridged",
		Subsystem: "inventory",
		Name:      "placements_total",
		Help:      "Total successful item placements",
	})

	removalsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fridged",
		Subsystem: "inventory",
		Name:      "removals_total",
		Help:      "Total successful item removals",
	})

	persistErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fridged",
		Subsystem: "inventory",
		Name:      "persist_errors_total",
		Help:      "Total snapshot write failures",
	})

	itemsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fridged",
		Subsystem: "inventory",
		Name:      "items",
		Help:      "Items currently stored",
	})

	expiredGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fridged",
		Subsystem: "inventory",
		Name:      "expired_items",
		Help:      "Stored items past expiry, refreshed by the monitor loop",
	})
)

func init() {
	prometheus.MustRegister(placementsTotal, removalsTotal, persistErrorsTotal, itemsGauge, expiredGauge)
}
