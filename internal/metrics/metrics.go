package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPolled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sdlevents_events_polled_total",
		Help: "Total number of events returned by poll, labelled by category.",
	}, []string{"category"})

	EventsUnknown = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sdlevents_events_unknown_total",
		Help: "Total number of records that decoded to the unknown variant.",
	})

	EventsIgnored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sdlevents_events_ignored_total",
		Help: "Total number of records discarded by the ignore list.",
	})

	PushesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sdlevents_pushes_rejected_total",
		Help: "Total number of pushed events rejected by the source.",
	})

	PumpDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sdlevents_pump_duration_ms",
		Help:    "Time spent refreshing input state per pump call, in milliseconds.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50},
	})

	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sdlevents_queue_depth",
		Help: "Records waiting in the in-memory queue.",
	})

	QueueUtilization = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sdlevents_queue_utilization_ratio",
		Help: "Current event queue utilization (0–1).",
	})

	ConfigReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sdlevents_config_reloads_total",
		Help: "Configuration reloads, labelled by result.",
	}, []string{"result"})
)
