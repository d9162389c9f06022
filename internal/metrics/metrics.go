package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "safety_dashboard"

var (
	AlertsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_ingested_total",
		Help:      "Alerts accepted through the ingestion pipeline",
	}, []string{"severity", "source"})

	AlertsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_resolved_total",
		Help:      "Alerts marked safe",
	})

	AlertsEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_evicted_total",
		Help:      "Oldest alerts dropped because the store was full",
	})

	EventsBroadcast = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_broadcast_total",
		Help:      "Push-channel events fanned out to subscribers",
	}, []string{"event"})

	Subscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "subscribers_connected",
		Help:      "Currently connected push-channel subscribers",
	})

	UnauthorizedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unauthorized_requests_total",
		Help:      "Ingestion requests rejected by the API key guard",
	})
)
