package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "pityloot"
)

var (
	RecalculationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "recalculation", "duration_seconds"),
		Help:    "Duration of a recalculation pass in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"event"})
	IncompleteRequirements = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "recalculation", "incomplete_requirements"),
		Help: "Number of incomplete requirements found by the last pass, per requirement type",
	}, []string{"type"})
	BoostedItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "recalculation", "boosted_items"),
		Help: "Number of items with an age based multiplier in the last pass",
	})
	TrackerSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "tracker", "saves_total"),
		Help: "Number of tracker record writes",
	}, []string{"result"})
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "session", "active"),
		Help: "Number of captured sessions currently held",
	})
)
