package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the gallery.
type Metrics struct {
	PageRenders   prometheus.Counter
	RenderSeconds prometheus.Histogram
}

// NewMetrics creates the gallery metrics and registers them with reg.
// A per-server registry keeps repeated construction (tests, restarts in
// one process) from tripping duplicate registration.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	return &Metrics{
		PageRenders: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "htmlkit_gallery_page_renders_total",
			Help: "Total number of gallery page renders",
		}),
		RenderSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "htmlkit_gallery_render_duration_seconds",
			Help:    "Time spent composing and serializing the gallery page",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveRender records one completed page render.
func (m *Metrics) ObserveRender(d time.Duration) {
	m.PageRenders.Inc()
	m.RenderSeconds.Observe(d.Seconds())
}
