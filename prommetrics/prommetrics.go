// Package prommetrics exports blockvec allocation metrics to Prometheus.
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/blockvec"
)

// Collector implements blockvec.MetricsCollector.
type Collector struct {
	allocLatency *prometheus.HistogramVec
	allocs       *prometheus.CounterVec
	releases     prometheus.Counter
	liveBytes    prometheus.Gauge
}

var _ blockvec.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		allocLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blockvec_alloc_latency_seconds",
			Help:    "Latency of block allocations",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"status"}),
		allocs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blockvec_allocs_total",
			Help: "Total block allocations",
		}, []string{"status"}),
		releases: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blockvec_releases_total",
			Help: "Total block releases",
		}),
		liveBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blockvec_live_bytes",
			Help: "Bytes held by live blocks",
		}),
	}

	for _, m := range []prometheus.Collector{c.allocLatency, c.allocs, c.releases, c.liveBytes} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordAlloc implements blockvec.MetricsCollector.
func (c *Collector) RecordAlloc(bytes int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.allocLatency.WithLabelValues(status).Observe(d.Seconds())
	c.allocs.WithLabelValues(status).Inc()
	if err == nil {
		c.liveBytes.Add(float64(bytes))
	}
}

// RecordRelease implements blockvec.MetricsCollector.
func (c *Collector) RecordRelease(bytes int) {
	c.releases.Inc()
	c.liveBytes.Sub(float64(bytes))
}

// RegisterArena exports arena slot and byte gauges, read on every scrape.
func RegisterArena(reg prometheus.Registerer, a *blockvec.Arena) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	gauges := []struct {
		name, help string
		read       func(blockvec.ArenaStats) uint64
	}{
		{"blockvec_arena_slots", "Arena slots ever created", func(s blockvec.ArenaStats) uint64 { return s.Slots }},
		{"blockvec_arena_live_blocks", "Blocks currently allocated", func(s blockvec.ArenaStats) uint64 { return s.LiveBlocks }},
		{"blockvec_arena_live_bytes", "Bytes held by live blocks", func(s blockvec.ArenaStats) uint64 { return s.BytesLive }},
		{"blockvec_arena_cached_bytes", "Bytes cached for recycling", func(s blockvec.ArenaStats) uint64 { return s.BytesCached }},
	}

	for _, g := range gauges {
		read := g.read
		gf := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: g.name,
			Help: g.help,
		}, func() float64 { return float64(read(a.Stats())) })
		if err := reg.Register(gf); err != nil {
			return err
		}
	}

	if rc := a.MemoryController(); rc != nil {
		peak := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "blockvec_memory_peak_bytes",
			Help: "Peak bytes charged to the memory controller",
		}, func() float64 { return float64(rc.PeakMemoryUsage()) })
		if err := reg.Register(peak); err != nil {
			return err
		}
	}
	return nil
}
