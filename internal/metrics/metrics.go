// Package metrics exports shortest-path engine events as Prometheus metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements bellmanford.Observer.
type Collector struct {
	// CacheLookups counts queries by outcome (hit or miss).
	CacheLookups *prometheus.CounterVec

	// NegativeCycles counts queries that ended in a negative cycle, by source.
	NegativeCycles *prometheus.CounterVec

	// RelaxSeconds observes the wall time of each full relaxation.
	RelaxSeconds prometheus.Histogram

	// CachedSources tracks how many source rows are currently cached.
	CachedSources prometheus.Gauge
}

// New creates the collector and registers it with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roadpath_cache_lookups_total",
				Help: "Shortest-path queries by cache outcome",
			},
			[]string{"outcome"},
		),
		NegativeCycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roadpath_negative_cycles_total",
				Help: "Queries rejected because a negative cycle is reachable from the source",
			},
			[]string{"source"},
		),
		RelaxSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "roadpath_relax_seconds",
				Help:    "Wall time of one Bellman-Ford relaxation",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
		CachedSources: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "roadpath_cached_sources",
				Help: "Source vertices with a cached distance vector",
			},
		),
	}
	reg.MustRegister(c.CacheLookups, c.NegativeCycles, c.RelaxSeconds, c.CachedSources)

	return c
}

// OnCacheHit counts a hit.
func (c *Collector) OnCacheHit(int) {
	c.CacheLookups.WithLabelValues("hit").Inc()
}

// OnCacheMiss counts a miss.
func (c *Collector) OnCacheMiss(int) {
	c.CacheLookups.WithLabelValues("miss").Inc()
}

// OnRelaxed records the relaxation time; each successful relaxation caches
// exactly one new row.
func (c *Collector) OnRelaxed(_ int, elapsed time.Duration) {
	c.RelaxSeconds.Observe(elapsed.Seconds())
	c.CachedSources.Inc()
}

// OnNegativeCycle counts a rejected query.
func (c *Collector) OnNegativeCycle(source int) {
	c.NegativeCycles.WithLabelValues(strconv.Itoa(source)).Inc()
}

// OnReset zeroes the cached-sources gauge after an engine Reset.
func (c *Collector) OnReset() {
	c.CachedSources.Set(0)
}
