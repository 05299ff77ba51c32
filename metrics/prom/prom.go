// Package prom is a Prometheus metrics.Metrics adapter, grounded on
// shardcache's metrics/prom.Adapter.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fantom-foundation/graphcache/metrics"
)

// Adapter implements metrics.Metrics and exports Prometheus counters and a
// gauge. Safe for concurrent use; Prometheus metric types are
// goroutine-safe.
type Adapter struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	size      prometheus.Gauge
}

// New constructs a Prometheus adapter and registers its metrics.
//   - reg:     registry to register with (nil => prometheus.DefaultRegisterer)
//   - ns, sub: Prometheus namespace and subsystem
func New(reg prometheus.Registerer, ns, sub string) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "hits_total", Help: "Cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "misses_total", Help: "Cache misses (loads)",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "evictions_total", Help: "Entries evicted to make room",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: sub, Name: "size_entries", Help: "Number of resident entries",
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.evictions, a.size)
	return a
}

func (a *Adapter) Hit()      { a.hits.Inc() }
func (a *Adapter) Miss()     { a.misses.Inc() }
func (a *Adapter) Eviction() { a.evictions.Inc() }
func (a *Adapter) Size(n int) {
	a.size.Set(float64(n))
}

var _ metrics.Metrics = (*Adapter)(nil)
