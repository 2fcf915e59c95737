package streaming

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the optional counters a Topology updates as it runs. Every
// shard of the Topology increments the same counters; they are not broken
// down by shard. A nil *Metrics (the default) disables all instrumentation.
type Metrics struct {
	EventsProcessed prometheus.Counter
	IOErrors        prometheus.Counter
	EngineErrors    prometheus.Counter
}

// NewMetrics builds a Metrics instance. If reg is non-nil, the counters are
// registered on it; a registration failure (e.g. a duplicate collector) is
// intentionally ignored so a caller reusing a registry across topologies
// doesn't have to special-case it.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "txnengine_events_processed_total",
			Help: "Number of events successfully applied to an account.",
		}),
		IOErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "txnengine_io_errors_total",
			Help: "Number of I/O errors encountered while reading input streams.",
		}),
		EngineErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "txnengine_engine_errors_total",
			Help: "Number of events rejected by the transaction processor.",
		}),
	}
	if reg != nil {
		_ = reg.Register(m.EventsProcessed)
		_ = reg.Register(m.IOErrors)
		_ = reg.Register(m.EngineErrors)
	}
	return m
}
