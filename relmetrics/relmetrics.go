// This file is part of the reltrie library. See ../reladapter/adapter.go
// for license.

// Package relmetrics wires an optional Prometheus recorder into a relation,
// mirroring the teacher's habit of wiring github.com/prometheus/client_golang
// counters behind the bucket/index layer (common/dbutils) rather than
// spreading ad-hoc instrumentation through the algorithmic core.
package relmetrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder counts calls into a relation's mutating and querying operations,
// plus a live gauge for the current tuple count. It is safe to share a
// single Recorder across many relations (e.g. one per adapter/schema).
type Recorder struct {
	Adds    prometheus.Counter
	Removes prometheus.Counter
	Finds   prometheus.Counter
	Count   prometheus.Gauge
}

// NewRecorder builds a Recorder with the given metric name prefix,
// registering its collectors with reg (pass prometheus.DefaultRegisterer
// for the global registry, or a fresh prometheus.NewRegistry() in tests).
func NewRecorder(reg prometheus.Registerer, namespace string) *Recorder {
	r := &Recorder{
		Adds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "add_total", Help: "Number of Add calls.",
		}),
		Removes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "remove_total", Help: "Number of Remove/RemoveMatch calls.",
		}),
		Finds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "find_total", Help: "Number of Find calls.",
		}),
		Count: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "tuple_count", Help: "Current number of stored tuples.",
		}),
	}
	if reg != nil {
		reg.MustRegister(r.Adds, r.Removes, r.Finds, r.Count)
	}
	return r
}
