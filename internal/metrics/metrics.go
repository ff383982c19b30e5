package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "prioritization"

// Metrics holds the collectors the dashboard updates. A nil *Metrics is safe
// to call and records nothing.
type Metrics struct {
	Recomputations prometheus.Counter
	Errors         *prometheus.CounterVec
	Exports        prometheus.Counter
	ExportBytes    prometheus.Counter
	Imports        prometheus.Counter
	Evicted        prometheus.Counter
	Sessions       prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Recomputations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recomputations_total",
			Help:      "Successful ranking recomputations.",
		}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Errors surfaced to users, by kind.",
		}, []string{"kind"}),
		Exports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Spreadsheet downloads.",
		}),
		ExportBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_bytes_total",
			Help:      "Bytes of spreadsheet data served.",
		}),
		Imports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imports_total",
			Help:      "Spreadsheet uploads accepted.",
		}),
		Evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_evicted_total",
			Help:      "Sessions removed after going idle.",
		}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Live sessions.",
		}),
	}
	reg.MustRegister(m.Recomputations, m.Errors, m.Exports, m.ExportBytes, m.Imports, m.Evicted, m.Sessions)
	return m
}

func (m *Metrics) Recomputed() {
	if m != nil {
		m.Recomputations.Inc()
	}
}

// Error counts an error by kind; an empty kind is recorded as "internal".
func (m *Metrics) Error(kind string) {
	if m == nil {
		return
	}
	if kind == "" {
		kind = "internal"
	}
	m.Errors.WithLabelValues(kind).Inc()
}

func (m *Metrics) Exported(n int) {
	if m != nil {
		m.Exports.Inc()
		m.ExportBytes.Add(float64(n))
	}
}

func (m *Metrics) Imported() {
	if m != nil {
		m.Imports.Inc()
	}
}

func (m *Metrics) Expired(n int) {
	if m != nil {
		m.Evicted.Add(float64(n))
	}
}

func (m *Metrics) SetSessions(n int) {
	if m != nil {
		m.Sessions.Set(float64(n))
	}
}
