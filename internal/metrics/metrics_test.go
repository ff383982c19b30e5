package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Recomputed()
	m.Recomputed()
	m.Error("zero_weight")
	m.Error("")
	m.Exported(1024)
	m.Imported()
	m.Expired(3)
	m.SetSessions(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Recomputations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("zero_weight")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("internal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Exports))
	assert.Equal(t, 1024.0, testutil.ToFloat64(m.ExportBytes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Imports))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Evicted))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Sessions))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Recomputed()
		m.Error("not_found")
		m.Exported(1)
		m.Imported()
		m.Expired(1)
		m.SetSessions(1)
	})
}
