package scip

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/goscip/internal/native/nativetest"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	e := nativetest.New()
	e.Script = fractionalScript(1)
	model, _, _ := integerProgram(t, e, WithMetrics(metrics))
	model.IncludeBranchRule("first", "", 100000, -1, 1, &recordingRule{branch: true})
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PluginsRegistered))

	solved := model.Solve()
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PluginInvocations.WithLabelValues("branchrule", "execlp")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HandlesCaptured.WithLabelValues(objectVariable)))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HandlesCaptured.WithLabelValues(objectConstraint)))

	solved.Close()
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HandlesReleased.WithLabelValues(objectVariable)))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HandlesReleased.WithLabelValues(objectConstraint)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PluginInvocations.WithLabelValues("branchrule", "free")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.PluginsRegistered))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.invoked("pricer", "redcost")
		m.captured(objectVariable)
		m.released(objectVariable)
		m.pluginAdded()
		m.pluginFreed()
	})
}

func TestNewMetricsWithoutRegistry(t *testing.T) {
	m := NewMetrics(nil)
	m.captured(objectConstraint)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HandlesCaptured.WithLabelValues(objectConstraint)))
}
