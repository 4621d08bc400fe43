//go:build testing

package anomaly

import (
	"testing"

	"github.com/coreprobe/sysmon/entities"
	"github.com/stretchr/testify/assert"
)

func TestMetricWindowStats(t *testing.T) {
	w := NewMetricWindow(10)
	for _, v := range []float64{10.0, 20.0, 30.0, 40.0, 50.0} {
		w.Push(v)
	}
	assert.InDelta(t, 30.0, w.Mean(), 0.01)
	assert.Greater(t, w.StdDev(), 0.0)
}

func TestZScoreSpike(t *testing.T) {
	w := NewMetricWindow(20)
	for i := 0; i < 15; i++ {
		w.Push(50.0)
	}
	z := w.ZScore(99.0)
	assert.Greater(t, z, 2.0)
}

func TestTrendDetectionWindow(t *testing.T) {
	w := NewMetricWindow(20)
	for i := 0; i < 20; i++ {
		w.Push(30.0 + float64(i)*2.0)
	}
	assert.GreaterOrEqual(t, w.Trend(), 15.0)
}

func TestCriticalCpuDetection(t *testing.T) {
	d := NewDetector(DefaultConfig())
	for i := 0; i < 15; i++ {
		d.RecordCpu(50.0)
	}
	d.RecordCpu(97.0)

	anomalies := d.Detect()
	assert.NotEmpty(t, anomalies)
	assert.Equal(t, "cpu", anomalies[0].Metric)
	assert.Equal(t, entities.SeverityCritical, anomalies[0].Severity)
	assert.Equal(t, 97.0, anomalies[0].CurrentValue)
	assert.NotEmpty(t, anomalies[0].Recommendations)
}

func TestSteadyStateProducesNoAnomalies(t *testing.T) {
	d := NewDetector(DefaultConfig())
	for i := 0; i < 15; i++ {
		d.RecordCpu(30.0)
		d.RecordMemory(40.0)
	}
	assert.Empty(t, d.Detect())
}

func TestAlertCooldownSuppressesRepeats(t *testing.T) {
	d := NewDetector(DefaultConfig())
	for i := 0; i < 5; i++ {
		d.RecordCpu(50.0)
	}
	d.RecordCpu(99.0)
	first := d.Detect()
	assert.NotEmpty(t, first)

	d.RecordCpu(99.0)
	second := d.Detect()
	assert.Empty(t, second, "the cpu key must stay suppressed inside the cooldown window")
}

func TestRecommendationsPrioritySorted(t *testing.T) {
	d := NewDetector(DefaultConfig())
	d.RecordCpu(85.0)
	d.RecordMemory(95.0)

	recs := d.Recommendations()
	assert.NotEmpty(t, recs)
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i-1].Priority, recs[i].Priority)
	}
}
