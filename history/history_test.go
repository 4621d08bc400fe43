//go:build testing

package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAssignsTimestampAndID(t *testing.T) {
	b := NewBuffer(30 * time.Minute)
	s := b.Record(12.5, 40.0, nil, nil)
	assert.NotEmpty(t, s.ID)
	assert.InDelta(t, time.Now().Unix(), s.Timestamp, 2)
	assert.Equal(t, 12.5, s.CpuPercent)
	assert.Equal(t, 40.0, s.MemoryPercent)
	assert.Nil(t, s.GpuTempC)
}

func TestSinceZeroReturnsEverything(t *testing.T) {
	b := NewBuffer(30 * time.Minute)
	b.Record(1, 1, nil, nil)
	b.Record(2, 2, nil, nil)
	require.Len(t, b.Since(0), 2)
}

func TestEvictionDropsStaleSamples(t *testing.T) {
	b := NewBuffer(time.Minute)
	b.samples = append(b.samples, Sample{Timestamp: time.Now().Add(-2 * time.Minute).Unix(), ID: "stale"})
	b.Record(5, 5, nil, nil)
	samples := b.Since(0)
	require.Len(t, samples, 1)
	assert.NotEqual(t, "stale", samples[0].ID)
}

func TestWindowFiltersToRange(t *testing.T) {
	b := NewBuffer(time.Hour)
	now := time.Now().Unix()
	b.samples = []Sample{
		{Timestamp: now - 3600, CpuPercent: 1},
		{Timestamp: now - 1800, CpuPercent: 2},
		{Timestamp: now - 10, CpuPercent: 3},
	}
	window := b.Window(1900, 200)
	require.Len(t, window, 1)
	assert.Equal(t, 2.0, window[0].CpuPercent)
}

func TestValueSelectsRequestedMetric(t *testing.T) {
	temp := 55.0
	s := Sample{CpuPercent: 10, MemoryPercent: 20, GpuTempC: &temp}

	v, ok := Value(s, "cpu")
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	v, ok = Value(s, "memory")
	assert.True(t, ok)
	assert.Equal(t, 20.0, v)

	v, ok = Value(s, "gpu_temp")
	assert.True(t, ok)
	assert.Equal(t, 55.0, v)

	_, ok = Value(s, "gpu_util")
	assert.False(t, ok)

	_, ok = Value(s, "bogus")
	assert.False(t, ok)
}

func TestAverageSkipsSamplesMissingTheMetric(t *testing.T) {
	temp := 60.0
	samples := []Sample{
		{GpuTempC: &temp},
		{GpuTempC: nil},
	}
	avg, ok := Average(samples, "gpu_temp")
	assert.True(t, ok)
	assert.Equal(t, 60.0, avg)
}

func TestAverageReportsNoDataWhenNothingMatches(t *testing.T) {
	_, ok := Average([]Sample{{GpuTempC: nil}}, "gpu_temp")
	assert.False(t, ok)

	_, ok = Average(nil, "cpu")
	assert.False(t, ok)
}
