//go:build testing

package toolapi

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/coreprobe/sysmon/errs"
	"github.com/coreprobe/sysmon/history"
	"github.com/stretchr/testify/assert"
)

func TestMetricArgRejectsUnknownMetric(t *testing.T) {
	_, err := metricArg(params{"metric": "bogus"})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestMetricArgAcceptsEveryDeclaredMetric(t *testing.T) {
	for _, m := range history.Metrics {
		got, err := metricArg(params{"metric": m})
		assert.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestHandleGetHistoricalDataFiltersByMetricAndSkipsAbsentGpu(t *testing.T) {
	deps := &Deps{History: history.NewBuffer(time.Hour)}
	deps.History.Record(50, 60, nil, nil)

	out, err := handleGetHistoricalData(context.Background(), deps, params{"metric": "cpu", "since_seconds": 0.0})
	assert.NoError(t, err)

	var points []struct {
		Timestamp int64   `json:"timestamp"`
		Value     float64 `json:"value"`
	}
	assert.NoError(t, json.Unmarshal([]byte(out), &points))
	assert.Len(t, points, 1)
	assert.Equal(t, 50.0, points[0].Value)

	out, err = handleGetHistoricalData(context.Background(), deps, params{"metric": "gpu_temp", "since_seconds": 0.0})
	assert.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestHandleGetHistoricalDataMissingMetric(t *testing.T) {
	deps := &Deps{History: history.NewBuffer(time.Hour)}
	_, err := handleGetHistoricalData(context.Background(), deps, params{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestHandleCompareMetricsMissingWindows(t *testing.T) {
	deps := &Deps{History: history.NewBuffer(time.Hour)}
	_, err := handleCompareMetrics(context.Background(), deps, params{"metric": "cpu"})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestHandleCompareMetricsDiffsTwoWindows(t *testing.T) {
	deps := &Deps{History: history.NewBuffer(time.Hour)}
	deps.History.Record(80, 0, nil, nil)

	out, err := handleCompareMetrics(context.Background(), deps, params{
		"metric":           "cpu",
		"window_a_seconds": 3600.0,
		"window_b_seconds": 3600.0,
	})
	assert.NoError(t, err)

	var result struct {
		Metric     string  `json:"metric"`
		WindowAAvg float64 `json:"window_a_avg"`
		WindowBAvg float64 `json:"window_b_avg"`
		Delta      float64 `json:"delta"`
		HasWindowA bool    `json:"has_window_a_data"`
		HasWindowB bool    `json:"has_window_b_data"`
	}
	assert.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "cpu", result.Metric)
	assert.Equal(t, 80.0, result.WindowAAvg)
	assert.Equal(t, 80.0, result.WindowBAvg)
	assert.Equal(t, 0.0, result.Delta)
	assert.True(t, result.HasWindowA)
	assert.True(t, result.HasWindowB)
}

func TestHandleCompareMetricsReportsMissingWindowData(t *testing.T) {
	deps := &Deps{History: history.NewBuffer(time.Hour)}
	out, err := handleCompareMetrics(context.Background(), deps, params{
		"metric":           "gpu_temp",
		"window_a_seconds": 60.0,
		"window_b_seconds": 120.0,
	})
	assert.NoError(t, err)

	var result struct {
		HasWindowA bool `json:"has_window_a_data"`
		HasWindowB bool `json:"has_window_b_data"`
	}
	assert.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.HasWindowA)
	assert.False(t, result.HasWindowB)
}
