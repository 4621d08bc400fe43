//go:build testing

package toolapi

import (
	"context"
	"testing"
	"time"

	"github.com/coreprobe/sysmon/anomaly"
	"github.com/coreprobe/sysmon/errs"
	"github.com/coreprobe/sysmon/history"
	"github.com/stretchr/testify/assert"
)

func testDeps() *Deps {
	return &Deps{
		History:  history.NewBuffer(time.Hour),
		Detector: anomaly.NewDetector(anomaly.DefaultConfig()),
	}
}

func TestInvokeUnknownTool(t *testing.T) {
	srv := &Server{deps: testDeps()}
	_, err := srv.Invoke(context.Background(), "no_such_tool", "{}")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestInvokeMalformedArguments(t *testing.T) {
	srv := &Server{deps: testDeps()}
	_, err := srv.Invoke(context.Background(), "get_cpu_status", "not json")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestInvokeEmptyArgumentsVariants(t *testing.T) {
	srv := &Server{deps: testDeps()}
	for _, raw := range []string{"", "{}"} {
		_, err := srv.Invoke(context.Background(), "get_cpu_status", raw)
		assert.NoError(t, err)
	}
}

func TestInvokeGetGpuDetailsMissingGpuIndexNamesField(t *testing.T) {
	srv := &Server{deps: testDeps()}
	_, err := srv.Invoke(context.Background(), "get_gpu_details", "{}")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "gpu_index")
}

func TestInvokeGetCpuStatusReportsTotal(t *testing.T) {
	srv := &Server{deps: testDeps()}
	out, err := srv.Invoke(context.Background(), "get_cpu_status", "{}")
	assert.NoError(t, err)
	assert.Contains(t, out, `"total"`)
}

func TestInvokeHistoricalDataRoundTrips(t *testing.T) {
	deps := testDeps()
	deps.History.Record(42, 55, nil, nil)
	srv := &Server{deps: deps}

	out, err := srv.Invoke(context.Background(), "get_historical_data", `{"metric": "cpu", "since_seconds": 0}`)
	assert.NoError(t, err)
	assert.Contains(t, out, "42")
}

func TestInvokeHistoricalDataMissingMetricIsInvalidArgument(t *testing.T) {
	srv := &Server{deps: testDeps()}
	_, err := srv.Invoke(context.Background(), "get_historical_data", "{}")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestInvokeCompareMetricsComputesDeltaBetweenTwoWindows(t *testing.T) {
	deps := testDeps()
	deps.History.Record(10, 0, nil, nil)
	srv := &Server{deps: deps}

	out, err := srv.Invoke(context.Background(), "compare_metrics", `{"metric": "cpu", "window_a_seconds": 3600, "window_b_seconds": 0}`)
	assert.NoError(t, err)
	assert.Contains(t, out, `"metric":"cpu"`)
}
