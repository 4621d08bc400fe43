//go:build testing

package toolapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/coreprobe/sysmon/errs"
	"github.com/stretchr/testify/assert"
)

func TestHandleGetCpuStatusReportsTotal(t *testing.T) {
	out, err := handleGetCpuStatus(context.Background(), &Deps{}, params{})
	assert.NoError(t, err)

	var decoded struct {
		Total float64 `json:"total"`
	}
	assert.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.GreaterOrEqual(t, decoded.Total, 0.0)
	assert.LessOrEqual(t, decoded.Total, 100.0)
}

func TestHandleGetCpuFrequencyOutOfRangeCore(t *testing.T) {
	_, err := handleGetCpuFrequency(context.Background(), &Deps{}, params{"core_index": 1_000_000.0})
	assert.ErrorIs(t, err, errs.ErrDeviceNotFound)
}

func TestHandleGetCpuFrequencyMissingCoreIndex(t *testing.T) {
	_, err := handleGetCpuFrequency(context.Background(), &Deps{}, params{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
