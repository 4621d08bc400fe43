//go:build testing

package toolapi

import (
	"context"
	"testing"

	"github.com/coreprobe/sysmon/errs"
	"github.com/stretchr/testify/assert"
)

func TestGpuIndexArgMissingParameter(t *testing.T) {
	_, err := gpuIndexArg(&Deps{}, params{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestGpuIndexArgOutOfRangeNamesField(t *testing.T) {
	_, err := gpuIndexArg(&Deps{}, params{"gpu_index": 0.0})
	assert.ErrorIs(t, err, errs.ErrDeviceNotFound)
	assert.Contains(t, err.Error(), "gpu_index")
}

func TestHandleGetGpuDetailsMissingGpuIndexIsInvalidArgument(t *testing.T) {
	_, err := handleGetGpuDetails(context.Background(), &Deps{}, params{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "gpu_index")
}

func TestHandleGetGpuDetailsUnknownIndexIsDeviceNotFound(t *testing.T) {
	_, err := handleGetGpuDetails(context.Background(), &Deps{}, params{"gpu_index": 0.0})
	assert.ErrorIs(t, err, errs.ErrDeviceNotFound)
	assert.Contains(t, err.Error(), "gpu_index")
}

func TestHandleGetGpuStatusNoGpuReturnsEmptyList(t *testing.T) {
	out, err := handleGetGpuStatus(context.Background(), &Deps{}, params{})
	assert.NoError(t, err)
	assert.Equal(t, "[]", out)
}
