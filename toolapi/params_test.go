//go:build testing

package toolapi

import (
	"testing"

	"github.com/coreprobe/sysmon/errs"
	"github.com/stretchr/testify/assert"
)

func TestRequiredStringMissingOrEmpty(t *testing.T) {
	_, err := requiredString(params{}, "disk_name")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = requiredString(params{"disk_name": ""}, "disk_name")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	v, err := requiredString(params{"disk_name": "sda"}, "disk_name")
	assert.NoError(t, err)
	assert.Equal(t, "sda", v)
}

func TestOptionalStringFallsBackOnWrongType(t *testing.T) {
	assert.Equal(t, "pid", optionalString(params{}, "sort_by", "pid"))
	assert.Equal(t, "pid", optionalString(params{"sort_by": 5.0}, "sort_by", "pid"))
	assert.Equal(t, "cpu", optionalString(params{"sort_by": "cpu"}, "sort_by", "pid"))
}

func TestRequiredIntDecodesJSONNumber(t *testing.T) {
	_, err := requiredInt(params{}, "gpu_index")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = requiredInt(params{"gpu_index": "0"}, "gpu_index")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	v, err := requiredInt(params{"gpu_index": 2.0}, "gpu_index")
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestOptionalInt64DefaultAndOverride(t *testing.T) {
	assert.EqualValues(t, 300, optionalInt64(params{}, "seconds_ago", 300))
	assert.EqualValues(t, 60, optionalInt64(params{"seconds_ago": 60.0}, "seconds_ago", 300))
	assert.EqualValues(t, 300, optionalInt64(params{"seconds_ago": "soon"}, "seconds_ago", 300))
}

func TestOptionalBoolDefaultAndOverride(t *testing.T) {
	assert.True(t, optionalBool(params{}, "verbose", true))
	assert.False(t, optionalBool(params{"verbose": false}, "verbose", true))
}
