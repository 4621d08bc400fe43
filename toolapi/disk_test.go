//go:build testing

package toolapi

import (
	"context"
	"testing"

	"github.com/coreprobe/sysmon/errs"
	"github.com/stretchr/testify/assert"
)

func TestHandleGetDiskDetailsUnknownNameNamesField(t *testing.T) {
	_, err := handleGetDiskDetails(context.Background(), &Deps{}, params{"disk_name": "nonexistent-device-xyz"})
	assert.ErrorIs(t, err, errs.ErrDeviceNotFound)
	assert.Contains(t, err.Error(), "disk_name")
}

func TestHandleGetDiskDetailsMissingName(t *testing.T) {
	_, err := handleGetDiskDetails(context.Background(), &Deps{}, params{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
