//go:build testing

package toolapi

import (
	"context"
	"testing"

	"github.com/coreprobe/sysmon/errs"
	"github.com/stretchr/testify/assert"
)

func TestHandleGetInterfaceDetailsUnknownNameNamesField(t *testing.T) {
	_, err := handleGetInterfaceDetails(context.Background(), &Deps{}, params{"interface_name": "nonexistent-iface-xyz"})
	assert.ErrorIs(t, err, errs.ErrDeviceNotFound)
	assert.Contains(t, err.Error(), "interface_name")
}

func TestHandleGetNetworkBandwidthMissingName(t *testing.T) {
	_, err := handleGetNetworkBandwidth(context.Background(), &Deps{}, params{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
