//go:build testing

package toolapi

import (
	"context"
	"testing"

	"github.com/coreprobe/sysmon/errs"
	"github.com/stretchr/testify/assert"
)

func TestRegistryToolCount(t *testing.T) {
	counts := map[Category]int{}
	for _, spec := range registry {
		counts[spec.Category]++
	}

	assert.Len(t, registry, 45)
	assert.Equal(t, 5, counts[CategorySystem])
	assert.Equal(t, 8, counts[CategoryGpu])
	assert.Equal(t, 3, counts[CategoryCpu])
	assert.Equal(t, 3, counts[CategoryMemory])
	assert.Equal(t, 4, counts[CategoryDisk])
	assert.Equal(t, 3, counts[CategoryNetwork])
	assert.Equal(t, 6, counts[CategoryProcess])
	assert.Equal(t, 5, counts[CategoryHardware])
	assert.Equal(t, 2, counts[CategoryAudio])
	assert.Equal(t, 2, counts[CategoryBluetooth])
	assert.Equal(t, 2, counts[CategoryDisplay])
	assert.Equal(t, 2, counts[CategoryUsb])
}

func TestRegistryNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(registry))
	for _, spec := range registry {
		assert.False(t, seen[spec.Name], "duplicate tool name %q", spec.Name)
		seen[spec.Name] = true
	}
}

func TestFindToolKnownAndUnknown(t *testing.T) {
	spec, ok := findTool("get_cpu_status")
	assert.True(t, ok)
	assert.Equal(t, CategoryCpu, spec.Category)

	_, ok = findTool("does_not_exist")
	assert.False(t, ok)
}

func TestUnimplementedToolsShareHandler(t *testing.T) {
	for _, name := range []string{
		"get_audio_devices", "get_audio_status",
		"get_bluetooth_adapters", "get_bluetooth_devices",
		"get_display_list", "get_display_details",
		"get_usb_devices", "get_usb_device_details",
	} {
		spec, ok := findTool(name)
		assert.True(t, ok, name)
		_, err := spec.handler(context.Background(), &Deps{}, params{})
		assert.ErrorIs(t, err, errs.ErrNotImplemented)
	}
}
