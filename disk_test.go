//go:build testing

package agent

import (
	"testing"

	"github.com/coreprobe/sysmon/entities"
	"github.com/stretchr/testify/assert"
)

func TestIsNonRotationalTreatsNvmeAsFlash(t *testing.T) {
	assert.True(t, isNonRotational("nvme0n1"))
	assert.True(t, isNonRotational("NVMe1n1"))
}

func TestIsNonRotationalMissingSysfsDefaultsToFalse(t *testing.T) {
	assert.False(t, isNonRotational("this-device-does-not-exist"))
}

func TestGenericDiskDeviceInfo(t *testing.T) {
	d := &genericDiskDevice{
		info: entities.DiskInfo{
			Name:       "nvme0n1",
			IsNvme:     true,
			IsSsd:      true,
			TotalBytes: 1_000_000_000_000,
		},
	}
	info := d.Info()
	assert.Equal(t, "nvme0n1", info.Name)
	assert.True(t, info.IsNvme)
	assert.True(t, info.IsSsd)
}
