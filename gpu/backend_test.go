//go:build testing

package gpu

import (
	"testing"

	"github.com/coreprobe/sysmon/entities"
	"github.com/stretchr/testify/assert"
)

type fakeBackend struct {
	vendor  entities.GpuVendor
	devices []entities.GpuStaticInfo
}

func (f *fakeBackend) Vendor() entities.GpuVendor { return f.vendor }
func (f *fakeBackend) DeviceCount() int           { return len(f.devices) }
func (f *fakeBackend) StaticInfo(i int) (entities.GpuStaticInfo, error) {
	return f.devices[i], nil
}
func (f *fakeBackend) DynamicInfo(i int) (entities.GpuDynamicInfo, error) {
	return entities.GpuDynamicInfo{UtilizationPercent: float64(i)}, nil
}

func TestCollectionGlobalIndexingAcrossBackends(t *testing.T) {
	nvidia := &fakeBackend{vendor: entities.GpuVendorNvidia, devices: []entities.GpuStaticInfo{{Name: "RTX 4090"}}}
	amd := &fakeBackend{vendor: entities.GpuVendorAmd, devices: []entities.GpuStaticInfo{{Name: "RX 7900"}, {Name: "RX 7800"}}}

	c := &Collection{devices: []deviceRef{
		{backend: nvidia, localIndex: 0},
		{backend: amd, localIndex: 0},
		{backend: amd, localIndex: 1},
	}}

	assert.Equal(t, 3, c.DeviceCount())
	static, err := c.StaticInfo(2)
	assert.NoError(t, err)
	assert.Equal(t, "RX 7800", static.Name)
}

func TestCollectionOutOfRangeIndex(t *testing.T) {
	c := &Collection{}
	_, err := c.StaticInfo(0)
	assert.Error(t, err)
}

func TestCollectionSnapshotsReadsEveryDevice(t *testing.T) {
	good := &fakeBackend{vendor: entities.GpuVendorIntel, devices: []entities.GpuStaticInfo{{Name: "Intel Arc"}}}
	c := &Collection{devices: []deviceRef{{backend: good, localIndex: 0}}}

	snaps := c.Snapshots()
	assert.Len(t, snaps, 1)
	assert.Equal(t, "Intel Arc", snaps[0].Static.Name)
}
