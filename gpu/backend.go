// Package gpu implements the GPU Backends component: vendor-specific device
// enumeration behind a common Backend interface, joined into one stable,
// globally-indexed Collection. Unlike the flattened agent's original GPU
// manager, every read here is synchronous and on-demand; there is no
// background polling goroutine or shared mutable average state.
package gpu

import (
	"fmt"

	"github.com/coreprobe/sysmon/entities"
)

// Backend probes one GPU vendor's devices. A host may have zero, one, or
// several devices behind a single backend (e.g. two Nvidia cards).
type Backend interface {
	// Vendor identifies which entities.GpuVendor this backend reports.
	Vendor() entities.GpuVendor
	// DeviceCount returns how many devices this backend currently sees.
	DeviceCount() int
	// StaticInfo returns the unchanging identity of the device at the
	// backend-local index (0-based, independent of other backends).
	StaticInfo(localIndex int) (entities.GpuStaticInfo, error)
	// DynamicInfo returns a fresh read of the device's current state.
	DynamicInfo(localIndex int) (entities.GpuDynamicInfo, error)
}

// deviceRef maps a Collection-global index back to its owning backend and
// that backend's local index, the same shape as the reference engine's
// GpuCollection device table.
type deviceRef struct {
	backend    Backend
	localIndex int
}

// Collection is the result of auto-detection: a stable, ordered list of
// devices across all vendors, indexed in probe order (Nvidia, AMD, Intel,
// Apple) so the same physical device keeps the same global index across
// calls within a process lifetime.
type Collection struct {
	devices []deviceRef
}

// AutoDetect probes every known vendor backend in a fixed order and
// concatenates their devices into one Collection. A backend that finds no
// devices or fails to initialize is skipped; AutoDetect returns an error
// when no backend initialized and at least one backend reported an error.
func AutoDetect() (*Collection, error) {
	var backends []Backend
	var initErrs []error

	for _, probe := range []func() (Backend, error){
		newNvidiaBackend,
		newAmdBackend,
		newIntelBackend,
		newAppleBackend,
	} {
		b, err := probe()
		if err != nil {
			initErrs = append(initErrs, err)
			continue
		}
		if b != nil {
			backends = append(backends, b)
		}
	}

	if len(backends) == 0 && len(initErrs) > 0 {
		return nil, fmt.Errorf("gpu: no backend initialized: %w", initErrs[0])
	}

	c := &Collection{}
	for _, b := range backends {
		for i := 0; i < b.DeviceCount(); i++ {
			c.devices = append(c.devices, deviceRef{backend: b, localIndex: i})
		}
	}
	return c, nil
}

// DeviceCount returns the total number of devices across all backends.
func (c *Collection) DeviceCount() int {
	if c == nil {
		return 0
	}
	return len(c.devices)
}

// StaticInfo returns the static info for the device at the given global index.
func (c *Collection) StaticInfo(globalIndex int) (entities.GpuStaticInfo, error) {
	ref, err := c.ref(globalIndex)
	if err != nil {
		return entities.GpuStaticInfo{}, err
	}
	return ref.backend.StaticInfo(ref.localIndex)
}

// Snapshot reads static and dynamic info for the device at globalIndex in one call.
func (c *Collection) Snapshot(globalIndex int) (entities.GpuSnapshot, error) {
	ref, err := c.ref(globalIndex)
	if err != nil {
		return entities.GpuSnapshot{}, err
	}
	static, err := ref.backend.StaticInfo(ref.localIndex)
	if err != nil {
		return entities.GpuSnapshot{}, err
	}
	dynamic, err := ref.backend.DynamicInfo(ref.localIndex)
	if err != nil {
		return entities.GpuSnapshot{}, err
	}
	return entities.GpuSnapshot{Index: globalIndex, Static: static, Dynamic: dynamic}, nil
}

// Snapshots reads every device in the collection, skipping any that fail.
func (c *Collection) Snapshots() []entities.GpuSnapshot {
	snapshots := make([]entities.GpuSnapshot, 0, c.DeviceCount())
	for i := 0; i < c.DeviceCount(); i++ {
		snap, err := c.Snapshot(i)
		if err != nil {
			continue
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots
}

func (c *Collection) ref(globalIndex int) (deviceRef, error) {
	if c == nil || globalIndex < 0 || globalIndex >= len(c.devices) {
		return deviceRef{}, fmt.Errorf("gpu: device index %d out of range", globalIndex)
	}
	return c.devices[globalIndex], nil
}
