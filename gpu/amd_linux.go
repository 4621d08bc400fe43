//go:build linux

package gpu

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/coreprobe/sysmon/entities"
)

// amdBackend reads AMD GPU metrics directly from sysfs, the same source the
// polling collector used, but as a single synchronous read per call instead
// of an accumulating background loop.
type amdBackend struct {
	cardPaths []string
}

func newAmdBackend() (Backend, error) {
	cards, err := filepath.Glob("/sys/class/drm/card*")
	if err != nil {
		return nil, nil
	}
	var amdCards []string
	for _, card := range cards {
		if strings.Contains(filepath.Base(card), "-") || !isAmdGpuCard(card) {
			continue
		}
		amdCards = append(amdCards, card)
	}
	if len(amdCards) == 0 {
		return nil, nil
	}
	return &amdBackend{cardPaths: amdCards}, nil
}

func isAmdGpuCard(cardPath string) bool {
	vendor, err := os.ReadFile(filepath.Join(cardPath, "device/vendor"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(vendor)) == "0x1002"
}

func (b *amdBackend) Vendor() entities.GpuVendor { return entities.GpuVendorAmd }

func (b *amdBackend) DeviceCount() int { return len(b.cardPaths) }

func (b *amdBackend) devicePath(localIndex int) (string, error) {
	if localIndex < 0 || localIndex >= len(b.cardPaths) {
		return "", fmt.Errorf("amd: device index %d out of range", localIndex)
	}
	return filepath.Join(b.cardPaths[localIndex], "device"), nil
}

func (b *amdBackend) StaticInfo(localIndex int) (entities.GpuStaticInfo, error) {
	devicePath, err := b.devicePath(localIndex)
	if err != nil {
		return entities.GpuStaticInfo{}, err
	}
	total, _ := readSysfsFloat(filepath.Join(devicePath, "mem_info_vram_total"))
	return entities.GpuStaticInfo{
		Name:        amdGpuName(devicePath),
		Vendor:      entities.GpuVendorAmd,
		MemoryTotal: uint64(total),
	}, nil
}

func (b *amdBackend) DynamicInfo(localIndex int) (entities.GpuDynamicInfo, error) {
	devicePath, err := b.devicePath(localIndex)
	if err != nil {
		return entities.GpuDynamicInfo{}, err
	}

	var dyn entities.GpuDynamicInfo

	if usage, err := readSysfsFloat(filepath.Join(devicePath, "gpu_busy_percent")); err == nil {
		dyn.UtilizationPercent = usage
	}

	memUsed, _ := readSysfsFloat(filepath.Join(devicePath, "mem_info_vram_used"))
	memTotal, _ := readSysfsFloat(filepath.Join(devicePath, "mem_info_vram_total"))
	if gttUsed, err := readSysfsFloat(filepath.Join(devicePath, "mem_info_gtt_used")); err == nil && gttUsed > 0 {
		if gttTotal, err := readSysfsFloat(filepath.Join(devicePath, "mem_info_gtt_total")); err == nil {
			memUsed += gttUsed
			memTotal += gttTotal
		}
	}
	dyn.Memory = entities.GpuMemory{Total: uint64(memTotal), Used: uint64(memUsed), Free: uint64(memTotal - memUsed)}
	if memTotal > 0 {
		dyn.Memory.Utilization = memUsed / memTotal * 100.0
	}

	hwmons, _ := filepath.Glob(filepath.Join(devicePath, "hwmon/hwmon*"))
	for _, hwmonDir := range hwmons {
		if t, err := readSysfsFloat(filepath.Join(hwmonDir, "temp1_input")); err == nil {
			c := t / 1000.0
			dyn.Thermal.TemperatureC = &c
		}
		if p, err := readSysfsFloat(filepath.Join(hwmonDir, "power1_average")); err == nil {
			watts := p / 1000000.0 * 1000.0
			dyn.Power.DrawMilliwatts = &watts
		} else if p, err := readSysfsFloat(filepath.Join(hwmonDir, "power1_input")); err == nil {
			watts := p / 1000000.0 * 1000.0
			dyn.Power.DrawMilliwatts = &watts
		}
	}

	return dyn, nil
}

// amdGpuName falls back to the generic vendor string; resolving the exact
// marketing name requires parsing amdgpu.ids, which the reference agent did
// only for display purposes and is out of scope for attribution joins.
func amdGpuName(devicePath string) string {
	deviceID, err := os.ReadFile(filepath.Join(devicePath, "device"))
	if err != nil {
		return "AMD GPU"
	}
	id := strings.TrimSpace(string(deviceID))
	return "AMD GPU " + strings.TrimPrefix(id, "0x")
}

func readSysfsFloat(path string) (float64, error) {
	val, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(string(val)), 64)
}
