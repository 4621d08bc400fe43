// Package inference implements the Hardware Inference Engine: feature
// extraction plus a deterministic rule/weighted-scoring cascade producing
// system classification, performance tier, bottleneck detection, workload
// suitability, age estimation, thermal envelope, upgrade suggestions,
// hardware anomalies, and a stable fingerprint.
package inference

import (
	"context"
	"strings"

	"github.com/coreprobe/sysmon/battery"
	"github.com/coreprobe/sysmon/entities"
	"github.com/coreprobe/sysmon/gpu"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// ExtractFeatures reads OS sources directly and populates a HardwareFeatures
// value. This overlaps the Platform Probes' sources but normalises them into
// the inference engine's own domain, matching the reference engine's
// decision to keep feature extraction independent of snapshot reads.
func ExtractFeatures(ctx context.Context) (entities.HardwareFeatures, error) {
	var f entities.HardwareFeatures

	if cpuInfo, err := cpu.InfoWithContext(ctx); err == nil && len(cpuInfo) > 0 {
		f.CpuModel = cpuInfo[0].ModelName
		f.CpuVendor = cpuInfo[0].VendorID
		f.CpuMaxMhz = cpuInfo[0].Mhz
	}
	if physical, err := cpu.CountsWithContext(ctx, false); err == nil {
		f.CpuCoresPhysical = physical
	}
	if logical, err := cpu.CountsWithContext(ctx, true); err == nil {
		f.CpuCoresLogical = logical
	}
	f.IsServerCpu = isServerCPUModel(f.CpuModel)
	f.HasEcc = f.IsServerCpu // ECC presence is not directly queryable cross-platform; server CPUs are the strongest proxy available without vendor tooling.
	f.CpuTdpWatts = inferCPUTdp(f.CpuModel)

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		f.RamTotalGb = float64(vm.Total) / (1024 * 1024 * 1024)
	}

	extractGPUFeatures(&f)
	extractStorageFeatures(ctx, &f)
	extractPlatformFeatures(ctx, &f)
	extractNetworkFeatures(ctx, &f)

	return f, nil
}

// extractGPUFeatures reuses the GPU Backends component (§4.2) rather than
// re-probing vendor drivers a second time; the inference engine only needs
// the static info of the first detected device plus the device count.
func extractGPUFeatures(f *entities.HardwareFeatures) {
	collection, err := gpu.AutoDetect()
	if err != nil || collection.DeviceCount() == 0 {
		return
	}
	f.GpuCount = collection.DeviceCount()
	f.HasDiscreteGpu = true
	static, err := collection.StaticInfo(0)
	if err != nil {
		return
	}
	f.GpuModel = static.Name
	f.GpuVramGb = float64(static.MemoryTotal) / (1024 * 1024 * 1024)
	lower := strings.ToLower(static.Name)
	f.HasTensorCores = strings.Contains(lower, "rtx") || strings.Contains(lower, "a100") || strings.Contains(lower, "h100") || strings.Contains(lower, "v100")
	f.HasRtCores = strings.Contains(lower, "rtx")
	f.GpuTdpWatts = inferGPUTdp(static.Name)
}

func extractStorageFeatures(ctx context.Context, f *entities.HardwareFeatures) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return
	}
	var totalGb float64
	for _, p := range partitions {
		if usage, err := disk.UsageWithContext(ctx, p.Mountpoint); err == nil {
			totalGb += float64(usage.Total) / (1024 * 1024 * 1024)
		}
		fstype := strings.ToLower(p.Fstype)
		if fstype == "nvme" || strings.Contains(p.Device, "nvme") {
			f.HasNvme = true
			f.HasSsd = true
		}
	}
	f.StorageTotalGb = totalGb
	if f.HasNvme {
		f.BootDriveType = "nvme"
	} else if f.HasSsd {
		f.BootDriveType = "ssd"
	} else {
		f.BootDriveType = "unknown"
	}
}

func extractPlatformFeatures(ctx context.Context, f *entities.HardwareFeatures) {
	f.HasBattery = battery.HasReadableBattery()
	if info, err := host.InfoWithContext(ctx); err == nil {
		f.IsVirtual = info.VirtualizationSystem != ""
	}
	f.ChassisType = readChassisType()
	if f.NumaNodes == 0 {
		f.NumaNodes = 1
	}
}

func extractNetworkFeatures(ctx context.Context, f *entities.HardwareFeatures) {
	ifaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return
	}
	count := 0
	for _, iface := range ifaces {
		if strings.Contains(iface.Name, "lo") {
			continue
		}
		count++
	}
	f.NicCount = count
	if f.MaxNicGbps == 0 && count > 0 {
		f.MaxNicGbps = 1.0 // conservative default absent a link-speed source
	}
}

// isServerCPUModel matches the model string against the same substrings the
// reference classifier keys "server-class" off: Xeon, EPYC, and similar
// datacenter lines rather than desktop/mobile SKUs.
func isServerCPUModel(model string) bool {
	lower := strings.ToLower(model)
	for _, token := range []string{"xeon", "epyc", "threadripper", "platinum", "gold", "silver"} {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
