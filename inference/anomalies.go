package inference

import (
	"fmt"

	"github.com/coreprobe/sysmon/entities"
)

// detectAnomalies flags configuration combinations that are unusual without
// necessarily being broken. Every rule here emits Info or Warning only — none
// of the detectable combinations in this feature set rise to Critical.
func detectAnomalies(f entities.HardwareFeatures, class entities.SystemClass) []entities.HardwareAnomaly {
	var anomalies []entities.HardwareAnomaly

	if f.HasDiscreteGpu && f.GpuVramGb >= 16.0 && f.RamTotalGb < 16.0 {
		anomalies = append(anomalies, entities.HardwareAnomaly{
			Description: "High-VRAM GPU paired with low system RAM",
			Severity:    entities.HwAnomalyWarning,
			Explanation: fmt.Sprintf("%.0fGB VRAM GPU alongside only %.0fGB system RAM is an unusual pairing", f.GpuVramGb, f.RamTotalGb),
		})
	}

	isLaptopClass := class == entities.ClassLaptop || class == entities.ClassGamingLaptop || class == entities.ClassUltrabook
	if isLaptopClass && f.IsServerCpu {
		anomalies = append(anomalies, entities.HardwareAnomaly{
			Description: "Server-class CPU detected in a laptop chassis",
			Severity:    entities.HwAnomalyInfo,
			Explanation: fmt.Sprintf("%s is typically found in servers, not laptops", f.CpuModel),
		})
	}

	if f.HasDiscreteGpu && f.GpuVramGb > f.RamTotalGb {
		anomalies = append(anomalies, entities.HardwareAnomaly{
			Description: "GPU VRAM exceeds system RAM",
			Severity:    entities.HwAnomalyWarning,
			Explanation: fmt.Sprintf("%.0fGB VRAM is more than the %.0fGB of system RAM available", f.GpuVramGb, f.RamTotalGb),
		})
	}

	if f.CpuCoresPhysical >= 32 && f.CpuMaxMhz > 0 && f.CpuMaxMhz < 2500 {
		anomalies = append(anomalies, entities.HardwareAnomaly{
			Description: "Many cores but low clock speed",
			Severity:    entities.HwAnomalyInfo,
			Explanation: fmt.Sprintf("%d cores at only %.0fMHz suggests a density-optimized server part", f.CpuCoresPhysical, f.CpuMaxMhz),
		})
	}

	if f.CpuCoresPhysical >= 8 && f.RamTotalGb >= 32.0 && !f.HasDiscreteGpu {
		anomalies = append(anomalies, entities.HardwareAnomaly{
			Description: "Powerful CPU and RAM with no discrete GPU",
			Severity:    entities.HwAnomalyInfo,
			Explanation: "This configuration suggests a headless compute or server role rather than workstation use",
		})
	}

	if f.StorageTotalGb >= 10000.0 && f.MaxNicGbps > 0 && f.MaxNicGbps < 10.0 {
		anomalies = append(anomalies, entities.HardwareAnomaly{
			Description: "Large storage capacity behind a slow network link",
			Severity:    entities.HwAnomalyWarning,
			Explanation: fmt.Sprintf("%.0fGB of storage is hard to use as a network share over a sub-10Gbps NIC", f.StorageTotalGb),
		})
	}

	return anomalies
}
