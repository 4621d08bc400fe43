package inference

import (
	"fmt"

	"github.com/coreprobe/sysmon/entities"
)

func detectBottlenecks(f entities.HardwareFeatures) []entities.Bottleneck {
	var bottlenecks []entities.Bottleneck

	if f.HasDiscreteGpu && f.CpuCoresPhysical <= 4 && f.GpuVramGb >= 8.0 {
		bottlenecks = append(bottlenecks, entities.Bottleneck{
			Type:      entities.BottleneckCpu,
			Component: "CPU",
			Severity:  70,
			Reason: fmt.Sprintf("Only %d CPU cores paired with %dGB GPU — CPU will bottleneck GPU-intensive tasks",
				f.CpuCoresPhysical, int(f.GpuVramGb)),
			Confidence: 0.75,
		})
	}

	if f.HasDiscreteGpu && f.GpuVramGb >= 8.0 && f.RamTotalGb < 16.0 {
		bottlenecks = append(bottlenecks, entities.Bottleneck{
			Type:      entities.BottleneckMemory,
			Component: "System RAM",
			Severity:  60,
			Reason: fmt.Sprintf("%.0fGB RAM is insufficient for GPU workloads with %dGB VRAM",
				f.RamTotalGb, int(f.GpuVramGb)),
			Confidence: 0.7,
		})
	}

	if f.CpuCoresPhysical >= 8 && f.RamTotalGb < 16.0 {
		bottlenecks = append(bottlenecks, entities.Bottleneck{
			Type:      entities.BottleneckMemory,
			Component: "System RAM",
			Severity:  55,
			Reason: fmt.Sprintf("%.0fGB RAM for %d cores — should have at least 2GB/core",
				f.RamTotalGb, f.CpuCoresPhysical),
			Confidence: 0.65,
		})
	}

	if !f.HasSsd && !f.HasNvme {
		bottlenecks = append(bottlenecks, entities.Bottleneck{
			Type:       entities.BottleneckStorage,
			Component:  "Storage",
			Severity:   80,
			Reason:     "No SSD detected — HDD will severely bottleneck modern workloads",
			Confidence: 0.85,
		})
	}

	if f.CpuCoresPhysical >= 16 && f.HasSsd && !f.HasNvme {
		bottlenecks = append(bottlenecks, entities.Bottleneck{
			Type:       entities.BottleneckStorage,
			Component:  "Storage bus",
			Severity:   40,
			Reason:     "High-core-count CPU with SATA SSD — NVMe would reduce I/O bottleneck",
			Confidence: 0.6,
		})
	}

	if f.IsServerCpu && f.MaxNicGbps < 10.0 {
		bottlenecks = append(bottlenecks, entities.Bottleneck{
			Type:       entities.BottleneckNetwork,
			Component:  "Network",
			Severity:   45,
			Reason:     fmt.Sprintf("Server CPU with only %.0f Gbps NIC — consider 10/25 GbE", f.MaxNicGbps),
			Confidence: 0.5,
		})
	}

	return bottlenecks
}
