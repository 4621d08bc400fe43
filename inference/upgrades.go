package inference

import (
	"fmt"
	"sort"

	"github.com/coreprobe/sysmon/entities"
)

// suggestUpgrades turns detected bottlenecks and a few standalone
// RAM/storage checks into ranked recommendations, highest priority first.
func suggestUpgrades(f entities.HardwareFeatures, bottlenecks []entities.Bottleneck) []entities.UpgradeRecommendation {
	var recs []entities.UpgradeRecommendation

	if f.RamTotalGb < 8.0 {
		recs = append(recs, entities.UpgradeRecommendation{
			Component:      "RAM",
			Current:        fmt.Sprintf("%.0fGB", f.RamTotalGb),
			Recommended:    "16GB or more",
			Description:    "Low RAM limits multitasking and can force swapping under load",
			ExpectedImpact: "Smoother multitasking, fewer swap stalls",
			Priority:       9,
			CostTier:       1,
		})
	} else if f.RamTotalGb < 16.0 && f.HasDiscreteGpu {
		recs = append(recs, entities.UpgradeRecommendation{
			Component:      "RAM",
			Current:        fmt.Sprintf("%.0fGB", f.RamTotalGb),
			Recommended:    "32GB or more",
			Description:    "GPU-heavy workloads benefit from matching system RAM headroom",
			ExpectedImpact: "Reduced stalls when staging data for the GPU",
			Priority:       7,
			CostTier:       1,
		})
	}

	if !f.HasSsd && !f.HasNvme {
		recs = append(recs, entities.UpgradeRecommendation{
			Component:      "Storage",
			Current:        "HDD",
			Recommended:    "NVMe SSD",
			Description:    "Spinning disks are the single largest bottleneck in a modern system",
			ExpectedImpact: "Dramatically faster boot, app launch, and file I/O",
			Priority:       10,
			CostTier:       2,
		})
	} else if f.HasSsd && !f.HasNvme && f.CpuCoresPhysical >= 16 {
		recs = append(recs, entities.UpgradeRecommendation{
			Component:      "Storage",
			Current:        "SATA SSD",
			Recommended:    "NVMe SSD",
			Description:    "NVMe offers several times the throughput and much lower latency than SATA",
			ExpectedImpact: "Faster large file transfers and sustained I/O",
			Priority:       5,
			CostTier:       2,
		})
	}

	for _, b := range bottlenecks {
		if b.Severity <= 50 {
			continue
		}
		switch b.Type {
		case entities.BottleneckCpu:
			recs = append(recs, entities.UpgradeRecommendation{
				Component:      "CPU",
				Current:        f.CpuModel,
				Recommended:    "Higher core count or newer generation CPU",
				Description:    b.Reason,
				ExpectedImpact: "Removes the CPU ceiling on GPU-bound workloads",
				Priority:       b.Severity / 10,
				CostTier:       3,
			})
		case entities.BottleneckMemory:
			recs = append(recs, entities.UpgradeRecommendation{
				Component:      "RAM",
				Current:        fmt.Sprintf("%.0fGB", f.RamTotalGb),
				Recommended:    "Add more RAM",
				Description:    b.Reason,
				ExpectedImpact: "Reduces swapping and caching pressure",
				Priority:       b.Severity / 10,
				CostTier:       1,
			})
		case entities.BottleneckNetwork:
			recs = append(recs, entities.UpgradeRecommendation{
				Component:      "Network",
				Current:        fmt.Sprintf("%.0f Gbps", f.MaxNicGbps),
				Recommended:    "10 GbE or faster NIC",
				Description:    b.Reason,
				ExpectedImpact: "Removes network as a throughput ceiling",
				Priority:       b.Severity / 10,
				CostTier:       2,
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority > recs[j].Priority })
	return recs
}
