package inference

import "github.com/coreprobe/sysmon/entities"

// computePerformanceTier sums points for CPU, RAM, GPU, storage, and network
// (at most 1100 in total), divides the sum by 10 into a 0-100 score capped
// at 100, and buckets that score into a PerformanceTier.
func computePerformanceTier(f entities.HardwareFeatures) (entities.PerformanceTier, float64) {
	score := 0

	switch {
	case f.CpuCoresPhysical <= 1:
		score += 10
	case f.CpuCoresPhysical == 2:
		score += 30
	case f.CpuCoresPhysical <= 4:
		score += 80
	case f.CpuCoresPhysical <= 6:
		score += 120
	case f.CpuCoresPhysical <= 8:
		score += 160
	case f.CpuCoresPhysical <= 12:
		score += 200
	case f.CpuCoresPhysical <= 16:
		score += 250
	case f.CpuCoresPhysical <= 24:
		score += 280
	case f.CpuCoresPhysical <= 32:
		score += 300
	default:
		score += 350
	}

	switch {
	case f.CpuMaxMhz <= 1500:
		score += 0
	case f.CpuMaxMhz <= 2500:
		score += 10
	case f.CpuMaxMhz <= 3500:
		score += 25
	case f.CpuMaxMhz <= 4500:
		score += 40
	default:
		score += 50
	}

	ram := int(f.RamTotalGb)
	switch {
	case ram <= 2:
		score += 5
	case ram <= 4:
		score += 20
	case ram <= 8:
		score += 50
	case ram <= 16:
		score += 80
	case ram <= 32:
		score += 120
	case ram <= 64:
		score += 160
	case ram <= 128:
		score += 180
	default:
		score += 200
	}

	if f.HasDiscreteGpu {
		score += 50
		vram := int(f.GpuVramGb)
		switch {
		case vram <= 2:
			score += 10
		case vram <= 4:
			score += 40
		case vram <= 8:
			score += 80
		case vram <= 12:
			score += 120
		case vram <= 16:
			score += 160
		case vram <= 24:
			score += 200
		default:
			score += 250
		}
		if f.HasTensorCores {
			score += 30
		}
		if f.HasRtCores {
			score += 20
		}
	}

	if f.HasNvme {
		score += 60
	} else if f.HasSsd {
		score += 30
	}
	storage := int(f.StorageTotalGb)
	switch {
	case storage <= 128:
		score += 5
	case storage <= 512:
		score += 15
	case storage <= 2048:
		score += 25
	default:
		score += 40
	}

	// Mirrors the reference engine's exact-match switch: any speed other than
	// 0/1/10/25 Gbps (even a value below 10) scores the "40Gbps+" bucket.
	switch nic := int(f.MaxNicGbps); nic {
	case 0:
		score += 0
	case 1:
		score += 15
	case 10:
		score += 30
	case 25:
		score += 40
	default:
		score += 50
	}

	normalized := float64(score) / 1000.0 * 100.0
	if normalized > 100.0 {
		normalized = 100.0
	}

	var tier entities.PerformanceTier
	switch {
	case normalized <= 10:
		tier = entities.TierUltraLow
	case normalized <= 25:
		tier = entities.TierLow
	case normalized <= 35:
		tier = entities.TierMidLow
	case normalized <= 50:
		tier = entities.TierMid
	case normalized <= 65:
		tier = entities.TierMidHigh
	case normalized <= 80:
		tier = entities.TierHigh
	case normalized <= 90:
		tier = entities.TierUltra
	default:
		tier = entities.TierDatacenter
	}

	return tier, normalized
}
