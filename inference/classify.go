package inference

import (
	"sort"
	"strings"

	"github.com/coreprobe/sysmon/entities"
)

type classScore struct {
	class entities.SystemClass
	score float64
}

// classifySystem picks the highest-scoring SystemClass from a set of
// independent heuristics; each heuristic contributes a confidence in [0,1]
// and only clears its own minimum bar before entering the race.
func classifySystem(f entities.HardwareFeatures) (entities.SystemClass, float64) {
	var scores []classScore

	if f.IsVirtual {
		scores = append(scores, classScore{entities.ClassVirtualMachine, 0.95})
	}

	serverScore := 0.0
	if f.IsServerCpu {
		serverScore += 0.35
	}
	if f.HasEcc {
		serverScore += 0.2
	}
	if f.CpuCoresPhysical >= 16 {
		serverScore += 0.15
	}
	if f.RamTotalGb >= 64.0 {
		serverScore += 0.1
	}
	if f.NumaNodes >= 2 {
		serverScore += 0.15
	}
	if strings.Contains(f.ChassisType, "Server") {
		serverScore += 0.3
	}
	if !f.HasBattery {
		serverScore += 0.05
	}
	if f.NicCount >= 2 {
		serverScore += 0.1
	}
	serverScore = min(serverScore, 0.95)
	if serverScore > 0.3 {
		scores = append(scores, classScore{entities.ClassServer, serverScore})
	}

	laptopScore := 0.0
	if f.HasBattery {
		laptopScore += 0.4
	}
	if strings.Contains(f.ChassisType, "Laptop") {
		laptopScore += 0.3
	}
	if f.CpuCoresPhysical <= 8 {
		laptopScore += 0.05
	}
	if f.RamTotalGb <= 32.0 {
		laptopScore += 0.05
	}
	laptopScore = min(laptopScore, 0.95)
	if laptopScore > 0.3 {
		gpuLower := strings.ToLower(f.GpuModel)
		switch {
		case f.HasDiscreteGpu && (strings.Contains(gpuLower, "rtx") || strings.Contains(gpuLower, "rx ")):
			scores = append(scores, classScore{entities.ClassGamingLaptop, laptopScore * 0.9})
		case f.RamTotalGb <= 16.0 && f.CpuCoresPhysical <= 4:
			scores = append(scores, classScore{entities.ClassUltrabook, laptopScore * 0.8})
		default:
			scores = append(scores, classScore{entities.ClassLaptop, laptopScore})
		}
	}

	if !f.HasBattery && !f.IsVirtual && !strings.Contains(f.ChassisType, "Server") {
		gpuLower := strings.ToLower(f.GpuModel)
		isGamingGpu := strings.Contains(gpuLower, "rtx") || strings.Contains(gpuLower, "gtx") ||
			strings.Contains(gpuLower, "rx 6") || strings.Contains(gpuLower, "rx 7")
		switch {
		case f.IsServerCpu || f.RamTotalGb >= 64.0:
			scores = append(scores, classScore{entities.ClassWorkstation, 0.6})
		case isGamingGpu:
			scores = append(scores, classScore{entities.ClassGamingDesktop, 0.6})
		default:
			scores = append(scores, classScore{entities.ClassDesktop, 0.5})
		}
	}

	if f.CpuCoresPhysical <= 4 && f.RamTotalGb <= 4.0 {
		model := strings.ToLower(f.CpuModel)
		if strings.Contains(model, "arm") || strings.Contains(model, "cortex") || strings.Contains(model, "tegra") {
			scores = append(scores, classScore{entities.ClassEmbedded, 0.8})
		}
	}

	if strings.Contains(f.ChassisType, "Mini") {
		scores = append(scores, classScore{entities.ClassMiniPc, 0.7})
	}

	if len(scores) == 0 {
		return entities.ClassUnknown, 0.0
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	return scores[0].class, scores[0].score
}
