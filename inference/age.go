package inference

import (
	"fmt"
	"time"

	"github.com/coreprobe/sysmon/entities"
)

// estimateHardwareAge pattern-matches the CPU and GPU model strings against a
// fixed generation-to-year lookup (tdp.go) and averages whichever years are
// known. Unlike the reference engine, which hardcodes its "current year" at
// build time, this uses the real wall-clock year so the estimate stays
// correct as the agent ages in the field.
func estimateHardwareAge(f entities.HardwareFeatures) entities.HardwareAge {
	currentYear := time.Now().Year()

	cpuYear, cpuKnown := inferCPUYear(f.CpuModel)
	gpuYear, gpuKnown := inferGPUYear(f.GpuModel)

	switch {
	case cpuKnown && gpuKnown:
		mean := float64(cpuYear+gpuYear) / 2.0
		age := float64(currentYear) - mean
		if age < 0 {
			age = 0
		}
		return entities.HardwareAge{
			CpuYear: &cpuYear, GpuYear: &gpuYear,
			EstimatedAgeYears: age, Confidence: 0.85,
			Reasoning: fmt.Sprintf("CPU identified as %d generation, GPU as %d generation", cpuYear, gpuYear),
		}
	case cpuKnown:
		age := float64(currentYear - cpuYear)
		if age < 0 {
			age = 0
		}
		return entities.HardwareAge{
			CpuYear: &cpuYear,
			EstimatedAgeYears: age, Confidence: 0.65,
			Reasoning: fmt.Sprintf("CPU identified as %d generation, GPU generation unknown", cpuYear),
		}
	case gpuKnown:
		age := float64(currentYear - gpuYear)
		if age < 0 {
			age = 0
		}
		return entities.HardwareAge{
			GpuYear: &gpuYear,
			EstimatedAgeYears: age, Confidence: 0.65,
			Reasoning: fmt.Sprintf("GPU identified as %d generation, CPU generation unknown", gpuYear),
		}
	default:
		return entities.HardwareAge{
			EstimatedAgeYears: guessAgeFromSpecs(f),
			Confidence:        0.3,
			Reasoning:         "Neither CPU nor GPU model matched a known generation; estimated from general specs",
		}
	}
}

func guessAgeFromSpecs(f entities.HardwareFeatures) float64 {
	switch {
	case f.CpuCoresPhysical >= 16 && f.HasNvme:
		return 1.0
	case f.CpuCoresPhysical >= 8 && f.HasSsd:
		return 3.0
	case f.CpuCoresPhysical >= 4:
		return 5.0
	default:
		return 7.0
	}
}
