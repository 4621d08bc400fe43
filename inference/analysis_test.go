//go:build testing

package inference

import (
	"testing"

	"github.com/coreprobe/sysmon/entities"
	"github.com/stretchr/testify/assert"
)

func TestFullAnalysisServerClassification(t *testing.T) {
	f := entities.HardwareFeatures{
		CpuCoresPhysical: 64,
		CpuCoresLogical:  128,
		IsServerCpu:      true,
		HasEcc:           true,
		RamTotalGb:       512.0,
		NumaNodes:        2,
		ChassisType:      "Server",
		HasBattery:       false,
		HasSsd:           true,
		HasNvme:          true,
		StorageTotalGb:   4000.0,
		MaxNicGbps:       25.0,
		NicCount:         2,
	}

	report := FullAnalysis(f)

	assert.Equal(t, entities.ClassServer, report.Classification)
	assert.GreaterOrEqual(t, report.PerformanceTier, entities.TierHigh)

	var virtScore float64
	for _, w := range report.WorkloadSuitability {
		if w.Workload == entities.WorkloadVirtualization {
			virtScore = w.Score
		}
	}
	assert.GreaterOrEqual(t, virtScore, 70.0)
}

func TestFullAnalysisGamingDesktopClassification(t *testing.T) {
	f := entities.HardwareFeatures{
		CpuCoresPhysical: 8,
		CpuCoresLogical:  16,
		CpuMaxMhz:        5000,
		RamTotalGb:       32.0,
		HasDiscreteGpu:   true,
		GpuModel:         "RTX 4070 Ti",
		GpuVramGb:        12.0,
		HasRtCores:       true,
		HasNvme:          true,
		HasSsd:           true,
		StorageTotalGb:   2000.0,
		HasBattery:       false,
	}

	report := FullAnalysis(f)

	assert.Contains(t,
		[]entities.SystemClass{entities.ClassGamingDesktop, entities.ClassDesktop, entities.ClassWorkstation},
		report.Classification,
	)
	assert.GreaterOrEqual(t, report.PerformanceTier, entities.TierMidHigh)
	assert.GreaterOrEqual(t, report.PerformanceScore, 50.0)
}

func TestFullAnalysisFingerprintStable(t *testing.T) {
	f := entities.HardwareFeatures{
		CpuModel:       "Intel Core i7-13700K",
		CpuCoresLogical: 24,
		RamTotalGb:     32.0,
		GpuModel:       "RTX 4070",
		GpuVramGb:      12.0,
		HasNvme:        true,
		StorageTotalGb: 2000.0,
	}

	first := computeFingerprint(f)
	second := computeFingerprint(f)
	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestDetectBottlenecksNoSsdIsHighSeverity(t *testing.T) {
	f := entities.HardwareFeatures{
		CpuCoresPhysical: 4,
		RamTotalGb:       16.0,
	}
	bottlenecks := detectBottlenecks(f)
	assert.NotEmpty(t, bottlenecks)
	assert.Equal(t, entities.BottleneckStorage, bottlenecks[0].Type)
	assert.Equal(t, 80, bottlenecks[0].Severity)
}

func TestEstimateHardwareAgeUnknownModelsFallBackToSpecGuess(t *testing.T) {
	f := entities.HardwareFeatures{
		CpuModel:         "Unknown Custom Silicon",
		CpuCoresPhysical: 16,
		HasNvme:          true,
	}
	age := estimateHardwareAge(f)
	assert.Nil(t, age.CpuYear)
	assert.Nil(t, age.GpuYear)
	assert.InDelta(t, 1.0, age.EstimatedAgeYears, 0.01)
	assert.InDelta(t, 0.3, age.Confidence, 0.001)
}
