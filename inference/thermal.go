package inference

import "github.com/coreprobe/sysmon/entities"

// boardBudgetWatts accounts for motherboard, RAM, and disk draw not captured
// by the per-component CPU/GPU TDP lookups.
const boardBudgetWatts = 30.0

// analyzeThermalEnvelope derives a total system TDP from the CPU/GPU model
// lookups and classifies available cooling headroom against chassis type.
func analyzeThermalEnvelope(f entities.HardwareFeatures, class entities.SystemClass) entities.ThermalEnvelope {
	cpuTdp := f.CpuTdpWatts
	gpuTdp := f.GpuTdpWatts
	total := cpuTdp + gpuTdp + boardBudgetWatts

	var headroom entities.ThermalHeadroom
	switch class {
	case entities.ClassLaptop, entities.ClassGamingLaptop, entities.ClassUltrabook:
		switch {
		case total > 150:
			headroom = entities.ThermalInsufficient
		case total > 100:
			headroom = entities.ThermalMarginal
		case total > 60:
			headroom = entities.ThermalAdequate
		default:
			headroom = entities.ThermalAmple
		}
	case entities.ClassMiniPc:
		if total > 120 {
			headroom = entities.ThermalMarginal
		} else {
			headroom = entities.ThermalAdequate
		}
	default:
		if total > 500 {
			headroom = entities.ThermalMarginal
		} else {
			headroom = entities.ThermalAmple
		}
	}

	var coolingScore int
	switch headroom {
	case entities.ThermalAmple:
		coolingScore = 90
	case entities.ThermalAdequate:
		coolingScore = 70
	case entities.ThermalMarginal:
		coolingScore = 40
	case entities.ThermalInsufficient:
		coolingScore = 15
	default:
		coolingScore = 50
	}

	var recommendations []string
	if headroom == entities.ThermalInsufficient || headroom == entities.ThermalMarginal {
		recommendations = append(recommendations, "Improve cooling: additional fans, repaste, or a larger heatsink")
	}
	isLaptopClass := class == entities.ClassLaptop || class == entities.ClassGamingLaptop || class == entities.ClassUltrabook
	if isLaptopClass && gpuTdp >= 100 {
		recommendations = append(recommendations, "High-TDP GPU in a laptop chassis is prone to thermal throttling under sustained load")
	}

	return entities.ThermalEnvelope{
		EstimatedTotalTdpWatts: total,
		CpuTdpWatts:            cpuTdp,
		GpuTdpWatts:            gpuTdp,
		Headroom:               headroom,
		CoolingScore:           coolingScore,
		Recommendations:        recommendations,
	}
}
