package inference

import "github.com/coreprobe/sysmon/entities"

// FullAnalysis runs the complete hardware inference pipeline over an already
// extracted feature set: classification, performance tiering, bottleneck
// detection, workload scoring, age estimation, thermal analysis, upgrade
// suggestions, anomaly detection, and fingerprinting, in that order since
// several later stages (thermal, anomalies) consult the classification.
func FullAnalysis(f entities.HardwareFeatures) entities.HardwareAnalysisReport {
	class, classScore := classifySystem(f)
	tier, tierScore := computePerformanceTier(f)
	bottlenecks := detectBottlenecks(f)
	workloads := scoreWorkloads(f)
	age := estimateHardwareAge(f)
	thermal := analyzeThermalEnvelope(f, class)
	upgrades := suggestUpgrades(f, bottlenecks)
	anomalies := detectAnomalies(f, class)
	fingerprint := computeFingerprint(f)

	return entities.HardwareAnalysisReport{
		Classification:         class,
		ClassificationScore:    classScore,
		PerformanceTier:        tier,
		PerformanceScore:       tierScore,
		Bottlenecks:            bottlenecks,
		WorkloadSuitability:    workloads,
		Age:                    age,
		Thermal:                thermal,
		UpgradeRecommendations: upgrades,
		Anomalies:              anomalies,
		Fingerprint:            fingerprint,
	}
}
