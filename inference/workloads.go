package inference

import (
	"fmt"
	"sort"

	"github.com/coreprobe/sysmon/entities"
)

// scoreWorkloads runs each workload through an independent 0-100 point
// rubric built from weighted feature checks, covering the base set the
// reference engine implements plus four siblings (Rendering3D,
// ScientificComputing, MediaStreaming, NetworkAppliance) extending the same
// additive-rubric style to workloads the original left unscored.
func scoreWorkloads(f entities.HardwareFeatures) []entities.WorkloadSuitability {
	results := []entities.WorkloadSuitability{
		scoreMlTraining(f),
		scoreMlInference(f),
		scoreGaming(f),
		scoreVideoEditing(f),
		scoreCompilation(f),
		scoreWebServer(f),
		scoreDatabaseServer(f),
		scoreVirtualization(f),
		scoreOfficeProductivity(f),
		scoreRendering3D(f),
		scoreScientificComputing(f),
		scoreMediaStreaming(f),
		scoreNetworkAppliance(f),
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}

func clampScore(score int) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return float64(score)
}

func scoreMlTraining(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	if f.HasTensorCores {
		score += 30
		strengths = append(strengths, "Tensor cores available")
	}
	switch {
	case f.GpuVramGb >= 24.0:
		score += 25
		strengths = append(strengths, fmt.Sprintf("%.0fGB VRAM for large models", f.GpuVramGb))
	case f.GpuVramGb >= 12.0:
		score += 15
	case f.GpuVramGb >= 8.0:
		score += 8
		limiting = append(limiting, "Limited VRAM for large models")
	default:
		limiting = append(limiting, "Insufficient VRAM for ML training")
	}
	switch {
	case f.RamTotalGb >= 64.0:
		score += 15
	case f.RamTotalGb >= 32.0:
		score += 10
	default:
		limiting = append(limiting, "RAM may limit dataset size")
	}
	if f.HasNvme {
		score += 10
	}
	if f.CpuCoresPhysical >= 8 {
		score += 10
	}
	if f.GpuCount > 1 {
		score += 10
		strengths = append(strengths, "Multi-GPU available")
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadMlTraining, Score: clampScore(score), Confidence: 0.7,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

func scoreMlInference(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	if f.HasDiscreteGpu {
		score += 30
		strengths = append(strengths, "Discrete GPU")
	}
	if f.GpuVramGb >= 8.0 {
		score += 20
	}
	if f.HasTensorCores {
		score += 15
	}
	if f.CpuCoresPhysical >= 4 {
		score += 15
	}
	if f.RamTotalGb >= 16.0 {
		score += 10
	}
	if f.HasNvme {
		score += 10
	}
	if !f.HasDiscreteGpu {
		limiting = append(limiting, "No discrete GPU — CPU inference only")
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadMlInference, Score: clampScore(score), Confidence: 0.75,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

func scoreGaming(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	switch {
	case f.HasDiscreteGpu && f.GpuVramGb >= 8.0:
		score += 35
		strengths = append(strengths, fmt.Sprintf("Discrete GPU with %.0fGB VRAM", f.GpuVramGb))
	case f.HasDiscreteGpu:
		score += 15
	default:
		limiting = append(limiting, "No discrete GPU")
	}
	if f.HasRtCores {
		score += 10
		strengths = append(strengths, "Ray tracing support")
	}
	switch {
	case f.CpuMaxMhz >= 4000:
		score += 15
		strengths = append(strengths, "High CPU clock speed")
	case f.CpuMaxMhz >= 3000:
		score += 10
	}
	if f.RamTotalGb >= 16.0 {
		score += 10
	} else {
		limiting = append(limiting, "< 16GB RAM")
	}
	if f.HasNvme {
		score += 10
	}
	if f.CpuCoresPhysical >= 6 {
		score += 10
	}
	if f.HasSsd {
		score += 10
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadGaming, Score: clampScore(score), Confidence: 0.8,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

func scoreVideoEditing(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	if f.HasDiscreteGpu {
		score += 20
	}
	switch {
	case f.CpuCoresPhysical >= 8:
		score += 20
		strengths = append(strengths, "Multi-core for rendering")
	case f.CpuCoresPhysical >= 6:
		score += 15
	}
	switch {
	case f.RamTotalGb >= 32.0:
		score += 20
		strengths = append(strengths, "Plenty of RAM for timelines")
	case f.RamTotalGb >= 16.0:
		score += 10
	default:
		limiting = append(limiting, "< 16GB RAM limits timeline length")
	}
	if f.HasNvme {
		score += 15
		strengths = append(strengths, "NVMe for fast media reads")
	}
	if f.StorageTotalGb >= 2000.0 {
		score += 10
	} else {
		limiting = append(limiting, "Limited storage for large projects")
	}
	if f.GpuVramGb >= 8.0 {
		score += 15
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadVideoEditing, Score: clampScore(score), Confidence: 0.7,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

func scoreCompilation(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	switch {
	case f.CpuCoresPhysical >= 16:
		score += 35
		strengths = append(strengths, "Many cores for parallel builds")
	case f.CpuCoresPhysical >= 8:
		score += 25
	case f.CpuCoresPhysical >= 4:
		score += 15
	default:
		limiting = append(limiting, "Few cores — slow parallel builds")
	}
	switch {
	case f.RamTotalGb >= 32.0:
		score += 25
	case f.RamTotalGb >= 16.0:
		score += 15
	}
	switch {
	case f.HasNvme:
		score += 20
		strengths = append(strengths, "Fast build I/O with NVMe")
	case f.HasSsd:
		score += 10
	}
	if f.CpuMaxMhz >= 4000 {
		score += 10
	}
	if f.StorageTotalGb >= 512.0 {
		score += 10
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadCompilation, Score: clampScore(score), Confidence: 0.8,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

func scoreWebServer(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	switch {
	case f.CpuCoresPhysical >= 8:
		score += 25
	case f.CpuCoresPhysical >= 4:
		score += 15
	}
	if f.RamTotalGb >= 16.0 {
		score += 20
	}
	switch {
	case f.MaxNicGbps >= 10.0:
		score += 25
		strengths = append(strengths, "10+ GbE networking")
	case f.MaxNicGbps >= 1.0:
		score += 10
	default:
		limiting = append(limiting, "Slow network")
	}
	if f.HasNvme {
		score += 15
	}
	if f.NicCount >= 2 {
		score += 10
		strengths = append(strengths, "Multiple NICs for redundancy")
	}
	if f.IsServerCpu {
		score += 5
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadWebServer, Score: clampScore(score), Confidence: 0.65,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

func scoreDatabaseServer(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	switch {
	case f.RamTotalGb >= 64.0:
		score += 30
		strengths = append(strengths, "Large RAM for caching")
	case f.RamTotalGb >= 32.0:
		score += 20
	default:
		limiting = append(limiting, "RAM limits index caching")
	}
	switch {
	case f.HasNvme:
		score += 25
		strengths = append(strengths, "NVMe for fast IOPS")
	case f.HasSsd:
		score += 15
	default:
		limiting = append(limiting, "HDD severely limits database IOPS")
	}
	if f.CpuCoresPhysical >= 8 {
		score += 20
	}
	if f.StorageTotalGb >= 2000.0 {
		score += 15
	}
	if f.HasEcc {
		score += 10
		strengths = append(strengths, "ECC memory for data integrity")
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadDatabaseServer, Score: clampScore(score), Confidence: 0.65,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

func scoreVirtualization(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	switch {
	case f.CpuCoresPhysical >= 16:
		score += 30
		strengths = append(strengths, "Many cores for VMs")
	case f.CpuCoresPhysical >= 8:
		score += 15
	default:
		limiting = append(limiting, "Few cores limits VM density")
	}
	switch {
	case f.RamTotalGb >= 128.0:
		score += 30
	case f.RamTotalGb >= 64.0:
		score += 20
		strengths = append(strengths, "Good RAM for VMs")
	case f.RamTotalGb >= 32.0:
		score += 10
	default:
		limiting = append(limiting, "Limited RAM for virtual machines")
	}
	if f.HasNvme {
		score += 15
	}
	if f.NumaNodes >= 2 {
		score += 10
		strengths = append(strengths, "NUMA for VM pinning")
	}
	if f.IsServerCpu {
		score += 10
	}
	if f.StorageTotalGb >= 2000.0 {
		score += 5
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadVirtualization, Score: clampScore(score), Confidence: 0.7,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

func scoreOfficeProductivity(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 50
	var limiting []string

	if f.CpuCoresPhysical >= 4 {
		score += 15
	}
	if f.RamTotalGb >= 8.0 {
		score += 15
	} else {
		limiting = append(limiting, "< 8GB RAM may cause slowdowns")
	}
	if f.HasSsd {
		score += 15
	} else {
		limiting = append(limiting, "HDD makes boot and app launch slow")
	}
	if f.CpuCoresPhysical < 2 || f.RamTotalGb < 4.0 {
		score -= 30
		if score < 0 {
			score = 0
		}
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadOfficeProductivity, Score: clampScore(score), Confidence: 0.9,
		LimitingFactors: limiting,
	}
}

// scoreRendering3D extends the base rubric set: offline 3D rendering leans
// on the same discrete-GPU/VRAM/RAM signals as video editing and adds a
// bonus for RT cores.
func scoreRendering3D(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	if f.HasDiscreteGpu {
		score += 20
	} else {
		limiting = append(limiting, "No discrete GPU for render acceleration")
	}
	switch {
	case f.GpuVramGb >= 12.0:
		score += 25
		strengths = append(strengths, "High VRAM for large scenes")
	case f.GpuVramGb >= 8.0:
		score += 15
	}
	if f.HasRtCores {
		score += 15
		strengths = append(strengths, "Hardware ray tracing")
	}
	if f.CpuCoresPhysical >= 8 {
		score += 15
		strengths = append(strengths, "Many cores for CPU-side render passes")
	}
	if f.RamTotalGb >= 32.0 {
		score += 15
	} else {
		limiting = append(limiting, "RAM may limit scene complexity")
	}
	if f.HasNvme {
		score += 10
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadRendering3D, Score: clampScore(score), Confidence: 0.7,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

// scoreScientificComputing rewards raw core/RAM scale and ECC correctness
// over GPU-specific features, since many HPC workloads are CPU-bound.
func scoreScientificComputing(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	switch {
	case f.CpuCoresPhysical >= 16:
		score += 25
		strengths = append(strengths, "High core count for parallel workloads")
	case f.CpuCoresPhysical >= 8:
		score += 15
	default:
		limiting = append(limiting, "Few cores limits parallel throughput")
	}
	switch {
	case f.RamTotalGb >= 64.0:
		score += 20
		strengths = append(strengths, "Large RAM for big datasets")
	case f.RamTotalGb >= 32.0:
		score += 10
	default:
		limiting = append(limiting, "RAM may limit dataset size")
	}
	if f.HasDiscreteGpu {
		score += 15
	}
	if f.HasEcc || f.IsServerCpu {
		score += 15
		strengths = append(strengths, "ECC/server-class reliability")
	}
	if f.HasNvme {
		score += 10
	}
	if f.GpuCount > 1 {
		score += 15
		strengths = append(strengths, "Multi-GPU for distributed compute")
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadScientificComputing, Score: clampScore(score), Confidence: 0.65,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

// scoreMediaStreaming weights network throughput heavily since streaming
// servers are bandwidth-bound before they are compute-bound.
func scoreMediaStreaming(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	switch {
	case f.MaxNicGbps >= 10.0:
		score += 35
		strengths = append(strengths, "High-bandwidth networking")
	case f.MaxNicGbps >= 1.0:
		score += 20
	default:
		limiting = append(limiting, "Network may bottleneck concurrent streams")
	}
	if f.CpuCoresPhysical >= 8 {
		score += 20
	}
	if f.RamTotalGb >= 16.0 {
		score += 15
	}
	if f.HasDiscreteGpu {
		score += 20
		strengths = append(strengths, "Hardware encode offload")
	}
	if f.HasNvme {
		score += 10
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadMediaStreaming, Score: clampScore(score), Confidence: 0.7,
		LimitingFactors: limiting, Strengths: strengths,
	}
}

// scoreNetworkAppliance favors server-class CPUs and fast NICs over
// GPU or storage signals, matching firewall/router/load-balancer roles.
func scoreNetworkAppliance(f entities.HardwareFeatures) entities.WorkloadSuitability {
	score := 0
	var strengths, limiting []string

	switch {
	case f.MaxNicGbps >= 10.0:
		score += 40
		strengths = append(strengths, "10+ GbE networking")
	case f.MaxNicGbps >= 1.0:
		score += 20
	default:
		limiting = append(limiting, "NIC speed limits appliance throughput")
	}
	if f.IsServerCpu {
		score += 20
	}
	if f.CpuCoresPhysical >= 8 {
		score += 15
	}
	if f.RamTotalGb >= 16.0 {
		score += 15
	}
	if f.HasEcc {
		score += 10
		strengths = append(strengths, "ECC memory for packet integrity")
	}

	return entities.WorkloadSuitability{
		Workload: entities.WorkloadNetworkAppliance, Score: clampScore(score), Confidence: 0.6,
		LimitingFactors: limiting, Strengths: strengths,
	}
}
