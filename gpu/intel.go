package gpu

import (
	"bufio"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/coreprobe/sysmon/entities"
)

const (
	intelGpuTopCmd      = "intel_gpu_top"
	intelGpuTopInterval = "1000" // milliseconds
	intelSampleTimeout  = 2 * time.Second
)

// intelBackend shells out to intel_gpu_top for a single sample per call.
// intel_gpu_top has no sysfs equivalent with per-process or even per-engine
// detail, so unlike the Nvidia/AMD backends this one pays a subprocess cost
// on every DynamicInfo call; only one device is ever reported, matching the
// tool's own single-GPU assumption.
type intelBackend struct{}

func newIntelBackend() (Backend, error) {
	if _, err := exec.LookPath(intelGpuTopCmd); err != nil {
		return nil, nil
	}
	return &intelBackend{}, nil
}

func (b *intelBackend) Vendor() entities.GpuVendor { return entities.GpuVendorIntel }

func (b *intelBackend) DeviceCount() int { return 1 }

func (b *intelBackend) StaticInfo(localIndex int) (entities.GpuStaticInfo, error) {
	return entities.GpuStaticInfo{Name: "Intel GPU", Vendor: entities.GpuVendorIntel}, nil
}

func (b *intelBackend) DynamicInfo(localIndex int) (entities.GpuDynamicInfo, error) {
	sample, err := sampleIntelGpuTop()
	if err != nil {
		return entities.GpuDynamicInfo{}, err
	}
	var dyn entities.GpuDynamicInfo
	maxEngine := 0.0
	for _, busy := range sample.engines {
		if busy > maxEngine {
			maxEngine = busy
		}
	}
	dyn.UtilizationPercent = maxEngine
	if sample.powerWatts > 0 {
		mw := sample.powerWatts * 1000.0
		dyn.Power.DrawMilliwatts = &mw
	}
	return dyn, nil
}

type intelSample struct {
	powerWatts float64
	engines    map[string]float64
}

func sampleIntelGpuTop() (intelSample, error) {
	ctx, cancel := context.WithTimeout(context.Background(), intelSampleTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, intelGpuTopCmd, "-s", intelGpuTopInterval, "-l")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return intelSample{}, err
	}
	if err := cmd.Start(); err != nil {
		return intelSample{}, err
	}
	defer func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}()

	scanner := bufio.NewScanner(stdout)
	var header1, header2 string
	var engineNames, friendlyNames []string
	var powerIndex, preEngineCols int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if header1 == "" {
			header1 = line
			continue
		}
		if header2 == "" {
			engineNames, friendlyNames, powerIndex, preEngineCols = parseIntelHeaders(header1, line)
			header2 = line
			continue
		}
		return parseIntelData(line, friendlyNames, powerIndex, preEngineCols, len(engineNames)), nil
	}
	return intelSample{}, err
}

func parseIntelHeaders(header1, header2 string) (engineNames, friendlyNames []string, powerIndex, preEngineCols int) {
	h1 := strings.Fields(header1)
	h2 := strings.Fields(header2)
	powerIndex = -1
	for _, col := range h1 {
		key := strings.TrimRightFunc(col, func(r rune) bool { return r >= '0' && r <= '9' })
		var friendly string
		switch key {
		case "RCS":
			friendly = "Render/3D"
		case "BCS":
			friendly = "Blitter"
		case "VCS":
			friendly = "Video"
		case "VECS":
			friendly = "VideoEnhance"
		case "CCS":
			friendly = "Compute"
		default:
			continue
		}
		engineNames = append(engineNames, key)
		friendlyNames = append(friendlyNames, friendly)
	}
	if n := len(engineNames); n > 0 {
		preEngineCols = max(len(h2)-3*n, 0)
		limit := min(len(h2), preEngineCols)
		for i := 0; i < limit; i++ {
			if strings.EqualFold(h2[i], "gpu") {
				powerIndex = i
				break
			}
		}
	}
	return engineNames, friendlyNames, powerIndex, preEngineCols
}

func parseIntelData(line string, friendlyNames []string, powerIndex, preEngineCols, engineCount int) intelSample {
	var sample intelSample
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return sample
	}
	if need := preEngineCols + 3*engineCount; len(fields) < need {
		return sample
	}
	if powerIndex >= 0 && powerIndex < len(fields) {
		if v, err := strconv.ParseFloat(fields[powerIndex], 64); err == nil {
			sample.powerWatts = v
		}
	}
	if engineCount > 0 {
		sample.engines = make(map[string]float64, engineCount)
		for k := 0; k < engineCount; k++ {
			base := preEngineCols + 3*k
			if base < len(fields) {
				if v, err := strconv.ParseFloat(fields[base], 64); err == nil {
					sample.engines[friendlyNames[k]] = v
				}
			}
		}
	}
	return sample
}
