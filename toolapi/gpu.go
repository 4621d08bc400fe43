package toolapi

import (
	"context"
	"fmt"

	"github.com/coreprobe/sysmon/entities"
	"github.com/coreprobe/sysmon/errs"
)

func gpuIndexArg(deps *Deps, p params) (int, error) {
	idx, err := requiredInt(p, "gpu_index")
	if err != nil {
		return 0, err
	}
	if deps.Gpu == nil || idx < 0 || idx >= deps.Gpu.DeviceCount() {
		return 0, fmt.Errorf("%w: gpu_index %d", errs.ErrDeviceNotFound, idx)
	}
	return idx, nil
}

func handleGetGpuStatus(ctx context.Context, deps *Deps, p params) (string, error) {
	if deps.Gpu == nil {
		return marshal([]entities.GpuSnapshot{})
	}
	return marshal(deps.Gpu.Snapshots())
}

func handleGetGpuList(ctx context.Context, deps *Deps, p params) (string, error) {
	if deps.Gpu == nil {
		return marshal([]entities.GpuStaticInfo{})
	}
	out := make([]entities.GpuStaticInfo, 0, deps.Gpu.DeviceCount())
	for i := 0; i < deps.Gpu.DeviceCount(); i++ {
		info, err := deps.Gpu.StaticInfo(i)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	return marshal(out)
}

func handleGetGpuDetails(ctx context.Context, deps *Deps, p params) (string, error) {
	idx, err := gpuIndexArg(deps, p)
	if err != nil {
		return "", err
	}
	snap, err := deps.Gpu.Snapshot(idx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrGpu, err)
	}
	return marshal(snap)
}

func handleGetGpuProcesses(ctx context.Context, deps *Deps, p params) (string, error) {
	idx, err := gpuIndexArg(deps, p)
	if err != nil {
		return "", err
	}
	snap, err := deps.Gpu.Snapshot(idx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrGpu, err)
	}
	return marshal(snap.Dynamic.Processes)
}

func handleGetGpuUtilization(ctx context.Context, deps *Deps, p params) (string, error) {
	idx, err := gpuIndexArg(deps, p)
	if err != nil {
		return "", err
	}
	snap, err := deps.Gpu.Snapshot(idx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrGpu, err)
	}
	return marshal(struct {
		UtilizationPercent float64 `json:"utilization_percent"`
	}{snap.Dynamic.UtilizationPercent})
}

func handleGetGpuMemory(ctx context.Context, deps *Deps, p params) (string, error) {
	idx, err := gpuIndexArg(deps, p)
	if err != nil {
		return "", err
	}
	snap, err := deps.Gpu.Snapshot(idx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrGpu, err)
	}
	return marshal(snap.Dynamic.Memory)
}

func handleGetGpuTemperature(ctx context.Context, deps *Deps, p params) (string, error) {
	idx, err := gpuIndexArg(deps, p)
	if err != nil {
		return "", err
	}
	snap, err := deps.Gpu.Snapshot(idx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrGpu, err)
	}
	return marshal(snap.Dynamic.Thermal)
}

func handleGetGpuPower(ctx context.Context, deps *Deps, p params) (string, error) {
	idx, err := gpuIndexArg(deps, p)
	if err != nil {
		return "", err
	}
	snap, err := deps.Gpu.Snapshot(idx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrGpu, err)
	}
	return marshal(snap.Dynamic.Power)
}
