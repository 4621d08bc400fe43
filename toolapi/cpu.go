package toolapi

import (
	"context"
	"fmt"

	agent "github.com/coreprobe/sysmon"
	"github.com/coreprobe/sysmon/errs"
)

func handleGetCpuStatus(ctx context.Context, deps *Deps, p params) (string, error) {
	snap, err := agent.ReadCpuStats(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrCpu, err)
	}
	return marshal(struct {
		Total         float64 `json:"total"`
		UserPercent   float64 `json:"user_percent"`
		SystemPercent float64 `json:"system_percent"`
		IdlePercent   float64 `json:"idle_percent"`
	}{
		Total:         100 - snap.Total.Idle,
		UserPercent:   snap.Total.User,
		SystemPercent: snap.Total.System,
		IdlePercent:   snap.Total.Idle,
	})
}

func handleGetCpuCores(ctx context.Context, deps *Deps, p params) (string, error) {
	snap, err := agent.ReadCpuStats(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrCpu, err)
	}
	return marshal(snap.Cores)
}

func handleGetCpuFrequency(ctx context.Context, deps *Deps, p params) (string, error) {
	coreIndex, err := requiredInt(p, "core_index")
	if err != nil {
		return "", err
	}
	snap, err := agent.ReadCpuStats(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrCpu, err)
	}
	if coreIndex < 0 || coreIndex >= len(snap.Cores) {
		return "", fmt.Errorf("%w: core_index %d", errs.ErrDeviceNotFound, coreIndex)
	}
	return marshal(snap.Cores[coreIndex].Frequency)
}
