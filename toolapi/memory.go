package toolapi

import (
	"context"
	"fmt"

	agent "github.com/coreprobe/sysmon"
	"github.com/coreprobe/sysmon/errs"
)

func handleGetMemoryStatus(ctx context.Context, deps *Deps, p params) (string, error) {
	snap, err := agent.ReadMemoryStats(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMemory, err)
	}
	return marshal(struct {
		TotalBytes     uint64 `json:"total_bytes"`
		UsedBytes      uint64 `json:"used_bytes"`
		AvailableBytes uint64 `json:"available_bytes"`
	}{
		TotalBytes:     snap.Ram.Total,
		UsedBytes:      snap.Ram.Used,
		AvailableBytes: snap.Ram.Available(),
	})
}

func handleGetMemoryBreakdown(ctx context.Context, deps *Deps, p params) (string, error) {
	snap, err := agent.ReadMemoryStats(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMemory, err)
	}
	return marshal(snap.Ram)
}

func handleGetSwapStatus(ctx context.Context, deps *Deps, p params) (string, error) {
	snap, err := agent.ReadMemoryStats(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMemory, err)
	}
	return marshal(snap.Swap)
}
