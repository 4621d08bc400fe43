package toolapi

import (
	"context"
	"fmt"
	"sort"

	"github.com/coreprobe/sysmon/entities"
	"github.com/coreprobe/sysmon/errs"
	"github.com/coreprobe/sysmon/process"
)

func enumerateProcesses(ctx context.Context, deps *Deps) ([]*entities.ProcessInfo, error) {
	procs, err := process.WithGpuAttribution(ctx, deps.Gpu)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrProcess, err)
	}
	return procs, nil
}

func sortProcesses(procs []*entities.ProcessInfo, sortBy string) []*entities.ProcessInfo {
	switch sortBy {
	case "cpu":
		return process.ByCpu(procs)
	case "memory":
		return process.ByMemory(procs)
	case "gpu_memory":
		return process.ByGpuMemory(procs)
	case "name":
		out := append([]*entities.ProcessInfo(nil), procs...)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out
	default:
		out := append([]*entities.ProcessInfo(nil), procs...)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Pid < out[j].Pid })
		return out
	}
}

func handleGetProcessList(ctx context.Context, deps *Deps, p params) (string, error) {
	procs, err := enumerateProcesses(ctx, deps)
	if err != nil {
		return "", err
	}
	sortBy := optionalString(p, "sort_by", "pid")
	return marshal(sortProcesses(procs, sortBy))
}

func handleGetProcessDetails(ctx context.Context, deps *Deps, p params) (string, error) {
	pid, err := requiredInt(p, "pid")
	if err != nil {
		return "", err
	}
	procs, err := enumerateProcesses(ctx, deps)
	if err != nil {
		return "", err
	}
	for _, proc := range procs {
		if proc.Pid == int32(pid) {
			return marshal(proc)
		}
	}
	return "", fmt.Errorf("%w: pid %d", errs.ErrDeviceNotFound, pid)
}

func topN(procs []*entities.ProcessInfo, limit int) []*entities.ProcessInfo {
	if limit < 0 || limit > len(procs) {
		limit = len(procs)
	}
	return procs[:limit]
}

func handleGetTopCpuProcesses(ctx context.Context, deps *Deps, p params) (string, error) {
	procs, err := enumerateProcesses(ctx, deps)
	if err != nil {
		return "", err
	}
	limit := int(optionalInt64(p, "limit", 10))
	return marshal(topN(process.ByCpu(procs), limit))
}

func handleGetTopMemoryProcesses(ctx context.Context, deps *Deps, p params) (string, error) {
	procs, err := enumerateProcesses(ctx, deps)
	if err != nil {
		return "", err
	}
	limit := int(optionalInt64(p, "limit", 10))
	return marshal(topN(process.ByMemory(procs), limit))
}

func handleGetTopGpuProcesses(ctx context.Context, deps *Deps, p params) (string, error) {
	procs, err := enumerateProcesses(ctx, deps)
	if err != nil {
		return "", err
	}
	limit := int(optionalInt64(p, "limit", 10))
	return marshal(topN(process.ByGpuMemory(process.GpuProcesses(procs)), limit))
}

func handleSearchProcesses(ctx context.Context, deps *Deps, p params) (string, error) {
	query, err := requiredString(p, "query")
	if err != nil {
		return "", err
	}
	procs, err := enumerateProcesses(ctx, deps)
	if err != nil {
		return "", err
	}
	return marshal(process.Search(procs, query))
}
