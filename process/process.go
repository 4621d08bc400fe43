// Package process implements the Process Enumerator and the GPU Attribution
// Join: one unified ProcessInfo record per PID, enriched in place with each
// GPU backend's own process table.
package process

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/coreprobe/sysmon/classify"
	"github.com/coreprobe/sysmon/entities"
	"github.com/coreprobe/sysmon/gpu"
	"github.com/shirou/gopsutil/v4/process"
)

// Enumerate lists every process currently visible to the caller. A process
// that exits mid-enumeration, or whose fields can't be read without
// elevated privilege, is never an enumeration failure: it is skipped or
// populated with zero-valued resource fields respectively.
func Enumerate(ctx context.Context) ([]*entities.ProcessInfo, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	out := make([]*entities.ProcessInfo, 0, len(pids))
	for _, pid := range pids {
		p, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			continue
		}
		info, err := readProcess(ctx, p)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	return out, nil
}

func readProcess(ctx context.Context, p *process.Process) (*entities.ProcessInfo, error) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return nil, err
	}

	info := &entities.ProcessInfo{
		Pid:   p.Pid,
		Name:  name,
		State: "unknown",
	}

	if ppid, err := p.PpidWithContext(ctx); err == nil {
		info.ParentPid = ppid
	}
	if user, err := p.UsernameWithContext(ctx); err == nil {
		info.User = user
	}
	if statuses, err := p.StatusWithContext(ctx); err == nil && len(statuses) > 0 {
		info.State = statuses[0]
	}
	if nice, err := p.NiceWithContext(ctx); err == nil {
		n := nice
		info.Priority = &n
	}
	if createMs, err := p.CreateTimeWithContext(ctx); err == nil {
		info.StartTimeUnix = createMs / 1000
	}
	if cpuPct, err := p.CPUPercentWithContext(ctx); err == nil {
		maxPct := float64(runtime.NumCPU()) * 100
		if cpuPct > maxPct {
			cpuPct = maxPct
		}
		if cpuPct < 0 {
			cpuPct = 0
		}
		info.CpuPercent = cpuPct
	}
	if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
		info.MemoryBytes = mem.RSS
		info.VirtualMemoryBytes = mem.VMS
	}
	if threads, err := p.NumThreadsWithContext(ctx); err == nil {
		info.ThreadCount = threads
	}
	if fds, err := p.NumFDsWithContext(ctx); err == nil {
		info.HandleCount = fds
	}
	if io, err := p.IOCountersWithContext(ctx); err == nil && io != nil {
		info.IoReadBytes = io.ReadBytes
		info.IoWriteBytes = io.WriteBytes
	}

	info.Category = classify.Classify(info.Name, info.User, false)
	return info, nil
}

// AttributionJoin folds each GPU backend device's process table into the
// matching ProcessInfo entries, maintaining the gpu_indices /
// gpu_memory_per_device / total_gpu_memory_bytes invariants (P1, P2), then
// re-classifies every process that now shows GPU usage.
func AttributionJoin(processes []*entities.ProcessInfo, snapshots []entities.GpuSnapshot) {
	byPid := make(map[int32]*entities.ProcessInfo, len(processes))
	for _, p := range processes {
		byPid[p.Pid] = p
	}

	for _, snap := range snapshots {
		for _, gp := range snap.Dynamic.Processes {
			target, ok := byPid[gp.Pid]
			if !ok {
				continue
			}

			memUsage := uint64(0)
			if gp.MemoryUsageBytes != nil {
				memUsage = *gp.MemoryUsageBytes
			}
			target.AddGpuDevice(snap.Index, memUsage)

			if target.User == "" && gp.User != "" {
				target.User = gp.User
			}
			if gp.GpuUsagePercent != nil {
				target.GpuUsagePercent = gp.GpuUsagePercent
			}
			if gp.EncoderUsagePercent != nil {
				target.EncoderUsagePercent = gp.EncoderUsagePercent
			}
			if gp.DecoderUsagePercent != nil {
				target.DecoderUsagePercent = gp.DecoderUsagePercent
			}
			if gp.MemoryUsagePercent != nil {
				target.GpuMemoryPercentage = gp.MemoryUsagePercent
			}
			target.GpuProcessType = gp.ProcessType
		}
	}

	for _, p := range processes {
		if p.HasGpuUsage() {
			p.Category = classify.Classify(p.Name, p.User, true)
		}
	}
}

// WithGpuAttribution runs Enumerate, then joins the result against the
// supplied GPU collection's snapshots. Passing a nil collection (no GPU
// backend initialized) skips the join entirely.
func WithGpuAttribution(ctx context.Context, gpus *gpu.Collection) ([]*entities.ProcessInfo, error) {
	procs, err := Enumerate(ctx)
	if err != nil {
		return nil, err
	}
	if gpus != nil && gpus.DeviceCount() > 0 {
		AttributionJoin(procs, gpus.Snapshots())
	}
	return procs, nil
}

// ByCpu returns processes stably sorted by descending CPU percent.
func ByCpu(processes []*entities.ProcessInfo) []*entities.ProcessInfo {
	out := append([]*entities.ProcessInfo(nil), processes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CpuPercent > out[j].CpuPercent })
	return out
}

// ByMemory returns processes stably sorted by descending resident memory.
func ByMemory(processes []*entities.ProcessInfo) []*entities.ProcessInfo {
	out := append([]*entities.ProcessInfo(nil), processes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MemoryBytes > out[j].MemoryBytes })
	return out
}

// ByGpuMemory returns processes stably sorted by descending total GPU memory.
func ByGpuMemory(processes []*entities.ProcessInfo) []*entities.ProcessInfo {
	out := append([]*entities.ProcessInfo(nil), processes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalGpuMemoryBytes > out[j].TotalGpuMemoryBytes })
	return out
}

// GpuProcesses filters to processes with at least one GPU attribution.
func GpuProcesses(processes []*entities.ProcessInfo) []*entities.ProcessInfo {
	var out []*entities.ProcessInfo
	for _, p := range processes {
		if p.HasGpuUsage() {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory equality-filters by category.
func ByCategory(processes []*entities.ProcessInfo, category entities.ProcessCategory) []*entities.ProcessInfo {
	var out []*entities.ProcessInfo
	for _, p := range processes {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search case-insensitively filters by substring match on process name.
func Search(processes []*entities.ProcessInfo, query string) []*entities.ProcessInfo {
	lower := strings.ToLower(query)
	var out []*entities.ProcessInfo
	for _, p := range processes {
		if strings.Contains(strings.ToLower(p.Name), lower) {
			out = append(out, p)
		}
	}
	return out
}

// CategoryStats aggregates per-category totals, sorted by descending
// summed CPU percent.
func CategoryStats(processes []*entities.ProcessInfo) []entities.CategoryStats {
	byCategory := make(map[entities.ProcessCategory]*entities.CategoryStats)
	var order []entities.ProcessCategory
	for _, p := range processes {
		stats, ok := byCategory[p.Category]
		if !ok {
			stats = &entities.CategoryStats{Category: p.Category}
			byCategory[p.Category] = stats
			order = append(order, p.Category)
		}
		stats.Count++
		if p.HasGpuUsage() {
			stats.GpuProcessCount++
		}
		stats.TotalCpuPercent += p.CpuPercent
		stats.TotalMemoryBytes += p.MemoryBytes
		stats.TotalGpuMemoryBytes += p.TotalGpuMemoryBytes
	}

	out := make([]entities.CategoryStats, 0, len(order))
	for _, c := range order {
		out = append(out, *byCategory[c])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalCpuPercent > out[j].TotalCpuPercent })
	return out
}

// Kill terminates the named PID: SIGTERM (or TerminateProcess on Windows),
// escalating to SIGKILL/forced termination when force is set.
func Kill(ctx context.Context, pid int32, force bool) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return fmt.Errorf("kill process %d: %w", pid, err)
	}
	if force {
		return p.KillWithContext(ctx)
	}
	return p.TerminateWithContext(ctx)
}
