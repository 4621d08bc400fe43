package agent

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/coreprobe/sysmon/entities"
	"github.com/shirou/gopsutil/v4/mem"
)

// ReadMemoryStats takes one fresh sample of RAM and swap usage. Falls back to
// a direct /proc/meminfo parse when gopsutil reports an impossible value,
// matching the teacher's own defense against cgroup2 "memory.max=max"
// environments reporting nonsense through gopsutil.
func ReadMemoryStats(ctx context.Context) (entities.MemorySnapshot, error) {
	var snap entities.MemorySnapshot

	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return snap, fmt.Errorf("read memory stats: %w", err)
	}

	if v.Used > v.Total {
		if info, err := parseMemInfo(); err == nil {
			snap.Ram = *info
		}
	} else {
		snap.Ram = entities.RamStats{
			Total:   v.Total,
			Used:    v.Used,
			Free:    v.Free,
			Buffers: v.Buffers,
			Cached:  v.Cached,
			Shared:  v.Shared,
		}
	}

	if s, err := mem.SwapMemoryWithContext(ctx); err == nil {
		snap.Swap = entities.SwapStats{Total: s.Total, Used: s.Used, Cached: s.Sin}
	}

	return snap, nil
}

// parseMemInfo reads /proc/meminfo directly; used only as a fallback when
// gopsutil's derived fields don't add up.
func parseMemInfo() (*entities.RamStats, error) {
	file, err := os.Open("/proc/meminfo")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info := &entities.RamStats{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		valueBytes := value * 1024
		switch fields[0] {
		case "MemTotal:":
			info.Total = valueBytes
		case "MemFree:":
			info.Free = valueBytes
		case "Buffers:":
			info.Buffers = valueBytes
		case "Cached:":
			info.Cached = valueBytes
		case "Shmem:":
			info.Shared = valueBytes
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if info.Total == 0 {
		return nil, fmt.Errorf("failed to parse MemTotal from /proc/meminfo")
	}
	used := info.Total - info.Free - info.Buffers - info.Cached
	if used > info.Total {
		used = 0
	}
	info.Used = used
	return info, nil
}
