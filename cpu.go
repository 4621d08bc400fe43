package agent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/coreprobe/sysmon/entities"
	"github.com/shirou/gopsutil/v4/cpu"
)

// ReadCpuStats takes one fresh sample of aggregate and per-core CPU time
// percentages. It is a pure point-in-time read: gopsutil's Times functions
// return a cumulative counter snapshot, so percentages here are computed as
// a share of the counters at this instant rather than a rate against a
// caller-visible previous sample.
func ReadCpuStats(ctx context.Context) (entities.CpuSnapshot, error) {
	var snap entities.CpuSnapshot

	totalTimes, err := cpu.TimesWithContext(ctx, false)
	if err != nil || len(totalTimes) == 0 {
		return snap, fmt.Errorf("read cpu stats: %w", err)
	}
	snap.Total = timesToPercentages(totalTimes[0])

	perCoreTimes, err := cpu.TimesWithContext(ctx, true)
	if err != nil {
		return snap, nil
	}

	infos, _ := cpu.InfoWithContext(ctx)
	var model string
	if len(infos) > 0 {
		model = infos[0].ModelName
	}

	snap.Cores = make([]entities.CoreSnapshot, len(perCoreTimes))
	for i, t := range perCoreTimes {
		pct := timesToPercentages(t)
		core := entities.CoreSnapshot{
			ID:     i,
			Online: true,
			Model:  model,
			User:   pct.User,
			System: pct.System,
			Idle:   pct.Idle,
		}
		core.Governor = readCoreGovernor(i)
		if freq := readCoreFrequency(i); freq != nil {
			core.Frequency = freq
		} else if len(infos) > i {
			core.Frequency = &entities.CpuFrequency{Current: infos[i].Mhz}
		} else if len(infos) > 0 {
			core.Frequency = &entities.CpuFrequency{Current: infos[0].Mhz}
		}
		snap.Cores[i] = core
	}

	return snap, nil
}

func timesToPercentages(t cpu.TimesStat) entities.CpuTimes {
	total := t.User + t.System + t.Nice + t.Idle + t.Iowait + t.Irq + t.Softirq + t.Steal
	if total <= 0 {
		return entities.CpuTimes{}
	}
	pct := func(v float64) float64 { return v / total * 100 }
	return entities.CpuTimes{
		User:    pct(t.User),
		System:  pct(t.System),
		Nice:    pct(t.Nice),
		Idle:    pct(t.Idle),
		Iowait:  pct(t.Iowait),
		Irq:     pct(t.Irq),
		Softirq: pct(t.Softirq),
		Steal:   pct(t.Steal),
	}
}

// readCoreGovernor reads the Linux cpufreq scaling governor for one logical
// core. Returns "" on any other OS or when cpufreq isn't exposed (e.g. a VM).
func readCoreGovernor(core int) string {
	path := filepath.Join("/sys/devices/system/cpu", "cpu"+strconv.Itoa(core), "cpufreq/scaling_governor")
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// readCoreFrequency reads the Linux cpufreq current/min/max frequencies for
// one logical core, converting from kHz to MHz. Returns nil if unavailable.
func readCoreFrequency(core int) *entities.CpuFrequency {
	base := filepath.Join("/sys/devices/system/cpu", "cpu"+strconv.Itoa(core), "cpufreq")
	cur, err := readSysfsKhzAsMhz(filepath.Join(base, "scaling_cur_freq"))
	if err != nil {
		return nil
	}
	freq := &entities.CpuFrequency{Current: cur}
	if min, err := readSysfsKhzAsMhz(filepath.Join(base, "scaling_min_freq")); err == nil {
		freq.Min = min
	}
	if max, err := readSysfsKhzAsMhz(filepath.Join(base, "scaling_max_freq")); err == nil {
		freq.Max = max
	}
	return freq
}

func readSysfsKhzAsMhz(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	khz, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, err
	}
	return khz / 1000.0, nil
}
