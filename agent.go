// Package agent implements the sysmon monitoring agent: a set of
// synchronous, read-on-demand hardware probes plus a sampling loop that
// feeds the rolling history buffer and anomaly detector.
package agent

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/coreprobe/sysmon/anomaly"
	"github.com/coreprobe/sysmon/gpu"
	"github.com/coreprobe/sysmon/health"
	"github.com/coreprobe/sysmon/history"
)

// Agent owns the long-lived state shared between the sampling loop and any
// number of concurrent tool-invocation goroutines: the GPU backend
// collection, the anomaly detector, and the rolling history buffer. All
// three are individually safe for concurrent use; mu only guards the
// network monitor's byte-counter baseline, which Tick mutates once per
// sampling pass.
type Agent struct {
	cfg Config

	mu  sync.Mutex
	net *NetworkMonitor

	Gpu      *gpu.Collection
	History  *history.Buffer
	Detector *anomaly.Detector
}

// NewAgent wires a GPU backend collection (skipped entirely when
// cfg.NvmlDisable is set), an anomaly detector, a history buffer sized to
// cfg.HistoryRetention, and a network bandwidth monitor.
func NewAgent(cfg Config) (*Agent, error) {
	configureLogging(cfg.LogLevel)

	a := &Agent{
		cfg:      cfg,
		net:      NewNetworkMonitor(),
		History:  history.NewBuffer(cfg.HistoryRetention),
		Detector: anomaly.NewDetector(anomaly.DefaultConfig()),
	}

	if !cfg.NvmlDisable {
		gpus, err := gpu.AutoDetect()
		if err != nil {
			slog.Warn("gpu autodetect", "err", err)
		} else {
			a.Gpu = gpus
		}
	}

	return a, nil
}

func configureLogging(level string) {
	switch strings.ToLower(level) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}
}

// Run owns a single ticker goroutine, sampling CPU, memory, GPU, and disk
// state every cfg.SampleInterval. Each tick's readings are pushed into the
// anomaly detector and history buffer, any resulting anomalies are logged at
// this boundary (probes themselves never log), and the health file is
// refreshed. Run blocks until ctx is cancelled, then returns nil.
func (a *Agent) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.cfg.SampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.sample(ctx)
		}
	}
}

func (a *Agent) sample(ctx context.Context) {
	cpuPct := 0.0
	if snap, err := ReadCpuStats(ctx); err != nil {
		slog.Warn("sample cpu", "err", err)
	} else {
		cpuPct = 100 - snap.Total.Idle
		a.Detector.RecordCpu(cpuPct)
	}

	memPct := 0.0
	if snap, err := ReadMemoryStats(ctx); err != nil {
		slog.Warn("sample memory", "err", err)
	} else if snap.Ram.Total > 0 {
		memPct = 100 * float64(snap.Ram.Used) / float64(snap.Ram.Total)
		a.Detector.RecordMemory(memPct)
	}

	var gpuTempC, gpuUtilPct *float64
	if a.Gpu != nil {
		for _, snap := range a.Gpu.Snapshots() {
			a.Detector.RecordGpuUtil(snap.Dynamic.UtilizationPercent)
			if snap.Dynamic.Thermal.TemperatureC != nil {
				a.Detector.RecordGpuTemp(*snap.Dynamic.Thermal.TemperatureC)
			}
			// history and the detector both reason about a single GPU
			// figure; the first device detected stands in for the host.
			if gpuTempC == nil {
				gpuTempC = snap.Dynamic.Thermal.TemperatureC
				util := snap.Dynamic.UtilizationPercent
				gpuUtilPct = &util
			}
		}
	}

	if disks, err := EnumerateDisks(ctx); err != nil {
		slog.Warn("sample disk", "err", err)
	} else {
		for _, d := range disks {
			fs, err := d.FilesystemInfo(ctx)
			if err != nil || fs.TotalSize == 0 {
				continue
			}
			a.Detector.RecordDiskUsage(100 * float64(fs.UsedSize) / float64(fs.TotalSize))
		}
	}

	if ifaces, err := EnumerateNetworkInterfaces(ctx); err != nil {
		slog.Warn("sample network", "err", err)
	} else {
		a.mu.Lock()
		for _, iface := range ifaces {
			rate := a.net.BandwidthRate(iface.Name, iface.RxBytes, iface.TxBytes)
			a.Detector.RecordNetworkRx(rate.RxBytesPerSec)
			a.Detector.RecordNetworkTx(rate.TxBytesPerSec)
		}
		a.net.Tick()
		a.mu.Unlock()
	}

	a.History.Record(cpuPct, memPct, gpuTempC, gpuUtilPct)

	for _, anom := range a.Detector.Detect() {
		slog.Warn("anomaly detected", "metric", anom.Metric, "severity", anom.Severity, "message", anom.Message)
	}

	if err := health.Update(); err != nil {
		slog.Warn("health update", "err", err)
	}
}
