package anomaly

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/coreprobe/sysmon/entities"
)

// Config holds the thresholds and timing knobs for a Detector. Defaults
// match the fixed reference values used to ground every number here.
type Config struct {
	WindowSize       int
	ZScoreThreshold  float64
	CpuWarning       float64
	CpuCritical      float64
	MemoryWarning    float64
	MemoryCritical   float64
	GpuTempWarning   float64
	GpuTempCritical  float64
	DiskWarning      float64
	MinSamples       int
	AlertCooldown    time.Duration
}

// DefaultConfig returns the reference thresholds.
func DefaultConfig() Config {
	return Config{
		WindowSize:      60,
		ZScoreThreshold: 2.5,
		CpuWarning:      85.0,
		CpuCritical:     95.0,
		MemoryWarning:   85.0,
		MemoryCritical:  95.0,
		GpuTempWarning:  80.0,
		GpuTempCritical: 90.0,
		DiskWarning:     90.0,
		MinSamples:      10,
		AlertCooldown:   60 * time.Second,
	}
}

// Detector holds one MetricWindow per tracked metric plus cooldown state. It
// is exclusive to one caller at a time per spec (no internal locking is
// required for correctness), but the embedded mutex lets the Agent runtime
// share one Detector between its sampling loop and concurrent tool calls.
type Detector struct {
	mu sync.Mutex

	config Config

	cpuWindow       *MetricWindow
	memoryWindow    *MetricWindow
	gpuTempWindow   *MetricWindow
	gpuUtilWindow   *MetricWindow
	diskUsageWindow *MetricWindow
	networkRxWindow *MetricWindow
	networkTxWindow *MetricWindow

	startTime  time.Time
	lastAlerts map[string]time.Time
}

// NewDetector constructs a Detector with its windows sized per config.
func NewDetector(config Config) *Detector {
	ws := config.WindowSize
	return &Detector{
		config:          config,
		cpuWindow:       NewMetricWindow(ws),
		memoryWindow:    NewMetricWindow(ws),
		gpuTempWindow:   NewMetricWindow(ws),
		gpuUtilWindow:   NewMetricWindow(ws),
		diskUsageWindow: NewMetricWindow(ws),
		networkRxWindow: NewMetricWindow(ws),
		networkTxWindow: NewMetricWindow(ws),
		startTime:       time.Now(),
		lastAlerts:      make(map[string]time.Time),
	}
}

func (d *Detector) RecordCpu(percent float64)    { d.mu.Lock(); d.cpuWindow.Push(percent); d.mu.Unlock() }
func (d *Detector) RecordMemory(percent float64) { d.mu.Lock(); d.memoryWindow.Push(percent); d.mu.Unlock() }
func (d *Detector) RecordGpuTemp(celsius float64) {
	d.mu.Lock()
	d.gpuTempWindow.Push(celsius)
	d.mu.Unlock()
}
func (d *Detector) RecordGpuUtil(percent float64) {
	d.mu.Lock()
	d.gpuUtilWindow.Push(percent)
	d.mu.Unlock()
}
func (d *Detector) RecordDiskUsage(percent float64) {
	d.mu.Lock()
	d.diskUsageWindow.Push(percent)
	d.mu.Unlock()
}
func (d *Detector) RecordNetworkRx(bytesPerSec float64) {
	d.mu.Lock()
	d.networkRxWindow.Push(bytesPerSec)
	d.mu.Unlock()
}
func (d *Detector) RecordNetworkTx(bytesPerSec float64) {
	d.mu.Lock()
	d.networkTxWindow.Push(bytesPerSec)
	d.mu.Unlock()
}

// Detect examines every tracked metric in order (CPU, memory, GPU
// temperature, disk usage, network RX) and returns newly triggered
// anomalies, each gated by its key's alert cooldown.
func (d *Detector) Detect() []entities.Anomaly {
	d.mu.Lock()
	defer d.mu.Unlock()

	var anomalies []entities.Anomaly
	now := time.Since(d.startTime).Seconds()

	if d.cpuWindow.Len() > 0 {
		cpu := d.cpuWindow.Last()
		switch {
		case cpu >= d.config.CpuCritical:
			d.maybeAlert(&anomalies, "cpu", entities.SeverityCritical, cpu, now,
				"CPU utilization is critically high",
				[]string{
					"Identify and terminate CPU-intensive processes",
					"Check for runaway processes or infinite loops",
					"Consider scaling up CPU resources",
				})
		case cpu >= d.config.CpuWarning:
			d.maybeAlert(&anomalies, "cpu", entities.SeverityWarning, cpu, now,
				"CPU utilization is elevated",
				[]string{
					"Monitor for sustained high usage",
					"Review process priorities with `nice`/`renice`",
				})
		case d.cpuWindow.Len() >= d.config.MinSamples:
			z := d.cpuWindow.ZScore(cpu)
			if absFloat(z) > d.config.ZScoreThreshold {
				d.maybeAlert(&anomalies, "cpu_spike", entities.SeverityInfo, cpu, now,
					fmt.Sprintf("Unusual CPU activity (z-score: %.1f)", z),
					[]string{"Check for newly started processes"})
			}
		}

		trend := d.cpuWindow.Trend()
		if trend > 15.0 && d.cpuWindow.Len() >= d.config.MinSamples {
			d.maybeAlert(&anomalies, "cpu_trend", entities.SeverityWarning, cpu, now,
				fmt.Sprintf("CPU usage trending upward (+%.1f%% avg)", trend),
				[]string{
					"Possible memory leak causing swap thrashing",
					"Check for accumulating background tasks",
				})
		}
	}

	if d.memoryWindow.Len() > 0 {
		mem := d.memoryWindow.Last()
		switch {
		case mem >= d.config.MemoryCritical:
			d.maybeAlert(&anomalies, "memory", entities.SeverityCritical, mem, now,
				"Memory usage is critically high - OOM risk",
				[]string{
					"Identify memory-hungry processes via the top-memory-processes tool",
					"Check for memory leaks in long-running services",
					"Consider adding swap or increasing RAM",
				})
		case mem >= d.config.MemoryWarning:
			d.maybeAlert(&anomalies, "memory", entities.SeverityWarning, mem, now,
				"Memory usage is elevated",
				[]string{
					"Close unused applications",
					"Check browser tab count and extensions",
				})
		}
	}

	if d.gpuTempWindow.Len() > 0 {
		temp := d.gpuTempWindow.Last()
		switch {
		case temp >= d.config.GpuTempCritical:
			d.maybeAlert(&anomalies, "gpu_temp", entities.SeverityCritical, temp, now,
				"GPU temperature is critically high - throttling likely",
				[]string{
					"Check GPU fan operation and airflow",
					"Reduce GPU workload or power limit",
					"Clean dust from heatsink and fans",
					"Consider improving case ventilation",
				})
		case temp >= d.config.GpuTempWarning:
			d.maybeAlert(&anomalies, "gpu_temp", entities.SeverityWarning, temp, now,
				"GPU temperature is elevated",
				[]string{
					"Monitor for sustained high temperatures",
					"Adjust fan curve for better cooling",
				})
		}
	}

	if d.diskUsageWindow.Len() > 0 {
		disk := d.diskUsageWindow.Last()
		if disk >= d.config.DiskWarning {
			d.maybeAlert(&anomalies, "disk", entities.SeverityWarning, disk, now,
				"Disk usage is high",
				[]string{
					"Clean temporary files and caches",
					"Review and remove unused packages/data",
					"Check log file sizes in /var/log",
				})
		}
	}

	if d.networkRxWindow.Len() >= d.config.MinSamples {
		rx := d.networkRxWindow.Last()
		z := d.networkRxWindow.ZScore(rx)
		if z > d.config.ZScoreThreshold*1.5 {
			d.maybeAlert(&anomalies, "network_rx", entities.SeverityInfo, rx/1_000_000.0, now,
				fmt.Sprintf("Unusually high network receive rate (%.1f MB/s)", rx/1_000_000.0),
				[]string{
					"Check for large downloads or updates",
					"Review active network connections",
				})
		}
	}

	return anomalies
}

// maybeAlert enforces the per-key cooldown (P4) before appending a new Anomaly.
func (d *Detector) maybeAlert(anomalies *[]entities.Anomaly, key string, severity entities.Severity, value, now float64, message string, recommendations []string) {
	if last, ok := d.lastAlerts[key]; ok {
		if time.Since(last) < d.config.AlertCooldown {
			return
		}
	}
	d.lastAlerts[key] = time.Now()

	*anomalies = append(*anomalies, entities.Anomaly{
		Metric:          key,
		Severity:        severity,
		Message:         message,
		CurrentValue:    value,
		Recommendations: recommendations,
		TimestampSecs:   now,
	})
}

// Recommendation is a priority-sorted, pure-function suggestion derived
// solely from the latest sample of each tracked metric — independent of
// Detect()'s cooldown-gated alert stream.
type Recommendation struct {
	Category    string `json:"category"`
	Priority    int    `json:"priority"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// Recommendations synthesizes actionable suggestions from the latest sample
// of each metric, sorted ascending by priority (1 = highest).
func (d *Detector) Recommendations() []Recommendation {
	d.mu.Lock()
	defer d.mu.Unlock()

	var recs []Recommendation

	if d.cpuWindow.Len() > 0 {
		if cpu := d.cpuWindow.Last(); cpu > 80.0 {
			recs = append(recs, Recommendation{
				Category:    "CPU",
				Priority:    1,
				Description: "High CPU usage detected. Consider process prioritization.",
				Impact:      "Reduce latency and improve responsiveness",
			})
		}
	}

	if d.memoryWindow.Len() > 0 {
		if mem := d.memoryWindow.Last(); mem > 80.0 {
			priority := 2
			if mem > 90.0 {
				priority = 1
			}
			recs = append(recs, Recommendation{
				Category:    "Memory",
				Priority:    priority,
				Description: fmt.Sprintf("Memory usage at %.0f%%. Consider closing unused applications.", mem),
				Impact:      "Prevent OOM kills and swap thrashing",
			})
		}
	}

	if d.gpuTempWindow.Len() > 0 {
		if temp := d.gpuTempWindow.Last(); temp > 75.0 {
			priority := 3
			if temp > 85.0 {
				priority = 1
			}
			recs = append(recs, Recommendation{
				Category:    "GPU Thermal",
				Priority:    priority,
				Description: fmt.Sprintf("GPU at %.0f°C. Consider adjusting fan curve or reducing power limit.", temp),
				Impact:      "Prevent thermal throttling, extend GPU lifespan",
			})
		}
	}

	if d.gpuUtilWindow.Len() > 0 && d.gpuTempWindow.Len() > 0 {
		gpuUtil := d.gpuUtilWindow.Last()
		gpuTemp := d.gpuTempWindow.Last()
		if gpuUtil < 30.0 && gpuTemp > 60.0 {
			recs = append(recs, Recommendation{
				Category:    "GPU Power",
				Priority:    4,
				Description: "GPU is warm but underutilized. Power limit could be reduced.",
				Impact:      "Reduce power consumption and heat output",
			})
		}
	}

	if d.diskUsageWindow.Len() > 0 {
		if disk := d.diskUsageWindow.Last(); disk > 85.0 {
			recs = append(recs, Recommendation{
				Category:    "Storage",
				Priority:    2,
				Description: fmt.Sprintf("Disk at %.0f%% capacity. Performance degrades above 90%%.", disk),
				Impact:      "Maintain filesystem performance and prevent write failures",
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority < recs[j].Priority })
	return recs
}

// Summary reports the detector's current moving statistics.
type Summary struct {
	CpuMean          float64 `json:"cpu_mean"`
	CpuStdDev        float64 `json:"cpu_std"`
	MemoryMean       float64 `json:"memory_mean"`
	MemoryStdDev     float64 `json:"memory_std"`
	GpuTempMean      float64 `json:"gpu_temp_mean"`
	GpuTempStdDev    float64 `json:"gpu_temp_std"`
	SamplesCollected int     `json:"samples_collected"`
	UptimeSecs       int64   `json:"uptime_secs"`
}

func (d *Detector) Summary() Summary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Summary{
		CpuMean:          d.cpuWindow.Mean(),
		CpuStdDev:        d.cpuWindow.StdDev(),
		MemoryMean:       d.memoryWindow.Mean(),
		MemoryStdDev:     d.memoryWindow.StdDev(),
		GpuTempMean:      d.gpuTempWindow.Mean(),
		GpuTempStdDev:    d.gpuTempWindow.StdDev(),
		SamplesCollected: d.cpuWindow.Len(),
		UptimeSecs:       int64(time.Since(d.startTime).Seconds()),
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
