// Package history implements the Tool API's bounded, time-keyed sample
// store backing get_historical_data and compare_metrics. It is owned by
// the tool API layer, not the core: the core's probes are themselves
// stateless.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sample is one point recorded by the Agent runtime's sampling loop.
type Sample struct {
	Timestamp     int64    `json:"timestamp"`
	ID            string   `json:"id"`
	CpuPercent    float64  `json:"cpu_percent"`
	MemoryPercent float64  `json:"memory_percent"`
	GpuTempC      *float64 `json:"gpu_temp,omitempty"`
	GpuUtilPct    *float64 `json:"gpu_util,omitempty"`
}

// Buffer is a fixed-retention ring of Samples. Entries older than the
// retention window are evicted as new samples arrive; there is no upper
// bound on element count beyond what the retention window implies.
type Buffer struct {
	mu        sync.Mutex
	retention time.Duration
	samples   []Sample
}

// NewBuffer creates a buffer that evicts samples older than retention.
func NewBuffer(retention time.Duration) *Buffer {
	return &Buffer{retention: retention}
}

// Record appends a sample stamped with the current wall time, then evicts
// anything older than the retention window.
func (b *Buffer) Record(cpuPercent, memPercent float64, gpuTempC, gpuUtilPct *float64) Sample {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	sample := Sample{
		Timestamp:     now.Unix(),
		ID:            uuid.NewString(),
		CpuPercent:    cpuPercent,
		MemoryPercent: memPercent,
		GpuTempC:      gpuTempC,
		GpuUtilPct:    gpuUtilPct,
	}
	b.samples = append(b.samples, sample)
	b.evictLocked(now)
	return sample
}

// Metrics lists the selectors get_historical_data and compare_metrics
// accept for their metric parameter.
var Metrics = []string{"cpu", "memory", "gpu_temp", "gpu_util"}

// Value extracts the named metric from a Sample. ok is false for gpu_temp
// or gpu_util when the sample was recorded with no GPU present.
func Value(s Sample, metric string) (value float64, ok bool) {
	switch metric {
	case "cpu":
		return s.CpuPercent, true
	case "memory":
		return s.MemoryPercent, true
	case "gpu_temp":
		if s.GpuTempC == nil {
			return 0, false
		}
		return *s.GpuTempC, true
	case "gpu_util":
		if s.GpuUtilPct == nil {
			return 0, false
		}
		return *s.GpuUtilPct, true
	default:
		return 0, false
	}
}

// Average returns the mean of metric across samples, skipping any sample
// where the metric had no value. ok is false if no sample contributed.
func Average(samples []Sample, metric string) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, s := range samples {
		if v, present := Value(s, metric); present {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func (b *Buffer) evictLocked(now time.Time) {
	cutoff := now.Add(-b.retention).Unix()
	i := 0
	for ; i < len(b.samples); i++ {
		if b.samples[i].Timestamp >= cutoff {
			break
		}
	}
	if i > 0 {
		b.samples = append([]Sample(nil), b.samples[i:]...)
	}
}

// Since returns every retained sample at or after the given number of
// seconds before now. A zero or negative value returns the full buffer.
func (b *Buffer) Since(secondsAgo int64) []Sample {
	b.mu.Lock()
	defer b.mu.Unlock()

	if secondsAgo <= 0 {
		out := make([]Sample, len(b.samples))
		copy(out, b.samples)
		return out
	}
	cutoff := time.Now().Unix() - secondsAgo
	var out []Sample
	for _, s := range b.samples {
		if s.Timestamp >= cutoff {
			out = append(out, s)
		}
	}
	return out
}

// Window returns the samples whose timestamp falls within
// [now-secondsAgo, now-secondsAgo+windowSeconds).
func (b *Buffer) Window(secondsAgo, windowSeconds int64) []Sample {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now().Unix()
	start := now - secondsAgo
	end := start + windowSeconds
	var out []Sample
	for _, s := range b.samples {
		if s.Timestamp >= start && s.Timestamp < end {
			out = append(out, s)
		}
	}
	return out
}
