package entities

// ProcessCategory is the closed classification set. The declaration order
// below is not the order in which classify.Classify checks its keyword sets.
type ProcessCategory string

const (
	CategorySystem        ProcessCategory = "system"
	CategoryService        ProcessCategory = "service"
	CategoryDesktop        ProcessCategory = "desktop"
	CategoryBrowser        ProcessCategory = "browser"
	CategoryDevelopment    ProcessCategory = "development"
	CategoryAiMl           ProcessCategory = "ai_ml"
	CategoryGaming         ProcessCategory = "gaming"
	CategoryMedia          ProcessCategory = "media"
	CategoryCommunication  ProcessCategory = "communication"
	CategoryProductivity   ProcessCategory = "productivity"
	CategoryContainer      ProcessCategory = "container"
	CategoryNetwork        ProcessCategory = "network"
	CategoryDatabase       ProcessCategory = "database"
	CategoryGpuCompute     ProcessCategory = "gpu_compute"
	CategoryShell          ProcessCategory = "shell"
	CategoryApplication    ProcessCategory = "application"
	CategoryUnknown        ProcessCategory = "unknown"
)

// ProcessInfo is the unified, per-PID record produced by enumeration and
// enriched in place by the GPU attribution join.
type ProcessInfo struct {
	Pid          int32  `json:"pid"`
	ParentPid    int32  `json:"parent_pid,omitempty"`
	Name         string `json:"name"`
	User         string `json:"user,omitempty"`
	State        string `json:"state"`
	Priority     *int32 `json:"priority,omitempty"`
	StartTimeUnix int64 `json:"start_time,omitempty"`

	CpuPercent         float64 `json:"cpu_percent"`
	MemoryBytes        uint64  `json:"memory_bytes"`
	VirtualMemoryBytes uint64  `json:"virtual_memory_bytes"`
	PrivateBytes       uint64  `json:"private_bytes"`
	ThreadCount        int32   `json:"thread_count"`
	HandleCount        int32   `json:"handle_count"`
	IoReadBytes        uint64  `json:"io_read_bytes"`
	IoWriteBytes       uint64  `json:"io_write_bytes"`

	GpuIndices           []int           `json:"gpu_indices,omitempty"`
	GpuMemoryPerDevice   map[int]uint64  `json:"gpu_memory_per_device,omitempty"`
	TotalGpuMemoryBytes  uint64          `json:"total_gpu_memory_bytes"`
	GpuUsagePercent      *float64        `json:"gpu_usage_percent,omitempty"`
	EncoderUsagePercent  *float64        `json:"encoder_usage_percent,omitempty"`
	DecoderUsagePercent  *float64        `json:"decoder_usage_percent,omitempty"`
	GpuProcessType       GpuProcessType  `json:"gpu_process_type,omitempty"`
	GpuMemoryPercentage  *float64        `json:"gpu_memory_percentage,omitempty"`

	Category ProcessCategory `json:"category"`
}

// HasGpuUsage reports whether the attribution join touched this process.
func (p *ProcessInfo) HasGpuUsage() bool {
	return len(p.GpuIndices) > 0
}

// AddGpuDevice records device index i's contribution and keeps the
// gpu_indices / gpu_memory_per_device / total_gpu_memory_bytes invariants
// (P1, P2) intact.
func (p *ProcessInfo) AddGpuDevice(index int, memoryBytes uint64) {
	if p.GpuMemoryPerDevice == nil {
		p.GpuMemoryPerDevice = make(map[int]uint64)
	}
	if _, seen := p.GpuMemoryPerDevice[index]; !seen {
		p.GpuIndices = append(p.GpuIndices, index)
	}
	p.GpuMemoryPerDevice[index] = memoryBytes
	total := uint64(0)
	for _, v := range p.GpuMemoryPerDevice {
		total += v
	}
	p.TotalGpuMemoryBytes = total
}

// CategoryStats aggregates per-category totals for category_stats().
type CategoryStats struct {
	Category        ProcessCategory `json:"category"`
	Count           int             `json:"count"`
	GpuProcessCount int             `json:"gpu_process_count"`
	TotalCpuPercent float64         `json:"total_cpu_percent"`
	TotalMemoryBytes uint64         `json:"total_memory_bytes"`
	TotalGpuMemoryBytes uint64      `json:"total_gpu_memory_bytes"`
}
