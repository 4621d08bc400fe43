package entities

// GpuVendor is a closed set; the attribution join and classifier both switch on it.
type GpuVendor string

const (
	GpuVendorNvidia GpuVendor = "nvidia"
	GpuVendorAmd    GpuVendor = "amd"
	GpuVendorIntel  GpuVendor = "intel"
	GpuVendorApple  GpuVendor = "apple"
)

// GpuProcessType mirrors the driver's reported engine usage for a process.
type GpuProcessType string

const (
	GpuProcessGraphics    GpuProcessType = "graphics"
	GpuProcessCompute     GpuProcessType = "compute"
	GpuProcessGraphicsAndCompute GpuProcessType = "graphics_and_compute"
	GpuProcessUnknown     GpuProcessType = "unknown"
)

// GpuStaticInfo never changes for the lifetime of a device handle.
type GpuStaticInfo struct {
	Name           string    `json:"name"`
	Vendor         GpuVendor `json:"vendor"`
	PciBusID       string    `json:"pci_bus_id,omitempty"`
	UUID           string    `json:"uuid,omitempty"`
	DriverVersion  string    `json:"driver_version,omitempty"`
	MemoryTotal    uint64    `json:"memory_total"`
}

type GpuMemory struct {
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	Utilization float64 `json:"utilization"`
}

type GpuThermal struct {
	TemperatureC *float64 `json:"temperature_c,omitempty"`
	MaxC         *float64 `json:"max_c,omitempty"`
	CriticalC    *float64 `json:"critical_c,omitempty"`
	FanSpeedPct  *float64 `json:"fan_speed_pct,omitempty"`
	FanRpm       *float64 `json:"fan_rpm,omitempty"`
}

type GpuPower struct {
	DrawMilliwatts          *float64 `json:"draw_mw,omitempty"`
	LimitMilliwatts         *float64 `json:"limit_mw,omitempty"`
	DefaultLimitMilliwatts  *float64 `json:"default_limit_mw,omitempty"`
}

// WattsDraw converts DrawMilliwatts to watts only at a presentation boundary.
func (p GpuPower) WattsDraw() (float64, bool) {
	if p.DrawMilliwatts == nil {
		return 0, false
	}
	return *p.DrawMilliwatts / 1000.0, true
}

type GpuClocks struct {
	GraphicsMHz    *float64 `json:"graphics_mhz,omitempty"`
	MemoryMHz      *float64 `json:"memory_mhz,omitempty"`
	SmMHz          *float64 `json:"sm_mhz,omitempty"`
	GraphicsMaxMHz *float64 `json:"graphics_max_mhz,omitempty"`
	MemoryMaxMHz   *float64 `json:"memory_max_mhz,omitempty"`
}

type GpuProcess struct {
	Pid                 int32          `json:"pid"`
	Name                string         `json:"name"`
	User                string         `json:"user,omitempty"`
	MemoryUsageBytes    *uint64        `json:"memory_usage_bytes,omitempty"`
	MemoryUsagePercent  *float64       `json:"memory_usage_percent,omitempty"`
	GpuUsagePercent     *float64       `json:"gpu_usage_percent,omitempty"`
	EncoderUsagePercent *float64       `json:"encoder_usage_percent,omitempty"`
	DecoderUsagePercent *float64       `json:"decoder_usage_percent,omitempty"`
	ProcessType         GpuProcessType `json:"process_type"`
}

type GpuDynamicInfo struct {
	UtilizationPercent float64      `json:"utilization_percent"`
	Memory             GpuMemory    `json:"memory"`
	Thermal            GpuThermal   `json:"thermal"`
	Power              GpuPower     `json:"power"`
	Clocks             GpuClocks    `json:"clocks"`
	Processes          []GpuProcess `json:"processes"`
}

// GpuSnapshot pairs one device's cached static info with a fresh dynamic read.
type GpuSnapshot struct {
	Index   int            `json:"index"`
	Static  GpuStaticInfo  `json:"static_info"`
	Dynamic GpuDynamicInfo `json:"dynamic_info"`
}
