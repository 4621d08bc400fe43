package entities

// FirmwareType is the closed set a BIOS implementation reports.
type FirmwareType string

const (
	FirmwareBios    FirmwareType = "bios"
	FirmwareUefi    FirmwareType = "uefi"
	FirmwareUnknown FirmwareType = "unknown"
)

// BiosInfo is read from DMI/SMBIOS (Linux: /sys/class/dmi/id, Windows: WMI
// Win32_BIOS, macOS: ioreg). Every field is optional since access can be
// restricted or the table absent under virtualization.
type BiosInfo struct {
	Vendor       string       `json:"vendor,omitempty"`
	Version      string       `json:"version,omitempty"`
	ReleaseDate  string       `json:"release_date,omitempty"`
	FirmwareType FirmwareType `json:"firmware_type"`
	SecureBoot   *bool        `json:"secure_boot,omitempty"`
}

// SystemInfo is a single, self-consistent read of host identity and firmware
// state. Unset optional fields are omitted rather than sentineled.
type SystemInfo struct {
	Hostname       string   `json:"hostname,omitempty"`
	OsName         string   `json:"os_name"`
	OsVersion      string   `json:"os_version"`
	KernelVersion  string   `json:"kernel_version,omitempty"`
	Architecture   string   `json:"architecture"`
	Bios           BiosInfo `json:"bios"`
	Manufacturer   string   `json:"manufacturer,omitempty"`
	ProductName    string   `json:"product_name,omitempty"`
	BoardVendor    string   `json:"board_vendor,omitempty"`
	BoardName      string   `json:"board_name,omitempty"`
	BoardVersion   string   `json:"board_version,omitempty"`
	CpuModel       string   `json:"cpu_model,omitempty"`
	CpuVendor      string   `json:"cpu_vendor,omitempty"`
	CpuPhysical    int      `json:"cpu_physical_cores"`
	CpuLogical     int      `json:"cpu_logical_cores"`
	UptimeSeconds  uint64   `json:"uptime_seconds"`
}

// VoltageRail is one reading off a hwmon "in*_input" channel.
type VoltageRail struct {
	Name    string  `json:"name"`
	Volts   float64 `json:"volts"`
	MinV    *float64 `json:"min_volts,omitempty"`
	MaxV    *float64 `json:"max_volts,omitempty"`
}

// FanReading is one reading off a hwmon "fan*_input" channel.
type FanReading struct {
	Name string  `json:"name"`
	Rpm  float64 `json:"rpm"`
}

// TemperatureSensor is one reading off a hwmon "temp*_input" channel or
// platform equivalent.
type TemperatureSensor struct {
	Name        string   `json:"name"`
	TemperatureC float64 `json:"temperature_c"`
	HighC       *float64 `json:"high_c,omitempty"`
	CriticalC   *float64 `json:"critical_c,omitempty"`
}

// MotherboardDevice groups everything a single hwmon chip (or platform
// equivalent) exposes.
type MotherboardDevice struct {
	Name         string              `json:"name"`
	Temperatures []TemperatureSensor `json:"temperatures,omitempty"`
	Voltages     []VoltageRail       `json:"voltages,omitempty"`
	Fans         []FanReading        `json:"fans,omitempty"`
}
