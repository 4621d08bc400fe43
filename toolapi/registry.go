// Package toolapi exposes every probe, backend, and inference component in
// the monitor as a Model Context Protocol tool, plus a transport-agnostic
// Invoke entry point for callers that don't want to speak MCP at all.
package toolapi

import "context"

// Category groups tool names the way the registry documents them.
type Category string

const (
	CategorySystem    Category = "system"
	CategoryGpu       Category = "gpu"
	CategoryCpu       Category = "cpu"
	CategoryMemory    Category = "memory"
	CategoryDisk      Category = "disk"
	CategoryNetwork   Category = "network"
	CategoryProcess   Category = "process"
	CategoryHardware  Category = "hardware"
	CategoryAudio     Category = "audio"
	CategoryBluetooth Category = "bluetooth"
	CategoryDisplay   Category = "display"
	CategoryUsb       Category = "usb"
)

// toolSpec names, describes, and categorizes one registered tool. handler is
// shared between the mcp-go registration and the direct Invoke dispatcher.
type toolSpec struct {
	Name        string
	Category    Category
	Description string
	handler     func(ctx context.Context, deps *Deps, p params) (string, error)
}

// registry is the authoritative list of every tool this server exposes.
// Audio/Bluetooth/Display/Usb tools are listed here and answer every call
// with ErrNotImplemented: the registry's shape is fixed even where no
// backing OS source exists yet.
var registry = []toolSpec{
	{"get_system_summary", CategorySystem, "One-shot hardware inference report: classification, performance tier, bottlenecks, workload suitability, thermal envelope, upgrade recommendations.", handleGetSystemSummary},
	{"get_system_info", CategorySystem, "Host identity and firmware: OS, kernel, architecture, BIOS, board, CPU model.", handleGetSystemInfo},
	{"get_platform_info", CategorySystem, "Raw extracted hardware features backing the inference engine.", handleGetPlatformInfo},
	{"get_historical_data", CategorySystem, "Timestamped values for one metric (cpu/memory/gpu_temp/gpu_util) recorded over the last N seconds.", handleGetHistoricalData},
	{"compare_metrics", CategorySystem, "Average of one metric over two independently-specified windows, and the delta between them.", handleCompareMetrics},

	{"get_gpu_status", CategoryGpu, "Full snapshot (static + dynamic) for every detected GPU.", handleGetGpuStatus},
	{"get_gpu_list", CategoryGpu, "Vendor and name for every detected GPU, by index.", handleGetGpuList},
	{"get_gpu_details", CategoryGpu, "Full snapshot for one GPU index.", handleGetGpuDetails},
	{"get_gpu_processes", CategoryGpu, "Processes with attributed GPU usage on one GPU index.", handleGetGpuProcesses},
	{"get_gpu_utilization", CategoryGpu, "Utilization percent for one GPU index.", handleGetGpuUtilization},
	{"get_gpu_memory", CategoryGpu, "Memory total/used/free/utilization for one GPU index.", handleGetGpuMemory},
	{"get_gpu_temperature", CategoryGpu, "Thermal reading for one GPU index.", handleGetGpuTemperature},
	{"get_gpu_power", CategoryGpu, "Power draw/limit for one GPU index.", handleGetGpuPower},

	{"get_cpu_status", CategoryCpu, "Aggregate CPU time percentages and derived total utilization.", handleGetCpuStatus},
	{"get_cpu_cores", CategoryCpu, "Per-core online state, governor, and frequency.", handleGetCpuCores},
	{"get_cpu_frequency", CategoryCpu, "Current/min/max clock speed for one core.", handleGetCpuFrequency},

	{"get_memory_status", CategoryMemory, "RAM total/used/available.", handleGetMemoryStatus},
	{"get_memory_breakdown", CategoryMemory, "RAM total/used/free/buffers/cached/shared.", handleGetMemoryBreakdown},
	{"get_swap_status", CategoryMemory, "Swap total/used/cached.", handleGetSwapStatus},

	{"get_disk_list", CategoryDisk, "Every detected block device with basic info.", handleGetDiskList},
	{"get_disk_details", CategoryDisk, "Info, filesystem, and health for one disk by name.", handleGetDiskDetails},
	{"get_disk_io", CategoryDisk, "Read/write bytes and ops for one disk by name.", handleGetDiskIo},
	{"get_disk_health", CategoryDisk, "SMART-derived health verdict for one disk by name.", handleGetDiskHealth},

	{"get_network_interfaces", CategoryNetwork, "Every network interface with counters.", handleGetNetworkInterfaces},
	{"get_network_bandwidth", CategoryNetwork, "Current rx/tx byte rate for one interface by name.", handleGetNetworkBandwidth},
	{"get_interface_details", CategoryNetwork, "Full counters and addresses for one interface by name.", handleGetInterfaceDetails},

	{"get_process_list", CategoryProcess, "Every process, GPU-attributed, with optional sort key.", handleGetProcessList},
	{"get_process_details", CategoryProcess, "Full record for one process by pid.", handleGetProcessDetails},
	{"get_top_cpu_processes", CategoryProcess, "Top N processes by CPU percent.", handleGetTopCpuProcesses},
	{"get_top_memory_processes", CategoryProcess, "Top N processes by resident memory.", handleGetTopMemoryProcesses},
	{"get_top_gpu_processes", CategoryProcess, "Top N processes by total GPU memory.", handleGetTopGpuProcesses},
	{"search_processes", CategoryProcess, "Processes whose name contains a query substring.", handleSearchProcesses},

	{"get_motherboard_sensors", CategoryHardware, "Every hwmon-backed motherboard sensor device.", handleGetMotherboardSensors},
	{"get_system_temperatures", CategoryHardware, "Every temperature sensor reading.", handleGetSystemTemperatures},
	{"get_fan_speeds", CategoryHardware, "Every fan RPM reading.", handleGetFanSpeeds},
	{"get_voltage_rails", CategoryHardware, "Every voltage rail reading.", handleGetVoltageRails},
	{"get_driver_info", CategoryHardware, "BIOS/firmware driver metadata.", handleGetDriverInfo},

	{"get_audio_devices", CategoryAudio, "Not implemented on this platform.", notImplementedHandler},
	{"get_audio_status", CategoryAudio, "Not implemented on this platform.", notImplementedHandler},
	{"get_bluetooth_adapters", CategoryBluetooth, "Not implemented on this platform.", notImplementedHandler},
	{"get_bluetooth_devices", CategoryBluetooth, "Not implemented on this platform.", notImplementedHandler},
	{"get_display_list", CategoryDisplay, "Not implemented on this platform.", notImplementedHandler},
	{"get_display_details", CategoryDisplay, "Not implemented on this platform.", notImplementedHandler},
	{"get_usb_devices", CategoryUsb, "Not implemented on this platform.", notImplementedHandler},
	{"get_usb_device_details", CategoryUsb, "Not implemented on this platform.", notImplementedHandler},
}

func findTool(name string) (toolSpec, bool) {
	for _, t := range registry {
		if t.Name == name {
			return t, true
		}
	}
	return toolSpec{}, false
}
