package gpu

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/coreprobe/sysmon/entities"
)

// nvidiaBackend wraps NVML device handles. Unlike the older nvidia-smi
// subprocess scraping approach, NVML is queried directly and synchronously
// per call; there is no polling loop or incremental averaging.
type nvidiaBackend struct {
	devices []nvml.Device
}

func newNvidiaBackend() (Backend, error) {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return nil, fmt.Errorf("nvml init: %v", nvml.ErrorString(ret))
	}

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		nvml.Shutdown()
		return nil, fmt.Errorf("nvml device count: %v", nvml.ErrorString(ret))
	}
	if count == 0 {
		nvml.Shutdown()
		return nil, nil
	}

	devices := make([]nvml.Device, 0, count)
	for i := 0; i < count; i++ {
		dev, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			continue
		}
		devices = append(devices, dev)
	}
	if len(devices) == 0 {
		nvml.Shutdown()
		return nil, nil
	}

	return &nvidiaBackend{devices: devices}, nil
}

func (b *nvidiaBackend) Vendor() entities.GpuVendor { return entities.GpuVendorNvidia }

func (b *nvidiaBackend) DeviceCount() int { return len(b.devices) }

func (b *nvidiaBackend) device(localIndex int) (nvml.Device, error) {
	if localIndex < 0 || localIndex >= len(b.devices) {
		return nvml.Device{}, fmt.Errorf("nvidia: device index %d out of range", localIndex)
	}
	return b.devices[localIndex], nil
}

func (b *nvidiaBackend) StaticInfo(localIndex int) (entities.GpuStaticInfo, error) {
	dev, err := b.device(localIndex)
	if err != nil {
		return entities.GpuStaticInfo{}, err
	}

	name, ret := dev.GetName()
	if ret != nvml.SUCCESS {
		return entities.GpuStaticInfo{}, fmt.Errorf("nvml get name: %v", nvml.ErrorString(ret))
	}
	name = strings.TrimPrefix(name, "NVIDIA ")

	info := entities.GpuStaticInfo{
		Name:   name,
		Vendor: entities.GpuVendorNvidia,
	}
	if uuid, ret := dev.GetUUID(); ret == nvml.SUCCESS {
		info.UUID = uuid
	}
	if version, ret := nvml.SystemGetDriverVersion(); ret == nvml.SUCCESS {
		info.DriverVersion = version
	}
	if pci, ret := dev.GetPciInfo(); ret == nvml.SUCCESS {
		info.PciBusID = pciBusIDString(pci)
	}
	if mem, ret := dev.GetMemoryInfo(); ret == nvml.SUCCESS {
		info.MemoryTotal = mem.Total
	}
	return info, nil
}

func (b *nvidiaBackend) DynamicInfo(localIndex int) (entities.GpuDynamicInfo, error) {
	dev, err := b.device(localIndex)
	if err != nil {
		return entities.GpuDynamicInfo{}, err
	}

	var dyn entities.GpuDynamicInfo

	if util, ret := dev.GetUtilizationRates(); ret == nvml.SUCCESS {
		dyn.UtilizationPercent = float64(util.Gpu)
	}
	if mem, ret := dev.GetMemoryInfo(); ret == nvml.SUCCESS {
		dyn.Memory = entities.GpuMemory{
			Total: mem.Total,
			Used:  mem.Used,
			Free:  mem.Free,
		}
		if mem.Total > 0 {
			dyn.Memory.Utilization = float64(mem.Used) / float64(mem.Total) * 100.0
		}
	}
	if temp, ret := dev.GetTemperature(nvml.TEMPERATURE_GPU); ret == nvml.SUCCESS {
		t := float64(temp)
		dyn.Thermal.TemperatureC = &t
	}
	if power, ret := dev.GetPowerUsage(); ret == nvml.SUCCESS {
		mw := float64(power)
		dyn.Power.DrawMilliwatts = &mw
	}
	if limit, ret := dev.GetPowerManagementLimit(); ret == nvml.SUCCESS {
		mw := float64(limit)
		dyn.Power.LimitMilliwatts = &mw
	}
	if clocks, ret := dev.GetClockInfo(nvml.CLOCK_GRAPHICS); ret == nvml.SUCCESS {
		mhz := float64(clocks)
		dyn.Clocks.GraphicsMHz = &mhz
	}
	if clocks, ret := dev.GetClockInfo(nvml.CLOCK_MEM); ret == nvml.SUCCESS {
		mhz := float64(clocks)
		dyn.Clocks.MemoryMHz = &mhz
	}

	dyn.Processes = b.processes(dev)
	return dyn, nil
}

// processes merges the compute and graphics process lists NVML reports
// separately; a PID present in both is reported once with both usage types.
func (b *nvidiaBackend) processes(dev nvml.Device) []entities.GpuProcess {
	seen := make(map[uint32]*entities.GpuProcess)

	addAll := func(infos []nvml.ProcessInfo, ptype entities.GpuProcessType) {
		for _, p := range infos {
			if existing, ok := seen[p.Pid]; ok {
				if existing.ProcessType != ptype {
					existing.ProcessType = entities.GpuProcessGraphicsAndCompute
				}
				continue
			}
			memBytes := p.UsedGpuMemory
			proc := &entities.GpuProcess{
				Pid:              int32(p.Pid),
				MemoryUsageBytes: &memBytes,
				ProcessType:      ptype,
			}
			seen[p.Pid] = proc
		}
	}

	if infos, ret := dev.GetComputeRunningProcesses(); ret == nvml.SUCCESS {
		addAll(infos, entities.GpuProcessCompute)
	}
	if infos, ret := dev.GetGraphicsRunningProcesses(); ret == nvml.SUCCESS {
		addAll(infos, entities.GpuProcessGraphics)
	}

	out := make([]entities.GpuProcess, 0, len(seen))
	for _, p := range seen {
		out = append(out, *p)
	}
	return out
}

func pciBusIDString(pci nvml.PciInfo) string {
	busID := make([]byte, 0, len(pci.BusId))
	for _, c := range pci.BusId {
		if c == 0 {
			break
		}
		busID = append(busID, byte(c))
	}
	return strings.ToLower(string(busID))
}
