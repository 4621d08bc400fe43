package agent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coreprobe/sysmon/entities"
	"github.com/shirou/gopsutil/v4/disk"
)

// DiskDevice is the fixed capability set a block device exposes: info,
// io_stats, health, temperature, filesystem_info. The set of devices present
// on a host is closed for the life of the process, so a single concrete type
// satisfies the interface without any dynamic-dispatch machinery.
type DiskDevice interface {
	Info() entities.DiskInfo
	IoStats(ctx context.Context) (entities.DiskIoStats, error)
	Health(ctx context.Context) (entities.DiskHealth, error)
	Temperature(ctx context.Context) (*float64, error)
	FilesystemInfo(ctx context.Context) (entities.FilesystemInfo, error)
}

type genericDiskDevice struct {
	info       entities.DiskInfo
	mountPoint string
}

func (d *genericDiskDevice) Info() entities.DiskInfo { return d.info }

func (d *genericDiskDevice) IoStats(ctx context.Context) (entities.DiskIoStats, error) {
	counters, err := disk.IOCountersWithContext(ctx, d.info.Name)
	if err != nil {
		return entities.DiskIoStats{}, fmt.Errorf("read disk io stats: %w", err)
	}
	c, ok := counters[d.info.Name]
	if !ok {
		return entities.DiskIoStats{}, fmt.Errorf("device %s not present in io counters", d.info.Name)
	}
	return entities.DiskIoStats{
		ReadBytes:  c.ReadBytes,
		WriteBytes: c.WriteBytes,
		ReadOps:    c.ReadCount,
		WriteOps:   c.WriteCount,
	}, nil
}

func (d *genericDiskDevice) Health(ctx context.Context) (entities.DiskHealth, error) {
	return readSmartHealth(ctx, d.info.Name)
}

func (d *genericDiskDevice) Temperature(ctx context.Context) (*float64, error) {
	return readDiskTemperature(ctx, d.info.Name)
}

func (d *genericDiskDevice) FilesystemInfo(ctx context.Context) (entities.FilesystemInfo, error) {
	usage, err := disk.UsageWithContext(ctx, d.mountPoint)
	if err != nil {
		return entities.FilesystemInfo{}, fmt.Errorf("read filesystem info: %w", err)
	}
	return entities.FilesystemInfo{
		MountPoint: d.mountPoint,
		FsType:     usage.Fstype,
		TotalSize:  usage.Total,
		UsedSize:   usage.Used,
	}, nil
}

// EnumerateDisks lists the block devices backing the host's mounted
// filesystems. Every call re-reads partitions fresh; unlike the teacher's
// fsStats cache there is no persistent state, matching the platform probe
// contract of a pure point-in-time read.
func EnumerateDisks(ctx context.Context) ([]DiskDevice, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("enumerate disks: %w", err)
	}

	isWindows := strings.EqualFold(os.Getenv("OS"), "Windows_NT")

	seen := make(map[string]bool)
	var devices []DiskDevice
	for _, p := range partitions {
		device := strings.TrimSuffix(p.Device, "\\")
		name := device
		if !isWindows {
			name = filepath.Base(device)
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		var total uint64
		if usage, err := disk.UsageWithContext(ctx, p.Mountpoint); err == nil {
			total = usage.Total
		}

		devices = append(devices, &genericDiskDevice{
			info: entities.DiskInfo{
				Name:       name,
				IsNvme:     strings.Contains(strings.ToLower(name), "nvme"),
				IsSsd:      isNonRotational(name),
				TotalBytes: total,
			},
			mountPoint: p.Mountpoint,
		})
	}
	return devices, nil
}

// isNonRotational reports whether a Linux block device is flash-backed,
// read from the sysfs queue attribute every disk driver exposes. Always
// true for NVMe, which has no concept of a rotational queue attribute.
func isNonRotational(name string) bool {
	if strings.Contains(strings.ToLower(name), "nvme") {
		return true
	}
	data, err := os.ReadFile(filepath.Join("/sys/block", name, "queue", "rotational"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "0"
}
