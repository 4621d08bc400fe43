package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/coreprobe/sysmon/entities"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
)

// ReadSystemInfo takes one fresh read of host identity and firmware state.
// Every optional field is left zero-valued when its source is unavailable,
// matching this module's pointer/ok-flag convention for absent data rather
// than failing the whole read.
func ReadSystemInfo(ctx context.Context) (entities.SystemInfo, error) {
	var info entities.SystemInfo

	info.Hostname, _ = os.Hostname()

	info.Architecture = runtime.GOARCH
	if arch, err := host.KernelArchWithContext(ctx); err == nil {
		info.Architecture = arch
	}

	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return info, fmt.Errorf("read system info: %w", err)
	}

	switch {
	case platform == "darwin":
		info.OsName = fmt.Sprintf("macOS %s", version)
	case strings.Contains(platform, "indows"):
		info.OsName = strings.Replace(platform, "Microsoft ", "", 1)
		info.KernelVersion = version
	default:
		if prettyName, err := getOsPrettyName(); err == nil {
			info.OsName = prettyName
		} else {
			info.OsName = platform
		}
		info.KernelVersion, _ = host.KernelVersionWithContext(ctx)
	}
	info.OsVersion = version

	if infos, err := cpu.InfoWithContext(ctx, false); err == nil && len(infos) > 0 {
		info.CpuModel = infos[0].ModelName
		info.CpuVendor = infos[0].VendorID
	}
	info.CpuPhysical, _ = cpu.CountsWithContext(ctx, false)
	info.CpuLogical, _ = cpu.CountsWithContext(ctx, true)

	if uptime, err := host.UptimeWithContext(ctx); err == nil {
		info.UptimeSeconds = uptime
	}

	info.Bios = readBiosInfo()
	info.Manufacturer, info.ProductName = readChassisInfo()
	info.BoardVendor, info.BoardName, info.BoardVersion = readBoardInfo()

	return info, nil
}

// getOsPrettyName reads the distribution-friendly name from /etc/os-release,
// used on Linux/BSD where the bare platform string isn't presentable.
func getOsPrettyName() (string, error) {
	file, err := os.Open("/etc/os-release")
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if after, ok := strings.CutPrefix(scanner.Text(), "PRETTY_NAME="); ok {
			return strings.Trim(after, `"`), nil
		}
	}
	return "", errors.New("pretty name not found")
}

// readBiosInfo reads DMI/SMBIOS firmware fields from sysfs. Returns a zero
// value on any OS other than Linux, or when the table is hidden (common
// inside containers and some hypervisors).
func readBiosInfo() entities.BiosInfo {
	var bios entities.BiosInfo
	bios.FirmwareType = entities.FirmwareUnknown
	if runtime.GOOS != "linux" {
		return bios
	}

	const dmi = "/sys/class/dmi/id"
	bios.Vendor = readDmiField(filepath.Join(dmi, "bios_vendor"))
	bios.Version = readDmiField(filepath.Join(dmi, "bios_version"))
	bios.ReleaseDate = readDmiField(filepath.Join(dmi, "bios_date"))

	if _, err := os.Stat("/sys/firmware/efi"); err == nil {
		bios.FirmwareType = entities.FirmwareUefi
	} else {
		bios.FirmwareType = entities.FirmwareBios
	}

	if data, err := os.ReadFile(filepath.Join("/sys/kernel/security/secureboot/efi", "secureboot")); err == nil {
		enabled := len(data) > 0 && data[len(data)-1] == 1
		bios.SecureBoot = &enabled
	} else if data, err := os.ReadFile("/sys/firmware/efi/efivars/SecureBoot-8be4df61-93ca-11d2-aa0d-00e098032b8c"); err == nil {
		enabled := len(data) > 0 && data[len(data)-1] == 1
		bios.SecureBoot = &enabled
	}

	return bios
}

func readChassisInfo() (manufacturer, product string) {
	if runtime.GOOS != "linux" {
		return "", ""
	}
	const dmi = "/sys/class/dmi/id"
	return readDmiField(filepath.Join(dmi, "sys_vendor")), readDmiField(filepath.Join(dmi, "product_name"))
}

func readBoardInfo() (vendor, name, version string) {
	if runtime.GOOS != "linux" {
		return "", "", ""
	}
	const dmi = "/sys/class/dmi/id"
	return readDmiField(filepath.Join(dmi, "board_vendor")),
		readDmiField(filepath.Join(dmi, "board_name")),
		readDmiField(filepath.Join(dmi, "board_version"))
}

func readDmiField(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
