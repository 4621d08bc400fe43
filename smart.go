package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/coreprobe/sysmon/entities"
)

// smartctlReport is the subset of `smartctl -a -j` that is common across the
// ATA, SCSI and NVMe parsers smartctl selects internally; all three report
// smart_status and a temperature.current under these same keys.
type smartctlReport struct {
	SmartStatus struct {
		Passed bool `json:"passed"`
	} `json:"smart_status"`
	Temperature struct {
		Current float64 `json:"current"`
	} `json:"temperature"`
	Smartctl struct {
		ExitStatus int      `json:"exit_status"`
		Messages   []string `json:"messages"`
	} `json:"smartctl"`
}

// readSmartHealth runs a single on-demand SMART self-assessment for one
// device. This intentionally does not replicate the reference engine's
// per-vendor attribute table parsing (NVMe/SATA/SCSI specific fields,
// device-type auto-detection, cross-refresh caching): the probes this
// module exposes only ever surface a pass/fail health summary and a
// temperature, so there is nothing downstream to parse those tables for.
func readSmartHealth(ctx context.Context, device string) (entities.DiskHealth, error) {
	report, err := runSmartctl(ctx, device)
	if err != nil {
		return entities.DiskUnknown, err
	}
	if report.Smartctl.ExitStatus&0x2 != 0 {
		return entities.DiskUnknown, fmt.Errorf("smartctl could not open device %s: %s", device, strings.Join(report.Smartctl.Messages, "; "))
	}
	if !report.SmartStatus.Passed {
		return entities.DiskFailed, nil
	}
	return entities.DiskHealthy, nil
}

// readDiskTemperature returns the device's current temperature in Celsius,
// or nil if smartctl did not report one (common for virtual/cloud disks).
func readDiskTemperature(ctx context.Context, device string) (*float64, error) {
	report, err := runSmartctl(ctx, device)
	if err != nil {
		return nil, err
	}
	if report.Temperature.Current == 0 {
		return nil, nil
	}
	temp := report.Temperature.Current
	return &temp, nil
}

func runSmartctl(ctx context.Context, device string) (*smartctlReport, error) {
	path, err := devicePath(device)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, "smartctl", "-a", "-j", path)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// smartctl's exit code encodes warning bits even on a successful read, so
	// a non-zero Run() error is only fatal if stdout didn't parse as JSON.
	runErr := cmd.Run()

	var report smartctlReport
	if jsonErr := json.Unmarshal(stdout.Bytes(), &report); jsonErr != nil {
		if runErr != nil {
			return nil, fmt.Errorf("run smartctl on %s: %w", device, runErr)
		}
		return nil, fmt.Errorf("parse smartctl output for %s: %w", device, jsonErr)
	}
	return &report, nil
}

func devicePath(device string) (string, error) {
	if strings.HasPrefix(device, "/dev/") || strings.Contains(device, ":") || strings.HasPrefix(device, `\\`) {
		return device, nil
	}
	return "/dev/" + device, nil
}
