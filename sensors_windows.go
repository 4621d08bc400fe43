//go:build windows

package agent

import (
	"context"

	"github.com/shirou/gopsutil/v4/sensors"
)

// getSensorTemps on Windows is a thin wrapper over gopsutil, which reads
// from the OS's built-in WMI thermal zone information. Coverage is limited
// compared to Linux hwmon (most consumer boards don't expose one sensor per
// rail this way), but it requires no bundled tooling or elevated process.
func getSensorTemps(ctx context.Context) ([]sensors.TemperatureStat, error) {
	return sensors.TemperaturesWithContext(ctx)
}
