//go:build !linux

package inference

// readChassisType has no DMI equivalent outside Linux: Windows exposes it via
// Win32_SystemEnclosure.ChassisTypes (WMI), macOS never exposes a chassis
// code at all. Both report Unknown here; a full Windows build would add a
// wmi query mirroring sensors_windows.go's existing WMI usage.
func readChassisType() string {
	return "Unknown"
}
