//go:build !linux

package gpu

// AMD sysfs nodes are Linux-only; Windows/macOS AMD telemetry would need
// ADLX or IOKit respectively, neither of which the pack provides a binding
// for, so this backend reports no devices elsewhere.
func newAmdBackend() (Backend, error) {
	return nil, nil
}
