//go:build !darwin

package gpu

// macmon/powermetrics are macOS-only tools, so this backend never reports
// devices on other platforms.
func newAppleBackend() (Backend, error) {
	return nil, nil
}
