//go:build testing

package agent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmartctlReportParsesPassedStatus(t *testing.T) {
	raw := []byte(`{
		"smart_status": {"passed": true},
		"temperature": {"current": 38},
		"smartctl": {"exit_status": 0, "messages": []}
	}`)
	var report smartctlReport
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.True(t, report.SmartStatus.Passed)
	assert.Equal(t, 38.0, report.Temperature.Current)
	assert.Equal(t, 0, report.Smartctl.ExitStatus)
}

func TestSmartctlReportParsesFailedStatus(t *testing.T) {
	raw := []byte(`{
		"smart_status": {"passed": false},
		"temperature": {"current": 71},
		"smartctl": {"exit_status": 4, "messages": []}
	}`)
	var report smartctlReport
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.False(t, report.SmartStatus.Passed)
}

func TestDevicePathAddsLinuxPrefix(t *testing.T) {
	path, err := devicePath("sda")
	require.NoError(t, err)
	assert.Equal(t, "/dev/sda", path)
}

func TestDevicePathPreservesAbsolutePath(t *testing.T) {
	path, err := devicePath("/dev/nvme0n1")
	require.NoError(t, err)
	assert.Equal(t, "/dev/nvme0n1", path)
}

func TestDevicePathPreservesWindowsPath(t *testing.T) {
	path, err := devicePath(`\\.\PhysicalDrive0`)
	require.NoError(t, err)
	assert.Equal(t, `\\.\PhysicalDrive0`, path)
}
