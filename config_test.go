//go:build testing

package agent

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, 10*time.Second, cfg.SampleInterval)
	assert.Equal(t, 30*time.Minute, cfg.HistoryRetention)
	assert.Equal(t, "stdio", cfg.McpAddr)
	assert.False(t, cfg.NvmlDisable)
}

func TestLoadConfigReadsPrefixedEnv(t *testing.T) {
	os.Setenv("SYSMON_SAMPLE_INTERVAL", "5s")
	os.Setenv("SYSMON_NVML_DISABLE", "true")
	defer os.Unsetenv("SYSMON_SAMPLE_INTERVAL")
	defer os.Unsetenv("SYSMON_NVML_DISABLE")

	cfg := LoadConfig()
	assert.Equal(t, 5*time.Second, cfg.SampleInterval)
	assert.True(t, cfg.NvmlDisable)
}

func TestGetEnvFallsBackToUnprefixed(t *testing.T) {
	os.Setenv("NICS", "eth0")
	defer os.Unsetenv("NICS")

	v, ok := GetEnv("NICS")
	assert.True(t, ok)
	assert.Equal(t, "eth0", v)
}
