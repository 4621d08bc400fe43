package agent

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the process-level settings read once at startup from
// SYSMON_-prefixed environment variables.
type Config struct {
	LogLevel         string
	SampleInterval   time.Duration
	HistoryRetention time.Duration
	McpAddr          string
	NvmlDisable      bool
}

// LoadConfig reads Config from the environment, applying defaults for every
// unset variable.
func LoadConfig() Config {
	cfg := Config{
		LogLevel:         "info",
		SampleInterval:   10 * time.Second,
		HistoryRetention: 30 * time.Minute,
		McpAddr:          "stdio",
	}

	if v, ok := GetEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := GetEnv("SAMPLE_INTERVAL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SampleInterval = d
		}
	}
	if v, ok := GetEnv("HISTORY_RETENTION"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HistoryRetention = d
		}
	}
	if v, ok := GetEnv("MCP_ADDR"); ok {
		cfg.McpAddr = v
	}
	if v, ok := GetEnv("NVML_DISABLE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NvmlDisable = b
		}
	}

	return cfg
}

// GetEnv retrieves an environment variable with the "SYSMON_" prefix, or
// falls back to the unprefixed key.
func GetEnv(key string) (value string, exists bool) {
	if value, exists = os.LookupEnv("SYSMON_" + key); exists {
		return value, exists
	}
	return os.LookupEnv(key)
}
