//go:build testing

package classify

import (
	"testing"

	"github.com/coreprobe/sysmon/entities"
	"github.com/stretchr/testify/assert"
)

func TestClassifyBrowser(t *testing.T) {
	assert.Equal(t, entities.CategoryBrowser, Classify("firefox", "alice", false))
	assert.Equal(t, entities.CategoryBrowser, Classify("chrome", "", false))
}

func TestClassifyGpuAiMl(t *testing.T) {
	assert.Equal(t, entities.CategoryAiMl, Classify("python3", "alice", true))
}

func TestClassifyGpuGaming(t *testing.T) {
	assert.Equal(t, entities.CategoryGaming, Classify("steam", "alice", true))
}

func TestClassifyGpuFallsBackToCompute(t *testing.T) {
	assert.Equal(t, entities.CategoryGpuCompute, Classify("some-renderer", "alice", true))
}

func TestClassifyServiceByRootUser(t *testing.T) {
	assert.Equal(t, entities.CategoryService, Classify("my-daemon", "root", false))
	assert.Equal(t, entities.CategoryService, Classify("my-daemon", "_coredaemon", false))
}

func TestClassifyUnknown(t *testing.T) {
	assert.Equal(t, entities.CategoryUnknown, Classify("my-custom-app", "alice", false))
}

func TestClassifyOrderSystemBeforeService(t *testing.T) {
	// "systemd" matches the System keyword list and must win over any later rule.
	assert.Equal(t, entities.CategorySystem, Classify("systemd-journald", "root", false))
}
