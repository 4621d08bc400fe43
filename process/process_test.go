//go:build testing

package process

import (
	"testing"

	"github.com/coreprobe/sysmon/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProcesses() []*entities.ProcessInfo {
	return []*entities.ProcessInfo{
		{Pid: 1, Name: "firefox", CpuPercent: 5, MemoryBytes: 200, Category: entities.CategoryBrowser},
		{Pid: 2, Name: "python3", CpuPercent: 40, MemoryBytes: 900, Category: entities.CategoryAiMl},
		{Pid: 3, Name: "systemd", CpuPercent: 1, MemoryBytes: 50, Category: entities.CategorySystem},
	}
}

func TestAttributionJoinMaintainsInvariants(t *testing.T) {
	procs := sampleProcesses()
	mem2 := uint64(4000)
	snapshots := []entities.GpuSnapshot{
		{Index: 0, Dynamic: entities.GpuDynamicInfo{Processes: []entities.GpuProcess{
			{Pid: 2, MemoryUsageBytes: &mem2, ProcessType: entities.GpuProcessCompute},
		}}},
	}

	AttributionJoin(procs, snapshots)

	target := procs[1]
	require.True(t, target.HasGpuUsage())
	assert.Equal(t, []int{0}, target.GpuIndices)
	assert.Equal(t, uint64(4000), target.GpuMemoryPerDevice[0])
	assert.Equal(t, uint64(4000), target.TotalGpuMemoryBytes)
	assert.Equal(t, entities.CategoryAiMl, target.Category)
}

func TestByCpuSortsDescending(t *testing.T) {
	sorted := ByCpu(sampleProcesses())
	assert.Equal(t, int32(2), sorted[0].Pid)
	assert.Equal(t, int32(1), sorted[1].Pid)
	assert.Equal(t, int32(3), sorted[2].Pid)
}

func TestByMemorySortsDescending(t *testing.T) {
	sorted := ByMemory(sampleProcesses())
	assert.Equal(t, int32(2), sorted[0].Pid)
}

func TestSearchMatchesSubstring(t *testing.T) {
	found := Search(sampleProcesses(), "FIRE")
	require.Len(t, found, 1)
	assert.Equal(t, "firefox", found[0].Name)
}

func TestByCategoryFilters(t *testing.T) {
	found := ByCategory(sampleProcesses(), entities.CategorySystem)
	require.Len(t, found, 1)
	assert.Equal(t, int32(3), found[0].Pid)
}

func TestCategoryStatsAggregatesAndSortsByCpu(t *testing.T) {
	stats := CategoryStats(sampleProcesses())
	require.Len(t, stats, 3)
	assert.Equal(t, entities.CategoryAiMl, stats[0].Category)
	assert.Equal(t, 1, stats[0].Count)
	assert.Equal(t, 40.0, stats[0].TotalCpuPercent)
}
