//go:build testing

package toolapi

import (
	"context"
	"testing"

	"github.com/coreprobe/sysmon/entities"
	"github.com/stretchr/testify/assert"
)

func TestSortProcessesByName(t *testing.T) {
	procs := []*entities.ProcessInfo{
		{Pid: 2, Name: "zsh"},
		{Pid: 1, Name: "bash"},
	}
	sorted := sortProcesses(procs, "name")
	assert.Equal(t, "bash", sorted[0].Name)
	assert.Equal(t, "zsh", sorted[1].Name)
}

func TestSortProcessesDefaultsToPid(t *testing.T) {
	procs := []*entities.ProcessInfo{
		{Pid: 9, Name: "b"},
		{Pid: 1, Name: "a"},
	}
	sorted := sortProcesses(procs, "unknown-key")
	assert.Equal(t, int32(1), sorted[0].Pid)
}

func TestTopNClampsToAvailable(t *testing.T) {
	procs := []*entities.ProcessInfo{{Pid: 1}, {Pid: 2}}
	assert.Len(t, topN(procs, 10), 2)
	assert.Len(t, topN(procs, 1), 1)
	assert.Len(t, topN(procs, -1), 2)
}

func TestHandleGetProcessDetailsUnknownPid(t *testing.T) {
	_, err := handleGetProcessDetails(context.Background(), &Deps{}, params{"pid": 999999999.0})
	assert.Error(t, err)
}
