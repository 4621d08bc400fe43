package toolapi

import (
	"context"
	"fmt"

	agent "github.com/coreprobe/sysmon"
	"github.com/coreprobe/sysmon/entities"
	"github.com/coreprobe/sysmon/errs"
)

func findDisk(ctx context.Context, name string) (agent.DiskDevice, error) {
	disks, err := agent.EnumerateDisks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDisk, err)
	}
	for _, d := range disks {
		if d.Info().Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: disk_name %q", errs.ErrDeviceNotFound, name)
}

func handleGetDiskList(ctx context.Context, deps *Deps, p params) (string, error) {
	disks, err := agent.EnumerateDisks(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrDisk, err)
	}
	out := make([]entities.DiskInfo, 0, len(disks))
	for _, d := range disks {
		out = append(out, d.Info())
	}
	return marshal(out)
}

func handleGetDiskDetails(ctx context.Context, deps *Deps, p params) (string, error) {
	name, err := requiredString(p, "disk_name")
	if err != nil {
		return "", err
	}
	d, err := findDisk(ctx, name)
	if err != nil {
		return "", err
	}
	fs, err := d.FilesystemInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrDisk, err)
	}
	health, err := d.Health(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrDisk, err)
	}
	return marshal(struct {
		Info       entities.DiskInfo       `json:"info"`
		Filesystem entities.FilesystemInfo `json:"filesystem"`
		Health     entities.DiskHealth     `json:"health"`
	}{d.Info(), fs, health})
}

func handleGetDiskIo(ctx context.Context, deps *Deps, p params) (string, error) {
	name, err := requiredString(p, "disk_name")
	if err != nil {
		return "", err
	}
	d, err := findDisk(ctx, name)
	if err != nil {
		return "", err
	}
	io, err := d.IoStats(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrDisk, err)
	}
	return marshal(io)
}

func handleGetDiskHealth(ctx context.Context, deps *Deps, p params) (string, error) {
	name, err := requiredString(p, "disk_name")
	if err != nil {
		return "", err
	}
	d, err := findDisk(ctx, name)
	if err != nil {
		return "", err
	}
	health, err := d.Health(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrDisk, err)
	}
	return marshal(struct {
		Health entities.DiskHealth `json:"health"`
	}{health})
}
