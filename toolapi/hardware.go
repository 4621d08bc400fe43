package toolapi

import (
	"context"
	"fmt"

	agent "github.com/coreprobe/sysmon"
	"github.com/coreprobe/sysmon/entities"
	"github.com/coreprobe/sysmon/errs"
)

func handleGetMotherboardSensors(ctx context.Context, deps *Deps, p params) (string, error) {
	devices, err := agent.EnumerateSensors(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrHardware, err)
	}
	return marshal(devices)
}

func handleGetSystemTemperatures(ctx context.Context, deps *Deps, p params) (string, error) {
	devices, err := agent.EnumerateSensors(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrHardware, err)
	}
	var out []entities.TemperatureSensor
	for _, d := range devices {
		out = append(out, d.Temperatures...)
	}
	return marshal(out)
}

func handleGetFanSpeeds(ctx context.Context, deps *Deps, p params) (string, error) {
	devices, err := agent.EnumerateSensors(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrHardware, err)
	}
	var out []entities.FanReading
	for _, d := range devices {
		out = append(out, d.Fans...)
	}
	return marshal(out)
}

func handleGetVoltageRails(ctx context.Context, deps *Deps, p params) (string, error) {
	devices, err := agent.EnumerateSensors(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrHardware, err)
	}
	var out []entities.VoltageRail
	for _, d := range devices {
		out = append(out, d.Voltages...)
	}
	return marshal(out)
}

func handleGetDriverInfo(ctx context.Context, deps *Deps, p params) (string, error) {
	info, err := agent.ReadSystemInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrHardware, err)
	}
	return marshal(info.Bios)
}
