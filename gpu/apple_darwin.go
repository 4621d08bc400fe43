//go:build darwin

package gpu

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"time"

	"github.com/coreprobe/sysmon/entities"
)

const (
	macmonCmd          = "macmon"
	macmonIntervalMs   = 200
	macmonSampleTimeout = 2 * time.Second
)

// appleBackend reports Apple Silicon's single integrated GPU via macmon,
// which needs no sudo unlike powermetrics. One JSON line is read per call.
type appleBackend struct{}

func newAppleBackend() (Backend, error) {
	if _, err := exec.LookPath(macmonCmd); err != nil {
		return nil, nil
	}
	return &appleBackend{}, nil
}

func (b *appleBackend) Vendor() entities.GpuVendor { return entities.GpuVendorApple }

func (b *appleBackend) DeviceCount() int { return 1 }

func (b *appleBackend) StaticInfo(localIndex int) (entities.GpuStaticInfo, error) {
	return entities.GpuStaticInfo{Name: "Apple GPU", Vendor: entities.GpuVendorApple}, nil
}

func (b *appleBackend) DynamicInfo(localIndex int) (entities.GpuDynamicInfo, error) {
	sample, err := sampleMacmon()
	if err != nil {
		return entities.GpuDynamicInfo{}, err
	}
	var dyn entities.GpuDynamicInfo
	if len(sample.GPUUsage) >= 2 {
		usage := sample.GPUUsage[1]
		if usage <= 1.0 {
			usage *= 100
		}
		dyn.UtilizationPercent = usage
	}
	if sample.Temp.GPUTempAvg > 0 {
		t := sample.Temp.GPUTempAvg
		dyn.Thermal.TemperatureC = &t
	}
	watts := sample.GPUPower + sample.GPURAMPower
	if watts > 0 {
		mw := watts * 1000.0
		dyn.Power.DrawMilliwatts = &mw
	}
	return dyn, nil
}

type macmonTemp struct {
	GPUTempAvg float64 `json:"gpu_temp_avg"`
}

type macmonSample struct {
	GPUPower    float64    `json:"gpu_power"`
	GPURAMPower float64    `json:"gpu_ram_power"`
	GPUUsage    []float64  `json:"gpu_usage"`
	Temp        macmonTemp `json:"temp"`
}

func sampleMacmon() (macmonSample, error) {
	ctx, cancel := context.WithTimeout(context.Background(), macmonSampleTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, macmonCmd, "pipe", "-i", "200")
	cmd.Stderr = io.Discard
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return macmonSample{}, err
	}
	if err := cmd.Start(); err != nil {
		return macmonSample{}, err
	}
	defer func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}()

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var sample macmonSample
		if err := json.Unmarshal(line, &sample); err != nil {
			continue
		}
		return sample, nil
	}
	return macmonSample{}, scanner.Err()
}
