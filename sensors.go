package agent

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/coreprobe/sysmon/entities"
)

// EnumerateSensors groups every temperature, voltage, and fan reading the
// host exposes by originating chip. getSensorTemps is platform-specific
// (sensors_default.go / sensors_windows.go); voltage rails and fan RPM have
// no gopsutil equivalent and are read directly from Linux hwmon, matching
// this module's habit of dropping to sysfs where gopsutil lacks coverage.
func EnumerateSensors(ctx context.Context) ([]entities.MotherboardDevice, error) {
	devices := make(map[string]*entities.MotherboardDevice)
	order := []string{}

	get := func(name string) *entities.MotherboardDevice {
		if d, ok := devices[name]; ok {
			return d
		}
		d := &entities.MotherboardDevice{Name: name}
		devices[name] = d
		order = append(order, name)
		return d
	}

	temps, err := getSensorTemps(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range temps {
		chip, label := splitSensorKey(t.SensorKey)
		d := get(chip)
		sensor := entities.TemperatureSensor{Name: label, TemperatureC: t.Temperature}
		if t.High > 0 {
			high := t.High
			sensor.HighC = &high
		}
		if t.Critical > 0 {
			crit := t.Critical
			sensor.CriticalC = &crit
		}
		d.Temperatures = append(d.Temperatures, sensor)
	}

	for chip, voltages := range readHwmonVoltages() {
		d := get(chip)
		d.Voltages = append(d.Voltages, voltages...)
	}
	for chip, fans := range readHwmonFans() {
		d := get(chip)
		d.Fans = append(d.Fans, fans...)
	}

	sort.Strings(order)
	out := make([]entities.MotherboardDevice, 0, len(order))
	for _, name := range order {
		out = append(out, *devices[name])
	}
	return out, nil
}

// splitSensorKey splits a gopsutil sensor key (typically "chip_label", e.g.
// "k10temp_tccd1" or "coretemp_core0") into a chip name and label.
func splitSensorKey(key string) (chip, label string) {
	if idx := strings.Index(key, "_"); idx != -1 {
		return key[:idx], key[idx+1:]
	}
	return key, key
}

const hwmonRoot = "/sys/class/hwmon"

func readHwmonVoltages() map[string][]entities.VoltageRail {
	out := make(map[string][]entities.VoltageRail)
	walkHwmon(func(chip string, base string, entry os.DirEntry) {
		name := entry.Name()
		if !strings.HasPrefix(name, "in") || !strings.HasSuffix(name, "_input") {
			return
		}
		raw, err := os.ReadFile(filepath.Join(base, name))
		if err != nil {
			return
		}
		mv, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
		if err != nil {
			return
		}
		label := readHwmonLabel(base, strings.TrimSuffix(name, "_input"))
		out[chip] = append(out[chip], entities.VoltageRail{Name: label, Volts: mv / 1000.0})
	})
	return out
}

func readHwmonFans() map[string][]entities.FanReading {
	out := make(map[string][]entities.FanReading)
	walkHwmon(func(chip string, base string, entry os.DirEntry) {
		name := entry.Name()
		if !strings.HasPrefix(name, "fan") || !strings.HasSuffix(name, "_input") {
			return
		}
		raw, err := os.ReadFile(filepath.Join(base, name))
		if err != nil {
			return
		}
		rpm, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
		if err != nil {
			return
		}
		label := readHwmonLabel(base, strings.TrimSuffix(name, "_input"))
		out[chip] = append(out[chip], entities.FanReading{Name: label, Rpm: rpm})
	})
	return out
}

func readHwmonLabel(base, prefix string) string {
	if data, err := os.ReadFile(filepath.Join(base, prefix+"_label")); err == nil {
		return strings.TrimSpace(string(data))
	}
	return prefix
}

func walkHwmon(fn func(chip, base string, entry os.DirEntry)) {
	chips, err := os.ReadDir(hwmonRoot)
	if err != nil {
		return
	}
	for _, c := range chips {
		base := filepath.Join(hwmonRoot, c.Name())
		chipName := c.Name()
		if data, err := os.ReadFile(filepath.Join(base, "name")); err == nil {
			chipName = strings.TrimSpace(string(data))
		}
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			fn(chipName, base, entry)
		}
	}
}
