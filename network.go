package agent

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/coreprobe/sysmon/deltatracker"
	"github.com/coreprobe/sysmon/entities"
	psutilNet "github.com/shirou/gopsutil/v4/net"
)

// NicConfig controls inclusion/exclusion of network interfaces via a NICS
// style allow/deny list.
//
//   - Leading '-' means blacklist mode; otherwise whitelist mode.
//   - Supports '*' wildcards using path.Match.
//   - In whitelist mode with an empty list, no NICs are selected.
//   - In blacklist mode with an empty list, all NICs are selected.
type NicConfig struct {
	nics         map[string]struct{}
	isBlacklist  bool
	hasWildcards bool
}

func newNicConfig(nicsEnvVal string) *NicConfig {
	cfg := &NicConfig{nics: make(map[string]struct{})}
	if strings.HasPrefix(nicsEnvVal, "-") {
		cfg.isBlacklist = true
		nicsEnvVal = nicsEnvVal[1:]
	}
	for _, nic := range strings.Split(nicsEnvVal, ",") {
		nic = strings.TrimSpace(nic)
		if nic != "" {
			cfg.nics[nic] = struct{}{}
			if strings.Contains(nic, "*") {
				cfg.hasWildcards = true
			}
		}
	}
	return cfg
}

func isValidNic(nicName string, cfg *NicConfig) bool {
	if cfg == nil || len(cfg.nics) == 0 {
		return cfg == nil || cfg.isBlacklist
	}
	if _, exactMatch := cfg.nics[nicName]; exactMatch {
		return !cfg.isBlacklist
	}
	if !cfg.hasWildcards {
		return cfg.isBlacklist
	}
	for pattern := range cfg.nics {
		if !strings.Contains(pattern, "*") {
			continue
		}
		if match, _ := path.Match(pattern, nicName); match {
			return !cfg.isBlacklist
		}
	}
	return cfg.isBlacklist
}

// skipNetworkInterface filters out virtual/container interfaces that don't
// represent physical or routable network paths.
func skipNetworkInterface(name string) bool {
	switch {
	case strings.HasPrefix(name, "lo"),
		strings.HasPrefix(name, "docker"),
		strings.HasPrefix(name, "br-"),
		strings.HasPrefix(name, "veth"),
		strings.HasPrefix(name, "bond"),
		strings.HasPrefix(name, "cali"):
		return true
	default:
		return false
	}
}

// EnumerateNetworkInterfaces lists the host's physical/routable network
// interfaces with their current cumulative counters. It is a pure snapshot:
// rate figures are the responsibility of NetworkMonitor.
func EnumerateNetworkInterfaces(ctx context.Context) ([]entities.NetworkInterface, error) {
	var nicCfg *NicConfig
	if nicsEnvVal, exists := GetEnv("NICS"); exists {
		nicCfg = newNicConfig(nicsEnvVal)
	}

	counters, err := psutilNet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]psutilNet.IOCountersStat, len(counters))
	for _, c := range counters {
		byName[c.Name] = c
	}

	ifaces, err := psutilNet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	var out []entities.NetworkInterface
	for _, iface := range ifaces {
		if skipNetworkInterface(iface.Name) {
			continue
		}
		if nicCfg != nil && !isValidNic(iface.Name, nicCfg) {
			continue
		}
		counter, hasCounter := byName[iface.Name]
		if !hasCounter {
			continue
		}

		var addrs []string
		for _, a := range iface.Addrs {
			ip := a.Addr
			if idx := strings.Index(ip, "/"); idx != -1 {
				ip = ip[:idx]
			}
			if !strings.Contains(ip, ":") {
				addrs = append(addrs, ip)
			}
		}

		out = append(out, entities.NetworkInterface{
			Name:          iface.Name,
			IsUp:          hasFlag(iface.Flags, "up"),
			IsRunning:     hasFlag(iface.Flags, "running"),
			RxBytes:       counter.BytesRecv,
			TxBytes:       counter.BytesSent,
			RxPackets:     counter.PacketsRecv,
			TxPackets:     counter.PacketsSent,
			RxErrors:      counter.Errin,
			TxErrors:      counter.Errout,
			RxDrops:       counter.Dropin,
			TxDrops:       counter.Dropout,
			SpeedMbps:     readNicSpeedMbps(iface.Name),
			Ipv4Addresses: addrs,
		})
	}
	return out, nil
}

func hasFlag(flags []string, name string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// readNicSpeedMbps reads the Linux-reported link speed for a NIC. Returns
// nil for virtual interfaces and any OS where the sysfs path isn't present.
func readNicSpeedMbps(name string) *float64 {
	data, err := os.ReadFile(filepath.Join("/sys/class/net", name, "speed"))
	if err != nil {
		return nil
	}
	mbps, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil || mbps <= 0 {
		return nil
	}
	return &mbps
}

// NetworkMonitor retains the previous byte counters for each interface so
// callers can ask for a bandwidth rate without threading state through
// their own call sites. It is owned by a single caller at a time; it is not
// a process-wide singleton.
type NetworkMonitor struct {
	mu        sync.Mutex
	rx        *deltatracker.DeltaTracker[string, uint64]
	tx        *deltatracker.DeltaTracker[string, uint64]
	lastCycle time.Time
}

// NewNetworkMonitor creates a monitor with an empty counter baseline. The
// first BandwidthRate call for any interface returns a zero rate since
// there is no prior sample to diff against.
func NewNetworkMonitor() *NetworkMonitor {
	return &NetworkMonitor{
		rx:        deltatracker.NewDeltaTracker[string, uint64](),
		tx:        deltatracker.NewDeltaTracker[string, uint64](),
		lastCycle: time.Now(),
	}
}

// BandwidthRate records the current rx/tx byte counters for name and
// returns the delta over the wall-clock interval since the last Tick.
func (m *NetworkMonitor) BandwidthRate(name string, rxBytes, txBytes uint64) entities.BandwidthRate {
	m.mu.Lock()
	elapsed := time.Since(m.lastCycle).Seconds()
	m.mu.Unlock()

	m.rx.Set(name, rxBytes)
	m.tx.Set(name, txBytes)
	if elapsed <= 0 {
		return entities.BandwidthRate{}
	}

	return entities.BandwidthRate{
		RxBytesPerSec: float64(m.rx.Delta(name)) / elapsed,
		TxBytesPerSec: float64(m.tx.Delta(name)) / elapsed,
	}
}

// Tick promotes this round's counters to the baseline for the next round.
// Call once per polling pass after every interface's BandwidthRate has been
// read.
func (m *NetworkMonitor) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, name := range m.rx.Stale() {
		slog.Debug("network interface no longer reporting", "interface", name)
	}
	m.rx.Cycle()
	m.tx.Cycle()
	m.lastCycle = time.Now()
}
