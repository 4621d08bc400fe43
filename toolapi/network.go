package toolapi

import (
	"context"
	"fmt"

	agent "github.com/coreprobe/sysmon"
	"github.com/coreprobe/sysmon/entities"
	"github.com/coreprobe/sysmon/errs"
)

func findInterface(ctx context.Context, name string) (entities.NetworkInterface, error) {
	ifaces, err := agent.EnumerateNetworkInterfaces(ctx)
	if err != nil {
		return entities.NetworkInterface{}, fmt.Errorf("%w: %v", errs.ErrNetwork, err)
	}
	for _, iface := range ifaces {
		if iface.Name == name {
			return iface, nil
		}
	}
	return entities.NetworkInterface{}, fmt.Errorf("%w: interface_name %q", errs.ErrDeviceNotFound, name)
}

func handleGetNetworkInterfaces(ctx context.Context, deps *Deps, p params) (string, error) {
	ifaces, err := agent.EnumerateNetworkInterfaces(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrNetwork, err)
	}
	return marshal(ifaces)
}

func handleGetNetworkBandwidth(ctx context.Context, deps *Deps, p params) (string, error) {
	name, err := requiredString(p, "interface_name")
	if err != nil {
		return "", err
	}
	iface, err := findInterface(ctx, name)
	if err != nil {
		return "", err
	}
	if deps.Net == nil {
		return marshal(entities.BandwidthRate{})
	}
	return marshal(deps.Net.BandwidthRate(name, iface.RxBytes, iface.TxBytes))
}

func handleGetInterfaceDetails(ctx context.Context, deps *Deps, p params) (string, error) {
	name, err := requiredString(p, "interface_name")
	if err != nil {
		return "", err
	}
	iface, err := findInterface(ctx, name)
	if err != nil {
		return "", err
	}
	return marshal(iface)
}
