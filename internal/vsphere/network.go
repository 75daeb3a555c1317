package vsphere

import (
	"context"
	"fmt"
	"path"

	"github.com/vmware/govmomi/property"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/types"

	"github.com/bk147/vmprov/internal/domain"
)

// SetNetworkAdapter rebacks the VM's first network adapter onto the named
// port group.
func (s *Session) SetNetworkAdapter(ctx context.Context, vm domain.VMRef, portGroup string) error {
	machine, err := s.virtualMachine(ctx, string(vm))
	if err != nil {
		return err
	}

	network, err := s.finder.Network(ctx, portGroup)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("port group %q: %w", portGroup, domain.ErrNotFound)
		}
		return fmt.Errorf("find port group %q: %w", portGroup, err)
	}

	backing, err := network.EthernetCardBackingInfo(ctx)
	if err != nil {
		return fmt.Errorf("backing for port group %q: %w", portGroup, err)
	}

	devices, err := machine.Device(ctx)
	if err != nil {
		return fmt.Errorf("read devices of %q: %w", vm, err)
	}

	cards := devices.SelectByType((*types.VirtualEthernetCard)(nil))
	if len(cards) == 0 {
		return fmt.Errorf("vm %q has no network adapter", vm)
	}

	card := cards[0]
	card.GetVirtualDevice().Backing = backing
	if err := machine.EditDevice(ctx, card); err != nil {
		return fmt.Errorf("edit network adapter of %q: %w", vm, err)
	}
	return nil
}

// GuestIPAddresses returns the IP addresses reported by the guest tools of
// the named VM. A powered-off or toolless guest yields an empty list.
func (s *Session) GuestIPAddresses(ctx context.Context, vmName string) ([]string, error) {
	machine, err := s.virtualMachine(ctx, vmName)
	if err != nil {
		return nil, err
	}

	var props mo.VirtualMachine
	pc := property.DefaultCollector(s.client.Client)
	if err := pc.RetrieveOne(ctx, machine.Reference(), []string{"guest"}, &props); err != nil {
		return nil, fmt.Errorf("read guest info of %q: %w", vmName, err)
	}

	if props.Guest == nil {
		return nil, nil
	}

	var addresses []string
	for _, nic := range props.Guest.Net {
		addresses = append(addresses, nic.IpAddress...)
	}
	if len(addresses) == 0 && props.Guest.IpAddress != "" {
		addresses = append(addresses, props.Guest.IpAddress)
	}
	return addresses, nil
}

// ListNetworkSegments returns the names of networks and port groups in the
// working datacenter matching the finder glob pattern. No matches is an
// empty list, not an error.
func (s *Session) ListNetworkSegments(ctx context.Context, namePattern string) ([]string, error) {
	if namePattern == "" {
		namePattern = "*"
	}

	networks, err := s.finder.NetworkList(ctx, namePattern)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list networks %q: %w", namePattern, err)
	}

	names := make([]string, 0, len(networks))
	for _, network := range networks {
		names = append(names, path.Base(network.GetInventoryPath()))
	}
	return names, nil
}
