package vsphere

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/vim25/types"

	"github.com/bk147/vmprov/internal/domain"
)

// CreateVM clones a template into the datacenter's VM folder, placing the
// clone on the requested resource pool and datastore. The clone is left
// powered off; StartVM powers it on once tags and the network adapter are
// in place.
func (s *Session) CreateVM(ctx context.Context, spec domain.CloneSpec) (domain.VMRef, error) {
	template, err := s.virtualMachine(ctx, spec.Template)
	if err != nil {
		return "", err
	}

	pool, err := s.finder.ResourcePoolOrDefault(ctx, spec.ResourcePool)
	if err != nil {
		return "", fmt.Errorf("resolve resource pool %q: %w", spec.ResourcePool, err)
	}

	datastore, err := s.finder.Datastore(ctx, spec.Datastore)
	if err != nil {
		return "", fmt.Errorf("resolve datastore %q: %w", spec.Datastore, err)
	}

	folders, err := s.datacenter.Folders(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve vm folder: %w", err)
	}

	poolRef := pool.Reference()
	datastoreRef := datastore.Reference()
	cloneSpec := types.VirtualMachineCloneSpec{
		Location: types.VirtualMachineRelocateSpec{
			Pool:      &poolRef,
			Datastore: &datastoreRef,
		},
		PowerOn:       false,
		Customization: customizationSpec(spec.Name, spec.Network, s.guestDomain),
	}

	task, err := template.Clone(ctx, folders.VmFolder, spec.Name, cloneSpec)
	if err != nil {
		return "", fmt.Errorf("clone %q from %q: %w", spec.Name, spec.Template, err)
	}
	if _, err := task.WaitForResult(ctx, nil); err != nil {
		return "", fmt.Errorf("clone %q from %q: %w", spec.Name, spec.Template, err)
	}

	return domain.VMRef(spec.Name), nil
}

// StartVM powers on the named VM and waits for the power task to finish.
func (s *Session) StartVM(ctx context.Context, vm domain.VMRef) error {
	machine, err := s.virtualMachine(ctx, string(vm))
	if err != nil {
		return err
	}

	task, err := machine.PowerOn(ctx)
	if err != nil {
		return fmt.Errorf("power on %q: %w", vm, err)
	}
	if _, err := task.WaitForResult(ctx, nil); err != nil {
		return fmt.Errorf("power on %q: %w", vm, err)
	}
	return nil
}

// customizationSpec builds the OS customization applied during clone: fixed
// IP, subnet mask, default gateway and DNS servers. A spec without an IP
// address skips customization entirely.
func customizationSpec(hostname string, network domain.NetworkConfig, guestDomain string) *types.CustomizationSpec {
	if network.IPAddress == "" {
		return nil
	}

	return &types.CustomizationSpec{
		Identity: &types.CustomizationLinuxPrep{
			HostName: &types.CustomizationFixedName{Name: hostname},
			Domain:   guestDomain,
		},
		GlobalIPSettings: types.CustomizationGlobalIPSettings{
			DnsServerList: network.DNSServers,
		},
		NicSettingMap: []types.CustomizationAdapterMapping{{
			Adapter: types.CustomizationIPSettings{
				Ip:         &types.CustomizationFixedIp{IpAddress: network.IPAddress},
				SubnetMask: network.SubnetMask,
				Gateway:    []string{network.Gateway},
			},
		}},
	}
}
