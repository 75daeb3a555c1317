package domain

import (
	"context"
	"fmt"

	"github.com/bk147/vmprov/internal/netcalc"
)

type provisionService struct {
	cluster    ClusterClient
	provisions ProvisionRepository

	// backupExclusionTag is attached when a request opts the VM out of
	// backup. Empty disables the feature.
	backupExclusionTag string
}

func NewProvisionService(cluster ClusterClient, provisions ProvisionRepository, backupExclusionTag string) ProvisionService {
	return &provisionService{
		cluster:            cluster,
		provisions:         provisions,
		backupExclusionTag: backupExclusionTag,
	}
}

// Provision clones a VM from a template, tags it, sets its network adapter
// and powers it on, recording the request along the way. All local
// validation happens before the first cluster call so a bad address never
// produces a partially provisioned VM.
func (s *provisionService) Provision(ctx context.Context, input ProvisionInput) (Provision, error) {
	if input.VMName == "" {
		return Provision{}, fmt.Errorf("%w: vm name is required", ErrInvalidInput)
	}
	if input.Template == "" {
		return Provision{}, fmt.Errorf("%w: template is required", ErrInvalidInput)
	}

	network, err := networkConfigFromCIDR(input.CIDR, input.DNSServers)
	if err != nil {
		return Provision{}, err
	}

	datastore, err := s.cluster.DatastoreWithMostFreeSpace(ctx)
	if err != nil {
		return Provision{}, fmt.Errorf("select datastore: %w", err)
	}

	record, err := s.provisions.Create(ctx, Provision{
		VMName:            input.VMName,
		Template:          input.Template,
		ResourcePool:      input.ResourcePool,
		Datastore:         datastore,
		PortGroup:         input.PortGroup,
		CIDR:              input.CIDR,
		Network:           network,
		OwnerTag:          input.OwnerTag,
		ExcludeFromBackup: input.ExcludeFromBackup,
		Status:            ProvisionPending,
	})
	if err != nil {
		return Provision{}, err
	}

	vm, err := s.cluster.CreateVM(ctx, CloneSpec{
		Name:         input.VMName,
		Template:     input.Template,
		ResourcePool: input.ResourcePool,
		Datastore:    datastore,
		Network:      network,
	})
	if err != nil {
		return s.fail(ctx, record.ID, fmt.Errorf("create vm: %w", err))
	}

	if input.OwnerTag != "" {
		if err := s.cluster.AssignTag(ctx, vm, input.OwnerTag); err != nil {
			return s.fail(ctx, record.ID, fmt.Errorf("assign owner tag %q: %w", input.OwnerTag, err))
		}
	}

	if input.ExcludeFromBackup && s.backupExclusionTag != "" {
		if err := s.cluster.AssignTag(ctx, vm, s.backupExclusionTag); err != nil {
			return s.fail(ctx, record.ID, fmt.Errorf("assign backup exclusion tag: %w", err))
		}
	}

	if input.PortGroup != "" {
		if err := s.cluster.SetNetworkAdapter(ctx, vm, input.PortGroup); err != nil {
			return s.fail(ctx, record.ID, fmt.Errorf("set network adapter to %q: %w", input.PortGroup, err))
		}
	}

	if err := s.cluster.StartVM(ctx, vm); err != nil {
		return s.fail(ctx, record.ID, fmt.Errorf("start vm: %w", err))
	}

	return s.provisions.UpdateStatus(ctx, record.ID, ProvisionCompleted, "")
}

func (s *provisionService) GetProvision(ctx context.Context, id ProvisionID) (Provision, error) {
	return s.provisions.FindByID(ctx, id)
}

func (s *provisionService) ListProvisions(ctx context.Context) ([]Provision, error) {
	return s.provisions.List(ctx)
}

// fail marks the record failed and returns the original error. The record
// update is best effort; the provisioning error is what the caller needs.
func (s *provisionService) fail(ctx context.Context, id ProvisionID, cause error) (Provision, error) {
	record, err := s.provisions.UpdateStatus(ctx, id, ProvisionFailed, cause.Error())
	if err != nil {
		return Provision{}, cause
	}
	return record, cause
}

// networkConfigFromCIDR derives the static guest network configuration from
// an a.b.c.d/n string: the address itself, the subnet mask and the gateway
// (first usable host of the subnet). The address must be a usable host
// within its own subnet.
func networkConfigFromCIDR(cidr string, dnsServers []string) (NetworkConfig, error) {
	parsed, err := netcalc.ParseCIDR(cidr)
	if err != nil {
		return NetworkConfig{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	gateway, err := parsed.GatewayAddress()
	if err != nil {
		return NetworkConfig{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateUsableHost(cidr); err != nil {
		return NetworkConfig{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return NetworkConfig{
		IPAddress:  parsed.Address(),
		SubnetMask: parsed.SubnetMask(),
		Gateway:    gateway,
		DNSServers: dnsServers,
	}, nil
}
