package domain

import (
	"context"
	"fmt"

	"github.com/bk147/vmprov/internal/netcalc"
)

type networkService struct {
	cluster ClusterClient
}

func NewNetworkService(cluster ClusterClient) NetworkService {
	return &networkService{cluster: cluster}
}

func (s *networkService) GuestAddresses(ctx context.Context, vmName string) ([]string, error) {
	if vmName == "" {
		return nil, fmt.Errorf("%w: vm name is required", ErrInvalidInput)
	}
	return s.cluster.GuestIPAddresses(ctx, vmName)
}

func (s *networkService) ListSegments(ctx context.Context, namePattern string) ([]string, error) {
	if namePattern == "" {
		namePattern = "*"
	}
	return s.cluster.ListNetworkSegments(ctx, namePattern)
}

func (s *networkService) SubnetInfo(_ context.Context, cidr string) (SubnetInfo, error) {
	parsed, err := netcalc.ParseCIDR(cidr)
	if err != nil {
		return SubnetInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	gateway, err := parsed.GatewayAddress()
	if err != nil {
		return SubnetInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return SubnetInfo{
		CIDR:           parsed.String(),
		IPAddress:      parsed.Address(),
		SubnetMask:     parsed.SubnetMask(),
		NetworkAddress: parsed.NetworkAddress(),
		Gateway:        gateway,
	}, nil
}
