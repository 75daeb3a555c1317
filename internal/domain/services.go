package domain

import "context"

type ProvisionService interface {
	Provision(ctx context.Context, input ProvisionInput) (Provision, error)
	GetProvision(ctx context.Context, id ProvisionID) (Provision, error)
	ListProvisions(ctx context.Context) ([]Provision, error)
}

type NetworkService interface {
	GuestAddresses(ctx context.Context, vmName string) ([]string, error)
	ListSegments(ctx context.Context, namePattern string) ([]string, error)
	SubnetInfo(ctx context.Context, cidr string) (SubnetInfo, error)
}
