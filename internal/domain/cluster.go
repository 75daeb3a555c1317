package domain

import "context"

// VMRef identifies a virtual machine in the cluster inventory. The cluster
// addresses machines by name, so the ref is the inventory name returned by
// CreateVM.
type VMRef string

// CloneSpec describes a VM to create from a template, including the static
// network configuration applied through OS customization. An empty
// ResourcePool means the cluster default; an empty Network.IPAddress skips
// customization.
type CloneSpec struct {
	Name         string
	Template     string
	ResourcePool string
	Datastore    string
	Network      NetworkConfig
}

// ClusterClient is an explicit session handle over the virtualization
// cluster management API. Implementations hold the connection established
// at construction; there is no package-level connection state.
type ClusterClient interface {
	CreateVM(ctx context.Context, spec CloneSpec) (VMRef, error)
	AssignTag(ctx context.Context, vm VMRef, tag string) error
	SetNetworkAdapter(ctx context.Context, vm VMRef, portGroup string) error
	StartVM(ctx context.Context, vm VMRef) error
	GuestIPAddresses(ctx context.Context, vmName string) ([]string, error)
	ListNetworkSegments(ctx context.Context, namePattern string) ([]string, error)
	DatastoreWithMostFreeSpace(ctx context.Context) (string, error)
}
