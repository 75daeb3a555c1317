package domain

import "time"

type ProvisionID string

type ProvisionStatus string

const (
	ProvisionPending   ProvisionStatus = "pending"
	ProvisionCompleted ProvisionStatus = "completed"
	ProvisionFailed    ProvisionStatus = "failed"
)

// NetworkConfig is the static guest network configuration derived from the
// request CIDR and handed to the cluster's OS customization facility.
type NetworkConfig struct {
	IPAddress  string
	SubnetMask string
	Gateway    string
	DNSServers []string
}

// Provision is a persisted record of a VM provisioning request.
type Provision struct {
	ID                ProvisionID
	VMName            string
	Template          string
	ResourcePool      string
	Datastore         string
	PortGroup         string
	CIDR              string
	Network           NetworkConfig
	OwnerTag          string
	ExcludeFromBackup bool
	Status            ProvisionStatus
	FailureMessage    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SubnetInfo is the decomposition of a CIDR into the values consumed by a
// guest network configuration.
type SubnetInfo struct {
	CIDR           string
	IPAddress      string
	SubnetMask     string
	NetworkAddress string
	Gateway        string
}
