package domain

type ProvisionInput struct {
	VMName            string
	Template          string
	ResourcePool      string
	PortGroup         string
	CIDR              string
	DNSServers        []string
	OwnerTag          string
	ExcludeFromBackup bool
}
