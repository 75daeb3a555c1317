package http

import (
	"time"

	"github.com/bk147/vmprov/internal/domain"
)

// ProvisionRequest is the payload accepted when provisioning a VM.
type ProvisionRequest struct {
	VMName            string   `json:"vm_name" example:"web-01" validate:"required"`
	Template          string   `json:"template" example:"rhel9-template" validate:"required"`
	ResourcePool      string   `json:"resource_pool" example:"Prod/Web"`
	PortGroup         string   `json:"port_group" example:"dvPG-Servers"`
	CIDR              string   `json:"cidr" example:"172.25.14.57/27" validate:"required"`
	DNSServers        []string `json:"dns_servers" example:"172.25.0.10,172.25.0.11"`
	OwnerTag          string   `json:"owner_tag" example:"team-web"`
	ExcludeFromBackup bool     `json:"exclude_from_backup" example:"false"`
}

// ProvisionResponse is a simplified view returned to clients and used in Swagger.
type ProvisionResponse struct {
	ID                string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	VMName            string    `json:"vm_name" example:"web-01"`
	Template          string    `json:"template" example:"rhel9-template"`
	ResourcePool      string    `json:"resource_pool" example:"Prod/Web"`
	Datastore         string    `json:"datastore" example:"datastore-ssd-03"`
	PortGroup         string    `json:"port_group" example:"dvPG-Servers"`
	CIDR              string    `json:"cidr" example:"172.25.14.57/27"`
	IPAddress         string    `json:"ip_address" example:"172.25.14.57"`
	SubnetMask        string    `json:"subnet_mask" example:"255.255.255.224"`
	Gateway           string    `json:"gateway" example:"172.25.14.33"`
	DNSServers        []string  `json:"dns_servers" example:"172.25.0.10,172.25.0.11"`
	OwnerTag          string    `json:"owner_tag" example:"team-web"`
	ExcludeFromBackup bool      `json:"exclude_from_backup" example:"false"`
	Status            string    `json:"status" example:"completed"`
	FailureMessage    string    `json:"failure_message,omitempty" example:""`
	CreatedAt         time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt         time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// SubnetInfoRequest is the payload accepted when decomposing a CIDR.
type SubnetInfoRequest struct {
	CIDR string `json:"cidr" example:"172.25.14.57/27" validate:"required"`
}

// SubnetInfoResponse carries the derived subnet values.
type SubnetInfoResponse struct {
	CIDR           string `json:"cidr" example:"172.25.14.57/27"`
	IPAddress      string `json:"ip_address" example:"172.25.14.57"`
	SubnetMask     string `json:"subnet_mask" example:"255.255.255.224"`
	NetworkAddress string `json:"network_address" example:"172.25.14.32"`
	Gateway        string `json:"gateway" example:"172.25.14.33"`
}

// GuestAddressesResponse lists the IP addresses reported by a VM's guest.
type GuestAddressesResponse struct {
	VMName    string   `json:"vm_name" example:"web-01"`
	Addresses []string `json:"addresses" example:"172.25.14.57"`
}

// NetworksResponse lists network segments matching a pattern.
type NetworksResponse struct {
	Networks []string `json:"networks" example:"dvPG-Servers,dvPG-DMZ"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"vm not found"`
}

func (r ProvisionRequest) toInput() domain.ProvisionInput {
	return domain.ProvisionInput{
		VMName:            r.VMName,
		Template:          r.Template,
		ResourcePool:      r.ResourcePool,
		PortGroup:         r.PortGroup,
		CIDR:              r.CIDR,
		DNSServers:        r.DNSServers,
		OwnerTag:          r.OwnerTag,
		ExcludeFromBackup: r.ExcludeFromBackup,
	}
}

func provisionToResponse(p domain.Provision) ProvisionResponse {
	return ProvisionResponse{
		ID:                string(p.ID),
		VMName:            p.VMName,
		Template:          p.Template,
		ResourcePool:      p.ResourcePool,
		Datastore:         p.Datastore,
		PortGroup:         p.PortGroup,
		CIDR:              p.CIDR,
		IPAddress:         p.Network.IPAddress,
		SubnetMask:        p.Network.SubnetMask,
		Gateway:           p.Network.Gateway,
		DNSServers:        p.Network.DNSServers,
		OwnerTag:          p.OwnerTag,
		ExcludeFromBackup: p.ExcludeFromBackup,
		Status:            string(p.Status),
		FailureMessage:    p.FailureMessage,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func provisionsToResponse(provisions []domain.Provision) []ProvisionResponse {
	out := make([]ProvisionResponse, 0, len(provisions))
	for _, p := range provisions {
		out = append(out, provisionToResponse(p))
	}
	return out
}

func subnetInfoToResponse(info domain.SubnetInfo) SubnetInfoResponse {
	return SubnetInfoResponse{
		CIDR:           info.CIDR,
		IPAddress:      info.IPAddress,
		SubnetMask:     info.SubnetMask,
		NetworkAddress: info.NetworkAddress,
		Gateway:        info.Gateway,
	}
}
