package domain

import "context"

type ProvisionRepository interface {
	Create(ctx context.Context, provision Provision) (Provision, error)
	UpdateStatus(ctx context.Context, id ProvisionID, status ProvisionStatus, failureMessage string) (Provision, error)
	FindByID(ctx context.Context, id ProvisionID) (Provision, error)
	List(ctx context.Context) ([]Provision, error)
}
