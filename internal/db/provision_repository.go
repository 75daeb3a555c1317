package db

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bk147/vmprov/internal/domain"
)

// Schema creates the provisions table. Applied idempotently at startup.
//
//go:embed schema.sql
var Schema string

type ProvisionRepository struct {
	pool *pgxpool.Pool
}

func NewProvisionRepository(pool *pgxpool.Pool) *ProvisionRepository {
	return &ProvisionRepository{pool: pool}
}

const provisionColumns = `id, vm_name, template, resource_pool, datastore, port_group,
	cidr, ip_address, subnet_mask, gateway, dns_servers, owner_tag,
	exclude_from_backup, status, failure_message, created_at, updated_at`

const createProvision = `INSERT INTO provisions (
	vm_name, template, resource_pool, datastore, port_group,
	cidr, ip_address, subnet_mask, gateway, dns_servers, owner_tag,
	exclude_from_backup, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + provisionColumns

func (r *ProvisionRepository) Create(ctx context.Context, p domain.Provision) (domain.Provision, error) {
	row := r.pool.QueryRow(ctx, createProvision,
		p.VMName, p.Template, p.ResourcePool, p.Datastore, p.PortGroup,
		p.CIDR, p.Network.IPAddress, p.Network.SubnetMask, p.Network.Gateway,
		p.Network.DNSServers, p.OwnerTag, p.ExcludeFromBackup, string(p.Status),
	)

	provision, err := scanProvision(row)
	if err != nil {
		if isUniqueVMNameViolation(err) {
			return domain.Provision{}, fmt.Errorf("%w: vm %q already provisioned", domain.ErrConflict, p.VMName)
		}
		return domain.Provision{}, err
	}
	return provision, nil
}

const updateProvisionStatus = `UPDATE provisions
SET status = $2, failure_message = $3, updated_at = now()
WHERE id = $1
RETURNING ` + provisionColumns

func (r *ProvisionRepository) UpdateStatus(ctx context.Context, id domain.ProvisionID, status domain.ProvisionStatus, failureMessage string) (domain.Provision, error) {
	parsedID, err := parseProvisionID(id)
	if err != nil {
		return domain.Provision{}, fmt.Errorf("%w: invalid provision id", domain.ErrInvalidInput)
	}

	row := r.pool.QueryRow(ctx, updateProvisionStatus, parsedID, string(status), failureMessage)
	provision, err := scanProvision(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Provision{}, domain.ErrNotFound
		}
		return domain.Provision{}, err
	}
	return provision, nil
}

const findProvisionByID = `SELECT ` + provisionColumns + ` FROM provisions WHERE id = $1`

func (r *ProvisionRepository) FindByID(ctx context.Context, id domain.ProvisionID) (domain.Provision, error) {
	parsedID, err := parseProvisionID(id)
	if err != nil {
		return domain.Provision{}, fmt.Errorf("%w: invalid provision id", domain.ErrInvalidInput)
	}

	row := r.pool.QueryRow(ctx, findProvisionByID, parsedID)
	provision, err := scanProvision(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Provision{}, domain.ErrNotFound
		}
		return domain.Provision{}, err
	}
	return provision, nil
}

const listProvisions = `SELECT ` + provisionColumns + ` FROM provisions ORDER BY created_at DESC`

func (r *ProvisionRepository) List(ctx context.Context) ([]domain.Provision, error) {
	rows, err := r.pool.Query(ctx, listProvisions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Provision, 0)
	for rows.Next() {
		provision, err := scanProvision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, provision)
	}
	return out, rows.Err()
}

func scanProvision(row pgx.Row) (domain.Provision, error) {
	var (
		p         domain.Provision
		id        pgtype.UUID
		status    string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &p.VMName, &p.Template, &p.ResourcePool, &p.Datastore, &p.PortGroup,
		&p.CIDR, &p.Network.IPAddress, &p.Network.SubnetMask, &p.Network.Gateway,
		&p.Network.DNSServers, &p.OwnerTag,
		&p.ExcludeFromBackup, &status, &p.FailureMessage, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Provision{}, err
	}

	p.ID = domain.ProvisionID(id.String())
	p.Status = domain.ProvisionStatus(status)
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return p, nil
}

func parseProvisionID(id domain.ProvisionID) (pgtype.UUID, error) {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return pgtype.UUID{}, err
	}

	var parsed pgtype.UUID
	copy(parsed.Bytes[:], u[:])
	parsed.Valid = true

	return parsed, nil
}

func isUniqueVMNameViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == "unique_vm_name"
}
