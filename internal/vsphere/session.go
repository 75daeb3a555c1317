// Package vsphere implements the cluster management API on top of govmomi.
// A Session is an explicit connection handle; every operation is a method on
// it and there is no package-level client state.
package vsphere

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/find"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/property"
	"github.com/vmware/govmomi/vapi/rest"
	"github.com/vmware/govmomi/vapi/tags"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"

	"github.com/bk147/vmprov/internal/domain"
)

type Config struct {
	URL      string
	Username string
	Password string
	Insecure bool

	// Datacenter is a finder path; empty selects the default datacenter.
	Datacenter string

	// GuestDomain is the DNS domain written into the guest customization
	// spec of cloned machines.
	GuestDomain string
}

type Session struct {
	client      *govmomi.Client
	rest        *rest.Client
	tags        *tags.Manager
	finder      *find.Finder
	datacenter  *object.Datacenter
	guestDomain string
}

var _ domain.ClusterClient = (*Session)(nil)

// Connect logs in to the cluster management server and resolves the working
// datacenter. The returned session must be released with Logout.
func Connect(ctx context.Context, cfg Config) (*Session, error) {
	u, err := soap.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", cfg.URL, err)
	}
	if cfg.Username != "" {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}

	client, err := govmomi.NewClient(ctx, u, cfg.Insecure)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", u.Host, err)
	}

	finder := find.NewFinder(client.Client, false)
	datacenter, err := finder.DatacenterOrDefault(ctx, cfg.Datacenter)
	if err != nil {
		_ = client.Logout(ctx)
		return nil, fmt.Errorf("resolve datacenter %q: %w", cfg.Datacenter, err)
	}
	finder.SetDatacenter(datacenter)

	restClient := rest.NewClient(client.Client)
	if err := restClient.Login(ctx, u.User); err != nil {
		_ = client.Logout(ctx)
		return nil, fmt.Errorf("rest login: %w", err)
	}

	return &Session{
		client:      client,
		rest:        restClient,
		tags:        tags.NewManager(restClient),
		finder:      finder,
		datacenter:  datacenter,
		guestDomain: cfg.GuestDomain,
	}, nil
}

// Logout releases both the SOAP and REST sessions.
func (s *Session) Logout(ctx context.Context) error {
	_ = s.rest.Logout(ctx)
	return s.client.Logout(ctx)
}

// DatastoreWithMostFreeSpace returns the name of the accessible datastore
// with the largest amount of free space in the working datacenter.
func (s *Session) DatastoreWithMostFreeSpace(ctx context.Context) (string, error) {
	datastores, err := s.finder.DatastoreList(ctx, "*")
	if err != nil {
		return "", fmt.Errorf("list datastores: %w", err)
	}

	refs := make([]types.ManagedObjectReference, 0, len(datastores))
	for _, ds := range datastores {
		refs = append(refs, ds.Reference())
	}

	var summaries []mo.Datastore
	pc := property.DefaultCollector(s.client.Client)
	if err := pc.Retrieve(ctx, refs, []string{"summary"}, &summaries); err != nil {
		return "", fmt.Errorf("read datastore summaries: %w", err)
	}

	best := ""
	bestFree := int64(-1)
	for _, ds := range summaries {
		if ds.Summary.Accessible && ds.Summary.FreeSpace > bestFree {
			best = ds.Summary.Name
			bestFree = ds.Summary.FreeSpace
		}
	}
	if best == "" {
		return "", fmt.Errorf("no accessible datastore: %w", domain.ErrNotFound)
	}
	return best, nil
}

func (s *Session) virtualMachine(ctx context.Context, name string) (*object.VirtualMachine, error) {
	vm, err := s.finder.VirtualMachine(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("vm %q: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("find vm %q: %w", name, err)
	}
	return vm, nil
}

func isNotFound(err error) bool {
	var notFound *find.NotFoundError
	return errors.As(err, &notFound)
}
