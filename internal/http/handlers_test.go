package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bk147/vmprov/internal/domain"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) Ping(context.Context) error {
	return s.err
}

type stubProvisionService struct {
	provisionFn func(context.Context, domain.ProvisionInput) (domain.Provision, error)
	getFn       func(context.Context, domain.ProvisionID) (domain.Provision, error)
	listFn      func(context.Context) ([]domain.Provision, error)
}

func (s stubProvisionService) Provision(ctx context.Context, input domain.ProvisionInput) (domain.Provision, error) {
	if s.provisionFn == nil {
		return domain.Provision{}, nil
	}
	return s.provisionFn(ctx, input)
}

func (s stubProvisionService) GetProvision(ctx context.Context, id domain.ProvisionID) (domain.Provision, error) {
	if s.getFn == nil {
		return domain.Provision{}, nil
	}
	return s.getFn(ctx, id)
}

func (s stubProvisionService) ListProvisions(ctx context.Context) ([]domain.Provision, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

type stubNetworkService struct {
	guestAddressesFn func(context.Context, string) ([]string, error)
	listSegmentsFn   func(context.Context, string) ([]string, error)
	subnetInfoFn     func(context.Context, string) (domain.SubnetInfo, error)
}

func (s stubNetworkService) GuestAddresses(ctx context.Context, vmName string) ([]string, error) {
	if s.guestAddressesFn == nil {
		return nil, nil
	}
	return s.guestAddressesFn(ctx, vmName)
}

func (s stubNetworkService) ListSegments(ctx context.Context, namePattern string) ([]string, error) {
	if s.listSegmentsFn == nil {
		return nil, nil
	}
	return s.listSegmentsFn(ctx, namePattern)
}

func (s stubNetworkService) SubnetInfo(ctx context.Context, cidr string) (domain.SubnetInfo, error) {
	if s.subnetInfoFn == nil {
		return domain.SubnetInfo{}, nil
	}
	return s.subnetInfoFn(ctx, cidr)
}

func newTestAPI(provisions domain.ProvisionService, networks domain.NetworkService) *API {
	return NewAPI(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		stubHealthChecker{},
		provisions,
		networks,
		nil,
	)
}

func TestHandleHealthz(t *testing.T) {
	api := newTestAPI(stubProvisionService{}, stubNetworkService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestHandleReadyzReportsDBFailure(t *testing.T) {
	api := newTestAPI(stubProvisionService{}, stubNetworkService{})
	api.DB = stubHealthChecker{err: context.DeadlineExceeded}

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestHandleProvisionVMReturnsCreated(t *testing.T) {
	api := newTestAPI(stubProvisionService{
		provisionFn: func(_ context.Context, input domain.ProvisionInput) (domain.Provision, error) {
			return domain.Provision{
				ID:     "550e8400-e29b-41d4-a716-446655440000",
				VMName: input.VMName,
				Status: domain.ProvisionCompleted,
				Network: domain.NetworkConfig{
					IPAddress:  "172.25.14.57",
					SubnetMask: "255.255.255.224",
					Gateway:    "172.25.14.33",
				},
			}, nil
		},
	}, stubNetworkService{})

	body := `{"vm_name":"web-01","template":"rhel9-template","cidr":"172.25.14.57/27"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vms", strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp ProvisionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.VMName != "web-01" || resp.Gateway != "172.25.14.33" || resp.Status != "completed" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHandleProvisionVMRejectsInvalidInput(t *testing.T) {
	api := newTestAPI(stubProvisionService{
		provisionFn: func(context.Context, domain.ProvisionInput) (domain.Provision, error) {
			return domain.Provision{}, domain.ErrInvalidInput
		},
	}, stubNetworkService{})

	body := `{"vm_name":"web-01","template":"rhel9-template","cidr":"999.1.1.1/24"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vms", strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleProvisionVMRejectsMalformedJSON(t *testing.T) {
	api := newTestAPI(stubProvisionService{}, stubNetworkService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vms", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleGuestAddressesNotFound(t *testing.T) {
	api := newTestAPI(stubProvisionService{}, stubNetworkService{
		guestAddressesFn: func(context.Context, string) ([]string, error) {
			return nil, domain.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vms/no-such-vm/addresses", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandleGuestAddressesReturnsEmptyListNotNull(t *testing.T) {
	api := newTestAPI(stubProvisionService{}, stubNetworkService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vms/web-01/addresses", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"addresses":[]`) {
		t.Fatalf("expected empty list, got %s", rec.Body.String())
	}
}

func TestHandleListNetworksPassesPattern(t *testing.T) {
	var gotPattern string
	api := newTestAPI(stubProvisionService{}, stubNetworkService{
		listSegmentsFn: func(_ context.Context, pattern string) ([]string, error) {
			gotPattern = pattern
			return []string{"dvPG-Servers"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/networks?pattern=dvPG-*", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if gotPattern != "dvPG-*" {
		t.Fatalf("unexpected pattern: %q", gotPattern)
	}
}

func TestHandleSubnetInfo(t *testing.T) {
	api := newTestAPI(stubProvisionService{}, stubNetworkService{
		subnetInfoFn: func(_ context.Context, cidr string) (domain.SubnetInfo, error) {
			return domain.SubnetInfo{
				CIDR:           cidr,
				IPAddress:      "172.25.14.57",
				SubnetMask:     "255.255.255.224",
				NetworkAddress: "172.25.14.32",
				Gateway:        "172.25.14.33",
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subnets/info", strings.NewReader(`{"cidr":"172.25.14.57/27"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var resp SubnetInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.SubnetMask != "255.255.255.224" || resp.Gateway != "172.25.14.33" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHandleSubnetInfoRejectsInvalidCIDR(t *testing.T) {
	api := newTestAPI(stubProvisionService{}, stubNetworkService{
		subnetInfoFn: func(context.Context, string) (domain.SubnetInfo, error) {
			return domain.SubnetInfo{}, domain.ErrInvalidInput
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subnets/info", strings.NewReader(`{"cidr":"10.0.0.1/33"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleGetProvisionByIDNotFound(t *testing.T) {
	api := newTestAPI(stubProvisionService{
		getFn: func(context.Context, domain.ProvisionID) (domain.Provision, error) {
			return domain.Provision{}, domain.ErrNotFound
		},
	}, stubNetworkService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/provisions/550e8400-e29b-41d4-a716-446655440000", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandleListProvisions(t *testing.T) {
	api := newTestAPI(stubProvisionService{
		listFn: func(context.Context) ([]domain.Provision, error) {
			return []domain.Provision{
				{ID: "prov-1", VMName: "web-01", Status: domain.ProvisionCompleted},
				{ID: "prov-2", VMName: "web-02", Status: domain.ProvisionFailed},
			}, nil
		},
	}, stubNetworkService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/provisions", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var resp []ProvisionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp) != 2 || resp[1].Status != "failed" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
