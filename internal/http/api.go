package http

import (
	"context"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/bk147/vmprov/internal/auth"
	"github.com/bk147/vmprov/internal/domain"
)

// HealthChecker is the readiness probe dependency; *pgxpool.Pool satisfies it.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger     *slog.Logger
	DB         HealthChecker
	Provisions domain.ProvisionService
	Networks   domain.NetworkService
	Auth       auth.Authenticator
}

func NewAPI(logger *slog.Logger, db HealthChecker, provisions domain.ProvisionService, networks domain.NetworkService, authenticator auth.Authenticator) *API {
	return &API{
		Logger:     logger,
		DB:         db,
		Provisions: provisions,
		Networks:   networks,
		Auth:       authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	mux.HandleFunc("POST /api/v1/vms", a.handleProvisionVM)
	mux.HandleFunc("GET /api/v1/vms/{name}/addresses", a.handleGuestAddresses)
	mux.HandleFunc("GET /api/v1/networks", a.handleListNetworks)
	mux.HandleFunc("POST /api/v1/subnets/info", a.handleSubnetInfo)
	mux.HandleFunc("GET /api/v1/provisions", a.handleListProvisions)
	mux.HandleFunc("GET /api/v1/provisions/{id}", a.handleGetProvisionByID)

	return a.authMiddleware(mux)
}
