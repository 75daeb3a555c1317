package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/bk147/vmprov/internal/auth"
	appdb "github.com/bk147/vmprov/internal/db"
	"github.com/bk147/vmprov/internal/domain"
	apihttp "github.com/bk147/vmprov/internal/http"
	"github.com/bk147/vmprov/internal/vsphere"
)

type Config struct {
	Port         string
	DSN          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	AuthEnabled bool
	Issuer      string
	JWKSURL     string
	Audience    string

	VCenterURL         string
	VCenterUsername    string
	VCenterPassword    string
	VCenterInsecure    bool
	Datacenter         string
	GuestDomain        string
	BackupExclusionTag string
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Port:         os.Getenv("PORT"),
		DSN:          os.Getenv("DB_CONN"),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		AuthEnabled: os.Getenv("AUTH_ENABLED") == "true",
		Issuer:      os.Getenv("AUTH_ISSUER"),
		JWKSURL:     os.Getenv("AUTH_JWKS_URL"),
		Audience:    os.Getenv("AUTH_AUDIENCE"),

		VCenterURL:         os.Getenv("VCENTER_URL"),
		VCenterUsername:    os.Getenv("VCENTER_USERNAME"),
		VCenterPassword:    os.Getenv("VCENTER_PASSWORD"),
		Datacenter:         os.Getenv("VCENTER_DATACENTER"),
		GuestDomain:        os.Getenv("GUEST_DOMAIN"),
		BackupExclusionTag: os.Getenv("BACKUP_EXCLUSION_TAG"),
	}

	if insecure := os.Getenv("VCENTER_INSECURE"); insecure != "" {
		parsed, err := strconv.ParseBool(insecure)
		if err != nil {
			return Config{}, fmt.Errorf("parsing VCENTER_INSECURE: %w", err)
		}
		cfg.VCenterInsecure = parsed
	}

	if cfg.DSN == "" {
		return Config{}, fmt.Errorf("missing required environment variable: DB_CONN")
	}
	if cfg.VCenterURL == "" {
		return Config{}, fmt.Errorf("missing required environment variable: VCENTER_URL")
	}
	if cfg.Port == "" {
		cfg.Port = "4040"
	}
	if cfg.GuestDomain == "" {
		cfg.GuestDomain = "localdomain"
	}
	return cfg, nil
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.Issuer,
		JWKSURL:  cfg.JWKSURL,
		Audience: cfg.Audience,
	})
}

// Serve wires the dependencies and serves the API on the given listener
// until ctx is cancelled.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := slog.Default()

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, appdb.Schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}

	session, err := vsphere.Connect(ctx, vsphere.Config{
		URL:         cfg.VCenterURL,
		Username:    cfg.VCenterUsername,
		Password:    cfg.VCenterPassword,
		Insecure:    cfg.VCenterInsecure,
		Datacenter:  cfg.Datacenter,
		GuestDomain: cfg.GuestDomain,
	})
	if err != nil {
		return err
	}
	defer func() {
		if logoutErr := session.Logout(context.Background()); logoutErr != nil {
			logger.Error("vcenter logout failed", "error", logoutErr)
		}
	}()

	repo := appdb.NewProvisionRepository(pool)

	provisions := domain.NewLoggingProvisionService(
		logger,
		domain.NewProvisionService(session, repo, cfg.BackupExclusionTag),
	)
	networks := domain.NewLoggingNetworkService(
		logger,
		domain.NewNetworkService(session),
	)

	api := apihttp.NewAPI(logger, pool, provisions, networks, authenticator)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		fmt.Printf("Serving server on %s\n", listener.Addr())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Serve error: %s\n", err)
		}
	}()

	<-ctx.Done()

	fmt.Println("\nShutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return err
	}
	return Serve(ctx, cfg, listener)
}
