package http

import (
	"errors"
	"net/http"

	"github.com/bk147/vmprov/internal/domain"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.DB.Ping(ctx); err != nil {
		a.Logger.Error("db ping failed", "err", err)
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Provision a VM from a template
// @Tags vms
// @Accept json
// @Produce json
// @Param vm body ProvisionRequest true "Provisioning payload"
// @Success 201 {object} ProvisionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vms [post]
func (a *API) handleProvisionVM(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[ProvisionRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling provision request", "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	provision, err := a.Provisions.Provision(ctx, req.toInput())
	if err != nil {
		status := http.StatusInternalServerError
		resp := ErrorResponse{Error: "internal server error while provisioning vm"}
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			status = http.StatusBadRequest
			resp = ErrorResponse{Error: err.Error()}
		case errors.Is(err, domain.ErrConflict):
			status = http.StatusBadRequest
			resp = ErrorResponse{Error: "bad request, vm already provisioned"}
		}
		a.Logger.ErrorContext(ctx, "provisioning vm", "vm", req.VMName, "err", err.Error())
		err = encode(w, r, status, resp)
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusCreated, provisionToResponse(provision))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Guest IP addresses of a VM
// @Tags vms
// @Produce json
// @Param name path string true "VM name"
// @Success 200 {object} GuestAddressesResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vms/{name}/addresses [get]
func (a *API) handleGuestAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	addresses, err := a.Networks.GuestAddresses(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.Logger.DebugContext(ctx, "vm not found", "vm", name)
			err = encode(w, r, http.StatusNotFound, ErrorResponse{Error: "vm not found"})
			if err != nil {
				a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
			}
			return
		}
		a.Logger.ErrorContext(ctx, "reading guest addresses", "vm", name, "err", err.Error())
		err = encode(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	if addresses == nil {
		addresses = []string{}
	}
	err = encode(w, r, http.StatusOK, GuestAddressesResponse{VMName: name, Addresses: addresses})
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary List network segments
// @Tags networks
// @Produce json
// @Param pattern query string false "Name glob pattern, defaults to *"
// @Success 200 {object} NetworksResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks [get]
func (a *API) handleListNetworks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pattern := r.URL.Query().Get("pattern")

	networks, err := a.Networks.ListSegments(ctx, pattern)
	if err != nil {
		a.Logger.ErrorContext(ctx, "listing networks", "pattern", pattern, "err", err.Error())
		err = encode(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	if networks == nil {
		networks = []string{}
	}
	err = encode(w, r, http.StatusOK, NetworksResponse{Networks: networks})
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Decompose a CIDR into mask, network and gateway
// @Tags subnets
// @Accept json
// @Produce json
// @Param cidr body SubnetInfoRequest true "CIDR payload"
// @Success 200 {object} SubnetInfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/subnets/info [post]
func (a *API) handleSubnetInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[SubnetInfoRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling subnet info request", "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	info, err := a.Networks.SubnetInfo(ctx, req.CIDR)
	if err != nil {
		a.Logger.DebugContext(ctx, "invalid cidr", "cidr", req.CIDR, "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid cidr"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusOK, subnetInfoToResponse(info))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary List provision records
// @Tags provisions
// @Produce json
// @Success 200 {array} ProvisionResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/provisions [get]
func (a *API) handleListProvisions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provisions, err := a.Provisions.ListProvisions(ctx)
	if err != nil {
		a.Logger.ErrorContext(ctx, "reading provisions from db", "err", err.Error())
		err = encode(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusOK, provisionsToResponse(provisions))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Get provision record by ID
// @Tags provisions
// @Produce json
// @Param id path string true "Provision ID"
// @Success 200 {object} ProvisionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/provisions/{id} [get]
func (a *API) handleGetProvisionByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	provision, err := a.Provisions.GetProvision(ctx, domain.ProvisionID(id))
	if err != nil {
		status := http.StatusInternalServerError
		resp := ErrorResponse{Error: "internal server error"}
		switch {
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
			resp = ErrorResponse{Error: "provision not found"}
		case errors.Is(err, domain.ErrInvalidInput):
			status = http.StatusBadRequest
			resp = ErrorResponse{Error: "bad request"}
		}
		a.Logger.DebugContext(ctx, "provision lookup failed", "id", id, "err", err.Error())
		err = encode(w, r, status, resp)
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusOK, provisionToResponse(provision))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}
