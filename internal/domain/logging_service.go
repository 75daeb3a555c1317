package domain

import (
	"context"
	"log/slog"
)

type loggingProvisionService struct {
	logger *slog.Logger
	next   ProvisionService
}

func NewLoggingProvisionService(logger *slog.Logger, next ProvisionService) ProvisionService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingProvisionService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingProvisionService) Provision(ctx context.Context, input ProvisionInput) (Provision, error) {
	provision, err := s.next.Provision(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "provision failed", "vm", input.VMName, "template", input.Template, "err", err.Error())
		return provision, err
	}

	s.logger.InfoContext(ctx, "vm provisioned",
		"id", string(provision.ID),
		"vm", provision.VMName,
		"datastore", provision.Datastore,
		"ip", provision.Network.IPAddress,
		"gateway", provision.Network.Gateway,
	)
	return provision, nil
}

func (s *loggingProvisionService) GetProvision(ctx context.Context, id ProvisionID) (Provision, error) {
	provision, err := s.next.GetProvision(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get provision failed", "id", string(id), "err", err.Error())
	}
	return provision, err
}

func (s *loggingProvisionService) ListProvisions(ctx context.Context) ([]Provision, error) {
	provisions, err := s.next.ListProvisions(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list provisions failed", "err", err.Error())
	}
	return provisions, err
}

type loggingNetworkService struct {
	logger *slog.Logger
	next   NetworkService
}

func NewLoggingNetworkService(logger *slog.Logger, next NetworkService) NetworkService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingNetworkService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingNetworkService) GuestAddresses(ctx context.Context, vmName string) ([]string, error) {
	addresses, err := s.next.GuestAddresses(ctx, vmName)
	if err != nil {
		s.logger.ErrorContext(ctx, "guest addresses failed", "vm", vmName, "err", err.Error())
		return nil, err
	}

	s.logger.DebugContext(ctx, "guest addresses resolved", "vm", vmName, "count", len(addresses))
	return addresses, nil
}

func (s *loggingNetworkService) ListSegments(ctx context.Context, namePattern string) ([]string, error) {
	segments, err := s.next.ListSegments(ctx, namePattern)
	if err != nil {
		s.logger.ErrorContext(ctx, "list segments failed", "pattern", namePattern, "err", err.Error())
	}
	return segments, err
}

func (s *loggingNetworkService) SubnetInfo(ctx context.Context, cidr string) (SubnetInfo, error) {
	info, err := s.next.SubnetInfo(ctx, cidr)
	if err != nil {
		s.logger.ErrorContext(ctx, "subnet info failed", "cidr", cidr, "err", err.Error())
	}
	return info, err
}
