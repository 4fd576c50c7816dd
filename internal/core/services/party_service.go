package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gyaops/ledger-backend/internal/apperrors"
	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// clientService manages the client registry. Debt balances are adjusted only
// by the ledger operations; this service handles identity and contact data.
type clientService struct {
	clientRepo portsrepo.ClientRepository
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepository) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, actorID string) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}

	creditLimit := decimal.Zero
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
		}
		creditLimit = *req.CreditLimit
	}

	now := time.Now()
	client := domain.Client{
		ClientID:           uuid.NewString(),
		Name:               name,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		CreditLimit:        creditLimit,
		OutstandingBalance: decimal.Zero,
		Status:             domain.PartyActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	clients, err := s.clientRepo.ListClients(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, actorID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: client name must not be empty", apperrors.ErrValidation)
		}
		client.Name = name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
		}
		client.CreditLimit = *req.CreditLimit
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = actorID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *clientService) DeactivateClient(ctx context.Context, clientID string, actorID string) error {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	if !client.OutstandingBalance.IsZero() {
		return fmt.Errorf("%w: client %s still owes %s", apperrors.ErrValidation, clientID, client.OutstandingBalance)
	}

	if err := s.clientRepo.DeactivateClient(ctx, clientID, actorID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate client %s: %w", clientID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Client deactivated", slog.String("client_id", clientID))
	return nil
}

// distributorService manages the distributor registry and exposes the
// purchase orders behind each distributor's outstanding balance.
type distributorService struct {
	distributorRepo portsrepo.DistributorRepository
	poRepo          portsrepo.PurchaseOrderRepository
}

// NewDistributorService creates a new distributor service.
func NewDistributorService(distributorRepo portsrepo.DistributorRepository, poRepo portsrepo.PurchaseOrderRepository) portssvc.DistributorSvcFacade {
	return &distributorService{distributorRepo: distributorRepo, poRepo: poRepo}
}

var _ portssvc.DistributorSvcFacade = (*distributorService)(nil)

func (s *distributorService) CreateDistributor(ctx context.Context, req dto.CreateDistributorRequest, actorID string) (*domain.Distributor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: distributor name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	distributor := domain.Distributor{
		DistributorID:      uuid.NewString(),
		Name:               name,
		Company:            req.Company,
		Email:              req.Email,
		Phone:              req.Phone,
		OutstandingBalance: decimal.Zero,
		Status:             domain.PartyActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.distributorRepo.SaveDistributor(ctx, distributor); err != nil {
		return nil, fmt.Errorf("failed to save distributor: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Distributor created", slog.String("distributor_id", distributor.DistributorID))
	return &distributor, nil
}

func (s *distributorService) GetDistributor(ctx context.Context, distributorID string) (*domain.Distributor, error) {
	distributor, err := s.distributorRepo.FindDistributorByID(ctx, distributorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find distributor %s: %w", distributorID, err)
	}
	return distributor, nil
}

func (s *distributorService) ListDistributors(ctx context.Context, limit, offset int) ([]domain.Distributor, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	distributors, err := s.distributorRepo.ListDistributors(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributors: %w", err)
	}
	return distributors, nil
}

func (s *distributorService) UpdateDistributor(ctx context.Context, distributorID string, req dto.UpdateDistributorRequest, actorID string) (*domain.Distributor, error) {
	distributor, err := s.distributorRepo.FindDistributorByID(ctx, distributorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find distributor %s: %w", distributorID, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: distributor name must not be empty", apperrors.ErrValidation)
		}
		distributor.Name = name
	}
	if req.Company != nil {
		distributor.Company = *req.Company
	}
	if req.Phone != nil {
		distributor.Phone = *req.Phone
	}
	if req.Email != nil {
		distributor.Email = *req.Email
	}
	distributor.LastUpdatedAt = time.Now()
	distributor.LastUpdatedBy = actorID

	if err := s.distributorRepo.UpdateDistributor(ctx, *distributor); err != nil {
		return nil, fmt.Errorf("failed to update distributor %s: %w", distributorID, err)
	}
	return distributor, nil
}

func (s *distributorService) DeactivateDistributor(ctx context.Context, distributorID string, actorID string) error {
	distributor, err := s.distributorRepo.FindDistributorByID(ctx, distributorID)
	if err != nil {
		return fmt.Errorf("failed to find distributor %s: %w", distributorID, err)
	}
	if !distributor.OutstandingBalance.IsZero() {
		return fmt.Errorf("%w: distributor %s is still owed %s", apperrors.ErrValidation, distributorID, distributor.OutstandingBalance)
	}

	if err := s.distributorRepo.DeactivateDistributor(ctx, distributorID, actorID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate distributor %s: %w", distributorID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Distributor deactivated", slog.String("distributor_id", distributorID))
	return nil
}

func (s *distributorService) GetPurchaseOrder(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	po, err := s.poRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase order %s: %w", purchaseOrderID, err)
	}
	return po, nil
}

func (s *distributorService) ListPurchaseOrders(ctx context.Context, distributorID string, limit, offset int) ([]domain.PurchaseOrder, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	orders, err := s.poRepo.ListPurchaseOrders(ctx, distributorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders for distributor %s: %w", distributorID, err)
	}
	return orders, nil
}
