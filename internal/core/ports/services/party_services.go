package services

import (
	"context"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/gyaops/ledger-backend/internal/dto"
)

// ClientSvcFacade manages clients. Deactivation is a status change only:
// parties with financial history are never physically removed.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, actorID string) (*domain.Client, error)
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, actorID string) (*domain.Client, error)
	DeactivateClient(ctx context.Context, clientID string, actorID string) error
}

// DistributorSvcFacade manages distributors, mirroring ClientSvcFacade.
type DistributorSvcFacade interface {
	CreateDistributor(ctx context.Context, req dto.CreateDistributorRequest, actorID string) (*domain.Distributor, error)
	GetDistributor(ctx context.Context, distributorID string) (*domain.Distributor, error)
	ListDistributors(ctx context.Context, limit, offset int) ([]domain.Distributor, error)
	UpdateDistributor(ctx context.Context, distributorID string, req dto.UpdateDistributorRequest, actorID string) (*domain.Distributor, error)
	DeactivateDistributor(ctx context.Context, distributorID string, actorID string) error

	// GetPurchaseOrder and ListPurchaseOrders expose the orders that back a
	// distributor's outstanding balance.
	GetPurchaseOrder(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, distributorID string, limit, offset int) ([]domain.PurchaseOrder, error)
}
