package repositories

import (
	"context"
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ClientRepository defines persistence operations for clients, including the
// in-transaction debt adjustments used by the atomic ledger operations.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeactivateClient(ctx context.Context, clientID string, userID string, now time.Time) error

	// FindClientByIDForUpdate locks the client row for a debt adjustment.
	FindClientByIDForUpdate(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error)

	// AdjustClientBalanceInTx shifts the client's outstanding balance by delta
	// (positive increases debt). The caller holds the row lock.
	AdjustClientBalanceInTx(ctx context.Context, tx pgx.Tx, clientID string, delta decimal.Decimal, userID string, now time.Time) error
}

// DistributorRepository mirrors ClientRepository for distributors.
type DistributorRepository interface {
	SaveDistributor(ctx context.Context, distributor domain.Distributor) error
	FindDistributorByID(ctx context.Context, distributorID string) (*domain.Distributor, error)
	ListDistributors(ctx context.Context, limit, offset int) ([]domain.Distributor, error)
	UpdateDistributor(ctx context.Context, distributor domain.Distributor) error
	DeactivateDistributor(ctx context.Context, distributorID string, userID string, now time.Time) error

	// FindDistributorByIDForUpdate locks the distributor row for a debt adjustment.
	FindDistributorByIDForUpdate(ctx context.Context, tx pgx.Tx, distributorID string) (*domain.Distributor, error)

	// AdjustDistributorBalanceInTx shifts the distributor's outstanding
	// balance by delta (positive increases what the business owes).
	AdjustDistributorBalanceInTx(ctx context.Context, tx pgx.Tx, distributorID string, delta decimal.Decimal, userID string, now time.Time) error
}
