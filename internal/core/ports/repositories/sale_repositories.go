package repositories

import (
	"context"
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SaleReader defines read operations for sale records.
type SaleReader interface {
	// FindSaleByID retrieves a sale by its unique identifier.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales returns a page of sales, newest first, optionally filtered by
	// client, using token-based pagination.
	ListSales(ctx context.Context, clientID string, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleTxOps defines sale operations that run inside an open database
// transaction.
type SaleTxOps interface {
	// InsertSaleInTx persists a new sale as part of the surrounding atomic
	// operation.
	InsertSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error

	// FindSaleByIDForUpdate retrieves a sale and locks its row so a payment's
	// remaining-amount check and update cannot interleave with a concurrent
	// payment.
	FindSaleByIDForUpdate(ctx context.Context, tx pgx.Tx, saleID string) (*domain.Sale, error)

	// UpdateSalePaymentInTx records the outcome of a payment on the locked
	// sale row.
	UpdateSalePaymentInTx(ctx context.Context, tx pgx.Tx, saleID string, amountPaid, amountRemaining decimal.Decimal, status domain.PaymentStatus, userID string, now time.Time) error
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleTxOps
}
