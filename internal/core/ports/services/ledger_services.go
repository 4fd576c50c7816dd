package services

import (
	"context"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/gyaops/ledger-backend/internal/dto"
)

// LedgerSvcFacade exposes the atomic multi-step operations of the engine.
// Each call either applies all of its mutations or none of them; no partial
// view of an operation's effects is ever observable.
type LedgerSvcFacade interface {
	// RegisterSale validates the input, computes the revenue split once, and
	// creates the sale with the client's debt increased by the sale total.
	RegisterSale(ctx context.Context, req dto.RegisterSaleRequest, actorID string) (*domain.Sale, error)

	// RecordPayment distributes a payment proportionally across the cost,
	// freight and profit accounts and settles the sale and client debt.
	RecordPayment(ctx context.Context, saleID string, req dto.RecordPaymentRequest, actorID string) (*dto.PaymentResponse, error)

	// Transfer moves capital between two roster accounts.
	Transfer(ctx context.Context, req dto.TransferRequest, actorID string) (*dto.TransferResponse, error)

	// RecordExpense applies a funds-checked outflow with its movement entry.
	RecordExpense(ctx context.Context, req dto.ExpenseRequest, actorID string) (string, error)

	// RecordDeposit applies a manual inflow with its movement entry.
	RecordDeposit(ctx context.Context, req dto.DepositRequest, actorID string) (string, error)

	// PayDistributor pays down distributor debt from an origin account.
	PayDistributor(ctx context.Context, distributorID string, req dto.PayDistributorRequest, actorID string) error

	// RegisterPurchaseOrder creates a purchase order, increasing distributor
	// debt, with an optional initial payment in the same atomic unit.
	RegisterPurchaseOrder(ctx context.Context, req dto.RegisterPurchaseOrderRequest, actorID string) (*domain.PurchaseOrder, error)

	// ReverseMovement appends the inverse of a manual movement. The original
	// entry is never mutated or deleted.
	ReverseMovement(ctx context.Context, movementID string, reason string, actorID string) (string, error)
}
