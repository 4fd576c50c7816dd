package repositories

import (
	"context"
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/gyaops/ledger-backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ApplyPaymentParams stages a payment against a sale. The proportional shares
// are computed inside the repository transaction from the sale row read under
// lock, never from values cached by the caller.
type ApplyPaymentParams struct {
	SaleID  string
	Amount  decimal.Decimal
	Concept string

	// Destination accounts for the three split portions.
	CostAccountID    string
	FreightAccountID string
	ProfitAccountID  string

	UserID string
	Now    time.Time
}

// PaymentResult reports the outcome of an applied payment.
type PaymentResult struct {
	Sale   domain.Sale
	Shares accounting.PaymentShares
}

// TransferParams stages a capital-neutral movement between two accounts. Both
// legs share ReferenceID; the caller pre-assigns the movement IDs so it can
// report them without re-reading the log.
type TransferParams struct {
	OriginAccountID      string
	DestinationAccountID string
	Amount               decimal.Decimal
	Concept              string
	ReferenceID          string
	OutMovementID        string
	InMovementID         string
	UserID               string
	Now                  time.Time
}

// PayDistributorParams stages a debt payment to a distributor out of an
// origin account. The amount is allocated across the distributor's open
// purchase orders, oldest first.
type PayDistributorParams struct {
	DistributorID   string
	OriginAccountID string
	Amount          decimal.Decimal
	Concept         string
	UserID          string
	Now             time.Time
}

// RegisterPurchaseOrderParams stages a new purchase order. A non-zero
// InitialPayment is paid out of OriginAccountID in the same atomic unit.
type RegisterPurchaseOrderParams struct {
	Order           domain.PurchaseOrder
	InitialPayment  decimal.Decimal
	OriginAccountID string
	UserID          string
	Now             time.Time
}

// LedgerRepository executes the multi-step ledger operations. Every method is
// one database transaction: all of its mutations commit together or none do,
// and every balance or debt check runs after the relevant rows are locked.
type LedgerRepository interface {
	// RegisterSale persists the sale and increases the client's outstanding
	// balance by the sale total. No account balances change.
	RegisterSale(ctx context.Context, sale domain.Sale) error

	// ApplyPayment distributes a payment across the three destination
	// accounts proportionally to the sale's split, appends the paired
	// movements, updates the sale, and decreases the client's debt.
	ApplyPayment(ctx context.Context, params ApplyPaymentParams) (*PaymentResult, error)

	// Transfer moves capital between two accounts as an outflow/inflow pair
	// sharing one reference ID.
	Transfer(ctx context.Context, params TransferParams) error

	// RecordOutflow applies a funds-checked outflow described by the movement
	// (expenses, and the outflow leg of reversals).
	RecordOutflow(ctx context.Context, movement domain.Movement) error

	// RecordInflow applies an inflow described by the movement (manual
	// deposits, and the inflow leg of reversals).
	RecordInflow(ctx context.Context, movement domain.Movement) error

	// PayDistributor applies a funds-checked outflow at the origin account,
	// decreases the distributor's debt, and allocates the amount across open
	// purchase orders.
	PayDistributor(ctx context.Context, params PayDistributorParams) error

	// RegisterPurchaseOrder persists the order, increases distributor debt by
	// the unpaid portion, and applies the optional initial payment.
	RegisterPurchaseOrder(ctx context.Context, params RegisterPurchaseOrderParams) error
}
