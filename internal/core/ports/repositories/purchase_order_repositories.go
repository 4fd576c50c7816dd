package repositories

import (
	"context"
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PurchaseOrderRepository defines persistence operations for purchase orders.
type PurchaseOrderRepository interface {
	FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, distributorID string, limit, offset int) ([]domain.PurchaseOrder, error)

	// InsertPurchaseOrderInTx persists a new purchase order as part of the
	// surrounding atomic operation.
	InsertPurchaseOrderInTx(ctx context.Context, tx pgx.Tx, po domain.PurchaseOrder) error

	// FindOpenPurchaseOrdersForUpdate locks the distributor's unpaid purchase
	// orders, oldest first, so a payment can be allocated across them.
	FindOpenPurchaseOrdersForUpdate(ctx context.Context, tx pgx.Tx, distributorID string) ([]domain.PurchaseOrder, error)

	// UpdatePurchaseOrderPaymentInTx records a payment allocation on a locked
	// purchase-order row.
	UpdatePurchaseOrderPaymentInTx(ctx context.Context, tx pgx.Tx, purchaseOrderID string, amountPaid, amountRemaining decimal.Decimal, status domain.PaymentStatus, userID string, now time.Time) error
}
