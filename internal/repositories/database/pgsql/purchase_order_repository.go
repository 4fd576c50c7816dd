package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gyaops/ledger-backend/internal/apperrors"
	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	"github.com/gyaops/ledger-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const purchaseOrderColumns = `purchase_order_id, distributor_id, order_number, quantity, unit_cost, total_amount, amount_paid, amount_remaining, status, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxPurchaseOrderRepository struct {
	pool *pgxpool.Pool
}

// newPgxPurchaseOrderRepository creates a new repository for purchase orders.
func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) portsrepo.PurchaseOrderRepository {
	return &PgxPurchaseOrderRepository{pool: pool}
}

// Ensure PgxPurchaseOrderRepository implements portsrepo.PurchaseOrderRepository
var _ portsrepo.PurchaseOrderRepository = (*PgxPurchaseOrderRepository)(nil)

func toModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		PurchaseOrderID: d.PurchaseOrderID,
		DistributorID:   d.DistributorID,
		OrderNumber:     d.OrderNumber,
		Quantity:        d.Quantity,
		UnitCost:        d.UnitCost,
		TotalAmount:     d.TotalAmount,
		AmountPaid:      d.AmountPaid,
		AmountRemaining: d.AmountRemaining,
		Status:          models.PaymentStatus(d.Status),
		Notes:           nullIfEmpty(d.Notes),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainPurchaseOrder(m models.PurchaseOrder) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		PurchaseOrderID: m.PurchaseOrderID,
		DistributorID:   m.DistributorID,
		OrderNumber:     m.OrderNumber,
		Quantity:        m.Quantity,
		UnitCost:        m.UnitCost,
		TotalAmount:     m.TotalAmount,
		AmountPaid:      m.AmountPaid,
		AmountRemaining: m.AmountRemaining,
		Status:          domain.PaymentStatus(m.Status),
		Notes:           orEmpty(m.Notes),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanPurchaseOrder(row pgx.Row) (models.PurchaseOrder, error) {
	var m models.PurchaseOrder
	err := row.Scan(
		&m.PurchaseOrderID,
		&m.DistributorID,
		&m.OrderNumber,
		&m.Quantity,
		&m.UnitCost,
		&m.TotalAmount,
		&m.AmountPaid,
		&m.AmountRemaining,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindPurchaseOrderByID retrieves a purchase order by ID.
func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	query := `
		SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders
		WHERE purchase_order_id = $1;
	`
	m, err := scanPurchaseOrder(r.pool.QueryRow(ctx, query, purchaseOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, purchaseOrderID)
		}
		return nil, fmt.Errorf("failed to find purchase order by ID %s: %w", purchaseOrderID, err)
	}
	po := toDomainPurchaseOrder(m)
	return &po, nil
}

// ListPurchaseOrders returns a distributor's purchase orders, newest first.
// An empty distributorID lists orders across all distributors.
func (r *PgxPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, distributorID string, limit, offset int) ([]domain.PurchaseOrder, error) {
	args := []interface{}{}
	query := `
		SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders
	`
	if distributorID != "" {
		args = append(args, distributorID)
		query += " WHERE distributor_id = $1"
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC, purchase_order_id DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.PurchaseOrder, 0)
	for rows.Next() {
		m, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order row: %w", err)
		}
		orders = append(orders, toDomainPurchaseOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase order rows: %w", err)
	}
	return orders, nil
}

// InsertPurchaseOrderInTx persists a new purchase order as part of the
// surrounding atomic operation.
func (r *PgxPurchaseOrderRepository) InsertPurchaseOrderInTx(ctx context.Context, tx pgx.Tx, po domain.PurchaseOrder) error {
	m := toModelPurchaseOrder(po)
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.PurchaseOrderID,
		m.DistributorID,
		m.OrderNumber,
		m.Quantity,
		m.UnitCost,
		m.TotalAmount,
		m.AmountPaid,
		m.AmountRemaining,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: order number %s already exists for distributor %s", apperrors.ErrDuplicate, m.OrderNumber, m.DistributorID)
		}
		return fmt.Errorf("failed to insert purchase order %s: %w", m.PurchaseOrderID, mapped)
	}
	return nil
}

// FindOpenPurchaseOrdersForUpdate locks the distributor's unpaid purchase
// orders, oldest first, so a payment can be allocated across them.
// Must be called within a transaction.
func (r *PgxPurchaseOrderRepository) FindOpenPurchaseOrdersForUpdate(ctx context.Context, tx pgx.Tx, distributorID string) ([]domain.PurchaseOrder, error) {
	query := `
		SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders
		WHERE distributor_id = $1 AND status <> 'COMPLETE'
		ORDER BY created_at, purchase_order_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, distributorID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock open purchase orders of distributor %s: %w", distributorID, mapPgError(err))
	}
	defer rows.Close()

	orders := make([]domain.PurchaseOrder, 0)
	for rows.Next() {
		m, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked purchase order row: %w", err)
		}
		orders = append(orders, toDomainPurchaseOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked purchase order rows: %w", mapPgError(err))
	}
	return orders, nil
}

// UpdatePurchaseOrderPaymentInTx records a payment allocation on a locked
// purchase-order row.
func (r *PgxPurchaseOrderRepository) UpdatePurchaseOrderPaymentInTx(ctx context.Context, tx pgx.Tx, purchaseOrderID string, amountPaid, amountRemaining decimal.Decimal, status domain.PaymentStatus, userID string, now time.Time) error {
	query := `
		UPDATE purchase_orders
		SET amount_paid = $2, amount_remaining = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE purchase_order_id = $1;
	`
	ct, err := tx.Exec(ctx, query, purchaseOrderID, amountPaid, amountRemaining, status, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update payment state of purchase order %s: %w", purchaseOrderID, mapPgError(err))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: purchase order %s not found during payment update", apperrors.ErrNotFound, purchaseOrderID)
	}
	return nil
}
