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
	"github.com/gyaops/ledger-backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const saleColumns = `sale_id, client_id, quantity, unit_sale_price, unit_cost_price, unit_freight, total_amount, amount_paid, amount_remaining, status, split_cost, split_freight, split_profit, concept, occurred_at, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

// newPgxSaleRepository creates a new repository for sale records.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{pool: pool}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// Helper to convert domain.Sale to models.Sale for DB storage
func toModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:          d.SaleID,
		ClientID:        d.ClientID,
		Quantity:        d.Quantity,
		UnitSalePrice:   d.UnitSalePrice,
		UnitCostPrice:   d.UnitCostPrice,
		UnitFreight:     d.UnitFreight,
		TotalAmount:     d.TotalAmount,
		AmountPaid:      d.AmountPaid,
		AmountRemaining: d.AmountRemaining,
		Status:          models.PaymentStatus(d.Status),
		SplitCost:       d.SplitCost,
		SplitFreight:    d.SplitFreight,
		SplitProfit:     d.SplitProfit,
		Concept:         d.Concept,
		OccurredAt:      d.OccurredAt,
		Notes:           nullIfEmpty(d.Notes),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Sale from DB to domain.Sale
func toDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:          m.SaleID,
		ClientID:        m.ClientID,
		Quantity:        m.Quantity,
		UnitSalePrice:   m.UnitSalePrice,
		UnitCostPrice:   m.UnitCostPrice,
		UnitFreight:     m.UnitFreight,
		TotalAmount:     m.TotalAmount,
		AmountPaid:      m.AmountPaid,
		AmountRemaining: m.AmountRemaining,
		Status:          domain.PaymentStatus(m.Status),
		SplitCost:       m.SplitCost,
		SplitFreight:    m.SplitFreight,
		SplitProfit:     m.SplitProfit,
		Concept:         m.Concept,
		OccurredAt:      m.OccurredAt,
		Notes:           orEmpty(m.Notes),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.ClientID,
		&m.Quantity,
		&m.UnitSalePrice,
		&m.UnitCostPrice,
		&m.UnitFreight,
		&m.TotalAmount,
		&m.AmountPaid,
		&m.AmountRemaining,
		&m.Status,
		&m.SplitCost,
		&m.SplitFreight,
		&m.SplitProfit,
		&m.Concept,
		&m.OccurredAt,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindSaleByID retrieves a sale by its unique identifier.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE sale_id = $1;
	`
	m, err := scanSale(r.pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}
	sale := toDomainSale(m)
	return &sale, nil
}

// ListSales returns a page of sales, newest first, optionally filtered by
// client, using token-based pagination on (created_at, sale_id).
func (r *PgxSaleRepository) ListSales(ctx context.Context, clientID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := []interface{}{}
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE 1=1
	`
	if clientID != "" {
		args = append(args, clientID)
		query += fmt.Sprintf(" AND client_id = $%d", len(args))
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, saleID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, createdAt, saleID)
		query += fmt.Sprintf(" AND (created_at, sale_id) < ($%d, $%d)", len(args)-1, len(args))
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, sale_id DESC LIMIT $%d;", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, toDomainSale(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	var token *string
	if len(sales) > limit {
		sales = sales[:limit]
		last := sales[limit-1]
		encoded := pagination.EncodeToken(last.CreatedAt, last.SaleID)
		token = &encoded
	}
	return sales, token, nil
}

// InsertSaleInTx persists a new sale as part of the surrounding atomic
// operation.
func (r *PgxSaleRepository) InsertSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	m := toModelSale(sale)
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := tx.Exec(ctx, query,
		m.SaleID,
		m.ClientID,
		m.Quantity,
		m.UnitSalePrice,
		m.UnitCostPrice,
		m.UnitFreight,
		m.TotalAmount,
		m.AmountPaid,
		m.AmountRemaining,
		m.Status,
		m.SplitCost,
		m.SplitFreight,
		m.SplitProfit,
		m.Concept,
		m.OccurredAt,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: sale %s already exists", apperrors.ErrDuplicate, m.SaleID)
		}
		return fmt.Errorf("failed to insert sale %s: %w", m.SaleID, mapped)
	}
	return nil
}

// FindSaleByIDForUpdate retrieves a sale and locks its row so a payment's
// remaining-amount check and update cannot interleave with a concurrent
// payment. Must be called within a transaction.
func (r *PgxSaleRepository) FindSaleByIDForUpdate(ctx context.Context, tx pgx.Tx, saleID string) (*domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE sale_id = $1
		FOR UPDATE;
	`
	m, err := scanSale(tx.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
		}
		return nil, fmt.Errorf("failed to lock sale %s: %w", saleID, mapPgError(err))
	}
	sale := toDomainSale(m)
	return &sale, nil
}

// UpdateSalePaymentInTx records the outcome of a payment on the locked sale
// row.
func (r *PgxSaleRepository) UpdateSalePaymentInTx(ctx context.Context, tx pgx.Tx, saleID string, amountPaid, amountRemaining decimal.Decimal, status domain.PaymentStatus, userID string, now time.Time) error {
	query := `
		UPDATE sales
		SET amount_paid = $2, amount_remaining = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE sale_id = $1;
	`
	ct, err := tx.Exec(ctx, query, saleID, amountPaid, amountRemaining, status, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update payment state of sale %s: %w", saleID, mapPgError(err))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: sale %s not found during payment update", apperrors.ErrNotFound, saleID)
	}
	return nil
}
