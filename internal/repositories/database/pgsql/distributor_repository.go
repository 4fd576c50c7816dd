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

const distributorColumns = `distributor_id, name, company, email, phone, outstanding_balance, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxDistributorRepository struct {
	pool *pgxpool.Pool
}

// newPgxDistributorRepository creates a new repository for distributor data.
func newPgxDistributorRepository(pool *pgxpool.Pool) portsrepo.DistributorRepository {
	return &PgxDistributorRepository{pool: pool}
}

// Ensure PgxDistributorRepository implements portsrepo.DistributorRepository
var _ portsrepo.DistributorRepository = (*PgxDistributorRepository)(nil)

func toModelDistributor(d domain.Distributor) models.Distributor {
	return models.Distributor{
		DistributorID:      d.DistributorID,
		Name:               d.Name,
		Company:            nullIfEmpty(d.Company),
		Email:              nullIfEmpty(d.Email),
		Phone:              nullIfEmpty(d.Phone),
		OutstandingBalance: d.OutstandingBalance,
		Status:             models.PartyStatus(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainDistributor(m models.Distributor) domain.Distributor {
	return domain.Distributor{
		DistributorID:      m.DistributorID,
		Name:               m.Name,
		Company:            orEmpty(m.Company),
		Email:              orEmpty(m.Email),
		Phone:              orEmpty(m.Phone),
		OutstandingBalance: m.OutstandingBalance,
		Status:             domain.PartyStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanDistributor(row pgx.Row) (models.Distributor, error) {
	var m models.Distributor
	err := row.Scan(
		&m.DistributorID,
		&m.Name,
		&m.Company,
		&m.Email,
		&m.Phone,
		&m.OutstandingBalance,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveDistributor inserts a new distributor.
func (r *PgxDistributorRepository) SaveDistributor(ctx context.Context, distributor domain.Distributor) error {
	m := toModelDistributor(distributor)
	query := `
		INSERT INTO distributors (` + distributorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.DistributorID,
		m.Name,
		m.Company,
		m.Email,
		m.Phone,
		m.OutstandingBalance,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: distributor %s already exists", apperrors.ErrDuplicate, m.DistributorID)
		}
		return fmt.Errorf("failed to save distributor %s: %w", m.DistributorID, mapped)
	}
	return nil
}

// FindDistributorByID retrieves a distributor by ID, regardless of status.
func (r *PgxDistributorRepository) FindDistributorByID(ctx context.Context, distributorID string) (*domain.Distributor, error) {
	query := `
		SELECT ` + distributorColumns + `
		FROM distributors
		WHERE distributor_id = $1;
	`
	m, err := scanDistributor(r.pool.QueryRow(ctx, query, distributorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: distributor %s", apperrors.ErrNotFound, distributorID)
		}
		return nil, fmt.Errorf("failed to find distributor by ID %s: %w", distributorID, err)
	}
	distributor := toDomainDistributor(m)
	return &distributor, nil
}

// ListDistributors returns active distributors ordered by name.
func (r *PgxDistributorRepository) ListDistributors(ctx context.Context, limit, offset int) ([]domain.Distributor, error) {
	query := `
		SELECT ` + distributorColumns + `
		FROM distributors
		WHERE status = 'ACTIVE'
		ORDER BY name, distributor_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributors: %w", err)
	}
	defer rows.Close()

	distributors := make([]domain.Distributor, 0)
	for rows.Next() {
		m, err := scanDistributor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan distributor row: %w", err)
		}
		distributors = append(distributors, toDomainDistributor(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distributor rows: %w", err)
	}
	return distributors, nil
}

// UpdateDistributor persists changes to a distributor's identity fields.
func (r *PgxDistributorRepository) UpdateDistributor(ctx context.Context, distributor domain.Distributor) error {
	m := toModelDistributor(distributor)
	query := `
		UPDATE distributors
		SET name = $2, company = $3, email = $4, phone = $5, last_updated_at = $6, last_updated_by = $7
		WHERE distributor_id = $1;
	`
	ct, err := r.pool.Exec(ctx, query,
		m.DistributorID,
		m.Name,
		m.Company,
		m.Email,
		m.Phone,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update distributor %s: %w", m.DistributorID, mapPgError(err))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: distributor %s", apperrors.ErrNotFound, m.DistributorID)
	}
	return nil
}

// DeactivateDistributor marks a distributor inactive, keeping the row for
// historical references.
func (r *PgxDistributorRepository) DeactivateDistributor(ctx context.Context, distributorID string, userID string, now time.Time) error {
	query := `
		UPDATE distributors
		SET status = 'INACTIVE', last_updated_at = $2, last_updated_by = $3
		WHERE distributor_id = $1 AND status = 'ACTIVE';
	`
	ct, err := r.pool.Exec(ctx, query, distributorID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate distributor %s: %w", distributorID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: active distributor %s", apperrors.ErrNotFound, distributorID)
	}
	return nil
}

// FindDistributorByIDForUpdate locks the distributor row for a debt
// adjustment. Must be called within a transaction.
func (r *PgxDistributorRepository) FindDistributorByIDForUpdate(ctx context.Context, tx pgx.Tx, distributorID string) (*domain.Distributor, error) {
	query := `
		SELECT ` + distributorColumns + `
		FROM distributors
		WHERE distributor_id = $1
		FOR UPDATE;
	`
	m, err := scanDistributor(tx.QueryRow(ctx, query, distributorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: distributor %s", apperrors.ErrNotFound, distributorID)
		}
		return nil, fmt.Errorf("failed to lock distributor %s: %w", distributorID, mapPgError(err))
	}
	distributor := toDomainDistributor(m)
	return &distributor, nil
}

// AdjustDistributorBalanceInTx shifts the distributor's outstanding balance
// by delta (positive increases what the business owes). The caller holds the
// row lock.
func (r *PgxDistributorRepository) AdjustDistributorBalanceInTx(ctx context.Context, tx pgx.Tx, distributorID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE distributors
		SET outstanding_balance = outstanding_balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE distributor_id = $1;
	`
	ct, err := tx.Exec(ctx, query, distributorID, delta, now, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust balance of distributor %s: %w", distributorID, mapPgError(err))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: distributor %s not found during balance adjustment", apperrors.ErrNotFound, distributorID)
	}
	return nil
}
