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

const clientColumns = `client_id, name, email, phone, address, credit_limit, outstanding_balance, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxClientRepository struct {
	pool *pgxpool.Pool
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{pool: pool}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepository
var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

func toModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:           d.ClientID,
		Name:               d.Name,
		Email:              nullIfEmpty(d.Email),
		Phone:              nullIfEmpty(d.Phone),
		Address:            nullIfEmpty(d.Address),
		CreditLimit:        d.CreditLimit,
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

func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:           m.ClientID,
		Name:               m.Name,
		Email:              orEmpty(m.Email),
		Phone:              orEmpty(m.Phone),
		Address:            orEmpty(m.Address),
		CreditLimit:        m.CreditLimit,
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

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.CreditLimit,
		&m.OutstandingBalance,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.CreditLimit,
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
			return fmt.Errorf("%w: client %s already exists", apperrors.ErrDuplicate, m.ClientID)
		}
		return fmt.Errorf("failed to save client %s: %w", m.ClientID, mapped)
	}
	return nil
}

// FindClientByID retrieves a client by ID, regardless of status.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE client_id = $1;
	`
	m, err := scanClient(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	client := toDomainClient(m)
	return &client, nil
}

// ListClients returns active clients ordered by name.
func (r *PgxClientRepository) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE status = 'ACTIVE'
		ORDER BY name, client_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, toDomainClient(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

// UpdateClient persists changes to a client's identity fields. The
// outstanding balance is deliberately not touched here; only the ledger
// operations move it.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, address = $5, credit_limit = $6, last_updated_at = $7, last_updated_by = $8
		WHERE client_id = $1;
	`
	ct, err := r.pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.CreditLimit,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", m.ClientID, mapPgError(err))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, m.ClientID)
	}
	return nil
}

// DeactivateClient marks a client inactive. The row is kept so historical
// sales and movements stay resolvable.
func (r *PgxClientRepository) DeactivateClient(ctx context.Context, clientID string, userID string, now time.Time) error {
	query := `
		UPDATE clients
		SET status = 'INACTIVE', last_updated_at = $2, last_updated_by = $3
		WHERE client_id = $1 AND status = 'ACTIVE';
	`
	ct, err := r.pool.Exec(ctx, query, clientID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate client %s: %w", clientID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: active client %s", apperrors.ErrNotFound, clientID)
	}
	return nil
}

// FindClientByIDForUpdate locks the client row for a debt adjustment.
// Must be called within a transaction.
func (r *PgxClientRepository) FindClientByIDForUpdate(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE client_id = $1
		FOR UPDATE;
	`
	m, err := scanClient(tx.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
		}
		return nil, fmt.Errorf("failed to lock client %s: %w", clientID, mapPgError(err))
	}
	client := toDomainClient(m)
	return &client, nil
}

// AdjustClientBalanceInTx shifts the client's outstanding balance by delta
// (positive increases debt). The caller holds the row lock.
func (r *PgxClientRepository) AdjustClientBalanceInTx(ctx context.Context, tx pgx.Tx, clientID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE clients
		SET outstanding_balance = outstanding_balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE client_id = $1;
	`
	ct, err := tx.Exec(ctx, query, clientID, delta, now, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust balance of client %s: %w", clientID, mapPgError(err))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: client %s not found during balance adjustment", apperrors.ErrNotFound, clientID)
	}
	return nil
}
