package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gyaops/ledger-backend/internal/apperrors"
	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	"github.com/gyaops/ledger-backend/internal/models"
	"github.com/gyaops/ledger-backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const movementColumns = `movement_id, account_id, kind, amount, occurred_at, concept, reference_id, counterparty_account_id, sale_id, client_id, distributor_id, purchase_order_id, notes, created_at, created_by`

type PgxMovementRepository struct {
	pool *pgxpool.Pool
}

// newPgxMovementRepository creates a new repository for the movement log.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{pool: pool}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepositoryFacade
var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

// Helper to convert domain.Movement to models.Movement for DB storage
func toModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:            d.MovementID,
		AccountID:             d.AccountID,
		Kind:                  models.MovementKind(d.Kind),
		Amount:                d.Amount,
		OccurredAt:            d.OccurredAt,
		Concept:               d.Concept,
		ReferenceID:           nullIfEmpty(d.ReferenceID),
		CounterpartyAccountID: nullIfEmpty(d.CounterpartyAccountID),
		SaleID:                nullIfEmpty(d.SaleID),
		ClientID:              nullIfEmpty(d.ClientID),
		DistributorID:         nullIfEmpty(d.DistributorID),
		PurchaseOrderID:       nullIfEmpty(d.PurchaseOrderID),
		Notes:                 nullIfEmpty(d.Notes),
		CreatedAt:             d.CreatedAt,
		CreatedBy:             d.CreatedBy,
	}
}

// Helper to convert models.Movement from DB to domain.Movement
func toDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:            m.MovementID,
		AccountID:             m.AccountID,
		Kind:                  domain.MovementKind(m.Kind),
		Amount:                m.Amount,
		OccurredAt:            m.OccurredAt,
		Concept:               m.Concept,
		ReferenceID:           orEmpty(m.ReferenceID),
		CounterpartyAccountID: orEmpty(m.CounterpartyAccountID),
		SaleID:                orEmpty(m.SaleID),
		ClientID:              orEmpty(m.ClientID),
		DistributorID:         orEmpty(m.DistributorID),
		PurchaseOrderID:       orEmpty(m.PurchaseOrderID),
		Notes:                 orEmpty(m.Notes),
		CreatedAt:             m.CreatedAt,
		CreatedBy:             m.CreatedBy,
	}
}

func scanMovement(row pgx.Row) (models.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.AccountID,
		&m.Kind,
		&m.Amount,
		&m.OccurredAt,
		&m.Concept,
		&m.ReferenceID,
		&m.CounterpartyAccountID,
		&m.SaleID,
		&m.ClientID,
		&m.DistributorID,
		&m.PurchaseOrderID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

func collectMovements(rows pgx.Rows) ([]domain.Movement, error) {
	defer rows.Close()
	movements := make([]domain.Movement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		movements = append(movements, toDomainMovement(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}
	return movements, nil
}

// FindMovementByID retrieves a single movement.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE movement_id = $1;
	`
	m, err := scanMovement(r.pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: movement %s", apperrors.ErrNotFound, movementID)
		}
		return nil, fmt.Errorf("failed to find movement by ID %s: %w", movementID, err)
	}
	movement := toDomainMovement(m)
	return &movement, nil
}

// ListMovementsByAccount returns a reverse-chronological page of an account's
// movements. The continuation token encodes the last row's (occurred_at,
// movement_id); one extra row is fetched to decide whether a next page exists.
func (r *PgxMovementRepository) ListMovementsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	args := []interface{}{accountID}
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE account_id = $1
	`
	if nextToken != nil && *nextToken != "" {
		occurredAt, movementID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (occurred_at, movement_id) < ($2, $3)`
		args = append(args, occurredAt, movementID)
	}
	query += fmt.Sprintf(` ORDER BY occurred_at DESC, movement_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list movements for account %s: %w", accountID, err)
	}
	movements, err := collectMovements(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(movements) > limit {
		movements = movements[:limit]
		last := movements[limit-1]
		encoded := pagination.EncodeToken(last.OccurredAt, last.MovementID)
		token = &encoded
	}
	return movements, token, nil
}

// ListMovementsBySale returns every movement referencing a sale, oldest first.
func (r *PgxMovementRepository) ListMovementsBySale(ctx context.Context, saleID string) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE sale_id = $1
		ORDER BY occurred_at, movement_id;
	`
	rows, err := r.pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for sale %s: %w", saleID, err)
	}
	return collectMovements(rows)
}

// ListMovements returns movements matching the filter, newest first.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, filter portsrepo.MovementFilter) ([]domain.Movement, error) {
	conditions := []string{}
	args := []interface{}{}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.AccountID != "" {
		addCondition("account_id = $%d", filter.AccountID)
	}
	if filter.Kind != "" {
		addCondition("kind = $%d", string(filter.Kind))
	}
	if filter.ClientID != "" {
		addCondition("client_id = $%d", filter.ClientID)
	}
	if filter.DistributorID != "" {
		addCondition("distributor_id = $%d", filter.DistributorID)
	}
	if filter.ReferenceID != "" {
		addCondition("reference_id = $%d", filter.ReferenceID)
	}
	if !filter.From.IsZero() {
		addCondition("occurred_at >= $%d", filter.From)
	}
	if !filter.To.IsZero() {
		addCondition("occurred_at <= $%d", filter.To)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(concept ILIKE $%d OR notes ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + movementColumns + ` FROM movements`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY occurred_at DESC, movement_id DESC"
	if filter.Limit > 0 {
		query += " LIMIT " + strconv.Itoa(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + strconv.Itoa(filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return collectMovements(rows)
}

// SummarizeMovements aggregates movement amounts by kind between from and to.
func (r *PgxMovementRepository) SummarizeMovements(ctx context.Context, from, to time.Time) (*portsrepo.MovementSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'INFLOW'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'OUTFLOW'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'TRANSFER_OUT'), 0),
			COUNT(*)
		FROM movements
		WHERE occurred_at >= $1 AND occurred_at <= $2;
	`
	var summary portsrepo.MovementSummary
	err := r.pool.QueryRow(ctx, query, from, to).Scan(
		&summary.TotalInflow,
		&summary.TotalOutflow,
		&summary.TotalTransferred,
		&summary.OperationCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize movements: %w", err)
	}
	return &summary, nil
}

// InsertMovementsInTx appends the given movements as part of the surrounding
// atomic operation.
func (r *PgxMovementRepository) InsertMovementsInTx(ctx context.Context, tx pgx.Tx, movements []domain.Movement) error {
	if len(movements) == 0 {
		return nil
	}

	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	batch := &pgx.Batch{}
	for _, movement := range movements {
		m := toModelMovement(movement)
		batch.Queue(query,
			m.MovementID,
			m.AccountID,
			m.Kind,
			m.Amount,
			m.OccurredAt,
			m.Concept,
			m.ReferenceID,
			m.CounterpartyAccountID,
			m.SaleID,
			m.ClientID,
			m.DistributorID,
			m.PurchaseOrderID,
			m.Notes,
			m.CreatedAt,
			m.CreatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to insert movement %s: %w", movements[i].MovementID, mapPgError(err))
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close movement insert batch: %w", err)
	}
	return batchErr
}
