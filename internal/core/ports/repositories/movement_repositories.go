package repositories

import (
	"context"
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MovementFilter narrows a movement listing. Zero values mean "no filter".
type MovementFilter struct {
	AccountID     string
	Kind          domain.MovementKind
	ClientID      string
	DistributorID string
	ReferenceID   string
	From          time.Time
	To            time.Time
	Search        string // Matches concept and notes.
	Limit         int
	Offset        int
}

// MovementSummary aggregates movement amounts by kind over a period.
type MovementSummary struct {
	TotalInflow      decimal.Decimal `json:"totalInflow"`
	TotalOutflow     decimal.Decimal `json:"totalOutflow"`
	TotalTransferred decimal.Decimal `json:"totalTransferred"`
	OperationCount   int64           `json:"operationCount"`
}

// MovementReader defines read operations over the append-only movement log.
type MovementReader interface {
	// FindMovementByID retrieves a single movement.
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovementsByAccount returns a reverse-chronological page of an
	// account's movements using token-based pagination. It returns the page,
	// a token for the next page, and an error.
	ListMovementsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Movement, *string, error)

	// ListMovementsBySale returns every movement referencing a sale, oldest first.
	ListMovementsBySale(ctx context.Context, saleID string) ([]domain.Movement, error)

	// ListMovements returns movements matching the filter, newest first.
	ListMovements(ctx context.Context, filter MovementFilter) ([]domain.Movement, error)

	// SummarizeMovements aggregates amounts by kind between from and to.
	SummarizeMovements(ctx context.Context, from, to time.Time) (*MovementSummary, error)
}

// MovementTxOps defines movement writes that run inside an open database
// transaction. The log is append-only: there is no update or delete.
type MovementTxOps interface {
	// InsertMovementsInTx appends the given movements as part of the
	// surrounding atomic operation.
	InsertMovementsInTx(ctx context.Context, tx pgx.Tx, movements []domain.Movement) error
}

// MovementRepositoryFacade combines all movement repository interfaces.
type MovementRepositoryFacade interface {
	MovementReader
	MovementTxOps
}
