package services

import (
	"context"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	"github.com/gyaops/ledger-backend/internal/dto"
)

// MovementSvcFacade exposes read access to the append-only movement log.
type MovementSvcFacade interface {
	// GetMovement retrieves a single log entry.
	GetMovement(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovementsByAccount returns a cursor-paginated, reverse-chronological
	// page of an account's movements.
	ListMovementsByAccount(ctx context.Context, accountID string, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)

	// ListMovementsBySale returns the audit trail of a sale.
	ListMovementsBySale(ctx context.Context, saleID string) ([]domain.Movement, error)

	// ListMovements returns movements matching the filter, newest first.
	ListMovements(ctx context.Context, filter portsrepo.MovementFilter) ([]domain.Movement, error)

	// SummarizeMovements aggregates movement totals by kind over a period.
	SummarizeMovements(ctx context.Context, req dto.SummaryRequest) (*portsrepo.MovementSummary, error)
}
