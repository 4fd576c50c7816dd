package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
)

const defaultPageSize = 25

// movementService provides read access to the append-only movement log.
type movementService struct {
	movementRepo portsrepo.MovementReader
}

// NewMovementService creates a new movement service.
func NewMovementService(movementRepo portsrepo.MovementReader) portssvc.MovementSvcFacade {
	return &movementService{movementRepo: movementRepo}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

func (s *movementService) GetMovement(ctx context.Context, movementID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}
	return movement, nil
}

func (s *movementService) ListMovementsByAccount(ctx context.Context, accountID string, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	movements, nextToken, err := s.movementRepo.ListMovementsByAccount(ctx, accountID, limit, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for account %s: %w", accountID, err)
	}

	resp := &dto.ListMovementsResponse{Movements: dto.ToMovementResponses(movements)}
	if nextToken != nil {
		resp.NextToken = *nextToken
	}
	return resp, nil
}

func (s *movementService) ListMovementsBySale(ctx context.Context, saleID string) ([]domain.Movement, error) {
	movements, err := s.movementRepo.ListMovementsBySale(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for sale %s: %w", saleID, err)
	}
	return movements, nil
}

func (s *movementService) ListMovements(ctx context.Context, filter portsrepo.MovementFilter) ([]domain.Movement, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	movements, err := s.movementRepo.ListMovements(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return movements, nil
}

func (s *movementService) SummarizeMovements(ctx context.Context, req dto.SummaryRequest) (*portsrepo.MovementSummary, error) {
	from := time.Time{}
	to := time.Now()
	if req.From != nil {
		from = *req.From
	}
	if req.To != nil {
		to = *req.To
	}
	summary, err := s.movementRepo.SummarizeMovements(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize movements: %w", err)
	}
	return summary, nil
}
