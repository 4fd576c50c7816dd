package services

import (
	"context"

	"github.com/gyaops/ledger-backend/internal/dto"
)

// ReportingSvcFacade aggregates ledger state for dashboard consumers. Reads
// are read-committed; values returned here are never used to authorize new
// mutations.
type ReportingSvcFacade interface {
	// FinancialOverview returns total capital plus client and distributor
	// debt totals.
	FinancialOverview(ctx context.Context) (*dto.FinancialOverviewResponse, error)
}
