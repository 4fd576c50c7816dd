package services

import (
	"context"
	"fmt"

	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// reportingService aggregates ledger state for the dashboard.
type reportingService struct {
	accountRepo   portsrepo.AccountReader
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountReader, reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{accountRepo: accountRepo, reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) FinancialOverview(ctx context.Context) (*dto.FinancialOverviewResponse, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for overview: %w", err)
	}

	totals, err := s.reportingRepo.FetchOverviewTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overview totals: %w", err)
	}

	totalCapital := decimal.Zero
	accountViews := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		totalCapital = totalCapital.Add(accounts[i].Balance)
		accountViews = append(accountViews, dto.ToAccountResponse(&accounts[i]))
	}

	return &dto.FinancialOverviewResponse{
		TotalCapital:           totalCapital,
		Accounts:               accountViews,
		ClientReceivables:      totals.ClientReceivables,
		DistributorPayables:    totals.DistributorPayables,
		ActiveClientCount:      totals.ActiveClients,
		ActiveDistributorCount: totals.ActiveDistributors,
		PendingSaleCount:       totals.PendingSales,
		OpenPurchaseOrderCount: totals.OpenPurchaseOrders,
	}, nil
}
