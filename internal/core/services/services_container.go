package services

import (
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Movement = NewMovementService(repos.MovementRepo)
	container.Sale = NewSaleService(repos.SaleRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Distributor = NewDistributorService(repos.DistributorRepo, repos.PurchaseOrderRepo)
	container.Reporting = NewReportingService(repos.AccountRepo, repos.ReportingRepo)

	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		repos.ClientRepo,
		repos.DistributorRepo,
		repos.SaleRepo,
		repos.MovementRepo,
		repos.PurchaseOrderRepo,
		DistributionAccounts{
			CostAccountID:    cfg.CostAccountID,
			FreightAccountID: cfg.FreightAccountID,
			ProfitAccountID:  cfg.ProfitAccountID,
		},
	)

	return container
}
