package pgsql

import (
	"time"

	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository against one pool. The
// lock timeout bounds how long the atomic ledger operations wait for rows.
func NewRepositoryProvider(dbPool *pgxpool.Pool, lockTimeout time.Duration) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	movementRepo := newPgxMovementRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	distributorRepo := newPgxDistributorRepository(dbPool)
	purchaseOrderRepo := newPgxPurchaseOrderRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, accountRepo, movementRepo, saleRepo, clientRepo, distributorRepo, purchaseOrderRepo, lockTimeout)

	return portsrepo.RepositoryProvider{
		AccountRepo:       accountRepo,
		MovementRepo:      movementRepo,
		SaleRepo:          saleRepo,
		ClientRepo:        clientRepo,
		DistributorRepo:   distributorRepo,
		PurchaseOrderRepo: purchaseOrderRepo,
		LedgerRepo:        ledgerRepo,
		ReportingRepo:     reportingRepo,
	}
}
