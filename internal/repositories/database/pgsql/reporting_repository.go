package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new repository for dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// FetchOverviewTotals aggregates debt totals and open-record counts in a
// single round trip. The read is read-committed; these numbers are for
// display, not for authorizing mutations.
func (r *PgxReportingRepository) FetchOverviewTotals(ctx context.Context) (*portsrepo.OverviewTotals, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(outstanding_balance), 0) FROM clients WHERE status = 'ACTIVE'),
			(SELECT COALESCE(SUM(outstanding_balance), 0) FROM distributors WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM clients WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM distributors WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM sales WHERE status <> 'COMPLETE'),
			(SELECT COUNT(*) FROM purchase_orders WHERE status <> 'COMPLETE');
	`
	var totals portsrepo.OverviewTotals
	err := r.pool.QueryRow(ctx, query).Scan(
		&totals.ClientReceivables,
		&totals.DistributorPayables,
		&totals.ActiveClients,
		&totals.ActiveDistributors,
		&totals.PendingSales,
		&totals.OpenPurchaseOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overview totals: %w", err)
	}
	return &totals, nil
}
