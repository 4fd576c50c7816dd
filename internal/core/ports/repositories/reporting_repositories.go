package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// OverviewTotals is a one-shot aggregate of ledger state for the dashboard.
type OverviewTotals struct {
	ClientReceivables   decimal.Decimal
	DistributorPayables decimal.Decimal
	ActiveClients       int
	ActiveDistributors  int
	PendingSales        int
	OpenPurchaseOrders  int
}

// ReportingRepository serves read-only aggregates. Results are informational
// snapshots and never feed back into mutation checks.
type ReportingRepository interface {
	FetchOverviewTotals(ctx context.Context) (*OverviewTotals, error)
}
