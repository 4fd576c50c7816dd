package dto

import (
	"github.com/shopspring/decimal"
)

// FinancialOverviewResponse aggregates the ledger for the dashboard: current
// capital per account and in total, plus receivable and payable debt.
type FinancialOverviewResponse struct {
	TotalCapital           decimal.Decimal   `json:"totalCapital"`
	Accounts               []AccountResponse `json:"accounts"`
	ClientReceivables      decimal.Decimal   `json:"clientReceivables"`
	DistributorPayables    decimal.Decimal   `json:"distributorPayables"`
	ActiveClientCount      int               `json:"activeClientCount"`
	ActiveDistributorCount int               `json:"activeDistributorCount"`
	PendingSaleCount       int               `json:"pendingSaleCount"`
	OpenPurchaseOrderCount int               `json:"openPurchaseOrderCount"`
}
