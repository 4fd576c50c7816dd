package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors domain.PaymentStatus at the persistence boundary.
type PaymentStatus string

// Sale is the database representation of a sale record.
type Sale struct {
	SaleID   string `db:"sale_id"`
	ClientID string `db:"client_id"`

	Quantity      int64           `db:"quantity"`
	UnitSalePrice decimal.Decimal `db:"unit_sale_price"`
	UnitCostPrice decimal.Decimal `db:"unit_cost_price"`
	UnitFreight   decimal.Decimal `db:"unit_freight"`

	TotalAmount     decimal.Decimal `db:"total_amount"`
	AmountPaid      decimal.Decimal `db:"amount_paid"`
	AmountRemaining decimal.Decimal `db:"amount_remaining"`
	Status          PaymentStatus   `db:"status"`

	SplitCost    decimal.Decimal `db:"split_cost"`
	SplitFreight decimal.Decimal `db:"split_freight"`
	SplitProfit  decimal.Decimal `db:"split_profit"`

	Concept    string    `db:"concept"`
	OccurredAt time.Time `db:"occurred_at"`

	Notes *string `db:"notes"`
	AuditFields
}
