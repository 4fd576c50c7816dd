package models

import (
	"github.com/shopspring/decimal"
)

// PurchaseOrder is the database representation of a purchase order.
type PurchaseOrder struct {
	PurchaseOrderID string `db:"purchase_order_id"`
	DistributorID   string `db:"distributor_id"`
	OrderNumber     string `db:"order_number"`

	Quantity int64           `db:"quantity"`
	UnitCost decimal.Decimal `db:"unit_cost"`

	TotalAmount     decimal.Decimal `db:"total_amount"`
	AmountPaid      decimal.Decimal `db:"amount_paid"`
	AmountRemaining decimal.Decimal `db:"amount_remaining"`
	Status          PaymentStatus   `db:"status"`

	Notes *string `db:"notes"`
	AuditFields
}
