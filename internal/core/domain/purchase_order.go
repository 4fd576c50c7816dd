package domain

import (
	"github.com/shopspring/decimal"
)

// PurchaseOrder records stock bought from a distributor. Registering one
// increases the distributor's outstanding balance; payments against the
// distributor bring it back down.
type PurchaseOrder struct {
	PurchaseOrderID string `json:"purchaseOrderID"`
	DistributorID   string `json:"distributorID"`
	OrderNumber     string `json:"orderNumber"`

	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`

	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	AmountRemaining decimal.Decimal `json:"amountRemaining"`
	Status          PaymentStatus   `json:"status"`

	Notes string `json:"notes,omitempty"`
	AuditFields
}
