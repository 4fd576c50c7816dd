package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks how much of a sale has been collected.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPartial  PaymentStatus = "PARTIAL"
	PaymentComplete PaymentStatus = "COMPLETE"
)

// Sale is a financial record of goods sold to a client. It is created on
// registration, mutated only by payment recording, and never deleted.
//
// The three split totals are computed once at creation and reused for every
// proportional distribution, so partial payments always divide against the
// original allocation. Invariants: SplitCost + SplitFreight + SplitProfit ==
// TotalAmount and AmountPaid + AmountRemaining == TotalAmount.
type Sale struct {
	SaleID   string `json:"saleID"`
	ClientID string `json:"clientID"`

	Quantity      int64           `json:"quantity"`
	UnitSalePrice decimal.Decimal `json:"unitSalePrice"`
	UnitCostPrice decimal.Decimal `json:"unitCostPrice"`
	UnitFreight   decimal.Decimal `json:"unitFreight"`

	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	AmountRemaining decimal.Decimal `json:"amountRemaining"`
	Status          PaymentStatus   `json:"status"`

	SplitCost    decimal.Decimal `json:"splitCost"`
	SplitFreight decimal.Decimal `json:"splitFreight"`
	SplitProfit  decimal.Decimal `json:"splitProfit"`

	Concept    string    `json:"concept"`
	OccurredAt time.Time `json:"occurredAt"`

	Notes string `json:"notes,omitempty"`
	AuditFields
}

// StatusForRemaining returns the payment status a sale ends up in after its
// remaining amount reaches the given value.
func StatusForRemaining(remaining, total decimal.Decimal) PaymentStatus {
	switch {
	case remaining.IsZero():
		return PaymentComplete
	case remaining.Equal(total):
		return PaymentPending
	default:
		return PaymentPartial
	}
}
