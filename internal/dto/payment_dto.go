package dto

import (
	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest applies a client payment against a sale.
type RecordPaymentRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Concept string          `json:"concept,omitempty" binding:"max=255"`
}

// PaymentSharesResponse is the per-account breakdown of one payment.
type PaymentSharesResponse struct {
	Cost    decimal.Decimal `json:"cost"`
	Freight decimal.Decimal `json:"freight"`
	Profit  decimal.Decimal `json:"profit"`
}

// PaymentResponse reports the settlement outcome of a payment.
type PaymentResponse struct {
	SaleID       string                `json:"saleId"`
	AmountPaid   decimal.Decimal       `json:"amountPaid"`
	NewRemaining decimal.Decimal       `json:"newRemaining"`
	NewStatus    domain.PaymentStatus  `json:"newStatus"`
	Shares       PaymentSharesResponse `json:"shares"`
}
