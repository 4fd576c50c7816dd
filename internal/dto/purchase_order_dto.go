package dto

import (
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterPurchaseOrderRequest creates a purchase order against a
// distributor. A non-zero InitialPayment settles part of the order in the
// same atomic operation, drawn from OriginAccountID.
type RegisterPurchaseOrderRequest struct {
	DistributorID   string          `json:"distributorId" binding:"required,uuid"`
	OrderNumber     string          `json:"orderNumber" binding:"required,max=64"`
	Quantity        int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost        decimal.Decimal `json:"unitCost" binding:"required"`
	InitialPayment  decimal.Decimal `json:"initialPayment,omitempty"`
	OriginAccountID string          `json:"originAccountId,omitempty" binding:"omitempty,max=64"`
	Notes           string          `json:"notes,omitempty" binding:"max=1000"`
}

// PayDistributorRequest pays down distributor debt from an origin account.
type PayDistributorRequest struct {
	OriginAccountID string          `json:"originAccountId" binding:"required,max=64"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Concept         string          `json:"concept,omitempty" binding:"max=255"`
}

// PurchaseOrderResponse is the API projection of a purchase order.
type PurchaseOrderResponse struct {
	PurchaseOrderID string               `json:"purchaseOrderId"`
	DistributorID   string               `json:"distributorId"`
	OrderNumber     string               `json:"orderNumber"`
	Quantity        int64                `json:"quantity"`
	UnitCost        decimal.Decimal      `json:"unitCost"`
	TotalAmount     decimal.Decimal      `json:"totalAmount"`
	AmountPaid      decimal.Decimal      `json:"amountPaid"`
	AmountRemaining decimal.Decimal      `json:"amountRemaining"`
	Status          domain.PaymentStatus `json:"status"`
	Notes           string               `json:"notes,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ToPurchaseOrderResponse maps a domain purchase order to its API projection.
func ToPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		PurchaseOrderID: po.PurchaseOrderID,
		DistributorID:   po.DistributorID,
		OrderNumber:     po.OrderNumber,
		Quantity:        po.Quantity,
		UnitCost:        po.UnitCost,
		TotalAmount:     po.TotalAmount,
		AmountPaid:      po.AmountPaid,
		AmountRemaining: po.AmountRemaining,
		Status:          po.Status,
		Notes:           po.Notes,
		CreatedAt:       po.CreatedAt,
	}
}
