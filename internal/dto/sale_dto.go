package dto

import (
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterSaleRequest carries the inputs for creating a sale. Unit prices are
// decimal strings to keep exactness across the wire.
type RegisterSaleRequest struct {
	ClientID      string          `json:"clientId" binding:"required,uuid"`
	Quantity      int64           `json:"quantity" binding:"required,gt=0"`
	UnitSalePrice decimal.Decimal `json:"unitSalePrice" binding:"required"`
	UnitCostPrice decimal.Decimal `json:"unitCostPrice" binding:"required"`
	UnitFreight   decimal.Decimal `json:"unitFreight" binding:"required"`
	Concept       string          `json:"concept" binding:"required,max=255"`
	OccurredAt    *time.Time      `json:"occurredAt,omitempty"`
	Notes         string          `json:"notes,omitempty" binding:"max=1000"`
}

// SaleResponse is the API projection of a sale.
type SaleResponse struct {
	SaleID          string               `json:"saleId"`
	ClientID        string               `json:"clientId"`
	Quantity        int64                `json:"quantity"`
	UnitSalePrice   decimal.Decimal      `json:"unitSalePrice"`
	UnitCostPrice   decimal.Decimal      `json:"unitCostPrice"`
	UnitFreight     decimal.Decimal      `json:"unitFreight"`
	TotalAmount     decimal.Decimal      `json:"totalAmount"`
	AmountPaid      decimal.Decimal      `json:"amountPaid"`
	AmountRemaining decimal.Decimal      `json:"amountRemaining"`
	SplitCost       decimal.Decimal      `json:"splitCost"`
	SplitFreight    decimal.Decimal      `json:"splitFreight"`
	SplitProfit     decimal.Decimal      `json:"splitProfit"`
	Status          domain.PaymentStatus `json:"status"`
	Concept         string               `json:"concept"`
	OccurredAt      time.Time            `json:"occurredAt"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ListSalesParams filters and paginates sale listings.
type ListSalesParams struct {
	ClientID  string `form:"clientId" binding:"omitempty,uuid"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListSalesResponse is one page of sales with an opaque continuation token.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken string         `json:"nextToken,omitempty"`
}

// ToSaleResponse maps a domain sale to its API projection.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:          s.SaleID,
		ClientID:        s.ClientID,
		Quantity:        s.Quantity,
		UnitSalePrice:   s.UnitSalePrice,
		UnitCostPrice:   s.UnitCostPrice,
		UnitFreight:     s.UnitFreight,
		TotalAmount:     s.TotalAmount,
		AmountPaid:      s.AmountPaid,
		AmountRemaining: s.AmountRemaining,
		SplitCost:       s.SplitCost,
		SplitFreight:    s.SplitFreight,
		SplitProfit:     s.SplitProfit,
		Status:          s.Status,
		Concept:         s.Concept,
		OccurredAt:      s.OccurredAt,
		CreatedAt:       s.CreatedAt,
	}
}
