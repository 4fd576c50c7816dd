package dto

import (
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListMovementsParams paginates an account's movement history.
type ListMovementsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// MovementResponse is the API projection of one log entry.
type MovementResponse struct {
	MovementID            string              `json:"movementId"`
	AccountID             string              `json:"accountId"`
	Kind                  domain.MovementKind `json:"kind"`
	Amount                decimal.Decimal     `json:"amount"`
	OccurredAt            time.Time           `json:"occurredAt"`
	Concept               string              `json:"concept"`
	ReferenceID           string              `json:"referenceId,omitempty"`
	CounterpartyAccountID string              `json:"counterpartyAccountId,omitempty"`
	SaleID                string              `json:"saleId,omitempty"`
	ClientID              string              `json:"clientId,omitempty"`
	DistributorID         string              `json:"distributorId,omitempty"`
	PurchaseOrderID       string              `json:"purchaseOrderId,omitempty"`
	Notes                 string              `json:"notes,omitempty"`
	CreatedAt             time.Time           `json:"createdAt"`
}

// ListMovementsResponse is one page of movements, newest first.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken string             `json:"nextToken,omitempty"`
}

// SummaryRequest bounds a movement aggregation period.
type SummaryRequest struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// ToMovementResponse maps a domain movement to its API projection.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:            m.MovementID,
		AccountID:             m.AccountID,
		Kind:                  m.Kind,
		Amount:                m.Amount,
		OccurredAt:            m.OccurredAt,
		Concept:               m.Concept,
		ReferenceID:           m.ReferenceID,
		CounterpartyAccountID: m.CounterpartyAccountID,
		SaleID:                m.SaleID,
		ClientID:              m.ClientID,
		DistributorID:         m.DistributorID,
		PurchaseOrderID:       m.PurchaseOrderID,
		Notes:                 m.Notes,
		CreatedAt:             m.CreatedAt,
	}
}

// ToMovementResponses maps a slice of movements.
func ToMovementResponses(ms []domain.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToMovementResponse(&ms[i]))
	}
	return out
}
