package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest moves capital between two roster accounts.
type TransferRequest struct {
	OriginAccountID      string          `json:"originAccountId" binding:"required,max=64"`
	DestinationAccountID string          `json:"destinationAccountId" binding:"required,max=64"`
	Amount               decimal.Decimal `json:"amount" binding:"required"`
	Concept              string          `json:"concept" binding:"required,max=255"`
}

// TransferResponse returns the linked pair of movement entries.
type TransferResponse struct {
	ReferenceID   string `json:"referenceId"`
	OutMovementID string `json:"outMovementId"`
	InMovementID  string `json:"inMovementId"`
}

// ExpenseRequest applies a funds-checked outflow against one account.
type ExpenseRequest struct {
	AccountID  string          `json:"accountId" binding:"required,max=64"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Concept    string          `json:"concept" binding:"required,max=255"`
	OccurredAt *time.Time      `json:"occurredAt,omitempty"`
	Notes      string          `json:"notes,omitempty" binding:"max=1000"`
}

// DepositRequest applies a manual inflow to one account.
type DepositRequest struct {
	AccountID  string          `json:"accountId" binding:"required,max=64"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Concept    string          `json:"concept" binding:"required,max=255"`
	OccurredAt *time.Time      `json:"occurredAt,omitempty"`
	Notes      string          `json:"notes,omitempty" binding:"max=1000"`
}

// ReverseMovementRequest voids a manual movement by appending its inverse.
type ReverseMovementRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// MovementIDResponse returns the identifier of a newly written log entry.
type MovementIDResponse struct {
	MovementID string `json:"movementId"`
}
