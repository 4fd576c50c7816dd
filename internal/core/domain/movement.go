package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind identifies the direction and origin of a balance change.
type MovementKind string

const (
	Inflow      MovementKind = "INFLOW"
	Outflow     MovementKind = "OUTFLOW"
	TransferIn  MovementKind = "TRANSFER_IN"
	TransferOut MovementKind = "TRANSFER_OUT"
)

// Movement is one immutable ledger entry. Movements are created once inside an
// atomic operation and never updated or deleted; corrections are expressed as
// new inverse movements that reference the original.
type Movement struct {
	MovementID string          `json:"movementID"`
	AccountID  string          `json:"accountID"`
	Kind       MovementKind    `json:"kind"`
	Amount     decimal.Decimal `json:"amount"` // Always positive; Kind carries the sign.
	OccurredAt time.Time       `json:"occurredAt"`
	Concept    string          `json:"concept"`

	// ReferenceID pairs the two legs of a transfer and links a reversal to the
	// movement it cancels.
	ReferenceID string `json:"referenceID,omitempty"`
	// CounterpartyAccountID is the other account of a transfer leg.
	CounterpartyAccountID string `json:"counterpartyAccountID,omitempty"`

	SaleID          string `json:"saleID,omitempty"`
	ClientID        string `json:"clientID,omitempty"`
	DistributorID   string `json:"distributorID,omitempty"`
	PurchaseOrderID string `json:"purchaseOrderID,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// IsCredit reports whether the movement increases the account balance.
func (m Movement) IsCredit() bool {
	return m.Kind == Inflow || m.Kind == TransferIn
}
