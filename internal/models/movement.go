package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind mirrors domain.MovementKind at the persistence boundary.
type MovementKind string

// Movement is the database representation of one immutable ledger entry.
// Optional cross-references are pointers so NULL columns round-trip cleanly.
type Movement struct {
	MovementID string          `db:"movement_id"`
	AccountID  string          `db:"account_id"`
	Kind       MovementKind    `db:"kind"`
	Amount     decimal.Decimal `db:"amount"`
	OccurredAt time.Time       `db:"occurred_at"`
	Concept    string          `db:"concept"`

	ReferenceID           *string `db:"reference_id"`
	CounterpartyAccountID *string `db:"counterparty_account_id"`
	SaleID                *string `db:"sale_id"`
	ClientID              *string `db:"client_id"`
	DistributorID         *string `db:"distributor_id"`
	PurchaseOrderID       *string `db:"purchase_order_id"`

	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
