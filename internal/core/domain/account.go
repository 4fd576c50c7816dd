package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind classifies an account within the fixed roster.
type AccountKind string

const (
	Operating  AccountKind = "OPERATING"
	Investment AccountKind = "INVESTMENT"
	Savings    AccountKind = "SAVINGS"
)

// Account represents one of the fixed money pools the business tracks.
// Balances are mutated only by the ledger service's atomic operations, never
// directly by callers.
type Account struct {
	AccountID       string          `json:"accountID"` // Roster identifier, e.g. "vault_main"
	Name            string          `json:"name"`
	Kind            AccountKind     `json:"kind"`
	Balance         decimal.Decimal `json:"balance"`
	LifetimeInflow  decimal.Decimal `json:"lifetimeInflow"`
	LifetimeOutflow decimal.Decimal `json:"lifetimeOutflow"`
	DisplayOrder    int             `json:"displayOrder"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}
