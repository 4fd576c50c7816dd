package models

import (
	"github.com/shopspring/decimal"
)

// AccountKind mirrors domain.AccountKind at the persistence boundary.
type AccountKind string

// Account is the database representation of a ledger account.
type Account struct {
	AccountID       string          `db:"account_id"`
	Name            string          `db:"name"`
	Kind            AccountKind     `db:"kind"`
	Balance         decimal.Decimal `db:"balance"`
	LifetimeInflow  decimal.Decimal `db:"lifetime_inflow"`
	LifetimeOutflow decimal.Decimal `db:"lifetime_outflow"`
	DisplayOrder    int             `db:"display_order"`
	IsActive        bool            `db:"is_active"`
	AuditFields
}
