package dto

import (
	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse is the API projection of a roster account.
type AccountResponse struct {
	AccountID       string             `json:"accountId"`
	Name            string             `json:"name"`
	Kind            domain.AccountKind `json:"kind"`
	Balance         decimal.Decimal    `json:"balance"`
	LifetimeInflow  decimal.Decimal    `json:"lifetimeInflow"`
	LifetimeOutflow decimal.Decimal    `json:"lifetimeOutflow"`
	DisplayOrder    int                `json:"displayOrder"`
}

// BalanceResponse returns one account's current balance.
type BalanceResponse struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToAccountResponse maps a domain account to its API projection.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		Name:            a.Name,
		Kind:            a.Kind,
		Balance:         a.Balance,
		LifetimeInflow:  a.LifetimeInflow,
		LifetimeOutflow: a.LifetimeOutflow,
		DisplayOrder:    a.DisplayOrder,
	}
}
