package services

import (
	"context"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountSvcFacade exposes read access to the fixed account roster.
type AccountSvcFacade interface {
	// GetAccount retrieves one roster account; inactive accounts surface as
	// not found.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountBalance returns the current spendable balance.
	GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	// ListAccounts returns the active roster in display order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
