package repositories

import (
	"context"
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BalanceChange is one staged adjustment to an account. Exactly one of Inflow
// or Outflow is non-zero; the repository updates the balance and the matching
// lifetime total together so the two always reconcile.
type BalanceChange struct {
	AccountID string
	Inflow    decimal.Decimal
	Outflow   decimal.Decimal
}

// AccountReader defines read operations for the fixed account roster.
type AccountReader interface {
	// FindAccountByID retrieves an account by its roster identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by ID. Missing IDs
	// are simply absent from the map; callers decide whether that is an error.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts returns the active roster ordered by display order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountTxOps defines account operations that run inside an open database
// transaction, shared by the atomic ledger operations.
type AccountTxOps interface {
	// FindAccountsByIDsForUpdate retrieves the given accounts and locks their
	// rows for the duration of the transaction. Fails with ErrNotFound when
	// any requested account is missing.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// ApplyBalanceChangesInTx applies staged inflows/outflows to the locked
	// accounts, adjusting balance and lifetime totals in one statement each.
	ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes []BalanceChange, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountTxOps
}
