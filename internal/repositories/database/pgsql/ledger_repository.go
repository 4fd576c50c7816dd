package pgsql

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gyaops/ledger-backend/internal/apperrors"
	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	"github.com/gyaops/ledger-backend/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxLedgerRepository executes the multi-step ledger operations. Every public
// method runs as one database transaction with a bounded lock wait; rows are
// locked before any balance or debt check, and accounts are always locked
// last, in sorted ID order, so concurrent operations cannot deadlock.
type PgxLedgerRepository struct {
	BaseRepository
	accountRepo     portsrepo.AccountRepositoryFacade
	movementRepo    portsrepo.MovementRepositoryFacade
	saleRepo        portsrepo.SaleRepositoryFacade
	clientRepo      portsrepo.ClientRepository
	distributorRepo portsrepo.DistributorRepository
	poRepo          portsrepo.PurchaseOrderRepository
	lockTimeout     time.Duration
}

// newPgxLedgerRepository creates the repository behind the atomic ledger
// operations.
func newPgxLedgerRepository(
	pool *pgxpool.Pool,
	accountRepo portsrepo.AccountRepositoryFacade,
	movementRepo portsrepo.MovementRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	clientRepo portsrepo.ClientRepository,
	distributorRepo portsrepo.DistributorRepository,
	poRepo portsrepo.PurchaseOrderRepository,
	lockTimeout time.Duration,
) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository:  BaseRepository{Pool: pool},
		accountRepo:     accountRepo,
		movementRepo:    movementRepo,
		saleRepo:        saleRepo,
		clientRepo:      clientRepo,
		distributorRepo: distributorRepo,
		poRepo:          poRepo,
		lockTimeout:     lockTimeout,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// withTx runs fn inside a transaction with the configured lock timeout.
// The deferred rollback is a no-op once the commit succeeds.
func (r *PgxLedgerRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.SetLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// lockAccounts locks the given accounts and returns them keyed by ID.
func (r *PgxLedgerRepository) lockAccounts(ctx context.Context, tx pgx.Tx, accountIDs ...string) (map[string]domain.Account, error) {
	unique := make(map[string]struct{}, len(accountIDs))
	ids := make([]string, 0, len(accountIDs))
	for _, id := range accountIDs {
		if _, seen := unique[id]; !seen {
			unique[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, ids)
}

// RegisterSale persists the sale and increases the client's outstanding
// balance by the sale total. No account balances change until payments land.
func (r *PgxLedgerRepository) RegisterSale(ctx context.Context, sale domain.Sale) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		client, err := r.clientRepo.FindClientByIDForUpdate(ctx, tx, sale.ClientID)
		if err != nil {
			return err
		}
		if client.Status != domain.PartyActive {
			return fmt.Errorf("%w: client %s is not active", apperrors.ErrValidation, sale.ClientID)
		}
		if client.CreditLimit.IsPositive() {
			projected := client.OutstandingBalance.Add(sale.TotalAmount)
			if projected.GreaterThan(client.CreditLimit) {
				return fmt.Errorf("%w: sale would raise client debt to %s, over the %s credit limit", apperrors.ErrValidation, projected, client.CreditLimit)
			}
		}

		if err := r.saleRepo.InsertSaleInTx(ctx, tx, sale); err != nil {
			return err
		}
		return r.clientRepo.AdjustClientBalanceInTx(ctx, tx, sale.ClientID, sale.TotalAmount, sale.CreatedBy, sale.CreatedAt)
	})
}

// ApplyPayment distributes a payment across the three destination accounts
// proportionally to the sale's stored split. The shares are computed from the
// sale row read under lock, so concurrent payments on the same sale serialize
// and can never collect more than the remaining amount.
func (r *PgxLedgerRepository) ApplyPayment(ctx context.Context, params portsrepo.ApplyPaymentParams) (*portsrepo.PaymentResult, error) {
	var result *portsrepo.PaymentResult

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		sale, err := r.saleRepo.FindSaleByIDForUpdate(ctx, tx, params.SaleID)
		if err != nil {
			return err
		}

		split := accounting.SaleSplit{
			TotalAmount: sale.TotalAmount,
			Cost:        sale.SplitCost,
			Freight:     sale.SplitFreight,
			Profit:      sale.SplitProfit,
		}
		shares, err := split.ProportionalShares(params.Amount, sale.AmountPaid)
		if err != nil {
			return err
		}

		client, err := r.clientRepo.FindClientByIDForUpdate(ctx, tx, sale.ClientID)
		if err != nil {
			return err
		}
		if params.Amount.GreaterThan(client.OutstandingBalance) {
			return fmt.Errorf("%w: payment %s exceeds client debt %s", apperrors.ErrExceedsDebt, params.Amount, client.OutstandingBalance)
		}

		if _, err := r.lockAccounts(ctx, tx, params.CostAccountID, params.FreightAccountID, params.ProfitAccountID); err != nil {
			return err
		}

		reference := uuid.NewString()
		changes := make([]portsrepo.BalanceChange, 0, 3)
		movements := make([]domain.Movement, 0, 3)
		destinations := []struct {
			accountID string
			share     decimal.Decimal
			portion   string
		}{
			{params.CostAccountID, shares.Cost, "cost"},
			{params.FreightAccountID, shares.Freight, "freight"},
			{params.ProfitAccountID, shares.Profit, "profit"},
		}
		for _, dest := range destinations {
			if dest.share.IsZero() {
				continue
			}
			// A below-cost sale yields a negative profit share, which leaves
			// the profit account as an outflow rather than a negative inflow.
			change := portsrepo.BalanceChange{AccountID: dest.accountID}
			kind := domain.Inflow
			amount := dest.share
			if dest.share.IsNegative() {
				kind = domain.Outflow
				amount = dest.share.Neg()
				change.Outflow = amount
			} else {
				change.Inflow = amount
			}
			changes = append(changes, change)
			movements = append(movements, domain.Movement{
				MovementID:  uuid.NewString(),
				AccountID:   dest.accountID,
				Kind:        kind,
				Amount:      amount,
				OccurredAt:  params.Now,
				Concept:     fmt.Sprintf("%s (%s)", params.Concept, dest.portion),
				ReferenceID: reference,
				SaleID:      sale.SaleID,
				ClientID:    sale.ClientID,
				CreatedAt:   params.Now,
				CreatedBy:   params.UserID,
			})
		}

		if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, changes, params.UserID, params.Now); err != nil {
			return err
		}
		if err := r.movementRepo.InsertMovementsInTx(ctx, tx, movements); err != nil {
			return err
		}

		newPaid := sale.AmountPaid.Add(params.Amount)
		newRemaining := sale.TotalAmount.Sub(newPaid)
		newStatus := domain.StatusForRemaining(newRemaining, sale.TotalAmount)
		if err := r.saleRepo.UpdateSalePaymentInTx(ctx, tx, sale.SaleID, newPaid, newRemaining, newStatus, params.UserID, params.Now); err != nil {
			return err
		}
		if err := r.clientRepo.AdjustClientBalanceInTx(ctx, tx, sale.ClientID, params.Amount.Neg(), params.UserID, params.Now); err != nil {
			return err
		}

		updated := *sale
		updated.AmountPaid = newPaid
		updated.AmountRemaining = newRemaining
		updated.Status = newStatus
		result = &portsrepo.PaymentResult{Sale: updated, Shares: shares}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Transfer moves capital between two accounts as an outflow/inflow pair
// sharing one reference ID. Total capital is unchanged.
func (r *PgxLedgerRepository) Transfer(ctx context.Context, params portsrepo.TransferParams) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		accounts, err := r.lockAccounts(ctx, tx, params.OriginAccountID, params.DestinationAccountID)
		if err != nil {
			return err
		}

		origin := accounts[params.OriginAccountID]
		if origin.Balance.LessThan(params.Amount) {
			return fmt.Errorf("%w: account %s holds %s, transfer needs %s", apperrors.ErrInsufficientFunds, origin.AccountID, origin.Balance, params.Amount)
		}

		changes := []portsrepo.BalanceChange{
			{AccountID: params.OriginAccountID, Outflow: params.Amount},
			{AccountID: params.DestinationAccountID, Inflow: params.Amount},
		}
		if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, changes, params.UserID, params.Now); err != nil {
			return err
		}

		movements := []domain.Movement{
			{
				MovementID:            params.OutMovementID,
				AccountID:             params.OriginAccountID,
				Kind:                  domain.TransferOut,
				Amount:                params.Amount,
				OccurredAt:            params.Now,
				Concept:               params.Concept,
				ReferenceID:           params.ReferenceID,
				CounterpartyAccountID: params.DestinationAccountID,
				CreatedAt:             params.Now,
				CreatedBy:             params.UserID,
			},
			{
				MovementID:            params.InMovementID,
				AccountID:             params.DestinationAccountID,
				Kind:                  domain.TransferIn,
				Amount:                params.Amount,
				OccurredAt:            params.Now,
				Concept:               params.Concept,
				ReferenceID:           params.ReferenceID,
				CounterpartyAccountID: params.OriginAccountID,
				CreatedAt:             params.Now,
				CreatedBy:             params.UserID,
			},
		}
		return r.movementRepo.InsertMovementsInTx(ctx, tx, movements)
	})
}

// RecordOutflow applies a funds-checked outflow described by the movement.
func (r *PgxLedgerRepository) RecordOutflow(ctx context.Context, movement domain.Movement) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		accounts, err := r.lockAccounts(ctx, tx, movement.AccountID)
		if err != nil {
			return err
		}
		account := accounts[movement.AccountID]
		if account.Balance.LessThan(movement.Amount) {
			return fmt.Errorf("%w: account %s holds %s, outflow needs %s", apperrors.ErrInsufficientFunds, account.AccountID, account.Balance, movement.Amount)
		}

		changes := []portsrepo.BalanceChange{{AccountID: movement.AccountID, Outflow: movement.Amount}}
		if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, changes, movement.CreatedBy, movement.CreatedAt); err != nil {
			return err
		}
		return r.movementRepo.InsertMovementsInTx(ctx, tx, []domain.Movement{movement})
	})
}

// RecordInflow applies an inflow described by the movement.
func (r *PgxLedgerRepository) RecordInflow(ctx context.Context, movement domain.Movement) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := r.lockAccounts(ctx, tx, movement.AccountID); err != nil {
			return err
		}

		changes := []portsrepo.BalanceChange{{AccountID: movement.AccountID, Inflow: movement.Amount}}
		if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, changes, movement.CreatedBy, movement.CreatedAt); err != nil {
			return err
		}
		return r.movementRepo.InsertMovementsInTx(ctx, tx, []domain.Movement{movement})
	})
}

// PayDistributor applies a funds-checked outflow at the origin account,
// decreases the distributor's debt, and allocates the amount across the
// distributor's open purchase orders, oldest first.
func (r *PgxLedgerRepository) PayDistributor(ctx context.Context, params portsrepo.PayDistributorParams) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		distributor, err := r.distributorRepo.FindDistributorByIDForUpdate(ctx, tx, params.DistributorID)
		if err != nil {
			return err
		}
		if params.Amount.GreaterThan(distributor.OutstandingBalance) {
			return fmt.Errorf("%w: payment %s exceeds distributor debt %s", apperrors.ErrExceedsDebt, params.Amount, distributor.OutstandingBalance)
		}

		orders, err := r.poRepo.FindOpenPurchaseOrdersForUpdate(ctx, tx, params.DistributorID)
		if err != nil {
			return err
		}

		left := params.Amount
		touched := make([]string, 0, 1)
		for _, po := range orders {
			if !left.IsPositive() {
				break
			}
			allocation := decimal.Min(po.AmountRemaining, left)
			if !allocation.IsPositive() {
				continue
			}
			newPaid := po.AmountPaid.Add(allocation)
			newRemaining := po.AmountRemaining.Sub(allocation)
			newStatus := domain.StatusForRemaining(newRemaining, po.TotalAmount)
			if err := r.poRepo.UpdatePurchaseOrderPaymentInTx(ctx, tx, po.PurchaseOrderID, newPaid, newRemaining, newStatus, params.UserID, params.Now); err != nil {
				return err
			}
			touched = append(touched, po.PurchaseOrderID)
			left = left.Sub(allocation)
		}
		if left.IsPositive() {
			return apperrors.NewAppError(500, fmt.Sprintf("distributor %s debt does not match open purchase orders", params.DistributorID), apperrors.ErrConflict)
		}

		accounts, err := r.lockAccounts(ctx, tx, params.OriginAccountID)
		if err != nil {
			return err
		}
		origin := accounts[params.OriginAccountID]
		if origin.Balance.LessThan(params.Amount) {
			return fmt.Errorf("%w: account %s holds %s, payment needs %s", apperrors.ErrInsufficientFunds, origin.AccountID, origin.Balance, params.Amount)
		}

		changes := []portsrepo.BalanceChange{{AccountID: params.OriginAccountID, Outflow: params.Amount}}
		if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, changes, params.UserID, params.Now); err != nil {
			return err
		}
		if err := r.distributorRepo.AdjustDistributorBalanceInTx(ctx, tx, params.DistributorID, params.Amount.Neg(), params.UserID, params.Now); err != nil {
			return err
		}

		movement := domain.Movement{
			MovementID:    uuid.NewString(),
			AccountID:     params.OriginAccountID,
			Kind:          domain.Outflow,
			Amount:        params.Amount,
			OccurredAt:    params.Now,
			Concept:       params.Concept,
			DistributorID: params.DistributorID,
			CreatedAt:     params.Now,
			CreatedBy:     params.UserID,
		}
		if len(touched) == 1 {
			movement.PurchaseOrderID = touched[0]
		}
		return r.movementRepo.InsertMovementsInTx(ctx, tx, []domain.Movement{movement})
	})
}

// RegisterPurchaseOrder persists the order, increases distributor debt by the
// unpaid portion, and applies the optional initial payment in the same
// transaction.
func (r *PgxLedgerRepository) RegisterPurchaseOrder(ctx context.Context, params portsrepo.RegisterPurchaseOrderParams) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		order := params.Order

		distributor, err := r.distributorRepo.FindDistributorByIDForUpdate(ctx, tx, order.DistributorID)
		if err != nil {
			return err
		}
		if distributor.Status != domain.PartyActive {
			return fmt.Errorf("%w: distributor %s is not active", apperrors.ErrValidation, order.DistributorID)
		}

		if err := r.poRepo.InsertPurchaseOrderInTx(ctx, tx, order); err != nil {
			return err
		}

		owed := order.TotalAmount
		if params.InitialPayment.IsPositive() {
			newRemaining := order.TotalAmount.Sub(params.InitialPayment)
			newStatus := domain.StatusForRemaining(newRemaining, order.TotalAmount)
			if err := r.poRepo.UpdatePurchaseOrderPaymentInTx(ctx, tx, order.PurchaseOrderID, params.InitialPayment, newRemaining, newStatus, params.UserID, params.Now); err != nil {
				return err
			}
			owed = newRemaining

			accounts, err := r.lockAccounts(ctx, tx, params.OriginAccountID)
			if err != nil {
				return err
			}
			origin := accounts[params.OriginAccountID]
			if origin.Balance.LessThan(params.InitialPayment) {
				return fmt.Errorf("%w: account %s holds %s, initial payment needs %s", apperrors.ErrInsufficientFunds, origin.AccountID, origin.Balance, params.InitialPayment)
			}

			changes := []portsrepo.BalanceChange{{AccountID: params.OriginAccountID, Outflow: params.InitialPayment}}
			if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, changes, params.UserID, params.Now); err != nil {
				return err
			}

			movement := domain.Movement{
				MovementID:      uuid.NewString(),
				AccountID:       params.OriginAccountID,
				Kind:            domain.Outflow,
				Amount:          params.InitialPayment,
				OccurredAt:      params.Now,
				Concept:         fmt.Sprintf("Initial payment on order %s", order.OrderNumber),
				DistributorID:   order.DistributorID,
				PurchaseOrderID: order.PurchaseOrderID,
				CreatedAt:       params.Now,
				CreatedBy:       params.UserID,
			}
			if err := r.movementRepo.InsertMovementsInTx(ctx, tx, []domain.Movement{movement}); err != nil {
				return err
			}
		}

		if owed.IsPositive() {
			return r.distributorRepo.AdjustDistributorBalanceInTx(ctx, tx, order.DistributorID, owed, params.UserID, params.Now)
		}
		return nil
	})
}
