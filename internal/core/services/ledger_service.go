package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gyaops/ledger-backend/internal/apperrors"
	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/middleware"
	"github.com/gyaops/ledger-backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// DistributionAccounts names the three roster accounts every client payment
// is split into.
type DistributionAccounts struct {
	CostAccountID    string
	FreightAccountID string
	ProfitAccountID  string
}

// ledgerService coordinates the multi-step ledger operations. It validates
// and stages inputs; the atomicity itself lives in the ledger repository,
// where every operation runs as a single locked database transaction.
type ledgerService struct {
	ledgerRepo      portsrepo.LedgerRepository
	clientRepo      portsrepo.ClientRepository
	distributorRepo portsrepo.DistributorRepository
	saleRepo        portsrepo.SaleReader
	movementRepo    portsrepo.MovementReader
	poRepo          portsrepo.PurchaseOrderRepository
	distribution    DistributionAccounts
}

// NewLedgerService creates the ledger coordinator.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepository,
	clientRepo portsrepo.ClientRepository,
	distributorRepo portsrepo.DistributorRepository,
	saleRepo portsrepo.SaleReader,
	movementRepo portsrepo.MovementReader,
	poRepo portsrepo.PurchaseOrderRepository,
	distribution DistributionAccounts,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:      ledgerRepo,
		clientRepo:      clientRepo,
		distributorRepo: distributorRepo,
		saleRepo:        saleRepo,
		movementRepo:    movementRepo,
		poRepo:          poRepo,
		distribution:    distribution,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// RegisterSale validates the request, computes the split once, and persists
// the sale with the client's debt increased by the sale total.
func (s *ledgerService) RegisterSale(ctx context.Context, req dto.RegisterSaleRequest, actorID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", req.ClientID, err)
	}
	if client.Status != domain.PartyActive {
		return nil, fmt.Errorf("%w: client %s is not active", apperrors.ErrValidation, req.ClientID)
	}

	split, err := accounting.ComputeSaleSplit(req.Quantity, req.UnitSalePrice, req.UnitCostPrice, req.UnitFreight)
	if err != nil {
		return nil, err
	}
	if split.Profit.IsNegative() {
		logger.Warn("Sale priced below cost plus freight",
			slog.String("client_id", req.ClientID),
			slog.String("profit", split.Profit.String()),
		)
	}

	now := time.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	sale := domain.Sale{
		SaleID:          uuid.NewString(),
		ClientID:        req.ClientID,
		Quantity:        req.Quantity,
		UnitSalePrice:   req.UnitSalePrice,
		UnitCostPrice:   req.UnitCostPrice,
		UnitFreight:     req.UnitFreight,
		TotalAmount:     split.TotalAmount,
		AmountPaid:      decimal.Zero,
		AmountRemaining: split.TotalAmount,
		Status:          domain.PaymentPending,
		SplitCost:       split.Cost,
		SplitFreight:    split.Freight,
		SplitProfit:     split.Profit,
		Concept:         strings.TrimSpace(req.Concept),
		OccurredAt:      occurredAt,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.ledgerRepo.RegisterSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to register sale: %w", err)
	}

	logger.Info("Sale registered",
		slog.String("sale_id", sale.SaleID),
		slog.String("client_id", sale.ClientID),
		slog.String("total", sale.TotalAmount.String()),
	)
	return &sale, nil
}

// RecordPayment applies a client payment to a sale. The proportional shares
// are computed inside the repository transaction against the sale row read
// under lock, so concurrent payments cannot over-collect.
func (s *ledgerService) RecordPayment(ctx context.Context, saleID string, req dto.RecordPaymentRequest, actorID string) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	concept := strings.TrimSpace(req.Concept)
	if concept == "" {
		concept = "Client payment"
	}

	result, err := s.ledgerRepo.ApplyPayment(ctx, portsrepo.ApplyPaymentParams{
		SaleID:           saleID,
		Amount:           accounting.RoundMoney(req.Amount),
		Concept:          concept,
		CostAccountID:    s.distribution.CostAccountID,
		FreightAccountID: s.distribution.FreightAccountID,
		ProfitAccountID:  s.distribution.ProfitAccountID,
		UserID:           actorID,
		Now:              time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply payment to sale %s: %w", saleID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Payment recorded",
		slog.String("sale_id", saleID),
		slog.String("amount", result.Shares.Total().String()),
		slog.String("new_status", string(result.Sale.Status)),
	)

	return &dto.PaymentResponse{
		SaleID:       result.Sale.SaleID,
		AmountPaid:   result.Shares.Total(),
		NewRemaining: result.Sale.AmountRemaining,
		NewStatus:    result.Sale.Status,
		Shares: dto.PaymentSharesResponse{
			Cost:    result.Shares.Cost,
			Freight: result.Shares.Freight,
			Profit:  result.Shares.Profit,
		},
	}, nil
}

// Transfer moves capital between two roster accounts as a linked pair of
// movements sharing one reference ID.
func (s *ledgerService) Transfer(ctx context.Context, req dto.TransferRequest, actorID string) (*dto.TransferResponse, error) {
	if req.OriginAccountID == req.DestinationAccountID {
		return nil, fmt.Errorf("%w: origin and destination accounts must differ", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}

	params := portsrepo.TransferParams{
		OriginAccountID:      req.OriginAccountID,
		DestinationAccountID: req.DestinationAccountID,
		Amount:               accounting.RoundMoney(req.Amount),
		Concept:              strings.TrimSpace(req.Concept),
		ReferenceID:          uuid.NewString(),
		OutMovementID:        uuid.NewString(),
		InMovementID:         uuid.NewString(),
		UserID:               actorID,
		Now:                  time.Now(),
	}
	if err := s.ledgerRepo.Transfer(ctx, params); err != nil {
		return nil, fmt.Errorf("failed to transfer %s from %s to %s: %w", params.Amount, req.OriginAccountID, req.DestinationAccountID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Transfer completed",
		slog.String("reference_id", params.ReferenceID),
		slog.String("origin", req.OriginAccountID),
		slog.String("destination", req.DestinationAccountID),
		slog.String("amount", params.Amount.String()),
	)

	return &dto.TransferResponse{
		ReferenceID:   params.ReferenceID,
		OutMovementID: params.OutMovementID,
		InMovementID:  params.InMovementID,
	}, nil
}

// RecordExpense applies a funds-checked outflow against one account.
func (s *ledgerService) RecordExpense(ctx context.Context, req dto.ExpenseRequest, actorID string) (string, error) {
	if !req.Amount.IsPositive() {
		return "", fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	movement := domain.Movement{
		MovementID: uuid.NewString(),
		AccountID:  req.AccountID,
		Kind:       domain.Outflow,
		Amount:     accounting.RoundMoney(req.Amount),
		OccurredAt: occurredAt,
		Concept:    strings.TrimSpace(req.Concept),
		Notes:      req.Notes,
		CreatedAt:  now,
		CreatedBy:  actorID,
	}
	if err := s.ledgerRepo.RecordOutflow(ctx, movement); err != nil {
		return "", fmt.Errorf("failed to record expense on account %s: %w", req.AccountID, err)
	}
	return movement.MovementID, nil
}

// RecordDeposit applies a manual inflow to one account.
func (s *ledgerService) RecordDeposit(ctx context.Context, req dto.DepositRequest, actorID string) (string, error) {
	if !req.Amount.IsPositive() {
		return "", fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	movement := domain.Movement{
		MovementID: uuid.NewString(),
		AccountID:  req.AccountID,
		Kind:       domain.Inflow,
		Amount:     accounting.RoundMoney(req.Amount),
		OccurredAt: occurredAt,
		Concept:    strings.TrimSpace(req.Concept),
		Notes:      req.Notes,
		CreatedAt:  now,
		CreatedBy:  actorID,
	}
	if err := s.ledgerRepo.RecordInflow(ctx, movement); err != nil {
		return "", fmt.Errorf("failed to record deposit on account %s: %w", req.AccountID, err)
	}
	return movement.MovementID, nil
}

// PayDistributor pays down distributor debt from an origin account. The
// amount is allocated across the distributor's open purchase orders, oldest
// first, inside the repository transaction.
func (s *ledgerService) PayDistributor(ctx context.Context, distributorID string, req dto.PayDistributorRequest, actorID string) error {
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	concept := strings.TrimSpace(req.Concept)
	if concept == "" {
		concept = "Distributor payment"
	}

	err := s.ledgerRepo.PayDistributor(ctx, portsrepo.PayDistributorParams{
		DistributorID:   distributorID,
		OriginAccountID: req.OriginAccountID,
		Amount:          accounting.RoundMoney(req.Amount),
		Concept:         concept,
		UserID:          actorID,
		Now:             time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to pay distributor %s: %w", distributorID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Distributor paid",
		slog.String("distributor_id", distributorID),
		slog.String("amount", req.Amount.String()),
	)
	return nil
}

// RegisterPurchaseOrder creates a purchase order, increasing distributor debt
// by the unpaid portion, with an optional initial payment in the same atomic
// unit.
func (s *ledgerService) RegisterPurchaseOrder(ctx context.Context, req dto.RegisterPurchaseOrderRequest, actorID string) (*domain.PurchaseOrder, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unit cost must not be negative", apperrors.ErrValidation)
	}
	if req.InitialPayment.IsNegative() {
		return nil, fmt.Errorf("%w: initial payment must not be negative", apperrors.ErrValidation)
	}
	if req.InitialPayment.IsPositive() && req.OriginAccountID == "" {
		return nil, fmt.Errorf("%w: originAccountId is required when initialPayment is set", apperrors.ErrValidation)
	}

	distributor, err := s.distributorRepo.FindDistributorByID(ctx, req.DistributorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find distributor %s: %w", req.DistributorID, err)
	}
	if distributor.Status != domain.PartyActive {
		return nil, fmt.Errorf("%w: distributor %s is not active", apperrors.ErrValidation, req.DistributorID)
	}

	total := accounting.RoundMoney(req.UnitCost.Mul(decimal.NewFromInt(req.Quantity)))
	if req.InitialPayment.GreaterThan(total) {
		return nil, fmt.Errorf("%w: initial payment %s exceeds order total %s", apperrors.ErrExceedsRemaining, req.InitialPayment, total)
	}

	now := time.Now()
	order := domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		DistributorID:   req.DistributorID,
		OrderNumber:     strings.TrimSpace(req.OrderNumber),
		Quantity:        req.Quantity,
		UnitCost:        req.UnitCost,
		TotalAmount:     total,
		AmountPaid:      decimal.Zero,
		AmountRemaining: total,
		Status:          domain.PaymentPending,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	err = s.ledgerRepo.RegisterPurchaseOrder(ctx, portsrepo.RegisterPurchaseOrderParams{
		Order:           order,
		InitialPayment:  accounting.RoundMoney(req.InitialPayment),
		OriginAccountID: req.OriginAccountID,
		UserID:          actorID,
		Now:             now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register purchase order: %w", err)
	}

	// Re-read so the returned order reflects the initial payment, if any.
	created, err := s.poRepo.FindPurchaseOrderByID(ctx, order.PurchaseOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load registered purchase order %s: %w", order.PurchaseOrderID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Purchase order registered",
		slog.String("purchase_order_id", created.PurchaseOrderID),
		slog.String("distributor_id", created.DistributorID),
		slog.String("total", created.TotalAmount.String()),
	)
	return created, nil
}

// ReverseMovement voids a manual movement by appending its inverse. Only
// standalone inflows and outflows are reversible; movements created by sales,
// payments, transfers or purchase orders must be corrected through their own
// operations so linked records stay consistent.
func (s *ledgerService) ReverseMovement(ctx context.Context, movementID string, reason string, actorID string) (string, error) {
	original, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return "", fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}

	if original.Kind != domain.Inflow && original.Kind != domain.Outflow {
		return "", fmt.Errorf("%w: transfer legs cannot be reversed directly, transfer back instead", apperrors.ErrValidation)
	}
	if original.SaleID != "" || original.DistributorID != "" || original.PurchaseOrderID != "" {
		return "", fmt.Errorf("%w: movements linked to sales or purchase orders cannot be reversed directly", apperrors.ErrValidation)
	}

	existing, err := s.movementRepo.ListMovements(ctx, portsrepo.MovementFilter{ReferenceID: movementID, Limit: 1})
	if err != nil {
		return "", fmt.Errorf("failed to check for prior reversal of %s: %w", movementID, err)
	}
	if len(existing) > 0 {
		return "", fmt.Errorf("%w: movement %s is already reversed by %s", apperrors.ErrDuplicate, movementID, existing[0].MovementID)
	}

	now := time.Now()
	inverse := domain.Movement{
		MovementID:  uuid.NewString(),
		AccountID:   original.AccountID,
		Amount:      original.Amount,
		OccurredAt:  now,
		Concept:     "Reversal: " + original.Concept,
		ReferenceID: original.MovementID,
		ClientID:    original.ClientID,
		Notes:       reason,
		CreatedAt:   now,
		CreatedBy:   actorID,
	}

	if original.Kind == domain.Inflow {
		inverse.Kind = domain.Outflow
		err = s.ledgerRepo.RecordOutflow(ctx, inverse)
	} else {
		inverse.Kind = domain.Inflow
		err = s.ledgerRepo.RecordInflow(ctx, inverse)
	}
	if err != nil {
		return "", fmt.Errorf("failed to reverse movement %s: %w", movementID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Movement reversed",
		slog.String("movement_id", movementID),
		slog.String("reversal_id", inverse.MovementID),
	)
	return inverse.MovementID, nil
}
