package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gyaops/ledger-backend/internal/apperrors"
	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/core/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/utils/accounting"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo      *MockLedgerRepository
	mockClientRepo      *MockClientRepository
	mockDistributorRepo *MockDistributorRepository
	mockSaleRepo        *MockSaleRepository
	mockMovementRepo    *MockMovementRepository
	mockPORepo          *MockPurchaseOrderRepository
	service             portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockDistributorRepo = new(MockDistributorRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockPORepo = new(MockPurchaseOrderRepository)
	suite.service = services.NewLedgerService(
		suite.mockLedgerRepo,
		suite.mockClientRepo,
		suite.mockDistributorRepo,
		suite.mockSaleRepo,
		suite.mockMovementRepo,
		suite.mockPORepo,
		services.DistributionAccounts{
			CostAccountID:    "vault_stock",
			FreightAccountID: "freight_south",
			ProfitAccountID:  "profit_fund",
		},
	)
}

func (suite *LedgerServiceTestSuite) activeClient(id string) *domain.Client {
	return &domain.Client{
		ClientID:           id,
		Name:               "Test Client",
		CreditLimit:        decimal.Zero,
		OutstandingBalance: decimal.Zero,
		Status:             domain.PartyActive,
	}
}

// --- RegisterSale ---

func (suite *LedgerServiceTestSuite) TestRegisterSale_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	actorID := uuid.NewString()
	req := dto.RegisterSaleRequest{
		ClientID:      clientID,
		Quantity:      10,
		UnitSalePrice: money("100"),
		UnitCostPrice: money("60"),
		UnitFreight:   money("5"),
		Concept:       "10 units",
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(suite.activeClient(clientID), nil).Once()
	suite.mockLedgerRepo.On("RegisterSale", ctx, mock.MatchedBy(func(sale domain.Sale) bool {
		return sale.ClientID == clientID &&
			sale.TotalAmount.Equal(money("1000")) &&
			sale.SplitCost.Equal(money("600")) &&
			sale.SplitFreight.Equal(money("50")) &&
			sale.SplitProfit.Equal(money("350")) &&
			sale.AmountPaid.IsZero() &&
			sale.AmountRemaining.Equal(money("1000")) &&
			sale.Status == domain.PaymentPending &&
			sale.CreatedBy == actorID
	})).Return(nil).Once()

	sale, err := suite.service.RegisterSale(ctx, req, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.NotEmpty(sale.SaleID)
	suite.True(sale.TotalAmount.Equal(money("1000")))
	suite.Equal(domain.PaymentPending, sale.Status)
	suite.WithinDuration(time.Now(), sale.CreatedAt, time.Second)

	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRegisterSale_InactiveClient() {
	ctx := context.Background()
	clientID := uuid.NewString()
	client := suite.activeClient(clientID)
	client.Status = domain.PartyInactive

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(client, nil).Once()

	sale, err := suite.service.RegisterSale(ctx, dto.RegisterSaleRequest{
		ClientID:      clientID,
		Quantity:      1,
		UnitSalePrice: money("10"),
		UnitCostPrice: money("5"),
		UnitFreight:   money("1"),
	}, "actor")

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RegisterSale", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRegisterSale_ClientNotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	sale, err := suite.service.RegisterSale(ctx, dto.RegisterSaleRequest{ClientID: clientID, Quantity: 1}, "actor")

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestRegisterSale_InvalidQuantity() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(suite.activeClient(clientID), nil).Once()

	sale, err := suite.service.RegisterSale(ctx, dto.RegisterSaleRequest{
		ClientID:      clientID,
		Quantity:      0,
		UnitSalePrice: money("10"),
	}, "actor")

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RegisterSale", mock.Anything, mock.Anything)
}

// --- RecordPayment ---

func (suite *LedgerServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	saleID := uuid.NewString()
	actorID := uuid.NewString()

	result := &portsrepo.PaymentResult{
		Sale: domain.Sale{
			SaleID:          saleID,
			AmountPaid:      money("500"),
			AmountRemaining: money("500"),
			Status:          domain.PaymentPartial,
		},
		Shares: accounting.PaymentShares{
			Cost:    money("300"),
			Freight: money("50"),
			Profit:  money("150"),
		},
	}

	suite.mockLedgerRepo.On("ApplyPayment", ctx, mock.MatchedBy(func(params portsrepo.ApplyPaymentParams) bool {
		return params.SaleID == saleID &&
			params.Amount.Equal(money("500")) &&
			params.Concept == "Monthly installment" &&
			params.CostAccountID == "vault_stock" &&
			params.FreightAccountID == "freight_south" &&
			params.ProfitAccountID == "profit_fund" &&
			params.UserID == actorID
	})).Return(result, nil).Once()

	resp, err := suite.service.RecordPayment(ctx, saleID, dto.RecordPaymentRequest{
		Amount:  money("500"),
		Concept: "Monthly installment",
	}, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(saleID, resp.SaleID)
	suite.True(resp.AmountPaid.Equal(money("500")))
	suite.True(resp.NewRemaining.Equal(money("500")))
	suite.Equal(domain.PaymentPartial, resp.NewStatus)
	suite.True(resp.Shares.Cost.Equal(money("300")))
	suite.True(resp.Shares.Freight.Equal(money("50")))
	suite.True(resp.Shares.Profit.Equal(money("150")))

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()

	resp, err := suite.service.RecordPayment(ctx, uuid.NewString(), dto.RecordPaymentRequest{Amount: decimal.Zero}, "actor")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ApplyPayment", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_DefaultConcept() {
	ctx := context.Background()
	saleID := uuid.NewString()

	result := &portsrepo.PaymentResult{
		Sale:   domain.Sale{SaleID: saleID, Status: domain.PaymentComplete},
		Shares: accounting.PaymentShares{Cost: money("6"), Freight: money("1"), Profit: money("3")},
	}

	suite.mockLedgerRepo.On("ApplyPayment", ctx, mock.MatchedBy(func(params portsrepo.ApplyPaymentParams) bool {
		return params.Concept == "Client payment"
	})).Return(result, nil).Once()

	_, err := suite.service.RecordPayment(ctx, saleID, dto.RecordPaymentRequest{Amount: money("10"), Concept: "   "}, "actor")

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_ExceedsRemaining() {
	ctx := context.Background()
	saleID := uuid.NewString()

	suite.mockLedgerRepo.On("ApplyPayment", ctx, mock.Anything).Return(nil, apperrors.ErrExceedsRemaining).Once()

	resp, err := suite.service.RecordPayment(ctx, saleID, dto.RecordPaymentRequest{Amount: money("9999")}, "actor")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrExceedsRemaining)
}

// --- Transfer ---

func (suite *LedgerServiceTestSuite) TestTransfer_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	var captured portsrepo.TransferParams

	suite.mockLedgerRepo.On("Transfer", ctx, mock.AnythingOfType("repositories.TransferParams")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(portsrepo.TransferParams)
		}).Return(nil).Once()

	resp, err := suite.service.Transfer(ctx, dto.TransferRequest{
		OriginAccountID:      "vault_main",
		DestinationAccountID: "profit_fund",
		Amount:               money("250.555"),
		Concept:              "Rebalance",
	}, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("vault_main", captured.OriginAccountID)
	suite.Equal("profit_fund", captured.DestinationAccountID)
	suite.True(captured.Amount.Equal(money("250.56")), "amount should be rounded, got %s", captured.Amount)
	suite.Equal(actorID, captured.UserID)

	// The response echoes the identifiers assigned to the two legs.
	suite.Equal(captured.ReferenceID, resp.ReferenceID)
	suite.Equal(captured.OutMovementID, resp.OutMovementID)
	suite.Equal(captured.InMovementID, resp.InMovementID)
	suite.NotEqual(resp.OutMovementID, resp.InMovementID)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestTransfer_SameAccount() {
	ctx := context.Background()

	resp, err := suite.service.Transfer(ctx, dto.TransferRequest{
		OriginAccountID:      "vault_main",
		DestinationAccountID: "vault_main",
		Amount:               money("100"),
	}, "actor")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestTransfer_NonPositiveAmount() {
	ctx := context.Background()

	resp, err := suite.service.Transfer(ctx, dto.TransferRequest{
		OriginAccountID:      "vault_main",
		DestinationAccountID: "profit_fund",
		Amount:               money("-5"),
	}, "actor")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Expense / Deposit ---

func (suite *LedgerServiceTestSuite) TestRecordExpense_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockLedgerRepo.On("RecordOutflow", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.AccountID == "vault_main" &&
			m.Kind == domain.Outflow &&
			m.Amount.Equal(money("75.50")) &&
			m.Concept == "Fuel" &&
			m.CreatedBy == actorID
	})).Return(nil).Once()

	movementID, err := suite.service.RecordExpense(ctx, dto.ExpenseRequest{
		AccountID: "vault_main",
		Amount:    money("75.50"),
		Concept:   "Fuel",
	}, actorID)

	suite.Require().NoError(err)
	suite.NotEmpty(movementID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordExpense_InsufficientFunds() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("RecordOutflow", ctx, mock.Anything).Return(apperrors.ErrInsufficientFunds).Once()

	movementID, err := suite.service.RecordExpense(ctx, dto.ExpenseRequest{
		AccountID: "vault_main",
		Amount:    money("100000"),
		Concept:   "Too big",
	}, "actor")

	suite.Require().Error(err)
	suite.Empty(movementID)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

func (suite *LedgerServiceTestSuite) TestRecordDeposit_Success() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("RecordInflow", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.AccountID == "reserve_fund" && m.Kind == domain.Inflow && m.Amount.Equal(money("300"))
	})).Return(nil).Once()

	movementID, err := suite.service.RecordDeposit(ctx, dto.DepositRequest{
		AccountID: "reserve_fund",
		Amount:    money("300"),
		Concept:   "Capital injection",
	}, "actor")

	suite.Require().NoError(err)
	suite.NotEmpty(movementID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordDeposit_NonPositiveAmount() {
	ctx := context.Background()

	movementID, err := suite.service.RecordDeposit(ctx, dto.DepositRequest{
		AccountID: "reserve_fund",
		Amount:    decimal.Zero,
	}, "actor")

	suite.Require().Error(err)
	suite.Empty(movementID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordInflow", mock.Anything, mock.Anything)
}

// --- PayDistributor ---

func (suite *LedgerServiceTestSuite) TestPayDistributor_Success() {
	ctx := context.Background()
	distributorID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockLedgerRepo.On("PayDistributor", ctx, mock.MatchedBy(func(params portsrepo.PayDistributorParams) bool {
		return params.DistributorID == distributorID &&
			params.OriginAccountID == "vault_main" &&
			params.Amount.Equal(money("400")) &&
			params.Concept == "Distributor payment" &&
			params.UserID == actorID
	})).Return(nil).Once()

	err := suite.service.PayDistributor(ctx, distributorID, dto.PayDistributorRequest{
		OriginAccountID: "vault_main",
		Amount:          money("400"),
	}, actorID)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPayDistributor_NonPositiveAmount() {
	ctx := context.Background()

	err := suite.service.PayDistributor(ctx, uuid.NewString(), dto.PayDistributorRequest{
		OriginAccountID: "vault_main",
		Amount:          money("-1"),
	}, "actor")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "PayDistributor", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPayDistributor_ExceedsDebt() {
	ctx := context.Background()
	distributorID := uuid.NewString()

	suite.mockLedgerRepo.On("PayDistributor", ctx, mock.Anything).Return(apperrors.ErrExceedsDebt).Once()

	err := suite.service.PayDistributor(ctx, distributorID, dto.PayDistributorRequest{
		OriginAccountID: "vault_main",
		Amount:          money("99999"),
	}, "actor")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrExceedsDebt)
}

// --- RegisterPurchaseOrder ---

func (suite *LedgerServiceTestSuite) activeDistributor(id string) *domain.Distributor {
	return &domain.Distributor{
		DistributorID:      id,
		Name:               "Test Distributor",
		OutstandingBalance: decimal.Zero,
		Status:             domain.PartyActive,
	}
}

func (suite *LedgerServiceTestSuite) TestRegisterPurchaseOrder_Success() {
	ctx := context.Background()
	distributorID := uuid.NewString()
	actorID := uuid.NewString()
	var captured portsrepo.RegisterPurchaseOrderParams

	suite.mockDistributorRepo.On("FindDistributorByID", ctx, distributorID).Return(suite.activeDistributor(distributorID), nil).Once()
	suite.mockLedgerRepo.On("RegisterPurchaseOrder", ctx, mock.MatchedBy(func(params portsrepo.RegisterPurchaseOrderParams) bool {
		return params.Order.DistributorID == distributorID &&
			params.Order.TotalAmount.Equal(money("500")) &&
			params.Order.AmountRemaining.Equal(money("500")) &&
			params.InitialPayment.Equal(money("200")) &&
			params.OriginAccountID == "vault_main"
	})).Run(func(args mock.Arguments) {
		captured = args.Get(1).(portsrepo.RegisterPurchaseOrderParams)
	}).Return(nil).Once()

	created := &domain.PurchaseOrder{
		DistributorID:   distributorID,
		OrderNumber:     "PO-1001",
		TotalAmount:     money("500"),
		AmountPaid:      money("200"),
		AmountRemaining: money("300"),
		Status:          domain.PaymentPartial,
	}
	suite.mockPORepo.On("FindPurchaseOrderByID", ctx, mock.AnythingOfType("string")).Return(created, nil).Once()

	order, err := suite.service.RegisterPurchaseOrder(ctx, dto.RegisterPurchaseOrderRequest{
		DistributorID:   distributorID,
		OrderNumber:     "PO-1001",
		Quantity:        10,
		UnitCost:        money("50"),
		InitialPayment:  money("200"),
		OriginAccountID: "vault_main",
	}, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.NotEmpty(captured.Order.PurchaseOrderID)
	suite.True(order.AmountPaid.Equal(money("200")))
	suite.True(order.AmountRemaining.Equal(money("300")))
	suite.Equal(domain.PaymentPartial, order.Status)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockPORepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRegisterPurchaseOrder_InitialPaymentExceedsTotal() {
	ctx := context.Background()
	distributorID := uuid.NewString()

	suite.mockDistributorRepo.On("FindDistributorByID", ctx, distributorID).Return(suite.activeDistributor(distributorID), nil).Once()

	order, err := suite.service.RegisterPurchaseOrder(ctx, dto.RegisterPurchaseOrderRequest{
		DistributorID:   distributorID,
		OrderNumber:     "PO-1002",
		Quantity:        10,
		UnitCost:        money("50"),
		InitialPayment:  money("501"),
		OriginAccountID: "vault_main",
	}, "actor")

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrExceedsRemaining)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RegisterPurchaseOrder", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRegisterPurchaseOrder_PaymentWithoutOrigin() {
	ctx := context.Background()

	order, err := suite.service.RegisterPurchaseOrder(ctx, dto.RegisterPurchaseOrderRequest{
		DistributorID:  uuid.NewString(),
		OrderNumber:    "PO-1003",
		Quantity:       10,
		UnitCost:       money("50"),
		InitialPayment: money("100"),
	}, "actor")

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestRegisterPurchaseOrder_InactiveDistributor() {
	ctx := context.Background()
	distributorID := uuid.NewString()
	distributor := suite.activeDistributor(distributorID)
	distributor.Status = domain.PartySuspended

	suite.mockDistributorRepo.On("FindDistributorByID", ctx, distributorID).Return(distributor, nil).Once()

	order, err := suite.service.RegisterPurchaseOrder(ctx, dto.RegisterPurchaseOrderRequest{
		DistributorID: distributorID,
		OrderNumber:   "PO-1004",
		Quantity:      1,
		UnitCost:      money("50"),
	}, "actor")

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- ReverseMovement ---

func (suite *LedgerServiceTestSuite) TestReverseMovement_Inflow() {
	ctx := context.Background()
	movementID := uuid.NewString()
	actorID := uuid.NewString()

	original := &domain.Movement{
		MovementID: movementID,
		AccountID:  "vault_main",
		Kind:       domain.Inflow,
		Amount:     money("120"),
		Concept:    "Manual deposit",
	}

	suite.mockMovementRepo.On("FindMovementByID", ctx, movementID).Return(original, nil).Once()
	suite.mockMovementRepo.On("ListMovements", ctx, portsrepo.MovementFilter{ReferenceID: movementID, Limit: 1}).Return([]domain.Movement{}, nil).Once()
	suite.mockLedgerRepo.On("RecordOutflow", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.AccountID == "vault_main" &&
			m.Kind == domain.Outflow &&
			m.Amount.Equal(money("120")) &&
			m.ReferenceID == movementID &&
			m.Concept == "Reversal: Manual deposit" &&
			m.CreatedBy == actorID
	})).Return(nil).Once()

	reversalID, err := suite.service.ReverseMovement(ctx, movementID, "entered twice", actorID)

	suite.Require().NoError(err)
	suite.NotEmpty(reversalID)
	suite.NotEqual(movementID, reversalID)

	suite.mockMovementRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReverseMovement_OutflowBecomesInflow() {
	ctx := context.Background()
	movementID := uuid.NewString()

	original := &domain.Movement{
		MovementID: movementID,
		AccountID:  "vault_main",
		Kind:       domain.Outflow,
		Amount:     money("60"),
		Concept:    "Office supplies",
	}

	suite.mockMovementRepo.On("FindMovementByID", ctx, movementID).Return(original, nil).Once()
	suite.mockMovementRepo.On("ListMovements", ctx, mock.Anything).Return([]domain.Movement{}, nil).Once()
	suite.mockLedgerRepo.On("RecordInflow", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.Kind == domain.Inflow && m.ReferenceID == movementID
	})).Return(nil).Once()

	reversalID, err := suite.service.ReverseMovement(ctx, movementID, "wrong amount", "actor")

	suite.Require().NoError(err)
	suite.NotEmpty(reversalID)
}

func (suite *LedgerServiceTestSuite) TestReverseMovement_TransferLegRejected() {
	ctx := context.Background()
	movementID := uuid.NewString()

	original := &domain.Movement{
		MovementID: movementID,
		AccountID:  "vault_main",
		Kind:       domain.TransferOut,
		Amount:     money("60"),
	}

	suite.mockMovementRepo.On("FindMovementByID", ctx, movementID).Return(original, nil).Once()

	reversalID, err := suite.service.ReverseMovement(ctx, movementID, "oops", "actor")

	suite.Require().Error(err)
	suite.Empty(reversalID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordInflow", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReverseMovement_LinkedToSaleRejected() {
	ctx := context.Background()
	movementID := uuid.NewString()

	original := &domain.Movement{
		MovementID: movementID,
		AccountID:  "vault_stock",
		Kind:       domain.Inflow,
		Amount:     money("300"),
		SaleID:     uuid.NewString(),
	}

	suite.mockMovementRepo.On("FindMovementByID", ctx, movementID).Return(original, nil).Once()

	reversalID, err := suite.service.ReverseMovement(ctx, movementID, "oops", "actor")

	suite.Require().Error(err)
	suite.Empty(reversalID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestReverseMovement_AlreadyReversed() {
	ctx := context.Background()
	movementID := uuid.NewString()

	original := &domain.Movement{
		MovementID: movementID,
		AccountID:  "vault_main",
		Kind:       domain.Inflow,
		Amount:     money("120"),
	}
	priorReversal := domain.Movement{MovementID: uuid.NewString(), ReferenceID: movementID}

	suite.mockMovementRepo.On("FindMovementByID", ctx, movementID).Return(original, nil).Once()
	suite.mockMovementRepo.On("ListMovements", ctx, mock.Anything).Return([]domain.Movement{priorReversal}, nil).Once()

	reversalID, err := suite.service.ReverseMovement(ctx, movementID, "again", "actor")

	suite.Require().Error(err)
	suite.Empty(reversalID)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordOutflow", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
