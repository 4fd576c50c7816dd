package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gyaops/ledger-backend/internal/apperrors"
	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
	"github.com/gyaops/ledger-backend/internal/handlers"
	"github.com/gyaops/ledger-backend/internal/middleware"
	"github.com/gyaops/ledger-backend/internal/platform/config"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RegisterSale(ctx context.Context, req dto.RegisterSaleRequest, actorID string) (*domain.Sale, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockLedgerService) RecordPayment(ctx context.Context, saleID string, req dto.RecordPaymentRequest, actorID string) (*dto.PaymentResponse, error) {
	args := m.Called(ctx, saleID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentResponse), args.Error(1)
}
func (m *MockLedgerService) Transfer(ctx context.Context, req dto.TransferRequest, actorID string) (*dto.TransferResponse, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransferResponse), args.Error(1)
}
func (m *MockLedgerService) RecordExpense(ctx context.Context, req dto.ExpenseRequest, actorID string) (string, error) {
	args := m.Called(ctx, req, actorID)
	return args.String(0), args.Error(1)
}
func (m *MockLedgerService) RecordDeposit(ctx context.Context, req dto.DepositRequest, actorID string) (string, error) {
	args := m.Called(ctx, req, actorID)
	return args.String(0), args.Error(1)
}
func (m *MockLedgerService) PayDistributor(ctx context.Context, distributorID string, req dto.PayDistributorRequest, actorID string) error {
	args := m.Called(ctx, distributorID, req, actorID)
	return args.Error(0)
}
func (m *MockLedgerService) RegisterPurchaseOrder(ctx context.Context, req dto.RegisterPurchaseOrderRequest, actorID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}
func (m *MockLedgerService) ReverseMovement(ctx context.Context, movementID string, reason string, actorID string) (string, error) {
	args := m.Called(ctx, movementID, reason, actorID)
	return args.String(0), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock MovementService ---
type MockMovementService struct {
	mock.Mock
}

func (m *MockMovementService) GetMovement(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}
func (m *MockMovementService) ListMovementsByAccount(ctx context.Context, accountID string, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListMovementsResponse), args.Error(1)
}
func (m *MockMovementService) ListMovementsBySale(ctx context.Context, saleID string) ([]domain.Movement, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}
func (m *MockMovementService) ListMovements(ctx context.Context, filter portsrepo.MovementFilter) ([]domain.Movement, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}
func (m *MockMovementService) SummarizeMovements(ctx context.Context, req dto.SummaryRequest) (*portsrepo.MovementSummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.MovementSummary), args.Error(1)
}

var _ portssvc.MovementSvcFacade = (*MockMovementService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) GetSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSalesResponse), args.Error(1)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, actorID string) (*domain.Client, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, actorID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) DeactivateClient(ctx context.Context, clientID string, actorID string) error {
	args := m.Called(ctx, clientID, actorID)
	return args.Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock DistributorService ---
type MockDistributorService struct {
	mock.Mock
}

func (m *MockDistributorService) CreateDistributor(ctx context.Context, req dto.CreateDistributorRequest, actorID string) (*domain.Distributor, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distributor), args.Error(1)
}
func (m *MockDistributorService) GetDistributor(ctx context.Context, distributorID string) (*domain.Distributor, error) {
	args := m.Called(ctx, distributorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distributor), args.Error(1)
}
func (m *MockDistributorService) ListDistributors(ctx context.Context, limit, offset int) ([]domain.Distributor, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Distributor), args.Error(1)
}
func (m *MockDistributorService) UpdateDistributor(ctx context.Context, distributorID string, req dto.UpdateDistributorRequest, actorID string) (*domain.Distributor, error) {
	args := m.Called(ctx, distributorID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distributor), args.Error(1)
}
func (m *MockDistributorService) DeactivateDistributor(ctx context.Context, distributorID string, actorID string) error {
	args := m.Called(ctx, distributorID, actorID)
	return args.Error(0)
}
func (m *MockDistributorService) GetPurchaseOrder(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, purchaseOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}
func (m *MockDistributorService) ListPurchaseOrders(ctx context.Context, distributorID string, limit, offset int) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, distributorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

var _ portssvc.DistributorSvcFacade = (*MockDistributorService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) FinancialOverview(ctx context.Context) (*dto.FinancialOverviewResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FinancialOverviewResponse), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockLedgerSvc       *MockLedgerService
	mockAccountSvc      *MockAccountService
	mockMovementSvc     *MockMovementService
	mockSaleSvc         *MockSaleService
	mockClientSvc       *MockClientService
	mockDistributorSvc  *MockDistributorService
	mockReportingSvc    *MockReportingService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.ActorMiddleware())

	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockMovementSvc = new(MockMovementService)
	suite.mockSaleSvc = new(MockSaleService)
	suite.mockClientSvc = new(MockClientService)
	suite.mockDistributorSvc = new(MockDistributorService)
	suite.mockReportingSvc = new(MockReportingService)

	container := &portssvc.ServiceContainer{
		Ledger:      suite.mockLedgerSvc,
		Account:     suite.mockAccountSvc,
		Movement:    suite.mockMovementSvc,
		Sale:        suite.mockSaleSvc,
		Client:      suite.mockClientSvc,
		Distributor: suite.mockDistributorSvc,
		Reporting:   suite.mockReportingSvc,
	}
	handlers.RegisterRoutes(suite.router, &config.Config{}, container)
}

func (suite *HandlerTestSuite) performJSON(method, url string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}

	req, err := http.NewRequest(method, url, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealthCheck() {
	w := suite.performJSON(http.MethodGet, "/health", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestListAccounts_Success() {
	accounts := []domain.Account{
		{AccountID: "vault_main", Name: "Main Vault", Kind: domain.Operating, Balance: decimal.NewFromInt(1500), DisplayOrder: 1},
		{AccountID: "profit_fund", Name: "Profit Fund", Kind: domain.Savings, Balance: decimal.NewFromInt(300), DisplayOrder: 4},
	}
	suite.mockAccountSvc.On("ListAccounts", mock.Anything).Return(accounts, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/accounts", nil, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Accounts []dto.AccountResponse `json:"accounts"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Accounts, 2)
	suite.Equal("vault_main", body.Accounts[0].AccountID)
	suite.Equal(domain.Operating, body.Accounts[0].Kind)

	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountSvc.On("GetAccount", mock.Anything, "no_such_vault").
		Return(nil, fmt.Errorf("account no_such_vault: %w", apperrors.ErrNotFound)).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/accounts/no_such_vault", nil, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRegisterSale_Success() {
	clientID := uuid.NewString()
	actorID := uuid.NewString()
	req := dto.RegisterSaleRequest{
		ClientID:      clientID,
		Quantity:      10,
		UnitSalePrice: decimal.RequireFromString("100"),
		UnitCostPrice: decimal.RequireFromString("60"),
		UnitFreight:   decimal.RequireFromString("5"),
		Concept:       "April restock",
	}
	sale := &domain.Sale{
		SaleID:          uuid.NewString(),
		ClientID:        clientID,
		Quantity:        10,
		TotalAmount:     decimal.RequireFromString("1000"),
		AmountPaid:      decimal.Zero,
		AmountRemaining: decimal.RequireFromString("1000"),
		SplitCost:       decimal.RequireFromString("600"),
		SplitFreight:    decimal.RequireFromString("50"),
		SplitProfit:     decimal.RequireFromString("350"),
		Status:          domain.PaymentPending,
		Concept:         "April restock",
		OccurredAt:      time.Now(),
		AuditFields:     domain.AuditFields{CreatedAt: time.Now()},
	}

	suite.mockLedgerSvc.On("RegisterSale", mock.Anything, mock.MatchedBy(func(r dto.RegisterSaleRequest) bool {
		return r.ClientID == clientID && r.Quantity == 10
	}), actorID).Return(sale, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/sales", req, map[string]string{"X-Actor-ID": actorID})

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.SaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(sale.SaleID, body.SaleID)
	suite.True(body.TotalAmount.Equal(decimal.RequireFromString("1000")))
	suite.Equal(domain.PaymentPending, body.Status)

	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRegisterSale_MissingClientID() {
	req := dto.RegisterSaleRequest{
		Quantity:      10,
		UnitSalePrice: decimal.RequireFromString("100"),
		UnitCostPrice: decimal.RequireFromString("60"),
		UnitFreight:   decimal.RequireFromString("5"),
		Concept:       "April restock",
	}

	w := suite.performJSON(http.MethodPost, "/api/v1/sales", req, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "RegisterSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRecordPayment_Success() {
	saleID := uuid.NewString()
	resp := &dto.PaymentResponse{
		SaleID:       saleID,
		AmountPaid:   decimal.RequireFromString("500"),
		NewRemaining: decimal.RequireFromString("500"),
		NewStatus:    domain.PaymentPartial,
		Shares: dto.PaymentSharesResponse{
			Cost:    decimal.RequireFromString("300"),
			Freight: decimal.RequireFromString("50"),
			Profit:  decimal.RequireFromString("150"),
		},
	}

	suite.mockLedgerSvc.On("RecordPayment", mock.Anything, saleID, mock.MatchedBy(func(r dto.RecordPaymentRequest) bool {
		return r.Amount.Equal(decimal.RequireFromString("500"))
	}), middleware.DefaultActorID).Return(resp, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/sales/"+saleID+"/payments",
		dto.RecordPaymentRequest{Amount: decimal.RequireFromString("500")}, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.PaymentPartial, body.NewStatus)
	suite.True(body.Shares.Cost.Equal(decimal.RequireFromString("300")))

	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRecordPayment_ExceedsRemaining() {
	saleID := uuid.NewString()

	suite.mockLedgerSvc.On("RecordPayment", mock.Anything, saleID, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("payment of 900 exceeds remaining 100: %w", apperrors.ErrExceedsRemaining)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/sales/"+saleID+"/payments",
		dto.RecordPaymentRequest{Amount: decimal.RequireFromString("900")}, nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestTransfer_Success() {
	resp := &dto.TransferResponse{
		ReferenceID:   uuid.NewString(),
		OutMovementID: uuid.NewString(),
		InMovementID:  uuid.NewString(),
	}
	req := dto.TransferRequest{
		OriginAccountID:      "vault_main",
		DestinationAccountID: "investment_a",
		Amount:               decimal.RequireFromString("250"),
		Concept:              "Capital allocation",
	}

	suite.mockLedgerSvc.On("Transfer", mock.Anything, mock.MatchedBy(func(r dto.TransferRequest) bool {
		return r.OriginAccountID == "vault_main" && r.DestinationAccountID == "investment_a"
	}), middleware.DefaultActorID).Return(resp, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/transfers", req, nil)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(resp.ReferenceID, body.ReferenceID)

	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestTransfer_InsufficientFunds() {
	req := dto.TransferRequest{
		OriginAccountID:      "vault_main",
		DestinationAccountID: "investment_a",
		Amount:               decimal.RequireFromString("999999"),
		Concept:              "Over-allocation",
	}

	suite.mockLedgerSvc.On("Transfer", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("balance 1500 below requested 999999: %w", apperrors.ErrInsufficientFunds)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/transfers", req, nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeactivateClient_NoContent() {
	clientID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockClientSvc.On("DeactivateClient", mock.Anything, clientID, actorID).Return(nil).Once()

	w := suite.performJSON(http.MethodDelete, "/api/v1/clients/"+clientID, nil, map[string]string{"X-Actor-ID": actorID})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockClientSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestFinancialOverview_Success() {
	overview := &dto.FinancialOverviewResponse{
		TotalCapital:        decimal.RequireFromString("2500"),
		ClientReceivables:   decimal.RequireFromString("3200"),
		DistributorPayables: decimal.RequireFromString("900"),
	}
	suite.mockReportingSvc.On("FinancialOverview", mock.Anything).Return(overview, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/reports/overview", nil, nil)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.FinancialOverviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.TotalCapital.Equal(decimal.RequireFromString("2500")))

	suite.mockReportingSvc.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
