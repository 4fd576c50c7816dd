package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
)

// MockLedgerRepository is a mock type for the LedgerRepository interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) RegisterSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockLedgerRepository) ApplyPayment(ctx context.Context, params portsrepo.ApplyPaymentParams) (*portsrepo.PaymentResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.PaymentResult), args.Error(1)
}

func (m *MockLedgerRepository) Transfer(ctx context.Context, params portsrepo.TransferParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockLedgerRepository) RecordOutflow(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockLedgerRepository) RecordInflow(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockLedgerRepository) PayDistributor(ctx context.Context, params portsrepo.PayDistributorParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockLedgerRepository) RegisterPurchaseOrder(ctx context.Context, params portsrepo.RegisterPurchaseOrderParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

// MockClientRepository is a mock type for the ClientRepository interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeactivateClient(ctx context.Context, clientID string, userID string, now time.Time) error {
	args := m.Called(ctx, clientID, userID, now)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByIDForUpdate(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, tx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) AdjustClientBalanceInTx(ctx context.Context, tx pgx.Tx, clientID string, delta decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, clientID, delta, userID, now)
	return args.Error(0)
}

// MockDistributorRepository is a mock type for the DistributorRepository interface
type MockDistributorRepository struct {
	mock.Mock
}

func (m *MockDistributorRepository) SaveDistributor(ctx context.Context, distributor domain.Distributor) error {
	args := m.Called(ctx, distributor)
	return args.Error(0)
}

func (m *MockDistributorRepository) FindDistributorByID(ctx context.Context, distributorID string) (*domain.Distributor, error) {
	args := m.Called(ctx, distributorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distributor), args.Error(1)
}

func (m *MockDistributorRepository) ListDistributors(ctx context.Context, limit, offset int) ([]domain.Distributor, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Distributor), args.Error(1)
}

func (m *MockDistributorRepository) UpdateDistributor(ctx context.Context, distributor domain.Distributor) error {
	args := m.Called(ctx, distributor)
	return args.Error(0)
}

func (m *MockDistributorRepository) DeactivateDistributor(ctx context.Context, distributorID string, userID string, now time.Time) error {
	args := m.Called(ctx, distributorID, userID, now)
	return args.Error(0)
}

func (m *MockDistributorRepository) FindDistributorByIDForUpdate(ctx context.Context, tx pgx.Tx, distributorID string) (*domain.Distributor, error) {
	args := m.Called(ctx, tx, distributorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distributor), args.Error(1)
}

func (m *MockDistributorRepository) AdjustDistributorBalanceInTx(ctx context.Context, tx pgx.Tx, distributorID string, delta decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, distributorID, delta, userID, now)
	return args.Error(0)
}

// MockSaleRepository is a mock type for the SaleReader interface
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, clientID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, clientID, limit, nextToken)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return sales, token, args.Error(2)
}

// MockMovementRepository is a mock type for the MovementReader interface
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovementsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var movements []domain.Movement
	if args.Get(0) != nil {
		movements = args.Get(0).([]domain.Movement)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return movements, token, args.Error(2)
}

func (m *MockMovementRepository) ListMovementsBySale(ctx context.Context, saleID string) ([]domain.Movement, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, filter portsrepo.MovementFilter) ([]domain.Movement, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) SummarizeMovements(ctx context.Context, from, to time.Time) (*portsrepo.MovementSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.MovementSummary), args.Error(1)
}

// MockPurchaseOrderRepository is a mock type for the PurchaseOrderRepository interface
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, purchaseOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, distributorID string, limit, offset int) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, distributorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) InsertPurchaseOrderInTx(ctx context.Context, tx pgx.Tx, po domain.PurchaseOrder) error {
	args := m.Called(ctx, tx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) FindOpenPurchaseOrdersForUpdate(ctx context.Context, tx pgx.Tx, distributorID string) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, tx, distributorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) UpdatePurchaseOrderPaymentInTx(ctx context.Context, tx pgx.Tx, purchaseOrderID string, amountPaid, amountRemaining decimal.Decimal, status domain.PaymentStatus, userID string, now time.Time) error {
	args := m.Called(ctx, tx, purchaseOrderID, amountPaid, amountRemaining, status, userID, now)
	return args.Error(0)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes []portsrepo.BalanceChange, userID string, now time.Time) error {
	args := m.Called(ctx, tx, changes, userID, now)
	return args.Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) FetchOverviewTotals(ctx context.Context) (*portsrepo.OverviewTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.OverviewTotals), args.Error(1)
}
