package repositories

// RepositoryProvider bundles every repository implementation the service
// layer needs, so wiring happens in one place.
type RepositoryProvider struct {
	AccountRepo       AccountRepositoryFacade
	MovementRepo      MovementRepositoryFacade
	SaleRepo          SaleRepositoryFacade
	ClientRepo        ClientRepository
	DistributorRepo   DistributorRepository
	PurchaseOrderRepo PurchaseOrderRepository
	LedgerRepo        LedgerRepository
	ReportingRepo     ReportingRepository
}
