package services

// ServiceContainer holds all the services and manages their dependencies
type ServiceContainer struct {
	Ledger      LedgerSvcFacade
	Account     AccountSvcFacade
	Movement    MovementSvcFacade
	Sale        SaleSvcFacade
	Client      ClientSvcFacade
	Distributor DistributorSvcFacade
	Reporting   ReportingSvcFacade
}
