package services

import (
	"context"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/gyaops/ledger-backend/internal/dto"
)

// SaleSvcFacade exposes read access to sale records.
type SaleSvcFacade interface {
	// GetSale retrieves a sale by ID.
	GetSale(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales returns a cursor-paginated page of sales, newest first,
	// optionally filtered by client.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)
}
