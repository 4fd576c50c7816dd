package services

import (
	"context"
	"fmt"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	portsrepo "github.com/gyaops/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/gyaops/ledger-backend/internal/core/ports/services"
	"github.com/gyaops/ledger-backend/internal/dto"
)

// saleService provides read access to sale records. Sales are created and
// settled exclusively through the ledger service.
type saleService struct {
	saleRepo portsrepo.SaleReader
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleReader) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) GetSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	sales, nextToken, err := s.saleRepo.ListSales(ctx, params.ClientID, limit, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	resp := &dto.ListSalesResponse{Sales: make([]dto.SaleResponse, 0, len(sales))}
	for i := range sales {
		resp.Sales = append(resp.Sales, dto.ToSaleResponse(&sales[i]))
	}
	if nextToken != nil {
		resp.NextToken = *nextToken
	}
	return resp, nil
}
