package dto

import (
	"time"

	"github.com/gyaops/ledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest registers a new client.
type CreateClientRequest struct {
	Name        string           `json:"name" binding:"required,max=255"`
	Phone       string           `json:"phone,omitempty" binding:"max=32"`
	Email       string           `json:"email,omitempty" binding:"omitempty,email"`
	Address     string           `json:"address,omitempty" binding:"max=500"`
	CreditLimit *decimal.Decimal `json:"creditLimit,omitempty"`
}

// UpdateClientRequest patches client contact details. Nil fields are left
// unchanged.
type UpdateClientRequest struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,max=255"`
	Phone       *string          `json:"phone,omitempty" binding:"omitempty,max=32"`
	Email       *string          `json:"email,omitempty" binding:"omitempty,email"`
	Address     *string          `json:"address,omitempty" binding:"omitempty,max=500"`
	CreditLimit *decimal.Decimal `json:"creditLimit,omitempty"`
}

// ClientResponse is the API projection of a client.
type ClientResponse struct {
	ClientID           string             `json:"clientId"`
	Name               string             `json:"name"`
	Phone              string             `json:"phone,omitempty"`
	Email              string             `json:"email,omitempty"`
	Address            string             `json:"address,omitempty"`
	CreditLimit        decimal.Decimal    `json:"creditLimit"`
	OutstandingBalance decimal.Decimal    `json:"outstandingBalance"`
	Status             domain.PartyStatus `json:"status"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// CreateDistributorRequest registers a new distributor.
type CreateDistributorRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Company string `json:"company,omitempty" binding:"max=255"`
	Phone   string `json:"phone,omitempty" binding:"max=32"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
}

// UpdateDistributorRequest patches distributor contact details.
type UpdateDistributorRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Company *string `json:"company,omitempty" binding:"omitempty,max=255"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,max=32"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
}

// DistributorResponse is the API projection of a distributor.
type DistributorResponse struct {
	DistributorID      string             `json:"distributorId"`
	Name               string             `json:"name"`
	Company            string             `json:"company,omitempty"`
	Phone              string             `json:"phone,omitempty"`
	Email              string             `json:"email,omitempty"`
	OutstandingBalance decimal.Decimal    `json:"outstandingBalance"`
	Status             domain.PartyStatus `json:"status"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// ToClientResponse maps a domain client to its API projection.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:           c.ClientID,
		Name:               c.Name,
		Phone:              c.Phone,
		Email:              c.Email,
		Address:            c.Address,
		CreditLimit:        c.CreditLimit,
		OutstandingBalance: c.OutstandingBalance,
		Status:             c.Status,
		CreatedAt:          c.CreatedAt,
	}
}

// ToDistributorResponse maps a domain distributor to its API projection.
func ToDistributorResponse(d *domain.Distributor) DistributorResponse {
	return DistributorResponse{
		DistributorID:      d.DistributorID,
		Name:               d.Name,
		Company:            d.Company,
		Phone:              d.Phone,
		Email:              d.Email,
		OutstandingBalance: d.OutstandingBalance,
		Status:             d.Status,
		CreatedAt:          d.CreatedAt,
	}
}
