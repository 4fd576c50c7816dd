package domain

import (
	"github.com/shopspring/decimal"
)

// PartyStatus is a soft-delete flag: parties with financial history are never
// physically removed.
type PartyStatus string

const (
	PartyActive    PartyStatus = "ACTIVE"
	PartyInactive  PartyStatus = "INACTIVE"
	PartySuspended PartyStatus = "SUSPENDED"
)

// Client is a buyer whose outstanding balance equals the sum of AmountRemaining
// across all their sales.
type Client struct {
	ClientID           string          `json:"clientID"`
	Name               string          `json:"name"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	Address            string          `json:"address,omitempty"`
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	Status             PartyStatus     `json:"status"`
	AuditFields
}

// Distributor is a supplier the business owes money to; its outstanding
// balance equals the sum of unpaid purchase-order amounts.
type Distributor struct {
	DistributorID      string          `json:"distributorID"`
	Name               string          `json:"name"`
	Company            string          `json:"company,omitempty"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	Status             PartyStatus     `json:"status"`
	AuditFields
}
