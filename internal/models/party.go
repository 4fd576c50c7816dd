package models

import (
	"github.com/shopspring/decimal"
)

// PartyStatus mirrors domain.PartyStatus at the persistence boundary.
type PartyStatus string

// Client is the database representation of a client.
type Client struct {
	ClientID           string          `db:"client_id"`
	Name               string          `db:"name"`
	Email              *string         `db:"email"`
	Phone              *string         `db:"phone"`
	Address            *string         `db:"address"`
	CreditLimit        decimal.Decimal `db:"credit_limit"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance"`
	Status             PartyStatus     `db:"status"`
	AuditFields
}

// Distributor is the database representation of a distributor.
type Distributor struct {
	DistributorID      string          `db:"distributor_id"`
	Name               string          `db:"name"`
	Company            *string         `db:"company"`
	Email              *string         `db:"email"`
	Phone              *string         `db:"phone"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance"`
	Status             PartyStatus     `db:"status"`
	AuditFields
}
