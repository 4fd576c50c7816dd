// Package accounting holds the pure money calculations of the ledger: the
// three-way revenue split of a sale (cost / freight / profit) and the
// proportional share of that split a partial payment distributes.
//
// Everything here is side-effect free and operates on fixed-point decimals
// with two fractional digits. Rounding is banker's rounding throughout, and
// the profit portion is always the balancing term, so the parts sum exactly
// to the whole regardless of rounding.
package accounting

import (
	"fmt"

	"github.com/gyaops/ledger-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits for monetary values.
const MoneyScale = 2

// RoundMoney normalizes a monetary value to MoneyScale digits using banker's
// rounding (round-half-even).
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.RoundBank(MoneyScale)
}

// SaleSplit is the three-way division of a sale's revenue.
type SaleSplit struct {
	TotalAmount decimal.Decimal
	Cost        decimal.Decimal
	Freight     decimal.Decimal
	Profit      decimal.Decimal
}

// PaymentShares is the portion of each split allocated by one payment.
type PaymentShares struct {
	Cost    decimal.Decimal
	Freight decimal.Decimal
	Profit  decimal.Decimal
}

// Total returns the sum of the three shares, which by construction equals the
// payment amount they were derived from.
func (p PaymentShares) Total() decimal.Decimal {
	return p.Cost.Add(p.Freight).Add(p.Profit)
}

// ComputeSaleSplit calculates the revenue distribution for a sale:
//
//	total   = quantity × unitSalePrice
//	cost    = quantity × unitCostPrice
//	freight = quantity × unitFreight
//	profit  = total − cost − freight
//
// Profit may be negative when the sale is priced below cost; that is a real
// business outcome and is returned, not rejected. Callers surface it as a
// warning.
func ComputeSaleSplit(quantity int64, unitSalePrice, unitCostPrice, unitFreight decimal.Decimal) (SaleSplit, error) {
	if quantity <= 0 {
		return SaleSplit{}, fmt.Errorf("%w: quantity must be positive, got %d", apperrors.ErrValidation, quantity)
	}
	if unitSalePrice.IsNegative() || unitCostPrice.IsNegative() || unitFreight.IsNegative() {
		return SaleSplit{}, fmt.Errorf("%w: unit prices must not be negative", apperrors.ErrValidation)
	}

	qty := decimal.NewFromInt(quantity)
	total := RoundMoney(unitSalePrice.Mul(qty))
	cost := RoundMoney(unitCostPrice.Mul(qty))
	freight := RoundMoney(unitFreight.Mul(qty))
	// Balancing term: never computed independently, so cost+freight+profit
	// always reconciles with total.
	profit := total.Sub(cost).Sub(freight)

	return SaleSplit{
		TotalAmount: total,
		Cost:        cost,
		Freight:     freight,
		Profit:      profit,
	}, nil
}

// ProportionalShares computes the fraction of each split allocated by a
// payment of the given amount on top of what was already paid:
// share = split × (payment / total).
//
// Each rounded share is derived as the difference of cumulative allocations
// (split × paidAfter/total minus split × paidBefore/total), so the shares of
// successive payments telescope: their running sum never exceeds the original
// split and lands on it exactly when the sale is fully paid. The profit share
// absorbs the per-payment rounding remainder, which keeps the three shares
// summing exactly to the payment amount.
func (s SaleSplit) ProportionalShares(paymentAmount, amountPaidBefore decimal.Decimal) (PaymentShares, error) {
	if s.TotalAmount.IsZero() {
		return PaymentShares{}, fmt.Errorf("%w: sale total amount is zero", apperrors.ErrValidation)
	}
	if !paymentAmount.IsPositive() {
		return PaymentShares{}, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, paymentAmount)
	}
	if amountPaidBefore.IsNegative() {
		return PaymentShares{}, fmt.Errorf("%w: amount already paid must not be negative", apperrors.ErrValidation)
	}
	paidAfter := amountPaidBefore.Add(paymentAmount)
	if paidAfter.GreaterThan(s.TotalAmount) {
		return PaymentShares{}, fmt.Errorf("%w: payment %s exceeds remaining %s", apperrors.ErrExceedsRemaining, paymentAmount, s.TotalAmount.Sub(amountPaidBefore))
	}

	costShare := s.cumulative(s.Cost, paidAfter).Sub(s.cumulative(s.Cost, amountPaidBefore))
	freightShare := s.cumulative(s.Freight, paidAfter).Sub(s.cumulative(s.Freight, amountPaidBefore))
	profitShare := paymentAmount.Sub(costShare).Sub(freightShare)

	return PaymentShares{
		Cost:    costShare,
		Freight: freightShare,
		Profit:  profitShare,
	}, nil
}

// cumulative is the rounded portion of a split covered once paid has been
// collected in total.
func (s SaleSplit) cumulative(split, paid decimal.Decimal) decimal.Decimal {
	return RoundMoney(split.Mul(paid).Div(s.TotalAmount))
}

// MarginPercent returns the profit margin of the split as a percentage of
// revenue, rounded to MoneyScale digits. Zero-total splits yield zero.
func (s SaleSplit) MarginPercent() decimal.Decimal {
	if s.TotalAmount.IsZero() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	return RoundMoney(s.Profit.Mul(hundred).Div(s.TotalAmount))
}
