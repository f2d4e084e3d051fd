package journal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PositionSnapshot is the carried-forward state of one position at the end of
// the prior period, scoped per security code and currency. It is produced by
// the period-end investment schedule and consumed, read-only, by the close
// operation for that security in the following period.
type PositionSnapshot struct {
	// AvgBookPrice is the average book price for one unit of the economic
	// exposure. For options this is the price of one contract, fee
	// inclusive, not the quoted per-share premium.
	AvgBookPrice Money

	// UnitsHeld is the number of units on the books at period end.
	UnitsHeld Quantity

	// CumulativeUGL is the cumulative unrealized fair-value adjustment.
	// Positive means a debit (asset-side) balance, negative a credit
	// balance.
	CumulativeUGL Money
}

// InvestmentSchedule supplies prior-period position snapshots.
type InvestmentSchedule interface {
	Snapshot(security, currency string) (PositionSnapshot, error)
}

// Schedule is a map-backed InvestmentSchedule.
type Schedule struct {
	snapshots map[string]PositionSnapshot
}

func NewSchedule() *Schedule {
	return &Schedule{snapshots: make(map[string]PositionSnapshot)}
}

func (s *Schedule) Set(security, currency string, snap PositionSnapshot) {
	s.snapshots[security+"/"+currency] = snap
}

func (s *Schedule) Snapshot(security, currency string) (PositionSnapshot, error) {
	snap, ok := s.snapshots[security+"/"+currency]
	if !ok {
		return PositionSnapshot{}, fmt.Errorf("no position snapshot for %s in %s: %w", security, currency, ErrMissingReference)
	}
	return snap, nil
}

// RateTable supplies prior-period reference exchange rates, keyed by
// (quote currency, base currency).
type RateTable interface {
	Rate(quote, base string) (decimal.Decimal, error)
}

// Rates is a map-backed RateTable.
type Rates struct {
	rates map[string]decimal.Decimal
}

func NewRates() *Rates {
	return &Rates{rates: make(map[string]decimal.Decimal)}
}

func (r *Rates) Set(quote, base string, rate decimal.Decimal) {
	r.rates[quote+"/"+base] = rate
}

func (r *Rates) Rate(quote, base string) (decimal.Decimal, error) {
	rate, ok := r.rates[quote+"/"+base]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("no reference rate for %s/%s: %w", quote, base, ErrMissingReference)
	}
	return rate, nil
}
