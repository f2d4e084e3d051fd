package journal

import "fmt"

// EquityOpen posts the purchase that opens (or adds to) an equity position:
// debit the book-value asset account, credit the purchase clearing account,
// both for the full transaction value. No prior state is required.
func EquityOpen(tx Transaction) Row {
	currency := tx.Value.Currency()
	row := NewRow(tx.Index)
	row.setDebit(0, BasisValue(Equity, currency, tx.Security), tx.Value)
	row.setCredit(0, PurchasePaid(currency, tx.Security), tx.Value)
	return row
}

// EquityClose posts the sale that closes (all or part of) an equity position
// against the prior-period snapshot:
//
//   - slot 0 reverses the pro-rata share of the cumulative unrealized
//     fair-value adjustment, sides chosen by the sign of the carried balance;
//   - slot 1 debits the sale clearing account for the transaction value and
//     credits the book-value account for quantity times average book price;
//   - slot 2 carries the realized gain (credit) or loss (debit), omitted on
//     a break-even close.
func EquityClose(tx Transaction, snap PositionSnapshot) (Row, error) {
	return closePosition(tx, snap, Equity)
}

// closePosition is the shared close structure behind the equity close and the
// option closes that follow the same pattern.
func closePosition(tx Transaction, snap PositionSnapshot, class AssetClass) (Row, error) {
	if snap.UnitsHeld.IsZero() {
		return Row{}, fmt.Errorf("close of %s against an empty position: %w", tx.Security, ErrZeroUnits)
	}

	row := NewRow(tx.Index)
	currency := tx.Value.Currency()

	if err := unrealizedClosure(row, 0, tx, snap, class, proRata); err != nil {
		return Row{}, err
	}

	cost := snap.AvgBookPrice.Mul(tx.Quantity)
	row.setDebit(1, SaleProceeds(currency, tx.Security), tx.Value)
	row.setCredit(1, BasisValue(class, currency, tx.Security), cost)

	delta := tx.Value.Sub(cost)
	switch classify(delta) {
	case Gain:
		row.setCredit(2, RealizedGainLoss(currency), delta)
	case Loss:
		row.setDebit(2, RealizedGainLoss(currency), delta.Abs())
	}
	return row, nil
}

// closureShare selects how much of the carried adjustment a closure reverses.
type closureShare int

const (
	proRata     closureShare = iota // closed quantity over units held
	fullBalance                     // the entire outstanding balance
)

// unrealizedClosure posts the reversal of the cumulative unrealized
// fair-value adjustment into the given slot. A carried gain (debit balance)
// is closed by debiting the OCI reclass account and crediting the adjustment
// account; a carried loss closes with the sides swapped. Values are posted as
// magnitudes. Nothing is posted when the carried balance is flat.
func unrealizedClosure(row Row, slot int, tx Transaction, snap PositionSnapshot, class AssetClass, share closureShare) error {
	state := classify(snap.CumulativeUGL)
	if state == Flat {
		return nil
	}

	amount := snap.CumulativeUGL.Abs()
	if share == proRata {
		if snap.UnitsHeld.IsZero() {
			return fmt.Errorf("pro-rata closure of %s: %w", tx.Security, ErrZeroUnits)
		}
		amount = amount.Mul(tx.Quantity.Div(snap.UnitsHeld))
	}

	currency := tx.Value.Currency()
	reclass := UnrealizedReclass(currency, tx.Security)
	adjustment := CumulativeAdjustment(class, currency, tx.Security)
	if state == Gain {
		row.setDebit(slot, reclass, amount)
		row.setCredit(slot, adjustment, amount)
	} else {
		row.setDebit(slot, adjustment, amount)
		row.setCredit(slot, reclass, amount)
	}
	return nil
}
