package journal

import "fmt"

// CurrencyTranslation posts a cross-currency transfer whose embedded exchange
// rate differs from the prior-period reference rate. The transaction carries
// the quote-currency amount in Value, the base-currency amount in Quantity,
// the base currency code in QuantityUnit, and the rate in Price.
//
// The gain or loss is (rate - reference) x base amount in quote-currency
// terms, divided by the reference rate for base-currency terms; the recorded
// figure is the one stated in the presentation currency, re-converted through
// the (presentation, quote) reference rate when neither side is the
// presentation currency. Equal rates produce a two-leg clearing row with no
// translation leg.
func CurrencyTranslation(tx Transaction, rates RateTable, presentationCurrency string) (Row, error) {
	quoteCurrency := tx.Value.Currency()
	baseCurrency := tx.QuantityUnit
	baseValue := tx.Quantity.Value(baseCurrency)

	reference, err := rates.Rate(quoteCurrency, baseCurrency)
	if err != nil {
		return Row{}, fmt.Errorf("currency translation at index %d: %w", tx.Index, err)
	}
	if reference.IsZero() {
		return Row{}, fmt.Errorf("zero reference rate for %s/%s: %w", quoteCurrency, baseCurrency, ErrMissingReference)
	}

	row := NewRow(tx.Index)
	row.setDebit(0, CashClearing(quoteCurrency), tx.Value)
	row.setCredit(0, CashClearing(baseCurrency), baseValue)

	diff := tx.Price.value.Sub(reference)
	if diff.IsZero() {
		return row, nil
	}

	inQuote := diff.Mul(tx.Quantity.value) // gain or loss stated in the quote currency
	var recorded Money
	switch presentationCurrency {
	case quoteCurrency:
		recorded = M(inQuote, presentationCurrency)
	case baseCurrency:
		recorded = M(inQuote.Div(reference), presentationCurrency)
	default:
		conversion, err := rates.Rate(presentationCurrency, quoteCurrency)
		if err != nil {
			return Row{}, fmt.Errorf("currency translation at index %d: %w", tx.Index, err)
		}
		recorded = M(inQuote.Mul(conversion), presentationCurrency)
	}

	account := TranslationGainLoss(presentationCurrency)
	if diff.IsPositive() {
		row.setCredit(1, account, recorded)
	} else {
		row.setDebit(1, account, recorded.Abs())
	}
	return row, nil
}
