package journal

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// convertTx is a HKD/USD conversion: 100 USD bought for 780 HKD at 7.80,
// against a prior-period reference rate set per test.
func convertTx() Transaction {
	return Transaction{
		Index:        3,
		Value:        M(780, "HKD"),
		Quantity:     Q(100),
		QuantityUnit: "USD",
		Price:        M(7.8, "HKD/USD"),
	}
}

func referenceRates(rate float64) *Rates {
	rates := NewRates()
	rates.Set("HKD", "USD", decimal.NewFromFloat(rate))
	return rates
}

func TestCurrencyTranslationGainInPresentationCurrency(t *testing.T) {
	// rate moved 7.75 -> 7.80: gain of 0.05 x 100 = 5 HKD.
	row, err := CurrencyTranslation(convertTx(), referenceRates(7.75), "HKD")
	if err != nil {
		t.Fatalf("CurrencyTranslation() error = %v", err)
	}

	wantDebit(t, row, 0, "SFP_A_CCE_HKD", "780.00")
	wantCredit(t, row, 0, "SFP_A_CCE_USD", "100.00")
	wantCredit(t, row, 1, "SCI_XRPLFXC_HKD", "5.00")
}

func TestCurrencyTranslationGainInBaseCurrency(t *testing.T) {
	// Recorded in base terms: 5 / 7.75 = 0.65 after rounding.
	row, err := CurrencyTranslation(convertTx(), referenceRates(7.75), "USD")
	if err != nil {
		t.Fatalf("CurrencyTranslation() error = %v", err)
	}
	wantCredit(t, row, 1, "SCI_XRPLFXC_USD", "0.65")
}

func TestCurrencyTranslationGainInThirdCurrency(t *testing.T) {
	// Neither side is the presentation currency: re-convert the
	// quote-currency figure through the (presentation, quote) rate.
	rates := referenceRates(7.75)
	rates.Set("EUR", "HKD", decimal.NewFromFloat(0.12))

	row, err := CurrencyTranslation(convertTx(), rates, "EUR")
	if err != nil {
		t.Fatalf("CurrencyTranslation() error = %v", err)
	}
	wantCredit(t, row, 1, "SCI_XRPLFXC_EUR", "0.60")
}

func TestCurrencyTranslationLoss(t *testing.T) {
	// rate moved 7.85 -> 7.80: loss of 5 HKD, posted on the debit side.
	row, err := CurrencyTranslation(convertTx(), referenceRates(7.85), "HKD")
	if err != nil {
		t.Fatalf("CurrencyTranslation() error = %v", err)
	}

	wantDebit(t, row, 1, "SCI_XRPLFXC_HKD", "5.00")
	if _, ok := row.Credit(1); ok {
		t.Error("loss row should carry no slot 1 credit")
	}
}

func TestCurrencyTranslationEqualRates(t *testing.T) {
	row, err := CurrencyTranslation(convertTx(), referenceRates(7.8), "HKD")
	if err != nil {
		t.Fatalf("CurrencyTranslation() error = %v", err)
	}

	wantDebit(t, row, 0, "SFP_A_CCE_HKD", "780.00")
	wantCredit(t, row, 0, "SFP_A_CCE_USD", "100.00")
	wantNoLeg(t, row, 1)
}

func TestCurrencyTranslationMissingReferenceRate(t *testing.T) {
	if _, err := CurrencyTranslation(convertTx(), NewRates(), "HKD"); !errors.Is(err, ErrMissingReference) {
		t.Errorf("CurrencyTranslation() error = %v, want ErrMissingReference", err)
	}
}

func TestCurrencyTranslationMissingConversionRate(t *testing.T) {
	// The presentation-currency conversion rate is required too.
	if _, err := CurrencyTranslation(convertTx(), referenceRates(7.75), "EUR"); !errors.Is(err, ErrMissingReference) {
		t.Errorf("CurrencyTranslation() error = %v, want ErrMissingReference", err)
	}
}

func TestCurrencyTranslationZeroReferenceRate(t *testing.T) {
	if _, err := CurrencyTranslation(convertTx(), referenceRates(0), "HKD"); !errors.Is(err, ErrMissingReference) {
		t.Errorf("CurrencyTranslation() error = %v, want ErrMissingReference", err)
	}
}
