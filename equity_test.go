package journal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEquityOpen(t *testing.T) {
	tx := Transaction{Index: 0, Value: M(1500, "USD"), Quantity: Q(10), Security: "AAPL"}
	row := EquityOpen(tx)

	wantDebit(t, row, 0, "SFP_A_FA_E_USD_BV_AAPL", "1500.00")
	wantCredit(t, row, 0, "SCF_OA_PPI_USD_AAPL", "1500.00")
	if !row.Balanced() {
		t.Error("open row should balance")
	}
}

func TestEquityCloseRealizedGain(t *testing.T) {
	// Sell 100 shares for 1000 against an average book price of 8:
	// cost 800, realized gain 200.
	tx := Transaction{Index: 4, Value: M(1000, "USD"), Quantity: Q(100), Security: "AAPL"}
	snap := PositionSnapshot{
		AvgBookPrice:  M(8, "USD"),
		UnitsHeld:     Q(100),
		CumulativeUGL: M(10, "USD"),
	}

	row, err := EquityClose(tx, snap)
	if err != nil {
		t.Fatalf("EquityClose() error = %v", err)
	}

	wantDebit(t, row, 0, "SCI_OCI_UGLFA_ΔFV_USD_AAPL", "10.00")
	wantCredit(t, row, 0, "SFP_A_FA_E_USD_CUM_UGLΔFV_AAPL", "10.00")
	wantDebit(t, row, 1, "SCF_OA_PSI_USD_AAPL", "1000.00")
	wantCredit(t, row, 1, "SFP_A_FA_E_USD_BV_AAPL", "800.00")
	wantCredit(t, row, 2, "SCI_I_RGLFA_USD", "200.00")
	if _, ok := row.Debit(2); ok {
		t.Error("gain close should carry no slot 2 debit")
	}
	if !row.Balanced() {
		t.Error("close row should balance")
	}
}

func TestEquityCloseRealizedLoss(t *testing.T) {
	tx := Transaction{Index: 4, Value: M(700, "USD"), Quantity: Q(100), Security: "AAPL"}
	snap := PositionSnapshot{
		AvgBookPrice:  M(8, "USD"),
		UnitsHeld:     Q(100),
		CumulativeUGL: M(-30, "USD"),
	}

	row, err := EquityClose(tx, snap)
	if err != nil {
		t.Fatalf("EquityClose() error = %v", err)
	}

	// A carried loss is a credit balance, closed out from the debit side.
	wantDebit(t, row, 0, "SFP_A_FA_E_USD_CUM_UGLΔFV_AAPL", "30.00")
	wantCredit(t, row, 0, "SCI_OCI_UGLFA_ΔFV_USD_AAPL", "30.00")
	wantDebit(t, row, 1, "SCF_OA_PSI_USD_AAPL", "700.00")
	wantCredit(t, row, 1, "SFP_A_FA_E_USD_BV_AAPL", "800.00")
	wantDebit(t, row, 2, "SCI_I_RGLFA_USD", "100.00")
	if _, ok := row.Credit(2); ok {
		t.Error("loss close should carry no slot 2 credit")
	}
	if !row.Balanced() {
		t.Error("close row should balance")
	}
}

func TestEquityCloseBreakEven(t *testing.T) {
	tx := Transaction{Index: 1, Value: M(800, "USD"), Quantity: Q(100), Security: "AAPL"}
	snap := PositionSnapshot{
		AvgBookPrice: M(8, "USD"),
		UnitsHeld:    Q(100),
		// flat carried adjustment: no slot 0 either
		CumulativeUGL: M(0, "USD"),
	}

	row, err := EquityClose(tx, snap)
	if err != nil {
		t.Fatalf("EquityClose() error = %v", err)
	}

	wantNoLeg(t, row, 0)
	wantDebit(t, row, 1, "SCF_OA_PSI_USD_AAPL", "800.00")
	wantCredit(t, row, 1, "SFP_A_FA_E_USD_BV_AAPL", "800.00")
	wantNoLeg(t, row, 2)
	if !row.Balanced() {
		t.Error("break-even close should balance")
	}
}

func TestEquityCloseProRataConservation(t *testing.T) {
	// Two partial closes exhausting the position must reverse exactly the
	// carried adjustment between them.
	snap := PositionSnapshot{
		AvgBookPrice:  M(8, "USD"),
		UnitsHeld:     Q(100),
		CumulativeUGL: M(10, "USD"),
	}

	first, err := EquityClose(Transaction{Index: 0, Value: M(320, "USD"), Quantity: Q(40), Security: "AAPL"}, snap)
	if err != nil {
		t.Fatalf("first close error = %v", err)
	}
	second, err := EquityClose(Transaction{Index: 1, Value: M(480, "USD"), Quantity: Q(60), Security: "AAPL"}, snap)
	if err != nil {
		t.Fatalf("second close error = %v", err)
	}

	wantDebit(t, first, 0, "SCI_OCI_UGLFA_ΔFV_USD_AAPL", "4.00")
	wantDebit(t, second, 0, "SCI_OCI_UGLFA_ΔFV_USD_AAPL", "6.00")

	a, _ := first.Debit(0)
	b, _ := second.Debit(0)
	if got := a.Value.Add(b.Value); !got.Equal(snap.CumulativeUGL) {
		t.Errorf("closures sum to %s, want %s", got, snap.CumulativeUGL)
	}
}

func TestEquityCloseSignConsistency(t *testing.T) {
	// A carried gain must never close out from the credit-to-OCI side, and
	// the mirrored property must hold for a carried loss.
	for _, ugl := range []float64{0.01, 5, 123.45, 9999} {
		snap := PositionSnapshot{AvgBookPrice: M(8, "USD"), UnitsHeld: Q(10), CumulativeUGL: M(ugl, "USD")}
		tx := Transaction{Index: 0, Value: M(80, "USD"), Quantity: Q(10), Security: "AAPL"}

		row, err := EquityClose(tx, snap)
		if err != nil {
			t.Fatalf("EquityClose(ugl=%v) error = %v", ugl, err)
		}
		leg, ok := row.Debit(0)
		if !ok || leg.Account != UnrealizedReclass("USD", "AAPL") {
			t.Errorf("ugl=%v: gain closure must debit the OCI reclass account, got %v", ugl, leg.Account)
		}

		snap.CumulativeUGL = M(-ugl, "USD")
		row, err = EquityClose(tx, snap)
		if err != nil {
			t.Fatalf("EquityClose(ugl=%v) error = %v", -ugl, err)
		}
		leg, ok = row.Debit(0)
		if !ok || leg.Account != CumulativeAdjustment(Equity, "USD", "AAPL") {
			t.Errorf("ugl=%v: loss closure must debit the adjustment account, got %v", -ugl, leg.Account)
		}
	}
}

func TestEquityCloseZeroUnitsGuard(t *testing.T) {
	tx := Transaction{Index: 0, Value: M(100, "USD"), Quantity: Q(10), Security: "AAPL"}
	snap := PositionSnapshot{AvgBookPrice: M(8, "USD"), UnitsHeld: Q(0), CumulativeUGL: M(10, "USD")}

	if _, err := EquityClose(tx, snap); !errors.Is(err, ErrZeroUnits) {
		t.Errorf("EquityClose() error = %v, want ErrZeroUnits", err)
	}
}

func TestEquityCloseIdempotence(t *testing.T) {
	tx := Transaction{Index: 4, Value: M(1000, "USD"), Quantity: Q(100), Security: "AAPL"}
	snap := PositionSnapshot{AvgBookPrice: M(8, "USD"), UnitsHeld: Q(100), CumulativeUGL: M(10, "USD")}

	first, err := EquityClose(tx, snap)
	if err != nil {
		t.Fatalf("EquityClose() error = %v", err)
	}
	second, err := EquityClose(tx, snap)
	if err != nil {
		t.Fatalf("EquityClose() error = %v", err)
	}

	if diff := cmp.Diff(recordValues(first.Record("")), recordValues(second.Record(""))); diff != "" {
		t.Errorf("two identical closes produced different records:\n%s", diff)
	}
}
