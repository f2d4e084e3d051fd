package journal

import "testing"

// wantDebit fails the test unless the row carries the given debit leg, with
// the value compared at the two-decimal precision of assembled records.
func wantDebit(t *testing.T, row Row, slot int, account Account, value string) {
	t.Helper()
	leg, ok := row.Debit(slot)
	if !ok {
		t.Fatalf("no debit leg in slot %d", slot)
	}
	if leg.Account != account {
		t.Errorf("slot %d debit account = %q, want %q", slot, leg.Account, account)
	}
	if got := leg.Value.fixed2(); got != value {
		t.Errorf("slot %d debit value = %s, want %s", slot, got, value)
	}
}

// wantCredit is the credit-side counterpart of wantDebit.
func wantCredit(t *testing.T, row Row, slot int, account Account, value string) {
	t.Helper()
	leg, ok := row.Credit(slot)
	if !ok {
		t.Fatalf("no credit leg in slot %d", slot)
	}
	if leg.Account != account {
		t.Errorf("slot %d credit account = %q, want %q", slot, leg.Account, account)
	}
	if got := leg.Value.fixed2(); got != value {
		t.Errorf("slot %d credit value = %s, want %s", slot, got, value)
	}
}

// wantNoLeg fails the test if the row carries any leg in the given slot.
func wantNoLeg(t *testing.T, row Row, slot int) {
	t.Helper()
	if leg, ok := row.Debit(slot); ok {
		t.Errorf("unexpected debit leg in slot %d: %s %s", slot, leg.Account, leg.Value)
	}
	if leg, ok := row.Credit(slot); ok {
		t.Errorf("unexpected credit leg in slot %d: %s %s", slot, leg.Account, leg.Value)
	}
}

// recordValues flattens a record into a column-to-value map for diffing.
func recordValues(rec *Record) map[string]string {
	values := make(map[string]string)
	for _, column := range rec.Columns() {
		values[column] = rec.Get(column)
	}
	return values
}
