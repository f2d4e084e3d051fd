package journal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Leg is one side of a posting: an account and the value posted to it.
// Values are always non-negative magnitudes; direction is carried by whether
// the leg sits on the debit or the credit side.
type Leg struct {
	Account Account
	Value   Money
}

// Row is the journal entry (or a partial journal entry) for one transaction
// index. Legs are grouped into numbered slots so that independent postings
// for the same transaction can coexist in one record without overwriting
// each other.
type Row struct {
	Index   int
	debits  map[int]Leg
	credits map[int]Leg
}

// NewRow returns an empty row for a transaction index.
func NewRow(index int) Row {
	return Row{
		Index:   index,
		debits:  make(map[int]Leg),
		credits: make(map[int]Leg),
	}
}

func (r Row) setDebit(slot int, account Account, value Money) {
	r.debits[slot] = Leg{Account: account, Value: value}
}

func (r Row) setCredit(slot int, account Account, value Money) {
	r.credits[slot] = Leg{Account: account, Value: value}
}

// Debit returns the debit leg in the given slot, if any.
func (r Row) Debit(slot int) (Leg, bool) {
	leg, ok := r.debits[slot]
	return leg, ok
}

// Credit returns the credit leg in the given slot, if any.
func (r Row) Credit(slot int) (Leg, bool) {
	leg, ok := r.credits[slot]
	return leg, ok
}

func (r Row) maxSlot() int {
	max := -1
	for slot := range r.debits {
		if slot > max {
			max = slot
		}
	}
	for slot := range r.credits {
		if slot > max {
			max = slot
		}
	}
	return max
}

// Balanced reports whether the sum of debit values equals the sum of credit
// values after rounding each leg to two decimal places. It is meaningful for
// single-currency rows; currency-translation rows mix currencies and are
// balanced per clearing leg instead.
func (r Row) Balanced() bool {
	var dr, cr decimal.Decimal
	for _, leg := range r.debits {
		dr = dr.Add(leg.Value.round2())
	}
	for _, leg := range r.credits {
		cr = cr.Add(leg.Value.round2())
	}
	return dr.Equal(cr)
}

// Merge concatenates any number of partial rows for the same transaction
// index into one row. Every multi-slot posting rule goes through it. Two
// partial rows claiming the same slot on the same side is a programming
// error in the rule and is rejected.
func Merge(rows ...Row) (Row, error) {
	if len(rows) == 0 {
		return Row{}, fmt.Errorf("merge of zero rows: %w", ErrValidation)
	}
	merged := NewRow(rows[0].Index)
	for _, row := range rows {
		if row.Index != merged.Index {
			return Row{}, fmt.Errorf("merge of rows for indices %d and %d: %w", merged.Index, row.Index, ErrValidation)
		}
		for slot, leg := range row.debits {
			if _, taken := merged.debits[slot]; taken {
				return Row{}, fmt.Errorf("slot %d already carries a debit: %w", slot, ErrValidation)
			}
			merged.debits[slot] = leg
		}
		for slot, leg := range row.credits {
			if _, taken := merged.credits[slot]; taken {
				return Row{}, fmt.Errorf("slot %d already carries a credit: %w", slot, ErrValidation)
			}
			merged.credits[slot] = leg
		}
	}
	return merged, nil
}

// Record is a fully assembled journal entry row with the stable column-naming
// convention DR_account_N, DR_value_N, CR_account_N, CR_value_N for slot N,
// so downstream ledger-posting code consumes rows uniformly regardless of
// which rule produced them.
type Record struct {
	Index   int
	columns []string
	values  map[string]string
}

// Record assembles the row: monetary fields rounded to two decimal places,
// absent slots filled with the sentinel, columns ordered by slot number.
func (r Row) Record(sentinel string) *Record {
	rec := &Record{Index: r.Index, values: make(map[string]string)}
	for slot := 0; slot <= r.maxSlot(); slot++ {
		drAccount := fmt.Sprintf("DR_account_%d", slot)
		drValue := fmt.Sprintf("DR_value_%d", slot)
		crAccount := fmt.Sprintf("CR_account_%d", slot)
		crValue := fmt.Sprintf("CR_value_%d", slot)
		rec.columns = append(rec.columns, drAccount, drValue, crAccount, crValue)

		if leg, ok := r.debits[slot]; ok {
			rec.values[drAccount] = string(leg.Account)
			rec.values[drValue] = leg.Value.fixed2()
		} else {
			rec.values[drAccount] = sentinel
			rec.values[drValue] = sentinel
		}
		if leg, ok := r.credits[slot]; ok {
			rec.values[crAccount] = string(leg.Account)
			rec.values[crValue] = leg.Value.fixed2()
		} else {
			rec.values[crAccount] = sentinel
			rec.values[crValue] = sentinel
		}
	}
	return rec
}

// Columns returns the ordered column names of the record.
func (rec *Record) Columns() []string { return rec.columns }

// Get returns the value of a column, or the empty string for an unknown
// column name.
func (rec *Record) Get(column string) string { return rec.values[column] }
