package journal

import "fmt"

// Transaction is one immutable row of the fund's transaction ledger. The
// value, quantity and price fields are taken as mutually consistent per the
// transaction's own unit conventions; the engine never re-derives one from
// the others.
//
// For currency-translation rows the fields are repurposed by convention:
// Value carries the quote-currency amount, Quantity the base-currency amount,
// QuantityUnit the base currency code, and Price the embedded exchange rate.
type Transaction struct {
	Index        int    // row position, the identity and ordering key
	Value        Money  // transaction value in its stated currency
	Quantity     Quantity
	QuantityUnit string // unit or currency code of the quantity
	Price        Money  // unit price in its stated currency
	Security     string // security code
	Description  string // free text from the broker statement
}

// TransactionStore is the tabular transaction source, indexable by row
// position. Ingestion into this form is a collaborator concern.
type TransactionStore interface {
	At(index int) (Transaction, error)
	Len() int
}

// Transactions is a slice-backed TransactionStore.
type Transactions []Transaction

func (t Transactions) At(index int) (Transaction, error) {
	if index < 0 || index >= len(t) {
		return Transaction{}, fmt.Errorf("no transaction at index %d: %w", index, ErrMissingReference)
	}
	return t[index], nil
}

func (t Transactions) Len() int { return len(t) }
