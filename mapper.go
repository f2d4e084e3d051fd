package journal

import "fmt"

// Mapper binds the posting rules to a transaction store, a prior-period
// investment schedule and a prior-period reference-rate table. Each method
// maps one transaction, addressed by its row index, to its journal-entry
// row; Assemble merges partial rows into a consumable record.
//
// The mapper holds no mutable state of its own: methods may be called from
// multiple goroutines as long as the collaborators are safe for concurrent
// reads.
type Mapper struct {
	store        TransactionStore
	schedule     InvestmentSchedule
	rates        RateTable
	presentation string
	sentinel     string
}

// NewMapper validates the collaborators and the presentation currency.
// sentinel is the value written into empty record slots, typically the empty
// string.
func NewMapper(store TransactionStore, schedule InvestmentSchedule, rates RateTable, presentationCurrency, sentinel string) (*Mapper, error) {
	if store == nil {
		return nil, fmt.Errorf("transaction store is required: %w", ErrValidation)
	}
	if err := ValidateCurrency(presentationCurrency); err != nil {
		return nil, fmt.Errorf("invalid presentation currency: %w", err)
	}
	return &Mapper{
		store:        store,
		schedule:     schedule,
		rates:        rates,
		presentation: presentationCurrency,
		sentinel:     sentinel,
	}, nil
}

func (m *Mapper) at(index int) (Transaction, error) {
	return m.store.At(index)
}

// snapshot fetches the carried-forward position state for a close.
func (m *Mapper) snapshot(tx Transaction) (PositionSnapshot, error) {
	if m.schedule == nil {
		return PositionSnapshot{}, fmt.Errorf("no investment schedule configured: %w", ErrMissingReference)
	}
	return m.schedule.Snapshot(tx.Security, tx.Value.Currency())
}

// EquityOpen maps the transaction at index through the equity open rule.
func (m *Mapper) EquityOpen(index int) (Row, error) {
	tx, err := m.at(index)
	if err != nil {
		return Row{}, err
	}
	return EquityOpen(tx), nil
}

// EquityClose maps the transaction at index through the equity close rule,
// sourcing the position snapshot from the investment schedule.
func (m *Mapper) EquityClose(index int) (Row, error) {
	tx, err := m.at(index)
	if err != nil {
		return Row{}, err
	}
	snap, err := m.snapshot(tx)
	if err != nil {
		return Row{}, err
	}
	return EquityClose(tx, snap)
}

// OptionOpen maps the transaction at index through the option open rule.
func (m *Mapper) OptionOpen(index int) (Row, error) {
	tx, err := m.at(index)
	if err != nil {
		return Row{}, err
	}
	return OptionOpen(tx), nil
}

// OptionClose maps the transaction at index through the option close matrix
// under the given terms, sourcing the position snapshot from the investment
// schedule.
func (m *Mapper) OptionClose(index int, terms OptionTerms) (Row, error) {
	tx, err := m.at(index)
	if err != nil {
		return Row{}, err
	}
	snap, err := m.snapshot(tx)
	if err != nil {
		return Row{}, err
	}
	return OptionClose(tx, snap, terms)
}

// CurrencyTranslation maps the transaction at index through the
// currency-translation rule against the reference-rate table.
func (m *Mapper) CurrencyTranslation(index int) (Row, error) {
	tx, err := m.at(index)
	if err != nil {
		return Row{}, err
	}
	if m.rates == nil {
		return Row{}, fmt.Errorf("no reference-rate table configured: %w", ErrMissingReference)
	}
	return CurrencyTranslation(tx, m.rates, m.presentation)
}

// DividendReceived maps the transaction at index through the dividend
// template.
func (m *Mapper) DividendReceived(index int) (Row, error) {
	return m.template(index, DividendReceived)
}

// InterestReceived maps the transaction at index through the interest
// template.
func (m *Mapper) InterestReceived(index int) (Row, error) {
	return m.template(index, InterestReceived)
}

// MiscFee maps the transaction at index through the miscellaneous-fee
// template, returning the statement description alongside the row.
func (m *Mapper) MiscFee(index int) (Row, string, error) {
	tx, err := m.at(index)
	if err != nil {
		return Row{}, "", err
	}
	row, description := MiscFee(tx)
	return row, description, nil
}

// ADRFee maps the transaction at index through the ADR-fee template.
func (m *Mapper) ADRFee(index int) (Row, error) {
	return m.template(index, ADRFee)
}

// BankFee maps the transaction at index through the bank-fee template.
func (m *Mapper) BankFee(index int) (Row, error) {
	return m.template(index, BankFee)
}

// BankRebate maps the transaction at index through the bank-rebate template.
func (m *Mapper) BankRebate(index int) (Row, error) {
	return m.template(index, BankRebate)
}

// AccountTransferFee maps the transaction at index through the
// account-transfer-fee template.
func (m *Mapper) AccountTransferFee(index int) (Row, error) {
	return m.template(index, AccountTransferFee)
}

// Subscription maps the transaction at index through the subscription
// template.
func (m *Mapper) Subscription(index int) (Row, error) {
	return m.template(index, Subscription)
}

// Redemption maps the transaction at index through the redemption template.
func (m *Mapper) Redemption(index int) (Row, error) {
	return m.template(index, Redemption)
}

func (m *Mapper) template(index int, rule func(Transaction) Row) (Row, error) {
	tx, err := m.at(index)
	if err != nil {
		return Row{}, err
	}
	return rule(tx), nil
}

// Assemble merges partial rows for one transaction into a record with the
// mapper's sentinel in the empty slots.
func (m *Mapper) Assemble(rows ...Row) (*Record, error) {
	merged, err := Merge(rows...)
	if err != nil {
		return nil, err
	}
	return merged.Record(m.sentinel), nil
}
