package journal

import (
	"fmt"
	"strings"
)

// CallPut is the option right. The zero value is unset and fails validation.
type CallPut int

const (
	Call CallPut = iota + 1
	Put
)

func (cp CallPut) String() string {
	switch cp {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "unset"
	}
}

// ParseCallPut normalizes the call/put token of a broker statement. Tokens
// are case-insensitive and cover the English and Chinese spellings in use.
func ParseCallPut(s string) (CallPut, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "call", "认购", "购":
		return Call, nil
	case "p", "put", "认沽", "沽":
		return Put, nil
	default:
		return 0, fmt.Errorf("unrecognized call/put token %q: %w", s, ErrValidation)
	}
}

// ExerciseStyle is the option's exercise style. The zero value is unset and
// fails validation.
type ExerciseStyle int

const (
	American ExerciseStyle = iota + 1
	European
)

func (e ExerciseStyle) String() string {
	switch e {
	case American:
		return "american"
	case European:
		return "european"
	default:
		return "unset"
	}
}

// ParseExerciseStyle normalizes the exercise-style token of a broker
// statement, accepting the English and Chinese spellings in use.
func ParseExerciseStyle(s string) (ExerciseStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "american", "美式", "美":
		return American, nil
	case "e", "european", "euro", "欧式", "欧":
		return European, nil
	default:
		return 0, fmt.Errorf("unrecognized exercise-style token %q: %w", s, ErrValidation)
	}
}

// OptionTerms carries the contract terms and outcome flags that select the
// close branch. Strike, UnderlyingPrice, Multiplier and UnderlyingSecurity
// are only consulted on exercise branches.
type OptionTerms struct {
	CallPut     CallPut
	Style       ExerciseStyle
	CashSettled bool
	Expired     bool
	Exercised   bool

	Strike             Money    // strike price of one underlying share
	UnderlyingPrice    Money    // underlying price at settlement
	Multiplier         Quantity // underlying shares per contract
	UnderlyingSecurity string   // security code of the underlying
}

// validate rejects malformed or mutually inconsistent terms before any
// posting is computed.
func (t OptionTerms) validate() error {
	switch t.CallPut {
	case Call, Put:
	default:
		return fmt.Errorf("call/put not set: %w", ErrValidation)
	}
	switch t.Style {
	case American, European:
	default:
		return fmt.Errorf("exercise style not set: %w", ErrValidation)
	}
	// A European option cannot be exercised before expiration.
	if !t.Expired && t.Exercised && t.Style == European {
		return fmt.Errorf("european option exercised before expiration: %w", ErrValidation)
	}
	if t.Exercised {
		if !t.Multiplier.IsPositive() {
			return fmt.Errorf("exercise requires a positive contract multiplier, got %s: %w", t.Multiplier, ErrValidation)
		}
		if !t.CashSettled && t.UnderlyingSecurity == "" {
			return fmt.Errorf("physical settlement requires the underlying security code: %w", ErrValidation)
		}
	}
	return nil
}

// OptionOpen posts the premium paid to open an option position: debit the
// option book-value account, credit the purchase clearing account, for the
// full transaction value.
func OptionOpen(tx Transaction) Row {
	currency := tx.Value.Currency()
	row := NewRow(tx.Index)
	row.setDebit(0, BasisValue(Option, currency, tx.Security), tx.Value)
	row.setCredit(0, PurchasePaid(currency, tx.Security), tx.Value)
	return row
}

// OptionClose posts the closure of an option position. Exactly one branch of
// the decision matrix executes per call:
//
//   - not expired, not exercised (either style): the position was sold; the
//     close is identical to an equity close, on option accounts;
//   - not expired, American, exercised, cash-settled: the economic difference
//     settles in cash carried by the transaction value; same structure as an
//     equity close, on option accounts;
//   - exercised, physically settled (early American or at expiration): shares
//     change hands; see physicalExercise;
//   - expired, exercised, cash-settled: the payoff is computed from
//     moneyness; see cashSettledExpiry;
//   - expired, not exercised: the position expired worthless; see
//     worthlessExpiry.
func OptionClose(tx Transaction, snap PositionSnapshot, terms OptionTerms) (Row, error) {
	if err := terms.validate(); err != nil {
		return Row{}, err
	}

	switch {
	case !terms.Expired && !terms.Exercised:
		return closePosition(tx, snap, Option)
	case !terms.Expired:
		// American early exercise; validate() already rejected the
		// European combination.
		if terms.CashSettled {
			return closePosition(tx, snap, Option)
		}
		return physicalExercise(tx, snap, terms)
	case terms.Exercised:
		if terms.CashSettled {
			return cashSettledExpiry(tx, snap, terms)
		}
		return physicalExercise(tx, snap, terms)
	default:
		return worthlessExpiry(tx, snap), nil
	}
}

// physicalExercise posts an exercise settled in actual shares.
//
// For a call the fund pays strike times multiplier per contract and receives
// shares: the new equity position's basis absorbs both the strike cash and
// the option's book value, following the equity-open pattern for the
// underlying security. For a put the fund delivers shares at the strike; the
// share disposal is its own equity-close transaction, so here the option's
// book value is written off to realized loss, the premium spent to secure
// the sale price.
func physicalExercise(tx Transaction, snap PositionSnapshot, terms OptionTerms) (Row, error) {
	if snap.UnitsHeld.IsZero() {
		return Row{}, fmt.Errorf("exercise of %s against an empty position: %w", tx.Security, ErrZeroUnits)
	}

	row := NewRow(tx.Index)
	currency := tx.Value.Currency()
	if err := unrealizedClosure(row, 0, tx, snap, Option, proRata); err != nil {
		return Row{}, err
	}

	cost := snap.AvgBookPrice.Mul(tx.Quantity)
	if terms.CallPut == Call {
		strikeCash := terms.Strike.Mul(terms.Multiplier).Mul(tx.Quantity)
		row.setDebit(1, BasisValue(Equity, currency, terms.UnderlyingSecurity), strikeCash.Add(cost))
		row.setCredit(1, BasisValue(Option, currency, tx.Security), cost)
		row.setCredit(2, PurchasePaid(currency, terms.UnderlyingSecurity), strikeCash)
	} else {
		row.setDebit(1, RealizedGainLoss(currency), cost)
		row.setCredit(1, BasisValue(Option, currency, tx.Security), cost)
	}
	return row, nil
}

// cashSettledExpiry posts an exercise at expiration settled in cash. The
// settlement proceeds are the option's intrinsic value; the realized result
// is proceeds less the position's book value, which for an in-the-money
// close equals |price - (strike ± avgbp/multiplier)| x multiplier x quantity.
func cashSettledExpiry(tx Transaction, snap PositionSnapshot, terms OptionTerms) (Row, error) {
	if snap.UnitsHeld.IsZero() {
		return Row{}, fmt.Errorf("settlement of %s against an empty position: %w", tx.Security, ErrZeroUnits)
	}

	row := NewRow(tx.Index)
	currency := tx.Value.Currency()
	if err := unrealizedClosure(row, 0, tx, snap, Option, proRata); err != nil {
		return Row{}, err
	}

	var intrinsic Money
	if terms.CallPut == Call {
		intrinsic = terms.UnderlyingPrice.Sub(terms.Strike)
	} else {
		intrinsic = terms.Strike.Sub(terms.UnderlyingPrice)
	}
	if intrinsic.IsNegative() {
		intrinsic = M(0, currency)
	}
	proceeds := intrinsic.Mul(terms.Multiplier).Mul(tx.Quantity)

	cost := snap.AvgBookPrice.Mul(tx.Quantity)
	row.setDebit(1, SaleProceeds(currency, tx.Security), proceeds)
	row.setCredit(1, BasisValue(Option, currency, tx.Security), cost)

	delta := proceeds.Sub(cost)
	switch classify(delta) {
	case Gain:
		row.setCredit(2, RealizedGainLoss(currency), delta)
	case Loss:
		row.setDebit(2, RealizedGainLoss(currency), delta.Abs())
	}
	return row, nil
}

// worthlessExpiry writes off a position that expired unexercised: the entire
// average book value goes to realized loss, and any outstanding unrealized
// adjustment is closed out in full in the same row. When the carried
// adjustment is flat only the write-off pair is emitted.
func worthlessExpiry(tx Transaction, snap PositionSnapshot) Row {
	row := NewRow(tx.Index)
	currency := tx.Value.Currency()

	slot := 0
	if classify(snap.CumulativeUGL) != Flat {
		// Full balance: the position ends here, nothing is carried on.
		unrealizedClosure(row, 0, tx, snap, Option, fullBalance)
		slot = 1
	}

	cost := snap.AvgBookPrice.Mul(tx.Quantity)
	row.setDebit(slot, RealizedGainLoss(currency), cost)
	row.setCredit(slot, BasisValue(Option, currency, tx.Security), cost)
	return row
}
