package journal

import "strings"

// Account is a structured ledger account identifier. The engine treats it as
// opaque once built; the grammar below is the fund's chart-of-accounts
// convention and must be reproduced byte for byte, including the literal ΔFV
// rune, for compatibility with the downstream ledger.
//
// An account code concatenates, underscore-separated: a statement section, an
// element category, optionally an asset class and measurement basis, the
// currency code, and (where the account is per-security) the security code.
// For example SFP_A_FA_E_USD_BV_AAPL is the book-value asset account of the
// AAPL equity position in USD on the statement of financial position.
type Account string

// Statement sections.
const (
	sectionPosition = "SFP"   // statement of financial position
	sectionIncome   = "SCI"   // statement of comprehensive income
	sectionCashFlow = "SCF"   // statement of cash flows
	sectionNAV      = "SCNAV" // statement of changes in net asset value
)

// Element categories within a statement section.
const (
	elementAsset     = "A"   // asset
	elementIncome    = "I"   // income
	elementExpense   = "E"   // expense
	elementOCI       = "OCI" // other comprehensive income
	elementOperating = "OA"  // operating activities
	elementFinancing = "FA"  // financing activities
)

// AssetClass distinguishes the two financial-asset lifecycles.
type AssetClass string

const (
	Equity AssetClass = "E" // plain financial-asset (equity-like) positions
	Option AssetClass = "O" // option positions
)

// Measurement bases for financial-asset accounts.
const (
	basisBookValue     = "BV"          // average-cost carrying value
	basisCumulativeUGL = "CUM_UGLΔFV" // cumulative unrealized G/L at fair value
)

func compose(tokens ...string) Account {
	return Account(strings.Join(tokens, "_"))
}

// BasisValue is the book-value asset account of a position: the average-cost
// carrying value of the holding.
func BasisValue(class AssetClass, currency, security string) Account {
	return compose(sectionPosition, elementAsset, "FA", string(class), currency, basisBookValue, security)
}

// CumulativeAdjustment is the adjunct asset account holding the cumulative
// unrealized fair-value gain or loss carried against a position. A positive
// balance sits on the debit side, a negative one on the credit side.
func CumulativeAdjustment(class AssetClass, currency, security string) Account {
	return compose(sectionPosition, elementAsset, "FA", string(class), currency, basisCumulativeUGL, security)
}

// UnrealizedReclass is the OCI account through which the cumulative
// fair-value adjustment is closed out when a position is reduced.
func UnrealizedReclass(currency, security string) Account {
	return compose(sectionIncome, elementOCI, "UGLFA", "ΔFV", currency, security)
}

// RealizedGainLoss is the income account receiving realized gains and losses
// on financial assets.
func RealizedGainLoss(currency string) Account {
	return compose(sectionIncome, elementIncome, "RGLFA", currency)
}

// SaleProceeds is the operating cash clearing account for proceeds of selling
// an investment.
func SaleProceeds(currency, security string) Account {
	return compose(sectionCashFlow, elementOperating, "PSI", currency, security)
}

// PurchasePaid is the operating cash clearing account for payments to
// purchase an investment.
func PurchasePaid(currency, security string) Account {
	return compose(sectionCashFlow, elementOperating, "PPI", currency, security)
}

// DividendClearing and DividendIncome form the dividend-received pair.
func DividendClearing(currency string) Account {
	return compose(sectionCashFlow, elementOperating, "DRC", currency)
}
func DividendIncome(currency string) Account {
	return compose(sectionIncome, elementIncome, "DI", currency)
}

// InterestClearing and InterestIncome form the interest-received pair.
func InterestClearing(currency string) Account {
	return compose(sectionCashFlow, elementOperating, "IRC", currency)
}
func InterestIncome(currency string) Account {
	return compose(sectionIncome, elementIncome, "II", currency)
}

// Fee expense accounts, all settled against ExpensesPaid.
func OtherFees(currency string) Account {
	return compose(sectionIncome, elementExpense, "OF", currency)
}
func AdminFees(currency string) Account {
	return compose(sectionIncome, elementExpense, "AF", currency)
}
func TransferFees(currency string) Account {
	return compose(sectionIncome, elementExpense, "TF", currency)
}

// ExpensesPaid is the operating cash clearing account for fee payments.
func ExpensesPaid(currency string) Account {
	return compose(sectionCashFlow, elementOperating, "OEP", currency)
}

// SubscriptionReceived and SubscriptionNAV form the investor-subscription
// pair; RedemptionPaid and RedemptionNAV the redemption pair.
func SubscriptionReceived(currency string) Account {
	return compose(sectionCashFlow, elementFinancing, "SR", currency)
}
func SubscriptionNAV(currency string) Account {
	return compose(sectionNAV, "SUB", currency)
}
func RedemptionPaid(currency string) Account {
	return compose(sectionCashFlow, elementFinancing, "RP", currency)
}
func RedemptionNAV(currency string) Account {
	return compose(sectionNAV, "RED", currency)
}

// CashClearing is the per-currency cash and cash-equivalents account used by
// currency-translation rows.
func CashClearing(currency string) Account {
	return compose(sectionPosition, elementAsset, "CCE", currency)
}

// TranslationGainLoss is the P&L account for currency-translation gains and
// losses, stated in the presentation currency.
func TranslationGainLoss(presentationCurrency string) Account {
	return compose(sectionIncome, "XRPLFXC", presentationCurrency)
}
