package journal

// Fixed account-pair templates. Each of these transaction types maps to a
// single debit/credit pair in slot 0 for the full transaction value; the only
// variation is the account pair itself.

// DividendReceived posts a dividend cash receipt.
func DividendReceived(tx Transaction) Row {
	return pairRow(tx, DividendClearing(tx.Value.Currency()), DividendIncome(tx.Value.Currency()))
}

// InterestReceived posts an interest cash receipt.
func InterestReceived(tx Transaction) Row {
	return pairRow(tx, InterestClearing(tx.Value.Currency()), InterestIncome(tx.Value.Currency()))
}

// MiscFee posts a miscellaneous fee (custodian fee, transfer charges and the
// like) and passes the statement description through for the caller's ledger
// notes.
func MiscFee(tx Transaction) (Row, string) {
	return pairRow(tx, OtherFees(tx.Value.Currency()), ExpensesPaid(tx.Value.Currency())), tx.Description
}

// ADRFee posts an ADR management fee.
func ADRFee(tx Transaction) Row {
	return pairRow(tx, OtherFees(tx.Value.Currency()), ExpensesPaid(tx.Value.Currency()))
}

// BankFee posts a bank or administrative fee.
func BankFee(tx Transaction) Row {
	return pairRow(tx, AdminFees(tx.Value.Currency()), ExpensesPaid(tx.Value.Currency()))
}

// BankRebate posts a rebate of previously charged bank fees; the bank-fee
// pair with the sides reversed.
func BankRebate(tx Transaction) Row {
	return pairRow(tx, ExpensesPaid(tx.Value.Currency()), AdminFees(tx.Value.Currency()))
}

// AccountTransferFee posts an account-transfer fee.
func AccountTransferFee(tx Transaction) Row {
	return pairRow(tx, TransferFees(tx.Value.Currency()), ExpensesPaid(tx.Value.Currency()))
}

// Subscription posts an investor subscription into the fund.
func Subscription(tx Transaction) Row {
	return pairRow(tx, SubscriptionReceived(tx.Value.Currency()), SubscriptionNAV(tx.Value.Currency()))
}

// Redemption posts an investor redemption out of the fund.
func Redemption(tx Transaction) Row {
	return pairRow(tx, RedemptionNAV(tx.Value.Currency()), RedemptionPaid(tx.Value.Currency()))
}

func pairRow(tx Transaction, debit, credit Account) Row {
	row := NewRow(tx.Index)
	row.setDebit(0, debit, tx.Value)
	row.setCredit(0, credit, tx.Value)
	return row
}
