// Package journal maps individual brokerage and fund transactions into
// double-entry journal entries (debit/credit account-code and value pairs)
// under average-cost accounting for financial assets.
//
// The heart of the package is the position-lifecycle engine: the posting
// rules that open and close equity and option positions, allocate a pro-rata
// share of the cumulative unrealized fair-value adjustment carried forward
// from the prior period, recognize realized gain or loss against the average
// book price, and classify option closures by expiration, exercise,
// settlement type and moneyness. Dividend and interest receipts, fees,
// subscriptions, redemptions and currency translation are fixed account-pair
// templates around that core.
//
// All computation is pure and synchronous. Each transaction's journal entry
// depends only on the transaction record and, for closes, on a read-only
// PositionSnapshot supplied by the prior period's investment schedule, so
// callers are free to process transactions in parallel.
package journal
