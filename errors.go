package journal

import "errors"

// The engine never retries: every failure is a data-quality or input-contract
// problem surfaced to the caller. Errors wrap one of these sentinels so batch
// drivers can discriminate with errors.Is and keep processing the remaining
// transactions.
var (
	// ErrValidation marks unrecognized tokens, unset enums, or mutually
	// inconsistent option flags. Raised before any posting is computed.
	ErrValidation = errors.New("invalid input")

	// ErrZeroUnits marks a pro-rata allocation against a snapshot that
	// carries no units. Division by zero is never silently coerced.
	ErrZeroUnits = errors.New("no units held")

	// ErrMissingReference marks an absent reference exchange rate or
	// position snapshot. The engine never defaults to a zero or assumed
	// value.
	ErrMissingReference = errors.New("missing reference data")
)
