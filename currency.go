package journal

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q: %w", code, ErrValidation)
	}
	return nil
}
