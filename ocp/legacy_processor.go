package ocp

import (
	"github.com/shopspring/decimal"
)

// LegacyProcessor is the violating version. Every payment method is a case in
// Pay, so supporting a new one means modifying this function.
type LegacyProcessor struct{}

// Pay settles amount with the named method and returns a human-readable line.
func (LegacyProcessor) Pay(method string, amount decimal.Decimal) (string, error) {
	if !amount.IsPositive() {
		return "", ErrInvalidAmount
	}
	switch method {
	case KindCreditCard:
		return "paid " + amount.StringFixed(2) + " with credit card", nil
	case KindPayPal:
		return "paid " + amount.StringFixed(2) + " with paypal", nil
	case KindBankTransfer:
		return "paid " + amount.StringFixed(2) + " with bank transfer", nil
	default:
		return "", UnknownMethodError{Method: method}
	}
}
