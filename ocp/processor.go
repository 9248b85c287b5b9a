package ocp

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

// Processor is closed for modification: it only talks to PaymentMethod.
type Processor struct{}

// Checkout pays amount with m. The amount rule is enforced here so strategies
// registered from outside the package cannot skip it.
func (Processor) Checkout(ctx context.Context, m PaymentMethod, amount decimal.Decimal) (Receipt, error) {
	if m == nil {
		return Receipt{}, ErrNilMethod
	}
	if !amount.IsPositive() {
		return Receipt{}, ErrInvalidAmount
	}
	r, err := m.Pay(amount)
	if err != nil {
		return Receipt{}, err
	}
	slog.DebugContext(ctx, "payment settled",
		"receipt_id", r.ID.String(),
		"method", r.Method,
		"total", r.Total.StringFixed(2))
	return r, nil
}
