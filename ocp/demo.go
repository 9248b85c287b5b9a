package ocp

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// giftCard is added by the driver alone: no existing code changes to support it.
type giftCard struct{}

func (giftCard) Name() string                             { return "gift card" }
func (giftCard) Fee(decimal.Decimal) decimal.Decimal      { return decimal.Zero }
func (g giftCard) Pay(a decimal.Decimal) (Receipt, error) { return charge(g, a) }

// Run is the driver for the example.
func Run(ctx context.Context, w io.Writer) error {
	amount := decimal.NewFromInt(100)

	fmt.Fprintln(w, "-- violating: LegacyProcessor switch --")
	legacy := LegacyProcessor{}
	for _, kind := range []string{KindCreditCard, KindPayPal, "gift_card"} {
		line, err := legacy.Pay(kind, amount)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", kind, err)
			continue
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, "-- adhering: PaymentMethod strategies + Factory --")
	factory := DefaultFactory().Register("gift_card", func() PaymentMethod { return giftCard{} })
	var p Processor
	for _, kind := range factory.Kinds() {
		m, err := factory.New(kind)
		if err != nil {
			return err
		}
		r, err := p.Checkout(ctx, m, amount)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, r.String())
	}

	if _, err := factory.New("cash"); err != nil {
		fmt.Fprintf(w, "factory: %v\n", err)
	}
	return nil
}
