package ocp

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned for zero or negative payment amounts.
	ErrInvalidAmount = errors.New("ocp: amount must be positive")

	// ErrNilMethod is returned when a Processor is handed a nil strategy.
	ErrNilMethod = errors.New("ocp: nil payment method")
)

// Payment method kinds known by DefaultFactory.
const (
	KindCreditCard   = "credit_card"
	KindPayPal       = "paypal"
	KindBankTransfer = "bank_transfer"
)

// PaymentMethod is the strategy every payment option implements.
type PaymentMethod interface {
	Name() string
	Fee(amount decimal.Decimal) decimal.Decimal
	Pay(amount decimal.Decimal) (Receipt, error)
}

// Receipt is what a successful payment produces.
type Receipt struct {
	ID     uuid.UUID
	Method string
	Amount decimal.Decimal
	Fee    decimal.Decimal
	Total  decimal.Decimal
}

// String renders the receipt with two decimal places.
func (r Receipt) String() string {
	return "paid " + r.Amount.StringFixed(2) + " via " + r.Method +
		" (fee " + r.Fee.StringFixed(2) + ", total " + r.Total.StringFixed(2) + ")"
}

// charge is the shared Pay body: validate, compute the fee, issue a receipt.
func charge(m PaymentMethod, amount decimal.Decimal) (Receipt, error) {
	if !amount.IsPositive() {
		return Receipt{}, ErrInvalidAmount
	}
	fee := m.Fee(amount)
	return Receipt{
		ID:     uuid.New(),
		Method: m.Name(),
		Amount: amount,
		Fee:    fee,
		Total:  amount.Add(fee),
	}, nil
}

var (
	creditCardRate = decimal.RequireFromString("0.025")
	payPalRate     = decimal.RequireFromString("0.034")
	payPalFixed    = decimal.RequireFromString("0.30")
	bankFlatFee    = decimal.RequireFromString("1.00")
)

// CreditCard charges a 2.5% fee.
type CreditCard struct{}

func (CreditCard) Name() string { return "credit card" }

func (CreditCard) Fee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(creditCardRate).Round(2)
}

func (c CreditCard) Pay(amount decimal.Decimal) (Receipt, error) { return charge(c, amount) }

// PayPal charges 3.4% plus 0.30.
type PayPal struct{}

func (PayPal) Name() string { return "paypal" }

func (PayPal) Fee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(payPalRate).Add(payPalFixed).Round(2)
}

func (p PayPal) Pay(amount decimal.Decimal) (Receipt, error) { return charge(p, amount) }

// BankTransfer charges a flat 1.00.
type BankTransfer struct{}

func (BankTransfer) Name() string { return "bank transfer" }

func (BankTransfer) Fee(decimal.Decimal) decimal.Decimal { return bankFlatFee }

func (b BankTransfer) Pay(amount decimal.Decimal) (Receipt, error) { return charge(b, amount) }
