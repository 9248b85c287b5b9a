package ocp

import (
	"sort"
	"strconv"
)

// UnknownMethodError is returned when a payment method kind is not recognized.
type UnknownMethodError struct{ Method string }

// Error implements the error interface.
func (e UnknownMethodError) Error() string {
	// Example: ocp: unknown payment method "cash"
	return "ocp: unknown payment method " + strconv.Quote(e.Method)
}

// Constructor builds a fresh PaymentMethod.
type Constructor func() PaymentMethod

// Factory centralizes construction of payment methods by kind.
//
// It is not safe for concurrent Register calls; populate it at startup.
type Factory struct {
	ctors map[string]Constructor
}

func NewFactory() *Factory {
	return &Factory{ctors: map[string]Constructor{}}
}

// DefaultFactory knows credit card, PayPal and bank transfer.
func DefaultFactory() *Factory {
	return NewFactory().
		Register(KindCreditCard, func() PaymentMethod { return CreditCard{} }).
		Register(KindPayPal, func() PaymentMethod { return PayPal{} }).
		Register(KindBankTransfer, func() PaymentMethod { return BankTransfer{} })
}

// Register adds (or replaces) the constructor for kind and returns the factory for chaining.
func (f *Factory) Register(kind string, ctor Constructor) *Factory {
	f.ctors[kind] = ctor
	return f
}

// New constructs the payment method registered under kind.
func (f *Factory) New(kind string) (PaymentMethod, error) {
	ctor, ok := f.ctors[kind]
	if !ok || ctor == nil {
		return nil, UnknownMethodError{Method: kind}
	}
	return ctor(), nil
}

// Kinds returns the registered kinds in lexical order.
func (f *Factory) Kinds() []string {
	out := make([]string, 0, len(f.ctors))
	for k := range f.ctors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
