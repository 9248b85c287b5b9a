// Package ocp illustrates the Open/Closed Principle.
//
// Code should be open for extension and closed for modification.
// LegacyProcessor switches over payment method names, so every new method is an
// edit to existing, tested code. The adhering version hides each method behind the
// PaymentMethod strategy and lets a Factory pick one by kind; a new method is a new
// type plus a Register call.
//
// Money is handled with shopspring/decimal and rounded to cents.
package ocp
