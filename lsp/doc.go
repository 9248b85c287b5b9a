// Package lsp illustrates the Liskov Substitution Principle.
//
// Anything that accepts a type must keep working when handed a subtype.
//
// The classic counter-example is square "is-a" rectangle: MutableSquare overrides
// the setters to keep its sides equal, so code written against MutableRectangle's
// contract (set width, set height, expect width*height) silently gets the wrong answer.
// BaseShape shows the other smell: an "abstract" method that only fails at run time
// when an embedding type forgets to override it.
//
// The adhering version models shapes as independent values that each satisfy
// Shape. No shape promises a behavior it cannot keep, so every Shape can stand in
// for any other.
package lsp
