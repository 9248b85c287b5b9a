// Package solid is a small, runnable tour of the five SOLID design principles in Go.
//
// Each principle lives in its own package and follows the same shape:
//
//   - a "violating" version that shows the smell the principle is about
//   - an "adhering" version that fixes it with plain Go types and small interfaces
//   - a Run(ctx, w) driver that prints what happens when both are exercised
//
// The packages do not depend on each other. Read them in any order:
//
//   - srp: Single Responsibility (a user record, its storage and its reports)
//   - ocp: Open/Closed (payment strategies selected through a factory)
//   - lsp: Liskov Substitution (shapes with an area computation)
//   - isp: Interface Segregation (workers with different capabilities)
//   - dip: Dependency Inversion (a notifier that depends on a Sender abstraction)
//
// Package solid See also:
//   - catalog: registry that exposes the five demos by key
//   - cmd/solid: CLI that lists and runs the demos
//   - config, internal/logger: the CLI's configuration and logging
package solid
