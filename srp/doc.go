// Package srp illustrates the Single Responsibility Principle.
//
// A type should have one reason to change. UserManager is the counter-example:
// it validates, stores and renders a user, so a new storage engine, a new report
// format or a new validation rule all edit the same type.
//
// The adhering version splits those concerns:
//
//   - User: the record itself (name + age) and its construction rules
//   - UserRepository: persistence (MemoryRepository, SQLRepository)
//   - Reporter: presentation (TextReporter, JSONReporter)
//
// Each piece can be replaced or tested in isolation.
package srp
