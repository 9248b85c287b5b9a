package catalog

import (
	"github.com/sghaida/solid/dip"
	"github.com/sghaida/solid/isp"
	"github.com/sghaida/solid/lsp"
	"github.com/sghaida/solid/ocp"
	"github.com/sghaida/solid/srp"
)

// Default returns a registry holding the five demos in S-O-L-I-D order.
func Default() *Registry {
	return NewRegistry().
		Provide(Principle{
			Key:     "srp",
			Name:    "Single Responsibility",
			Summary: "a type should have one reason to change",
			Package: "srp",
			Run:     srp.Run,
		}).
		Provide(Principle{
			Key:     "ocp",
			Name:    "Open/Closed",
			Summary: "open for extension, closed for modification",
			Package: "ocp",
			Run:     ocp.Run,
		}).
		Provide(Principle{
			Key:     "lsp",
			Name:    "Liskov Substitution",
			Summary: "subtypes must be usable wherever their base type is",
			Package: "lsp",
			Run:     lsp.Run,
		}).
		Provide(Principle{
			Key:     "isp",
			Name:    "Interface Segregation",
			Summary: "no client should depend on methods it does not use",
			Package: "isp",
			Run:     isp.Run,
		}).
		Provide(Principle{
			Key:     "dip",
			Name:    "Dependency Inversion",
			Summary: "depend on abstractions, not on concrete details",
			Package: "dip",
			Run:     dip.Run,
		})
}
