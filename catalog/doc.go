// Package catalog exposes the five SOLID demos behind a small read-only registry.
//
// Keys are the lower-case acronyms ("srp", "ocp", "lsp", "isp", "dip"). The registry
// preserves registration order so Default() lists the principles in S-O-L-I-D order.
package catalog
