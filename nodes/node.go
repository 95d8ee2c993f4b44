// Package nodes defines the query tree consumed by the translator.
//
// The tree is produced by an external query-language parser; this package
// only describes its shape. Node is a closed union: every variant lives in
// this package, and the translator handles each one explicitly. A node owns
// its children exclusively and the tree is finite and acyclic.
package nodes

// Node is the interface all query tree nodes implement. The union is sealed
// by the unexported marker method so new variants can only be added here,
// alongside the translator arm that renders them.
type Node interface {
	queryNode()
}

// ImplicitVar is the range variable name denoting the implicit query root.
// An entity range variable with this name renders as an empty prefix.
const ImplicitVar = "$it"
