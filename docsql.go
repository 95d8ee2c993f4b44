// Package docsql translates parsed filter/order/search query trees into
// document database SQL.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/bawdo/docsql/nodes (query tree)
//   - github.com/bawdo/docsql/translator (tree-to-string translation)
//   - github.com/bawdo/docsql/query (clause assembly)
package docsql

import (
	"github.com/bawdo/docsql/nodes"
	"github.com/bawdo/docsql/query"
	"github.com/bawdo/docsql/translator"
)

// --- Core Types ---

// Node is the interface all query tree nodes implement.
type Node = nodes.Node

// QueryOptions bundles the parsed clauses of one query.
type QueryOptions = nodes.QueryOptions

// Translator renders query trees as document SQL fragments.
type Translator = translator.Translator

// FieldFormatter renders field references and enum literals.
type FieldFormatter = translator.FieldFormatter

// Assembler builds full query strings from query options.
type Assembler = query.Assembler

// PagingOptions is the paging configuration the legacy query form mutates.
type PagingOptions = query.PagingOptions

// --- Constructors ---

// NewTranslator creates a translator with the default document formatter.
func NewTranslator() *translator.Translator {
	return translator.New(nil)
}

// NewAssembler creates a clause assembler with the default configuration.
func NewAssembler(opts ...query.Option) *query.Assembler {
	return query.New(opts...)
}

// --- Common Node Constructors ---

// Property creates a single-value property access on the implicit root.
func Property(name string) *nodes.PropertyNode {
	return nodes.Property(name)
}

// Constant creates a literal from pre-formatted text.
func Constant(text string, value any) *nodes.ConstantNode {
	return nodes.Constant(text, value)
}

// And combines two predicates.
func And(left, right Node) *nodes.BinaryNode {
	return nodes.And(left, right)
}

// Or combines two predicates.
func Or(left, right Node) *nodes.BinaryNode {
	return nodes.Or(left, right)
}

// Not negates a predicate.
func Not(operand Node) *nodes.UnaryNode {
	return nodes.Not(operand)
}

// OrderBy starts an order-by chain.
func OrderBy(expr Node, dir nodes.Direction) *nodes.OrderByClause {
	return nodes.OrderBy(expr, dir)
}
