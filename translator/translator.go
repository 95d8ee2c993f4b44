// Package translator renders query trees as document SQL fragments.
//
// The Translator walks the nodes union and produces one string fragment per
// tree, delegating all field and enum rendering to a FieldFormatter. It
// carries no mutable state: the search-mode context is a parameter threaded
// through the recursion, so one instance is safe for concurrent use.
package translator

import (
	"net/url"
	"sort"
	"strings"

	"github.com/bawdo/docsql/nodes"
)

// mode selects the keyword spelling context for a translation.
type mode int

const (
	modeFilter mode = iota
	modeSearch
)

// Dialect keywords. Logical not has two spellings: the filter grammar's
// lower-case keyword and the search grammar's upper-case one.
const (
	nullKeyword   = "null"
	negateToken   = "-"
	notFilterWord = "not"
	notSearchWord = "NOT"
)

// binarySymbols maps the operators the dialect can express to their symbols.
// Operators absent here (arithmetic, has) have no rendering and surface as
// an UnsupportedOperatorError.
var binarySymbols = map[nodes.BinaryOp]string{
	nodes.OpEq:    "=",
	nodes.OpNotEq: "!=",
	nodes.OpGt:    ">",
	nodes.OpGtEq:  ">=",
	nodes.OpLt:    "<",
	nodes.OpLtEq:  "<=",
	nodes.OpAnd:   "AND",
	nodes.OpOr:    "OR",
}

// precedences assigns every operator an explicit binding strength, higher
// binding tighter. Lookups return an ok bool; an operator outside the table
// never participates in parenthesization decisions.
var precedences = map[nodes.BinaryOp]int{
	nodes.OpOr:    1,
	nodes.OpAnd:   2,
	nodes.OpEq:    3,
	nodes.OpNotEq: 3,
	nodes.OpGt:    3,
	nodes.OpGtEq:  3,
	nodes.OpLt:    3,
	nodes.OpLtEq:  3,
	nodes.OpAdd:   4,
	nodes.OpSub:   4,
	nodes.OpMul:   5,
	nodes.OpDiv:   5,
	nodes.OpMod:   5,
	nodes.OpHas:   6,
}

// Translator converts query trees into document SQL strings. The zero value
// is not usable; construct with New.
type Translator struct {
	formatter FieldFormatter
}

// New creates a Translator backed by the given formatter. A nil formatter
// falls back to the default DocumentFormatter.
func New(formatter FieldFormatter) *Translator {
	if formatter == nil {
		formatter = NewDocumentFormatter()
	}
	return &Translator{formatter: formatter}
}

// Translate renders a single expression tree in filter context.
func (t *Translator) Translate(n nodes.Node) (string, error) {
	return t.translate(n, modeFilter)
}

// TranslateFilter renders a filter clause's root expression.
func (t *Translator) TranslateFilter(n nodes.Node) (string, error) {
	return t.translate(n, modeFilter)
}

// TranslateSearch renders a search clause's root expression. Search context
// applies to exactly this call; it cannot leak into later translations.
func (t *Translator) TranslateSearch(n nodes.Node) (string, error) {
	return t.translate(n, modeSearch)
}

// TranslateOrderBy renders an order-by chain in declaration order, each
// expression followed by its direction keyword, pairs joined with ", ".
// A nil chain renders as the empty string.
func (t *Translator) TranslateOrderBy(chain *nodes.OrderByClause) (string, error) {
	var parts []string
	for c := chain; c != nil; c = c.ThenBy {
		expr, err := t.translate(c.Expr, modeFilter)
		if err != nil {
			return "", err
		}
		parts = append(parts, expr+" "+c.Direction.String())
	}
	return strings.Join(parts, ", "), nil
}

// TranslateAliases renders a parameter-alias map as URL query pairs joined
// with "&". Alias names are sorted for determinism; nil values and values
// that render empty are skipped, so a non-empty result never contains an
// empty pair and the empty string unambiguously means "nothing to render".
func (t *Translator) TranslateAliases(aliases map[string]nodes.Node) (string, error) {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	var pairs []string
	for _, name := range names {
		value := aliases[name]
		if value == nil {
			continue
		}
		rendered, err := t.translate(value, modeFilter)
		if err != nil {
			return "", err
		}
		if rendered == "" {
			continue
		}
		pairs = append(pairs, name+"="+url.QueryEscape(rendered))
	}
	return strings.Join(pairs, "&"), nil
}

// translate is the recursive worker. The switch is exhaustive over the node
// union; the default arm is reachable only if a new variant is added without
// a matching arm here, and reports that defect instead of guessing.
func (t *Translator) translate(n nodes.Node, m mode) (string, error) {
	switch n := n.(type) {
	case nil:
		return "", ErrNilNode
	case *nodes.BinaryNode:
		return t.translateBinary(n, m)
	case *nodes.UnaryNode:
		return t.translateUnary(n, m)
	case *nodes.ConstantNode:
		return t.translateConstant(n), nil
	case *nodes.ConvertNode:
		return t.translate(n.Source, m)
	case *nodes.PropertyNode:
		return t.access(n.Source, n.Name, m)
	case *nodes.CastNode:
		return t.access(n.Source, n.TypeName, m)
	case *nodes.RangeVarNode:
		if n.Entity && n.Name == nodes.ImplicitVar {
			return "", nil
		}
		return n.Name, nil
	case *nodes.QuantifierNode:
		return t.translateQuantifier(n, m)
	case *nodes.FunctionNode:
		return t.translateFunction(n, m)
	case *nodes.NamedParameterNode:
		value, err := t.translate(n.Value, m)
		if err != nil {
			return "", err
		}
		return n.Name + "=" + value, nil
	case *nodes.ParameterAliasNode:
		return n.Alias, nil
	case *nodes.SearchTermNode:
		return n.Text, nil
	default:
		return "", &UnsupportedNodeError{Node: n}
	}
}

func (t *Translator) translateBinary(n *nodes.BinaryNode, m mode) (string, error) {
	symbol, ok := binarySymbols[n.Op]
	if !ok {
		return "", &UnsupportedOperatorError{Op: n.Op}
	}
	left, err := t.operand(n.Left, n.Op, m)
	if err != nil {
		return "", err
	}
	right, err := t.operand(n.Right, n.Op, m)
	if err != nil {
		return "", err
	}
	return left + " " + symbol + " " + right, nil
}

// operand renders one side of a binary expression, parenthesizing it when
// its Convert-unwrapped root is a binary operator binding strictly looser
// than the parent.
func (t *Translator) operand(child nodes.Node, parent nodes.BinaryOp, m mode) (string, error) {
	rendered, err := t.translate(child, m)
	if err != nil {
		return "", err
	}
	if inner, ok := unwrap(child).(*nodes.BinaryNode); ok {
		childPrec, childOK := precedences[inner.Op]
		parentPrec, parentOK := precedences[parent]
		if childOK && parentOK && childPrec < parentPrec {
			return "(" + rendered + ")", nil
		}
	}
	return rendered, nil
}

// unwrap strips any chain of transparent Convert wrappers.
func unwrap(n nodes.Node) nodes.Node {
	for {
		c, ok := n.(*nodes.ConvertNode)
		if !ok {
			return n
		}
		n = c.Source
	}
}

func (t *Translator) translateUnary(n *nodes.UnaryNode, m mode) (string, error) {
	var token string
	switch n.Op {
	case nodes.OpNegate:
		token = negateToken
	case nodes.OpNot:
		token = notFilterWord
		if m == modeSearch {
			token = notSearchWord
		}
	}
	operand, err := t.translate(n.Operand, m)
	if err != nil {
		return "", err
	}
	switch n.Operand.(type) {
	case *nodes.ConstantNode, *nodes.SearchTermNode:
		return token + " " + operand, nil
	}
	return token + "(" + operand + ")", nil
}

func (t *Translator) translateConstant(n *nodes.ConstantNode) string {
	if n.Value == nil {
		return nullKeyword
	}
	if n.EnumType != "" {
		return t.formatter.EnumLiteral(n.Text, n.EnumType)
	}
	return n.Text
}

func (t *Translator) translateQuantifier(n *nodes.QuantifierNode, m mode) (string, error) {
	source, err := t.translate(n.Source, m)
	if err != nil {
		return "", err
	}
	if n.Kind == nodes.QuantifierAny && n.Var == "" {
		if _, ok := n.Body.(*nodes.ConstantNode); ok {
			return source + "/any()", nil
		}
	}
	body, err := t.translate(n.Body, m)
	if err != nil {
		return "", err
	}
	return source + "/" + n.Kind.String() + "(" + n.Var + ":" + body + ")", nil
}

func (t *Translator) translateFunction(n *nodes.FunctionNode, m mode) (string, error) {
	target := n.Name
	if n.Source != nil {
		qualified, err := t.access(n.Source, n.Name, m)
		if err != nil {
			return "", err
		}
		target = qualified
	}
	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		rendered, err := t.translate(arg, m)
		if err != nil {
			return "", err
		}
		args[i] = rendered
	}
	return target + "(" + strings.Join(args, ",") + ")", nil
}

// access renders a property-style reference. An absent or collapsed source
// takes the bare-field formatter path; anything else takes the qualified
// path rooted at the rendered source.
func (t *Translator) access(source nodes.Node, name string, m mode) (string, error) {
	prefix := ""
	if source != nil {
		rendered, err := t.translate(source, m)
		if err != nil {
			return "", err
		}
		prefix = rendered
	}
	if prefix == "" {
		return t.formatter.FieldName(name), nil
	}
	return t.formatter.Qualify(prefix, name), nil
}
