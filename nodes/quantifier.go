package nodes

// QuantifierKind selects between the all and any quantifiers.
type QuantifierKind int

const (
	QuantifierAll QuantifierKind = iota
	QuantifierAny
)

func (k QuantifierKind) String() string {
	if k == QuantifierAll {
		return "all"
	}
	return "any"
}

// QuantifierNode applies all/any over a collection-valued Source. Var is the
// bound range variable name; it is empty for the parameterless any, whose
// Body the parser fills with a constant.
type QuantifierNode struct {
	Kind   QuantifierKind
	Source Node
	Var    string
	Body   Node
}

func (*QuantifierNode) queryNode() {}

// All quantifies source with a predicate that must hold for every member.
func All(source Node, rangeVar string, body Node) *QuantifierNode {
	return &QuantifierNode{Kind: QuantifierAll, Source: source, Var: rangeVar, Body: body}
}

// Any quantifies source with a predicate that must hold for some member.
func Any(source Node, rangeVar string, body Node) *QuantifierNode {
	return &QuantifierNode{Kind: QuantifierAny, Source: source, Var: rangeVar, Body: body}
}

// AnyMember is the parameterless any: true when source has any member.
func AnyMember(source Node) *QuantifierNode {
	return &QuantifierNode{Kind: QuantifierAny, Source: source, Body: Constant("true", true)}
}
