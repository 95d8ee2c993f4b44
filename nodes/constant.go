package nodes

// ConstantNode is a literal value. Text carries the literal exactly as the
// parser formatted it for the target dialect; Value is the runtime value and
// is nil for the null literal. EnumType names the declared enumeration type
// when the literal is an enum member, and is empty otherwise.
type ConstantNode struct {
	Text     string
	Value    any
	EnumType string
}

func (*ConstantNode) queryNode() {}

// Constant creates a ConstantNode from pre-formatted literal text.
func Constant(text string, value any) *ConstantNode {
	return &ConstantNode{Text: text, Value: value}
}

// EnumConstant creates a ConstantNode flagged as a member of the named
// enumeration type.
func EnumConstant(text, enumType string) *ConstantNode {
	return &ConstantNode{Text: text, Value: text, EnumType: enumType}
}

// Null creates the null literal.
func Null() *ConstantNode {
	return &ConstantNode{}
}

// ConvertNode is a transparent widening wrapper around Source. It carries no
// rendering of its own: translation passes straight through to Source.
type ConvertNode struct {
	Source Node
}

func (*ConvertNode) queryNode() {}

// Convert wraps a node in a ConvertNode.
func Convert(source Node) *ConvertNode {
	return &ConvertNode{Source: source}
}
