package nodes

// FunctionNode is a function call. Source, when present, is the receiver the
// call is qualified by; Args are rendered in order.
type FunctionNode struct {
	Name   string
	Source Node
	Args   []Node
}

func (*FunctionNode) queryNode() {}

// Function creates an unqualified function call.
func Function(name string, args ...Node) *FunctionNode {
	return &FunctionNode{Name: name, Args: args}
}

// Method creates a function call qualified by a receiver.
func Method(source Node, name string, args ...Node) *FunctionNode {
	return &FunctionNode{Name: name, Source: source, Args: args}
}

// NamedParameterNode is a name=value function argument.
type NamedParameterNode struct {
	Name  string
	Value Node
}

func (*NamedParameterNode) queryNode() {}

// NamedParameter creates a named function parameter.
func NamedParameter(name string, value Node) *NamedParameterNode {
	return &NamedParameterNode{Name: name, Value: value}
}

// ParameterAliasNode references a parameter alias (e.g. @p1) by name. It
// renders verbatim.
type ParameterAliasNode struct {
	Alias string
}

func (*ParameterAliasNode) queryNode() {}

// ParameterAlias creates a parameter alias reference.
func ParameterAlias(alias string) *ParameterAliasNode {
	return &ParameterAliasNode{Alias: alias}
}

// SearchTermNode is a raw search term inside a search clause. It renders
// verbatim.
type SearchTermNode struct {
	Text string
}

func (*SearchTermNode) queryNode() {}

// SearchTerm creates a raw search term.
func SearchTerm(text string) *SearchTermNode {
	return &SearchTermNode{Text: text}
}
