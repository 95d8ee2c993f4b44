package nodes

// PropertyKind distinguishes the flavors of property access. Rendering is
// identical for all of them; the kind records what the parser saw.
type PropertyKind int

const (
	SingleProperty PropertyKind = iota
	CollectionProperty
	SingleNavigation
	CollectionNavigation
	OpenProperty
)

// PropertyNode is a property or navigation access. Source is nil for a bare
// top-level access. NavTarget carries the navigation target identity when
// the parser resolved one; it does not affect rendering today but is passed
// through to the field formatter layer.
type PropertyNode struct {
	Kind      PropertyKind
	Source    Node
	Name      string
	NavTarget string
}

func (*PropertyNode) queryNode() {}

// Property creates a single-value property access on the implicit root.
func Property(name string) *PropertyNode {
	return &PropertyNode{Kind: SingleProperty, Source: EntityRangeVar(ImplicitVar), Name: name}
}

// PropertyOf creates a single-value property access on an explicit source.
func PropertyOf(source Node, name string) *PropertyNode {
	return &PropertyNode{Kind: SingleProperty, Source: source, Name: name}
}

// OpenPropertyOf creates a dynamic property access on an explicit source.
func OpenPropertyOf(source Node, name string) *PropertyNode {
	return &PropertyNode{Kind: OpenProperty, Source: source, Name: name}
}

// CastKind distinguishes the flavors of type cast. Rendering is identical.
type CastKind int

const (
	SingleCast CastKind = iota
	EntityCast
	CollectionCast
)

// CastNode narrows or widens Source to the named type. It renders as a
// property access using the target type's full name.
type CastNode struct {
	Kind     CastKind
	Source   Node
	TypeName string
}

func (*CastNode) queryNode() {}

// Cast creates a single-value cast.
func Cast(source Node, typeName string) *CastNode {
	return &CastNode{Kind: SingleCast, Source: source, TypeName: typeName}
}

// RangeVarNode references a range variable bound by a quantifier, or the
// implicit root. Entity distinguishes entity-typed range variables, whose
// ImplicitVar spelling collapses to an empty prefix.
type RangeVarNode struct {
	Name   string
	Entity bool
}

func (*RangeVarNode) queryNode() {}

// EntityRangeVar references an entity-typed range variable.
func EntityRangeVar(name string) *RangeVarNode {
	return &RangeVarNode{Name: name, Entity: true}
}

// RangeVar references a non-entity range variable.
func RangeVar(name string) *RangeVarNode {
	return &RangeVarNode{Name: name}
}
