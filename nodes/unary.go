package nodes

// UnaryOp identifies a unary prefix operator.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNegate
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "not"
	case OpNegate:
		return "negate"
	}
	return "unknown"
}

// UnaryNode represents Op Operand.
type UnaryNode struct {
	Op      UnaryOp
	Operand Node
}

func (*UnaryNode) queryNode() {}

// Not negates a predicate.
func Not(operand Node) *UnaryNode {
	return &UnaryNode{Op: OpNot, Operand: operand}
}

// Negate arithmetically negates a value.
func Negate(operand Node) *UnaryNode {
	return &UnaryNode{Op: OpNegate, Operand: operand}
}
