package nodes

// BinaryOp identifies a binary operator.
type BinaryOp int

const (
	OpEq BinaryOp = iota
	OpNotEq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
	OpAnd
	OpOr
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpHas
)

var binaryOpNames = [...]string{
	OpEq:    "eq",
	OpNotEq: "ne",
	OpGt:    "gt",
	OpGtEq:  "ge",
	OpLt:    "lt",
	OpLtEq:  "le",
	OpAnd:   "and",
	OpOr:    "or",
	OpAdd:   "add",
	OpSub:   "sub",
	OpMul:   "mul",
	OpDiv:   "div",
	OpMod:   "mod",
	OpHas:   "has",
}

func (op BinaryOp) String() string {
	if op >= 0 && int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "unknown"
}

// BinaryNode represents Left Op Right.
type BinaryNode struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

func (*BinaryNode) queryNode() {}

// NewBinaryNode creates a BinaryNode.
func NewBinaryNode(op BinaryOp, left, right Node) *BinaryNode {
	return &BinaryNode{Op: op, Left: left, Right: right}
}

// And combines two predicates with OpAnd.
func And(left, right Node) *BinaryNode {
	return NewBinaryNode(OpAnd, left, right)
}

// Or combines two predicates with OpOr.
func Or(left, right Node) *BinaryNode {
	return NewBinaryNode(OpOr, left, right)
}
