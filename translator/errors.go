package translator

import (
	"errors"
	"fmt"

	"github.com/bawdo/docsql/nodes"
)

// ErrNilNode reports a nil node where an expression was required.
var ErrNilNode = errors.New("translator: nil node")

// UnsupportedNodeError reports a node variant the translator has no arm for.
// Seeing one means the tree and the translator disagree about the node union,
// which is a defect rather than a runtime condition.
type UnsupportedNodeError struct {
	Node nodes.Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("translator: unsupported node %T", e.Node)
}

// UnsupportedOperatorError reports a binary operator with no symbol in the
// target dialect.
type UnsupportedOperatorError struct {
	Op nodes.BinaryOp
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("translator: operator %q has no dialect symbol", e.Op)
}
