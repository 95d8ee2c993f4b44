package nodes

// Direction represents ascending or descending ordering.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// OrderByClause is one (expression, direction) pair of an order-by chain.
// ThenBy links the next pair; the chain renders in declaration order.
type OrderByClause struct {
	Expr      Node
	Direction Direction
	ThenBy    *OrderByClause
}

// OrderBy starts an order-by chain.
func OrderBy(expr Node, dir Direction) *OrderByClause {
	return &OrderByClause{Expr: expr, Direction: dir}
}

// Then appends a pair to the end of the chain and returns the head, so
// chains read head-first: OrderBy(a, Asc).Then(b, Desc).
func (c *OrderByClause) Then(expr Node, dir Direction) *OrderByClause {
	last := c
	for last.ThenBy != nil {
		last = last.ThenBy
	}
	last.ThenBy = &OrderByClause{Expr: expr, Direction: dir}
	return c
}
