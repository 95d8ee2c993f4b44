package nodes

// QueryOptions bundles the parsed clauses of one query. Every field is
// optional: a nil root or empty string means the clause was not supplied.
// The translator only reads this struct.
type QueryOptions struct {
	// Filter is the root of the filter predicate tree.
	Filter Node

	// OrderBy is the head of the order-by chain.
	OrderBy *OrderByClause

	// Select is the caller's raw comma-separated projection list.
	Select string

	// Top limits the result count when non-nil and positive.
	Top *int

	// Search is the root of the search expression tree.
	Search Node
}

// TopValue returns the top count and whether a positive one is present.
func (o *QueryOptions) TopValue() (int, bool) {
	if o.Top != nil && *o.Top > 0 {
		return *o.Top, true
	}
	return 0, false
}
