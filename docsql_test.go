package docsql_test

import (
	"testing"

	"github.com/bawdo/docsql"
	"github.com/bawdo/docsql/internal/testutil"
	"github.com/bawdo/docsql/nodes"
	"github.com/bawdo/docsql/query"
)

// End-to-end: options built through the root package render a full query.
func TestFullQueryRoundTrip(t *testing.T) {
	t.Parallel()
	ten := 10
	opts := &docsql.QueryOptions{
		Filter: docsql.And(
			nodes.NewBinaryNode(nodes.OpGtEq, docsql.Property("age"), docsql.Constant("18", 18)),
			docsql.Or(
				nodes.NewBinaryNode(nodes.OpEq, docsql.Property("city"), docsql.Constant("'Oslo'", "Oslo")),
				nodes.NewBinaryNode(nodes.OpEq, docsql.Property("city"), docsql.Constant("'Bergen'", "Bergen")),
			),
		),
		OrderBy: docsql.OrderBy(docsql.Property("name"), nodes.Asc),
		Top:     &ten,
	}

	var paging docsql.PagingOptions
	sql, err := docsql.NewAssembler().TranslateQuery(opts, "Person", &paging)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql,
		"SELECT * FROM c WHERE c._t = 'PERSON' AND c.age >= 18 AND "+
			"(c.city = 'Oslo' OR c.city = 'Bergen') ORDER BY c.name asc")
	testutil.AssertEqual(t, paging.MaxItemCount, 10)
}

func TestFlagDrivenRoundTrip(t *testing.T) {
	t.Parallel()
	five := 5
	opts := &docsql.QueryOptions{
		Filter:  docsql.Not(nodes.NewBinaryNode(nodes.OpEq, docsql.Property("done"), docsql.Constant("true", true))),
		Select:  "id, title",
		OrderBy: docsql.OrderBy(docsql.Property("due"), nodes.Desc),
		Top:     &five,
	}

	sql, err := docsql.NewAssembler().TranslateClauses(opts, query.ClauseAll, "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql,
		"SELECT TOP 5 c.id, c.title WHERE not(c.done = true) ORDER BY c.due desc")
}

func TestSearchTranslation(t *testing.T) {
	t.Parallel()
	tree := docsql.And(
		nodes.SearchTerm("bike"),
		docsql.Not(nodes.SearchTerm("mountain")),
	)

	got, err := docsql.NewTranslator().TranslateSearch(tree)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "bike AND NOT mountain")
}
