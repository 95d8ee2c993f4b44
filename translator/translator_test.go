package translator_test

import (
	"errors"
	"testing"

	"github.com/bawdo/docsql/internal/testutil"
	"github.com/bawdo/docsql/nodes"
	"github.com/bawdo/docsql/translator"
)

func newTranslator() *translator.Translator {
	return translator.New(nil)
}

func translate(t *testing.T, n nodes.Node) string {
	t.Helper()
	got, err := newTranslator().Translate(n)
	testutil.AssertNoError(t, err)
	return got
}

// --- Comparisons and logical operators ---

func TestBinaryComparisons(t *testing.T) {
	t.Parallel()
	cases := []struct {
		op   nodes.BinaryOp
		want string
	}{
		{nodes.OpEq, "c.age = 21"},
		{nodes.OpNotEq, "c.age != 21"},
		{nodes.OpGt, "c.age > 21"},
		{nodes.OpGtEq, "c.age >= 21"},
		{nodes.OpLt, "c.age < 21"},
		{nodes.OpLtEq, "c.age <= 21"},
	}
	for _, c := range cases {
		n := nodes.NewBinaryNode(c.op, nodes.Property("age"), nodes.Constant("21", 21))
		testutil.AssertEqual(t, translate(t, n), c.want)
	}
}

func TestLogicalOperators(t *testing.T) {
	t.Parallel()
	a := nodes.NewBinaryNode(nodes.OpEq, nodes.Property("a"), nodes.Constant("1", 1))
	b := nodes.NewBinaryNode(nodes.OpEq, nodes.Property("b"), nodes.Constant("2", 2))

	testutil.AssertEqual(t, translate(t, nodes.And(a, b)), "c.a = 1 AND c.b = 2")
	testutil.AssertEqual(t, translate(t, nodes.Or(a, b)), "c.a = 1 OR c.b = 2")
}

func TestUnsupportedOperator(t *testing.T) {
	t.Parallel()
	n := nodes.NewBinaryNode(nodes.OpAdd, nodes.Constant("1", 1), nodes.Constant("2", 2))

	_, err := newTranslator().Translate(n)
	testutil.AssertError(t, err)

	var opErr *translator.UnsupportedOperatorError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected UnsupportedOperatorError, got %T", err)
	}
	testutil.AssertEqual(t, opErr.Op, nodes.OpAdd)
}

func TestUnsupportedOperatorInsideOperand(t *testing.T) {
	t.Parallel()
	sum := nodes.NewBinaryNode(nodes.OpAdd, nodes.Property("a"), nodes.Constant("1", 1))
	n := nodes.NewBinaryNode(nodes.OpGt, sum, nodes.Constant("5", 5))

	_, err := newTranslator().Translate(n)
	var opErr *translator.UnsupportedOperatorError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected UnsupportedOperatorError, got %v", err)
	}
}

func TestNilNode(t *testing.T) {
	t.Parallel()
	_, err := newTranslator().Translate(nil)
	if !errors.Is(err, translator.ErrNilNode) {
		t.Fatalf("expected ErrNilNode, got %v", err)
	}
}

// --- Precedence-driven parenthesization ---

func TestPrecedencePairs(t *testing.T) {
	t.Parallel()

	// Representatives of each renderable precedence level: or=1, and=2,
	// comparisons=3. A child is parenthesized exactly when it binds
	// strictly looser than its parent.
	level := map[nodes.BinaryOp]int{nodes.OpOr: 1, nodes.OpAnd: 2, nodes.OpEq: 3}
	symbol := map[nodes.BinaryOp]string{nodes.OpOr: "OR", nodes.OpAnd: "AND", nodes.OpEq: "="}

	for parent, parentPrec := range level {
		for child, childPrec := range level {
			inner := nodes.NewBinaryNode(child, nodes.Property("a"), nodes.Property("b"))
			outer := nodes.NewBinaryNode(parent, inner, nodes.Property("x"))

			innerText := "c.a " + symbol[child] + " c.b"
			if childPrec < parentPrec {
				innerText = "(" + innerText + ")"
			}
			want := innerText + " " + symbol[parent] + " c.x"
			got := translate(t, outer)
			if got != want {
				t.Errorf("%v inside %v: got %q, want %q", child, parent, got, want)
			}
		}
	}
}

func TestPrecedenceSeesThroughConvert(t *testing.T) {
	t.Parallel()
	inner := nodes.Or(nodes.Property("a"), nodes.Property("b"))
	wrapped := nodes.Convert(nodes.Convert(inner))
	outer := nodes.And(wrapped, nodes.Property("x"))

	testutil.AssertEqual(t, translate(t, outer), "(c.a OR c.b) AND c.x")
}

func TestEqualPrecedenceNotParenthesized(t *testing.T) {
	t.Parallel()
	inner := nodes.And(nodes.Property("a"), nodes.Property("b"))
	outer := nodes.And(inner, nodes.Property("x"))

	testutil.AssertEqual(t, translate(t, outer), "c.a AND c.b AND c.x")
}

// --- Unary operators and search mode ---

func TestNegate(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, translate(t, nodes.Negate(nodes.Constant("5", 5))), "- 5")
	testutil.AssertEqual(t, translate(t, nodes.Negate(nodes.Property("n"))), "-(c.n)")
}

func TestNotSpellingPerMode(t *testing.T) {
	t.Parallel()
	tr := newTranslator()
	filterTree := nodes.Not(nodes.NewBinaryNode(nodes.OpEq, nodes.Property("a"), nodes.Constant("1", 1)))

	got, err := tr.TranslateFilter(filterTree)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "not(c.a = 1)")

	got, err = tr.TranslateSearch(nodes.Not(nodes.SearchTerm("blue")))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "NOT blue")

	// Search context applies per call only; the next filter translation
	// uses the filter spelling again.
	got, err = tr.TranslateFilter(filterTree)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "not(c.a = 1)")
}

func TestSearchModeRestoredAfterFailure(t *testing.T) {
	t.Parallel()
	tr := newTranslator()

	bad := nodes.Not(nodes.NewBinaryNode(nodes.OpHas, nodes.Property("a"), nodes.Constant("1", 1)))
	_, err := tr.TranslateSearch(bad)
	testutil.AssertError(t, err)

	got, err := tr.TranslateFilter(nodes.Not(nodes.Constant("true", true)))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "not true")
}

// --- Constants ---

func TestConstants(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, translate(t, nodes.Constant("'x'", "x")), "'x'")
	testutil.AssertEqual(t, translate(t, nodes.Null()), "null")
	testutil.AssertEqual(t, translate(t, nodes.EnumConstant("Mon", "Org.Day")), "'Mon'")
}

func TestEnumLiteralEscaping(t *testing.T) {
	t.Parallel()
	got := translate(t, nodes.EnumConstant("O'Brien", "Org.Name"))
	testutil.AssertEqual(t, got, "'O''Brien'")
}

// --- Property access and range variables ---

func TestImplicitRootCollapses(t *testing.T) {
	t.Parallel()
	bare := nodes.Property("name")
	viaRoot := nodes.PropertyOf(nodes.EntityRangeVar(nodes.ImplicitVar), "name")

	testutil.AssertEqual(t, translate(t, bare), "c.name")
	testutil.AssertEqual(t, translate(t, viaRoot), "c.name")
}

func TestQualifiedAccess(t *testing.T) {
	t.Parallel()
	n := nodes.PropertyOf(nodes.Property("owner"), "name")
	testutil.AssertEqual(t, translate(t, n), "c.owner.name")
}

func TestRangeVariables(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, translate(t, nodes.EntityRangeVar("e")), "e")
	testutil.AssertEqual(t, translate(t, nodes.RangeVar("$it")), "$it")
	testutil.AssertEqual(t, translate(t, nodes.EntityRangeVar(nodes.ImplicitVar)), "")
}

func TestOpenProperty(t *testing.T) {
	t.Parallel()
	n := nodes.OpenPropertyOf(nodes.Property("data"), "anything")
	testutil.AssertEqual(t, translate(t, n), "c.data.anything")
}

func TestCastRendersAsTypeAccess(t *testing.T) {
	t.Parallel()
	n := nodes.Cast(nodes.Property("pet"), "Org.Dog")
	testutil.AssertEqual(t, translate(t, n), "c.pet.Org.Dog")

	root := nodes.Cast(nodes.EntityRangeVar(nodes.ImplicitVar), "Org.Dog")
	testutil.AssertEqual(t, translate(t, root), "c.Org.Dog")
}

// --- Quantifiers ---

func TestQuantifiers(t *testing.T) {
	t.Parallel()
	body := nodes.NewBinaryNode(nodes.OpEq, nodes.RangeVar("t"), nodes.Constant("'go'", "go"))
	tags := nodes.Property("tags")

	testutil.AssertEqual(t, translate(t, nodes.All(tags, "t", body)), "c.tags/all(t:t = 'go')")
	testutil.AssertEqual(t, translate(t, nodes.Any(tags, "t", body)), "c.tags/any(t:t = 'go')")
	testutil.AssertEqual(t, translate(t, nodes.AnyMember(tags)), "c.tags/any()")
}

// --- Functions, parameters, search terms ---

func TestFunctionCalls(t *testing.T) {
	t.Parallel()
	n := nodes.Function("contains", nodes.Property("name"), nodes.Constant("'go'", "go"))
	testutil.AssertEqual(t, translate(t, n), "contains(c.name,'go')")

	testutil.AssertEqual(t, translate(t, nodes.Function("now")), "now()")

	m := nodes.Method(nodes.Property("name"), "tolower")
	testutil.AssertEqual(t, translate(t, m), "c.name.tolower()")
}

func TestNamedParameter(t *testing.T) {
	t.Parallel()
	n := nodes.Function("fn", nodes.NamedParameter("depth", nodes.Constant("3", 3)))
	testutil.AssertEqual(t, translate(t, n), "fn(depth=3)")
}

func TestParameterAliasAndSearchTerm(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, translate(t, nodes.ParameterAlias("@p1")), "@p1")
	testutil.AssertEqual(t, translate(t, nodes.SearchTerm("blue bike")), "blue bike")
}

// --- Order-by ---

func TestTranslateOrderBy(t *testing.T) {
	t.Parallel()
	chain := nodes.OrderBy(nodes.Property("a"), nodes.Asc).
		Then(nodes.Property("b"), nodes.Desc).
		Then(nodes.Property("c"), nodes.Asc)

	got, err := newTranslator().TranslateOrderBy(chain)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "c.a asc, c.b desc, c.c asc")
}

func TestTranslateOrderByNil(t *testing.T) {
	t.Parallel()
	got, err := newTranslator().TranslateOrderBy(nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "")
}

// --- Alias maps ---

func TestTranslateAliases(t *testing.T) {
	t.Parallel()
	aliases := map[string]nodes.Node{
		"b": nodes.EntityRangeVar(nodes.ImplicitVar), // renders empty, skipped
		"a": nodes.Constant("1", 1),
		"q": nodes.Constant("'a b'", "a b"),
		"n": nil,
	}

	got, err := newTranslator().TranslateAliases(aliases)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "a=1&q=%27a+b%27")
}

func TestTranslateAliasesEmpty(t *testing.T) {
	t.Parallel()
	got, err := newTranslator().TranslateAliases(nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "")
}

func TestTranslateAliasesPropagatesErrors(t *testing.T) {
	t.Parallel()
	aliases := map[string]nodes.Node{
		"bad": nodes.NewBinaryNode(nodes.OpMul, nodes.Constant("1", 1), nodes.Constant("2", 2)),
	}
	_, err := newTranslator().TranslateAliases(aliases)
	testutil.AssertError(t, err)
}

// --- Formatter agnosticism ---

func TestStubFormatter(t *testing.T) {
	t.Parallel()
	tr := translator.New(testutil.StubFormatter{})

	got, err := tr.Translate(nodes.PropertyOf(nodes.Property("owner"), "name"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "<owner>!name")

	got, err = tr.Translate(nodes.EnumConstant("Mon", "Org.Day"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "enum(Org.Day:Mon)")
}

func TestCustomRootAlias(t *testing.T) {
	t.Parallel()
	tr := translator.New(translator.NewDocumentFormatterWithAlias("doc"))

	got, err := tr.Translate(nodes.Property("name"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "doc.name")
}
