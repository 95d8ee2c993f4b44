// Package query assembles full document SQL queries from parsed query
// options. It sits on top of the translator: the translator renders each
// clause's expression tree, and the assembler stitches the fragments
// together with SELECT/FROM/WHERE/ORDER BY glue and the type-discriminator
// predicate every stored document carries.
package query

import (
	"strconv"
	"strings"

	"github.com/bawdo/docsql/internal/quoting"
	"github.com/bawdo/docsql/nodes"
	"github.com/bawdo/docsql/translator"
)

// PagingOptions is the external paging configuration the legacy query form
// mutates. MaxItemCount is set only when a positive top count is present.
type PagingOptions struct {
	MaxItemCount int
}

// Clause selects which parts of a query TranslateClauses renders.
type Clause uint

const (
	ClauseSelect Clause = 1 << iota
	ClauseWhere
	ClauseOrderBy
	ClauseTop

	ClauseAll = ClauseSelect | ClauseWhere | ClauseOrderBy | ClauseTop
)

// DefaultDiscriminator is the document field asserting the stored record's
// declared type.
const DefaultDiscriminator = "_t"

// Assembler builds query strings for one document collection configuration.
// Construct with New; the zero value is not usable.
type Assembler struct {
	formatter     translator.FieldFormatter
	tr            *translator.Translator
	root          string
	discriminator string
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithFormatter overrides the field formatter. The default is a
// DocumentFormatter rooted at the configured alias.
func WithFormatter(f translator.FieldFormatter) Option {
	return func(a *Assembler) { a.formatter = f }
}

// WithRootAlias sets the document root alias used in FROM clauses and, when
// no explicit formatter is supplied, for field qualification.
func WithRootAlias(alias string) Option {
	return func(a *Assembler) {
		if alias != "" {
			a.root = alias
		}
	}
}

// WithDiscriminator sets the type-discriminator field name.
func WithDiscriminator(field string) Option {
	return func(a *Assembler) {
		if field != "" {
			a.discriminator = field
		}
	}
}

// New creates an Assembler. Defaults: root alias "c", discriminator "_t",
// DocumentFormatter.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		root:          translator.DefaultRootAlias,
		discriminator: DefaultDiscriminator,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.formatter == nil {
		a.formatter = translator.NewDocumentFormatterWithAlias(a.root)
	}
	a.tr = translator.New(a.formatter)
	return a
}

// Translator returns the node translator the assembler renders clauses with.
func (a *Assembler) Translator() *translator.Translator { return a.tr }

// TranslateQuery renders the legacy full-query form: select everything from
// the document root, assert the upper-cased type discriminator, AND on the
// translated filter when present, and append ORDER BY when present. A
// positive top count is copied into paging rather than rendered; the legacy
// consumer paged server-side. Translation failures propagate and leave
// paging untouched.
func (a *Assembler) TranslateQuery(opts *nodes.QueryOptions, entityType string, paging *PagingOptions) (string, error) {
	if opts == nil {
		opts = &nodes.QueryOptions{}
	}

	where := a.formatter.FieldName(a.discriminator) +
		" = '" + quoting.EscapeString(strings.ToUpper(entityType)) + "'"
	if opts.Filter != nil {
		filter, err := a.tr.TranslateFilter(opts.Filter)
		if err != nil {
			return "", err
		}
		where += " AND " + filter
	}

	sql := "SELECT * FROM " + a.root + " WHERE " + where
	if opts.OrderBy != nil {
		orderBy, err := a.tr.TranslateOrderBy(opts.OrderBy)
		if err != nil {
			return "", err
		}
		sql += " ORDER BY " + orderBy
	}

	if top, ok := opts.TopValue(); ok && paging != nil {
		paging.MaxItemCount = top
	}
	return sql, nil
}

// TranslateClauses renders only the requested clauses, concatenated in
// SELECT, WHERE, ORDER BY order. TOP is inlined into the SELECT clause when
// both are requested and a positive top count exists. extraWhere, when
// non-empty, is ANDed in front of the translated filter; the WHERE keyword
// is omitted entirely when both predicates are absent. Failures surface as
// an error, never as an empty-but-valid query.
func (a *Assembler) TranslateClauses(opts *nodes.QueryOptions, clauses Clause, extraWhere string) (string, error) {
	if opts == nil {
		opts = &nodes.QueryOptions{}
	}
	var parts []string

	if clauses&ClauseSelect != 0 {
		sel := "SELECT "
		if clauses&ClauseTop != 0 {
			if top, ok := opts.TopValue(); ok {
				sel += "TOP " + strconv.Itoa(top) + " "
			}
		}
		parts = append(parts, sel+a.projection(opts.Select))
	}

	if clauses&ClauseWhere != 0 {
		var preds []string
		if extraWhere != "" {
			preds = append(preds, extraWhere)
		}
		if opts.Filter != nil {
			filter, err := a.tr.TranslateFilter(opts.Filter)
			if err != nil {
				return "", err
			}
			preds = append(preds, filter)
		}
		if len(preds) > 0 {
			parts = append(parts, "WHERE "+strings.Join(preds, " AND "))
		}
	}

	if clauses&ClauseOrderBy != 0 && opts.OrderBy != nil {
		orderBy, err := a.tr.TranslateOrderBy(opts.OrderBy)
		if err != nil {
			return "", err
		}
		parts = append(parts, "ORDER BY "+orderBy)
	}

	return strings.Join(parts, " "), nil
}

// projection renders the SELECT list: the caller's comma-separated names,
// trimmed and qualified, or * when no list was supplied.
func (a *Assembler) projection(selectList string) string {
	if selectList == "" {
		return "*"
	}
	names := strings.Split(selectList, ",")
	fields := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		fields = append(fields, a.formatter.FieldName(name))
	}
	if len(fields) == 0 {
		return "*"
	}
	return strings.Join(fields, ", ")
}
