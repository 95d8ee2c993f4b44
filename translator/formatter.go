package translator

import "github.com/bawdo/docsql/internal/quoting"

// FieldFormatter renders field references and enum literals in the target
// dialect. The translator depends on this capability and nothing else; any
// implementation satisfying the contract works.
type FieldFormatter interface {
	// FieldName renders a bare top-level field reference.
	FieldName(name string) string

	// Qualify renders a field access rooted at an already-rendered,
	// non-empty source fragment.
	Qualify(source, name string) string

	// EnumLiteral renders an enumeration constant given its literal text
	// and declared type name.
	EnumLiteral(text, typeName string) string
}

// DocumentFormatter renders references for the document SQL dialect: bare
// fields are qualified with the document root alias (c.name), nested access
// is dotted, and enum members render as escaped string literals.
type DocumentFormatter struct {
	alias string
}

var _ FieldFormatter = DocumentFormatter{}

// NewDocumentFormatter creates a DocumentFormatter with the default document
// root alias "c".
func NewDocumentFormatter() DocumentFormatter {
	return DocumentFormatter{alias: DefaultRootAlias}
}

// NewDocumentFormatterWithAlias creates a DocumentFormatter rooted at the
// given alias.
func NewDocumentFormatterWithAlias(alias string) DocumentFormatter {
	if alias == "" {
		alias = DefaultRootAlias
	}
	return DocumentFormatter{alias: alias}
}

// RootAlias returns the document root alias the formatter qualifies bare
// fields with.
func (f DocumentFormatter) RootAlias() string { return f.alias }

func (f DocumentFormatter) FieldName(name string) string {
	return f.alias + "." + name
}

func (f DocumentFormatter) Qualify(source, name string) string {
	return source + "." + name
}

func (f DocumentFormatter) EnumLiteral(text, _ string) string {
	return "'" + quoting.EscapeString(text) + "'"
}

// DefaultRootAlias is the document root alias used when none is configured.
const DefaultRootAlias = "c"
