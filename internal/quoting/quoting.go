// Package quoting provides the string-literal escaping shared by the
// formatter and the clause assembler.
package quoting

import "strings"

// EscapeString escapes a string literal for inclusion in single quotes by
// doubling single quotes and escaping backslashes.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", "''")
}
