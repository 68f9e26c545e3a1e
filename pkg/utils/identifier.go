package utils

import "strings"

const (
	// Backtick quotes MySQL identifiers
	Backtick = '`'

	// DoubleQuote quotes ANSI/Postgres identifiers
	DoubleQuote = '"'
)

// QuoteIdentifier wraps an identifier in the given quote character, doubling any
// embedded quote characters so the result is always a single identifier.
//
// Examples:
//   - ("submissions", '`') -> "`submissions`"
//   - ("my`db", '`') -> "`my``db`"
//   - ("my_shop", '"') -> "\"my_shop\""
//   - ("", '`') -> ""
//
// Dotted names are NOT split: "my.db" is treated as one identifier because
// generated database names come straight from user input.
func QuoteIdentifier(name string, quote rune) string {
	if name == "" {
		return ""
	}

	q := string(quote)
	return q + strings.ReplaceAll(name, q, q+q) + q
}
