package utils

import (
	"strings"
)

// SQLBuilder provides a fluent interface for building DDL statements. It
// quotes identifiers with the configured quote character and joins clauses
// with single spaces.
//
// Example usage:
//
//	sql := NewSQLBuilder(Backtick).
//		Create("TABLE").
//		IfNotExists().
//		Name("submissions").
//		Raw("(id INT NOT NULL)").
//		String()
//	// Output: CREATE TABLE IF NOT EXISTS `submissions` (id INT NOT NULL)
type SQLBuilder struct {
	quote rune
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder that quotes identifiers with quote.
//
// Example:
//
//	builder := utils.NewSQLBuilder(utils.DoubleQuote)
func NewSQLBuilder(quote rune) *SQLBuilder {
	return &SQLBuilder{
		quote: quote,
		parts: make([]string, 0, 8),
	}
}

// Create adds a CREATE clause with the specified object type.
//
// Example:
//
//	builder.Create("DATABASE")  // CREATE DATABASE
//	builder.Create("TABLE")     // CREATE TABLE
func (b *SQLBuilder) Create(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "CREATE", objectType)
	return b
}

// IfNotExists adds an IF NOT EXISTS clause. This should be called after CREATE operations.
func (b *SQLBuilder) IfNotExists() *SQLBuilder {
	b.parts = append(b.parts, "IF", "NOT", "EXISTS")
	return b
}

// Name adds a quoted object name. Empty names are ignored.
//
// Example:
//
//	builder.Name("my_shop")     // `my_shop`
//	builder.Name("odd`name")    // `odd``name`
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, QuoteIdentifier(name, b.quote))
	}
	return b
}

// NameList adds a parenthesized, comma separated list of quoted names.
//
// Example:
//
//	builder.NameList("a", "b")  // (`a`, `b`)
func (b *SQLBuilder) NameList(names ...string) *SQLBuilder {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = QuoteIdentifier(n, b.quote)
	}

	b.parts = append(b.parts, "("+strings.Join(quoted, ", ")+")")
	return b
}

// Default adds a DEFAULT clause if expression is not empty.
func (b *SQLBuilder) Default(expression string) *SQLBuilder {
	if expression != "" {
		b.parts = append(b.parts, "DEFAULT", expression)
	}
	return b
}

// Raw adds raw SQL text. Empty strings are ignored.
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// String builds and returns the statement. No terminating semicolon is added
// since statements are executed one at a time.
func (b *SQLBuilder) String() string {
	return strings.Join(b.parts, " ")
}
