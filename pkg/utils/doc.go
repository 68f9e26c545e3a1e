// Package utils provides small helpers shared by the nodeseed packages.
//
// # Identifier Utilities (identifier.go)
//
// QuoteIdentifier wraps database, table and column names in a dialect's quote
// character, doubling embedded quotes so the result is always one identifier.
// Names are never split on dots because database names come from user input.
//
//	utils.QuoteIdentifier("my_shop", utils.Backtick)     // `my_shop`
//	utils.QuoteIdentifier("odd`name", utils.Backtick)    // `odd``name`
//	utils.QuoteIdentifier("my_shop", utils.DoubleQuote)  // "my_shop"
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder assembles DDL statements clause by clause, quoting names with the
// quote character it was created with:
//
//	utils.NewSQLBuilder(utils.Backtick).
//		Create("TABLE").
//		IfNotExists().
//		Name("submissions").
//		Raw("(...)").
//		String()
//
// # Pointers (ptr.go)
//
// Ptr returns a pointer to any value, which is convenient for optional fields:
//
//	presets := ask.Presets{ProjectName: utils.Ptr("my-shop")}
package utils
