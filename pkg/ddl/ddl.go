package ddl

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned (wrapped with context) whenever a statement
// function is called with missing or malformed required arguments, such as a
// blank object name or an empty column list. Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

type (
	// ColumnSpec is an ordered sequence of tokens describing a single column
	// in a CREATE TABLE statement, e.g. {"id", "integer", "primary", "key"}.
	// The tokens are opaque fragments joined by single spaces; the package
	// does not interpret them.
	ColumnSpec []string

	// Options carries the options shared by every statement function that has
	// no statement-specific options of its own.
	Options struct {
		// Entities is the naming strategy applied to identifier arguments.
		// A nil value means Identity.
		Entities NamingStrategy
	}

	// CreateTableOptions controls CreateTable output.
	CreateTableOptions struct {
		// TableSpec is an optional raw fragment appended verbatim after the
		// closing parenthesis of the column list (e.g. table-level constraints
		// or storage options). It is never passed through the naming strategy.
		TableSpec string

		// Entities is the naming strategy applied to the table name and to
		// every column spec token. A nil value means Identity.
		Entities NamingStrategy
	}

	// CreateIndexOptions controls CreateIndex output.
	CreateIndexOptions struct {
		// Unique inserts the UNIQUE keyword before INDEX.
		Unique bool

		// Entities is the naming strategy applied to the index name, table
		// name, and column names. A nil value means Identity.
		Entities NamingStrategy
	}
)

// renderNames applies the naming strategy to each name and joins the results
// with ", " for use inside a parenthesized column list.
func renderNames(names []string, entities NamingStrategy) string {
	rendered := make([]string, len(names))
	for i, name := range names {
		rendered[i] = entities(name)
	}
	return strings.Join(rendered, ", ")
}
