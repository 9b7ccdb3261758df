package ddl

import (
	"strings"

	"github.com/pkg/errors"
)

// CreateTable formats a CREATE TABLE statement.
//
// Each column spec's tokens are joined with single spaces and the specs are
// joined with ", " to form the column list. The naming strategy is applied to
// the table name and to every token of every column spec, including type
// names and constraint keywords. This is a known quirk of the formatting
// contract, preserved because callers rely on it: a non-identity strategy
// must itself return non-identifier tokens unchanged to produce valid SQL.
//
// When opts.TableSpec is non-empty it is appended verbatim after the closing
// parenthesis, separated by a single space.
//
// Example:
//
//	sql, _ := ddl.CreateTable("fruit", []ddl.ColumnSpec{
//		{"id", "integer", "primary", "key", "autoincrement"},
//		{"name", "varchar(32)"},
//	}, nil)
//	// CREATE TABLE fruit (id integer primary key autoincrement, name varchar(32))
func CreateTable(name string, columns []ColumnSpec, opts *CreateTableOptions) (string, error) {
	if opts == nil {
		opts = &CreateTableOptions{}
	}

	entities := opts.Entities
	if entities == nil {
		entities = Identity
	}

	if name == "" {
		return "", errors.Wrap(ErrInvalidArgument, "create table: table name is required")
	}

	if len(columns) == 0 {
		return "", errors.Wrap(ErrInvalidArgument, "create table: at least one column spec is required")
	}

	specs := make([]string, len(columns))
	for i, col := range columns {
		if len(col) == 0 {
			return "", errors.Wrapf(ErrInvalidArgument, "create table: column spec %d is empty", i)
		}

		tokens := make([]string, len(col))
		for j, token := range col {
			tokens[j] = entities(token)
		}
		specs[i] = strings.Join(tokens, " ")
	}

	sql := "CREATE TABLE " + entities(name) + " (" + strings.Join(specs, ", ") + ")"
	if opts.TableSpec != "" {
		sql += " " + opts.TableSpec
	}

	return sql, nil
}

// DropTable formats a DROP TABLE statement for the named table.
func DropTable(name string, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}

	entities := opts.Entities
	if entities == nil {
		entities = Identity
	}

	if name == "" {
		return "", errors.Wrap(ErrInvalidArgument, "drop table: table name is required")
	}

	return "DROP TABLE " + entities(name), nil
}
