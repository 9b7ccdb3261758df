package ddl

import (
	"strings"

	"github.com/pkg/errors"
)

// CreateIndex formats a CREATE INDEX statement for the named table and
// columns. Setting opts.Unique inserts the UNIQUE keyword before INDEX.
//
// Example:
//
//	sql, _ := ddl.CreateIndex("idx_name", "fruit", []string{"name"}, &ddl.CreateIndexOptions{Unique: true})
//	// CREATE UNIQUE INDEX idx_name ON fruit (name)
func CreateIndex(index, table string, columns []string, opts *CreateIndexOptions) (string, error) {
	if opts == nil {
		opts = &CreateIndexOptions{}
	}

	entities := opts.Entities
	if entities == nil {
		entities = Identity
	}

	if index == "" {
		return "", errors.Wrap(ErrInvalidArgument, "create index: index name is required")
	}

	if table == "" {
		return "", errors.Wrap(ErrInvalidArgument, "create index: table name is required")
	}

	if len(columns) == 0 {
		return "", errors.Wrap(ErrInvalidArgument, "create index: at least one column is required")
	}

	parts := make([]string, 0, 7)
	parts = append(parts, "CREATE")

	if opts.Unique {
		parts = append(parts, "UNIQUE")
	}

	parts = append(parts,
		"INDEX",
		entities(index),
		"ON",
		entities(table),
		"("+renderNames(columns, entities)+")",
	)

	return strings.Join(parts, " "), nil
}

// DropIndex formats a DROP INDEX statement for the named index.
func DropIndex(name string, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}

	entities := opts.Entities
	if entities == nil {
		entities = Identity
	}

	if name == "" {
		return "", errors.Wrap(ErrInvalidArgument, "drop index: index name is required")
	}

	return "DROP INDEX " + entities(name), nil
}
