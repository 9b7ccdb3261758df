package ddl

import "github.com/pkg/errors"

// CreatePrimaryKey formats an ALTER TABLE statement that adds a primary key
// over the given columns.
//
// Example:
//
//	sql, _ := ddl.CreatePrimaryKey("fruit", []string{"id", "name"}, nil)
//	// ALTER TABLE fruit ADD PRIMARY KEY (id, name)
func CreatePrimaryKey(table string, columns []string, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}

	entities := opts.Entities
	if entities == nil {
		entities = Identity
	}

	if table == "" {
		return "", errors.Wrap(ErrInvalidArgument, "create primary key: table name is required")
	}

	if len(columns) == 0 {
		return "", errors.Wrap(ErrInvalidArgument, "create primary key: at least one column is required")
	}

	return "ALTER TABLE " + entities(table) + " ADD PRIMARY KEY (" + renderNames(columns, entities) + ")", nil
}

// CreateForeignKey formats an ALTER TABLE statement that adds a named foreign
// key constraint referencing a column in another table.
//
// Example:
//
//	sql, _ := ddl.CreateForeignKey("fk1", "orders", "fruit_id", "fruit", "id", nil)
//	// ALTER TABLE orders ADD CONSTRAINT fk1 FOREIGN KEY (fruit_id) REFERENCES fruit (id)
func CreateForeignKey(constraint, table, column, refTable, refColumn string, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}

	entities := opts.Entities
	if entities == nil {
		entities = Identity
	}

	switch {
	case constraint == "":
		return "", errors.Wrap(ErrInvalidArgument, "create foreign key: constraint name is required")
	case table == "":
		return "", errors.Wrap(ErrInvalidArgument, "create foreign key: table name is required")
	case column == "":
		return "", errors.Wrap(ErrInvalidArgument, "create foreign key: column name is required")
	case refTable == "":
		return "", errors.Wrap(ErrInvalidArgument, "create foreign key: referenced table name is required")
	case refColumn == "":
		return "", errors.Wrap(ErrInvalidArgument, "create foreign key: referenced column name is required")
	}

	return "ALTER TABLE " + entities(table) +
		" ADD CONSTRAINT " + entities(constraint) +
		" FOREIGN KEY (" + entities(column) + ")" +
		" REFERENCES " + entities(refTable) + " (" + entities(refColumn) + ")", nil
}
