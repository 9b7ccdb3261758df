package schema

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sqlkit/sqlddl/pkg/ddl"
)

// Statements renders the schema into its DDL statements using the given
// naming strategy (nil means ddl.Identity).
//
// Statements are emitted in dependency-safe order: first a CREATE TABLE per
// table, then primary keys, then indexes, and finally foreign keys, so that
// every referenced table exists before a constraint mentions it.
func (s *Schema) Statements(entities ddl.NamingStrategy) ([]string, error) {
	stmts := make([]string, 0, len(s.Tables))

	for _, table := range s.Tables {
		sql, err := ddl.CreateTable(table.Name, table.Columns, &ddl.CreateTableOptions{
			TableSpec: table.Spec,
			Entities:  entities,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "table %q", table.Name)
		}
		stmts = append(stmts, sql)
	}

	for _, table := range s.Tables {
		if len(table.PrimaryKey) == 0 {
			continue
		}

		sql, err := ddl.CreatePrimaryKey(table.Name, table.PrimaryKey, &ddl.Options{Entities: entities})
		if err != nil {
			return nil, errors.Wrapf(err, "table %q primary key", table.Name)
		}
		stmts = append(stmts, sql)
	}

	for _, table := range s.Tables {
		for _, idx := range table.Indexes {
			sql, err := ddl.CreateIndex(idx.Name, table.Name, idx.Columns, &ddl.CreateIndexOptions{
				Unique:   idx.Unique,
				Entities: entities,
			})
			if err != nil {
				return nil, errors.Wrapf(err, "index %q", idx.Name)
			}
			stmts = append(stmts, sql)
		}
	}

	for _, table := range s.Tables {
		for _, fk := range table.ForeignKeys {
			sql, err := ddl.CreateForeignKey(fk.Name, table.Name, fk.Column, fk.References.Table, fk.References.Column, &ddl.Options{
				Entities: entities,
			})
			if err != nil {
				return nil, errors.Wrapf(err, "foreign key %q", fk.Name)
			}
			stmts = append(stmts, sql)
		}
	}

	return stmts, nil
}

// Write renders the schema's statements through Statements and writes them to
// w, each terminated with ";\n". This is the output format used by the CLI
// and by golden-file tests.
func (s *Schema) Write(w io.Writer, entities ddl.NamingStrategy) error {
	stmts, err := s.Statements(entities)
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if _, err := io.WriteString(w, stmt+";\n"); err != nil {
			return errors.Wrap(err, "failed to write statement")
		}
	}

	return nil
}
