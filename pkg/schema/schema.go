package schema

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sqlkit/sqlddl/pkg/ddl"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSchema is returned (wrapped with context) when a loaded schema
// definition fails validation, e.g. a table without a name or two tables
// sharing one.
var ErrInvalidSchema = errors.New("invalid schema")

type (
	// Schema represents a complete schema definition containing the tables to
	// generate DDL for.
	Schema struct {
		// Tables contains the table definitions in declaration order
		Tables []*Table `yaml:"tables"`
	}

	// Table represents a single table definition.
	Table struct {
		// Name is the raw table name, rendered through the naming strategy at
		// generation time
		Name string `yaml:"name"`

		// Columns holds one column spec per column, each an ordered token list
		// (e.g. [id, integer, primary, key])
		Columns []ddl.ColumnSpec `yaml:"columns"`

		// Spec is an optional raw fragment appended verbatim after the column
		// list (e.g. "WITHOUT ROWID" or storage options)
		Spec string `yaml:"spec,omitempty"`

		// PrimaryKey lists the columns of the table's primary key, emitted as
		// a separate ALTER TABLE statement when non-empty
		PrimaryKey []string `yaml:"primary_key,omitempty"`

		// Indexes lists the indexes to create on this table
		Indexes []*Index `yaml:"indexes,omitempty"`

		// ForeignKeys lists the foreign key constraints to add to this table
		ForeignKeys []*ForeignKey `yaml:"foreign_keys,omitempty"`
	}

	// Index represents a single index definition on a table.
	Index struct {
		// Name is the raw index name
		Name string `yaml:"name"`

		// Columns lists the indexed columns in order
		Columns []string `yaml:"columns"`

		// Unique marks the index as UNIQUE
		Unique bool `yaml:"unique,omitempty"`
	}

	// ForeignKey represents a named foreign key constraint.
	ForeignKey struct {
		// Name is the raw constraint name
		Name string `yaml:"name"`

		// Column is the referencing column on the owning table
		Column string `yaml:"column"`

		// References identifies the referenced table and column
		References Reference `yaml:"references"`
	}

	// Reference identifies the target of a foreign key.
	Reference struct {
		Table  string `yaml:"table"`
		Column string `yaml:"column"`
	}
)

// Load parses a schema definition from the provided io.Reader.
//
// The function expects YAML-formatted data describing tables, their column
// specs, and any indexes and constraints. The loaded schema is validated
// before being returned.
//
// Example:
//
//	yamlData := `
//	tables:
//	  - name: fruit
//	    columns:
//	      - [id, integer]
//	      - [name, "varchar(32)"]
//	    primary_key: [id]
//	`
//
//	s, err := schema.Load(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
func Load(r io.Reader) (*Schema, error) {
	var s Schema
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal schema definition")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile loads and parses a schema definition from the file at path.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open schema file %s", path)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks the structural soundness of the schema definition: every
// table, index, and constraint must be named, table names must be unique, and
// every table needs at least one column spec.
func (s *Schema) Validate() error {
	seen := make(map[string]bool, len(s.Tables))

	for i, table := range s.Tables {
		if table.Name == "" {
			return errors.Wrapf(ErrInvalidSchema, "table %d has no name", i)
		}

		if seen[table.Name] {
			return errors.Wrapf(ErrInvalidSchema, "duplicate table %q", table.Name)
		}
		seen[table.Name] = true

		if len(table.Columns) == 0 {
			return errors.Wrapf(ErrInvalidSchema, "table %q has no columns", table.Name)
		}

		for _, idx := range table.Indexes {
			if idx.Name == "" {
				return errors.Wrapf(ErrInvalidSchema, "table %q has an unnamed index", table.Name)
			}
		}

		for _, fk := range table.ForeignKeys {
			if fk.Name == "" {
				return errors.Wrapf(ErrInvalidSchema, "table %q has an unnamed foreign key", table.Name)
			}
		}
	}

	return nil
}
