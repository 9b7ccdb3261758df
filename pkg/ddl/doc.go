// Package ddl formats SQL DDL statements as strings from structured inputs.
//
// The package is a thin, pure convenience layer over string assembly: given
// table names, column name lists, and column specification fragments it
// returns a single formatted statement per call. It performs no parsing, no
// validation of SQL correctness, and no execution; running the generated
// statements is the caller's database layer's concern.
//
// Six statement kinds are supported:
//   - CreateTable / DropTable
//   - CreateIndex / DropIndex
//   - CreatePrimaryKey / CreateForeignKey (both emitted as ALTER TABLE)
//
// Every identifier argument is rendered through a caller-supplied
// NamingStrategy before interpolation. The default is Identity; predefined
// strategies cover case folding and the common quoting styles (DoubleQuote,
// Backtick, Bracket).
//
// Usage:
//
//	sql, err := ddl.CreateTable("fruit", []ddl.ColumnSpec{
//		{"id", "integer", "primary", "key", "autoincrement"},
//		{"name", "varchar(32)"},
//	}, nil)
//	// CREATE TABLE fruit (id integer primary key autoincrement, name varchar(32))
//
//	sql, err = ddl.CreateIndex("idx_name", "fruit", []string{"name"},
//		&ddl.CreateIndexOptions{Unique: true, Entities: ddl.DoubleQuote})
//	// CREATE UNIQUE INDEX "idx_name" ON "fruit" ("name")
//
// Note that CreateTable applies the strategy to every column spec token, not
// only to the leading column name; see CreateTable for details on this quirk.
//
// Statements are returned without a trailing semicolon or newline. All
// functions are stateless and safe for concurrent use provided the supplied
// naming strategy is itself pure.
package ddl
