// Package schema loads declarative table definitions from YAML and renders
// them into DDL statements via the ddl package.
//
// A schema file declares tables with their column specs, optional table-level
// spec fragments, primary keys, indexes, and foreign keys:
//
//	tables:
//	  - name: fruit
//	    columns:
//	      - [id, integer]
//	      - [name, "varchar(32)"]
//	    primary_key: [id]
//	    indexes:
//	      - name: idx_fruit_name
//	        columns: [name]
//	        unique: true
//	  - name: orders
//	    columns:
//	      - [id, integer]
//	      - [fruit_id, integer]
//	    foreign_keys:
//	      - name: fk_orders_fruit
//	        column: fruit_id
//	        references: {table: fruit, column: id}
//
// Statements are generated in dependency-safe order: tables first, then
// primary keys, indexes, and foreign keys.
package schema
