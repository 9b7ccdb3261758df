// Package cmd implements the sqlddl CLI commands.
//
// The CLI is a thin shell over the schema and ddl packages: init writes a
// starter schema definition, and generate renders a definition file into SQL
// DDL statements.
package cmd
