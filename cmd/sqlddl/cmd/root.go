package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Run creates and executes the main sqlddl CLI application with the given
// version and command-line arguments. This function serves as the entry point
// for all CLI operations.
//
// The application provides:
//   - init: write a starter schema definition file
//   - generate: render a schema definition into SQL DDL statements
//
// Example usage:
//
//	# Write a starter schema.yaml
//	err := Run(ctx, "v1.0.0", []string{"sqlddl", "init"})
//
//	# Generate DDL with double-quoted identifiers
//	err := Run(ctx, "v1.0.0", []string{"sqlddl", "generate", "--naming", "double_quote"})
func Run(ctx context.Context, version string, args []string) error {
	app := &cli.Command{
		Name:  "sqlddl",
		Usage: "Generate SQL DDL statements from schema definitions",
		Description: `sqlddl is a CLI tool that renders declarative YAML schema definitions
into SQL DDL statements (CREATE TABLE, indexes, primary and foreign keys),
with configurable identifier naming strategies.`,
		Version: version,
		Commands: []*cli.Command{
			initCmd(),
			generate(),
		},
	}

	return app.Run(ctx, args)
}
