package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sqlkit/sqlddl/pkg/consts"
	"github.com/sqlkit/sqlddl/pkg/ddl"
	"github.com/sqlkit/sqlddl/pkg/schema"
	"github.com/urfave/cli/v3"
)

// generate returns a CLI command that loads a schema definition file and
// renders its DDL statements, semicolon-terminated, one per line.
//
// The generation process:
//  1. Loads and validates the YAML schema definition
//  2. Resolves the identifier naming strategy from --naming
//  3. Renders CREATE TABLE statements, then primary keys, indexes, and
//     foreign keys
//  4. Writes the statements to stdout or the --out file
//
// Optional flags:
//   - --schema, -s: Schema definition file (defaults to schema.yaml)
//   - --naming, -n: Identifier naming strategy (defaults to identity)
//   - --out, -o: Output file path (defaults to stdout)
//
// Example usage:
//
//	# Generate to stdout with plain identifiers
//	sqlddl generate
//
//	# Generate with ANSI-quoted identifiers into a file
//	sqlddl generate --naming double_quote --out schema.sql
func generate() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Render a schema definition into SQL DDL statements",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "schema",
				Aliases: []string{"s"},
				Usage:   "the schema definition file",
				Value:   consts.DefaultSchemaFile,
			},
			&cli.StringFlag{
				Name:    "naming",
				Aliases: []string{"n"},
				Usage:   "identifier naming strategy (" + strings.Join(ddl.StrategyNames, ", ") + ")",
				Value:   "identity",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (defaults to stdout)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			entities, err := ddl.StrategyNamed(cmd.String("naming"))
			if err != nil {
				return err
			}

			s, err := schema.LoadFile(cmd.String("schema"))
			if err != nil {
				return err
			}

			var w io.Writer = cmd.Writer
			if out := cmd.String("out"); out != "" {
				f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, consts.ModeFile)
				if err != nil {
					return errors.Wrapf(err, "failed to create output file %s", out)
				}
				defer f.Close()
				w = f
			}

			return s.Write(w, entities)
		},
	}
}
