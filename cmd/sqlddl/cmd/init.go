package cmd

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sqlkit/sqlddl/pkg/consts"
	"github.com/urfave/cli/v3"
)

//go:embed embed/schema.yaml
var starterSchema []byte

// initCmd returns a CLI command that writes a starter schema definition file
// into the target directory.
//
// The command is idempotent: if the schema file already exists it is left
// untouched and the command succeeds without writing anything.
//
// Example usage:
//
//	# Write schema.yaml into the current directory
//	sqlddl init
//
//	# Write into a specific directory
//	sqlddl init --dir db
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter schema definition file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "target directory for the schema file",
				Value:   ".",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.String("dir")
			if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", dir)
			}

			path := filepath.Join(dir, consts.DefaultSchemaFile)
			if _, err := os.Stat(path); err == nil {
				return nil
			} else if !os.IsNotExist(err) {
				return errors.Wrapf(err, "failed to stat %s", path)
			}

			return errors.Wrapf(os.WriteFile(path, starterSchema, consts.ModeFile), "failed to write %s", path)
		},
	}
}
