package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sqlkit/sqlddl/pkg/consts"
	"github.com/sqlkit/sqlddl/pkg/schema"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runInit(t *testing.T, args ...string) error {
	t.Helper()

	command := initCmd()
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
	}

	return app.Run(context.Background(), append([]string{"test"}, args...))
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(t, "--dir", dir))

	path := filepath.Join(dir, consts.DefaultSchemaFile)
	require.FileExists(t, path)

	// The starter file must be a loadable schema
	s, err := schema.LoadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, s.Tables)
}

func TestInitCommand_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, consts.DefaultSchemaFile)

	custom := "tables:\n  - name: custom\n    columns: [[id, integer]]\n"
	require.NoError(t, os.WriteFile(path, []byte(custom), consts.ModeFile))

	// Re-running init must not clobber an existing schema file
	require.NoError(t, runInit(t, "--dir", dir))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, custom, string(content))
}

func TestInitCommand_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db", "nested")
	require.NoError(t, runInit(t, "--dir", dir))
	require.FileExists(t, filepath.Join(dir, consts.DefaultSchemaFile))
}
