package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultSchemaFile is the schema definition filename written by
	// `sqlddl init` and read by `sqlddl generate` when no --schema flag
	// is given
	DefaultSchemaFile = "schema.yaml"
)
