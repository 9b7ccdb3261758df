package schema_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/sqlkit/sqlddl/pkg/schema"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	// Find all *.in.yaml files
	matches, err := filepath.Glob(filepath.Join("testdata", "*.in.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.in.yaml files found in testdata directory")

	for _, inputFile := range matches {
		// Derive output filename: "example.in.yaml" -> "example.sql"
		basename := filepath.Base(inputFile)
		outputName := strings.TrimSuffix(basename, ".in.yaml") + ".sql"

		t.Run(outputName, func(t *testing.T) {
			s, err := LoadFile(inputFile)
			require.NoError(t, err, "Failed to load schema from %s", inputFile)

			var buf bytes.Buffer
			require.NoError(t, s.Write(&buf, nil))

			// Compare with golden file
			golden.Assert(t, buf.String(), outputName)
		})
	}
}
