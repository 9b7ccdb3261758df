package schema_test

import (
	_ "embed"
	"strings"
	"testing"

	. "github.com/sqlkit/sqlddl/pkg/schema"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/fruit.in.yaml
var testSchemaYAML string

func TestLoad(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, err := Load(strings.NewReader(testSchemaYAML))
		require.NoError(t, err)
		require.Len(t, s.Tables, 2)

		fruit := s.Tables[0]
		require.Equal(t, "fruit", fruit.Name)
		require.Len(t, fruit.Columns, 3)
		require.Equal(t, []string{"id", "integer"}, []string(fruit.Columns[0]))
		require.Equal(t, []string{"id"}, fruit.PrimaryKey)
		require.Len(t, fruit.Indexes, 2)
		require.True(t, fruit.Indexes[0].Unique)
		require.False(t, fruit.Indexes[1].Unique)

		orders := s.Tables[1]
		require.Equal(t, "orders", orders.Name)
		require.Equal(t, "WITHOUT ROWID", orders.Spec)
		require.Len(t, orders.ForeignKeys, 1)
		require.Equal(t, "fruit_id", orders.ForeignKeys[0].Column)
		require.Equal(t, "fruit", orders.ForeignKeys[0].References.Table)
		require.Equal(t, "id", orders.ForeignKeys[0].References.Column)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		s, err := Load(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), "failed to unmarshal schema definition")

		// Empty input
		s, err = Load(strings.NewReader(""))
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), "failed to unmarshal schema definition")
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, err := LoadFile("testdata/fruit.in.yaml")
		require.NoError(t, err)
		require.Len(t, s.Tables, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		s, err := LoadFile("testdata/nope.yaml")
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), "failed to open schema file")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unnamed table",
			yaml: "tables:\n  - columns:\n      - [id, integer]\n",
			want: "table 0 has no name",
		},
		{
			name: "duplicate table",
			yaml: "tables:\n  - name: t\n    columns: [[id, integer]]\n  - name: t\n    columns: [[id, integer]]\n",
			want: `duplicate table "t"`,
		},
		{
			name: "no columns",
			yaml: "tables:\n  - name: t\n",
			want: `table "t" has no columns`,
		},
		{
			name: "unnamed index",
			yaml: "tables:\n  - name: t\n    columns: [[id, integer]]\n    indexes:\n      - columns: [id]\n",
			want: `table "t" has an unnamed index`,
		},
		{
			name: "unnamed foreign key",
			yaml: "tables:\n  - name: t\n    columns: [[id, integer]]\n    foreign_keys:\n      - column: id\n        references: {table: o, column: id}\n",
			want: `table "t" has an unnamed foreign key`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(strings.NewReader(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidSchema)
			require.Contains(t, err.Error(), tt.want)
			require.Nil(t, s)
		})
	}
}
