package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			name: "imports deduplicated in order",
			doc: Document{
				Imports:   []string{"FastEndpoints", "MyApp.Domain", "", "FastEndpoints", "MyApp.Data"},
				Namespace: "MyApp.Features",
				Body:      "public sealed class A\n{\n}\n",
			},
			want: "using FastEndpoints;\nusing MyApp.Domain;\nusing MyApp.Data;\n\nnamespace MyApp.Features;\n\npublic sealed class A\n{\n}\n",
		},
		{
			name: "no imports",
			doc:  Document{Namespace: "X", Body: "body\n"},
			want: "namespace X;\n\nbody\n",
		},
		{
			name: "only empty imports",
			doc:  Document{Imports: []string{"", " "}, Namespace: "X"},
			want: "namespace X;\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Assemble(tt.doc))
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	t.Run("existing directory", func(t *testing.T) {
		path, err := Save(dir, "CreateUser", "content")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "CreateUser.cs"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("trailing separator creates directory", func(t *testing.T) {
		path, err := Save(filepath.Join(dir, "Features", "Users")+"/", "GetUser", "x")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "Features", "Users", "GetUser.cs"), path)
		assert.FileExists(t, path)
	})

	t.Run("explicit file", func(t *testing.T) {
		target := filepath.Join(dir, "nested", "Custom.cs")
		path, err := Save(target, "Ignored", "y")
		require.NoError(t, err)
		assert.Equal(t, target, path)
		assert.FileExists(t, target)
	})
}
