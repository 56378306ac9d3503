package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSettings = `
project:
  name: MyApp
  metadata: obj/metadata.yaml
dataContext: MyApp.Data.AppDbContext
dtoMappings:
  - entity: MyApp.Domain.AuditableEntity` + "`1" + `
    dto: MyApp.Contracts.AuditableDto` + "`1" + `
list:
  requestBase: MyApp.Contracts.PagedRequest
  responseBase: MyApp.Contracts.PagedResponse
  queryHelper: MyApp.Infrastructure.QueryProcessor
`

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleSettings), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "MyApp", s.Project.Name)
	assert.Equal(t, FormatManifest, s.Project.Format)
	assert.Equal(t, "MyApp", s.Project.GoNamespace)
	assert.Equal(t, "MyApp.Features", s.Namespace)
	assert.Equal(t, []string{"FastEndpoints"}, s.Imports)
	assert.Equal(t, filepath.Join(dir, "obj", "metadata.yaml"), s.MetadataPath())
	require.Len(t, s.DtoMappings, 1)
	assert.Equal(t, "MyApp.Contracts.AuditableDto`1", s.DtoMappings[0].Dto)
	assert.Equal(t, "MyApp.Infrastructure.QueryProcessor", s.List.QueryHelper)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing project name",
			yaml: "project:\n  metadata: m.yaml\n",
		},
		{
			name: "missing metadata",
			yaml: "project:\n  name: MyApp\n",
		},
		{
			name: "bad format",
			yaml: "project:\n  name: MyApp\n  metadata: src\n  format: dll\n",
		},
		{
			name: "incomplete dto mapping",
			yaml: "project:\n  name: MyApp\n  metadata: m.yaml\ndtoMappings:\n  - entity: MyApp.Base\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestParseGoFormatByDefault(t *testing.T) {
	s, err := Parse([]byte("project:\n  name: Shop\n  metadata: ./domain\n  goNamespace: Shop.Domain\n"))
	require.NoError(t, err)
	assert.Equal(t, FormatGo, s.Project.Format)
	assert.Equal(t, "Shop.Domain", s.Project.GoNamespace)
}

func TestQualify(t *testing.T) {
	s := &Settings{Project: Project{Name: "MyApp"}}
	assert.Equal(t, "MyApp.Domain.User", s.Qualify("Domain.User"))
	assert.Equal(t, "MyApp.Domain.User", s.Qualify("MyApp.Domain.User"))
	assert.Equal(t, "MyApp.User", s.Qualify("User"))
	assert.Equal(t, "MyApp.MyAppUser", s.Qualify("MyAppUser"))
	assert.Equal(t, "", s.Qualify(""))
}

func TestSplitQualified(t *testing.T) {
	ns, member := SplitQualified("MyApp.Contracts.PagedRequest")
	assert.Equal(t, "MyApp.Contracts", ns)
	assert.Equal(t, "PagedRequest", member)

	ns, member = SplitQualified("PagedRequest")
	assert.Equal(t, "", ns)
	assert.Equal(t, "PagedRequest", member)
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(SettingsEnv, "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", Path())

	t.Setenv(SettingsEnv, "")
	assert.Equal(t, DefaultFileName, Path())
}
