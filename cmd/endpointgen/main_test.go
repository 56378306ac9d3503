package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"endpointgen/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
assembly: MyApp
types:
  - namespace: MyApp.Domain
    name: User
    properties:
      - {name: Id, type: int}
      - {name: Name, type: string}
`

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metadata.yaml"), []byte(testManifest), 0644))

	settings := "project:\n  name: MyApp\n  metadata: metadata.yaml\n"
	path := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(settings), 0644))
	t.Setenv(config.SettingsEnv, path)
	return dir
}

func TestRunGenerate(t *testing.T) {
	writeProject(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"create", "-n", "CreateUser", "-e", "Domain.User"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "namespace MyApp.Features;\n")
	assert.Contains(t, stdout.String(), "public sealed class CreateUserEndpoint : Endpoint<CreateUserRequest, CreateUserResponse, CreateUserMapper>\n")
	assert.Empty(t, stderr.String())
}

func TestRunWritesFile(t *testing.T) {
	dir := writeProject(t)
	out := filepath.Join(dir, "Features") + "/"

	var stdout, stderr bytes.Buffer
	code := run([]string{"read", "-n", "GetUser", "-e", "Domain.User", "-o", out}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "wrote "+filepath.Join(dir, "Features", "GetUser.cs"))
	assert.FileExists(t, filepath.Join(dir, "Features", "GetUser.cs"))
}

func TestRunErrors(t *testing.T) {
	writeProject(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", nil, "error: no command given"},
		{"invalid command", []string{"bogus"}, `error: invalid command "bogus"`},
		{"unknown option", []string{"endpoint", "--bogus", "x"}, "error: unknown option --bogus"},
		{"missing required", []string{"create", "-n", "", "-e", "User"}, "error: missing required option -n/--name"},
		{"entity not found", []string{"create", "-n", "CreateX", "-e", "Domain.Missing"}, "error: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.want)
			assert.NotContains(t, stdout.String(), "namespace")
		})
	}
}

func TestRunMissingSettings(t *testing.T) {
	t.Setenv(config.SettingsEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	var stdout, stderr bytes.Buffer
	code := run([]string{"group", "-n", "Users"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "not found")
}

func TestCommandsListing(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"commands"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "CREATE  create, cr")
	assert.Contains(t, out, "GROUP  group, gr")
	assert.Contains(t, out, "--data-context")
	assert.Contains(t, out, "required")
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Equal(t, "endpointgen dev\n", stdout.String())
}
