package options

import (
	"testing"

	"endpointgen/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Schema) []Schema
	}{
		{
			name: "duplicate short flag",
			mutate: func(s []Schema) []Schema {
				s[0].Options = append(s[0].Options, Descriptor{Long: "--nickname", Short: "-n"})
				return s
			},
		},
		{
			name: "descriptor without argument field",
			mutate: func(s []Schema) []Schema {
				s[0].Options = append(s[0].Options, Descriptor{Long: "--bogus", Short: "-b"})
				return s
			},
		},
		{
			name: "shared keyword",
			mutate: func(s []Schema) []Schema {
				s[1].Keywords = append(s[1].Keywords, "ep")
				return s
			},
		},
		{
			name: "missing command kind",
			mutate: func(s []Schema) []Schema {
				return s[:len(s)-1]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := Schemas()
			for i := range list {
				list[i].Options = append([]Descriptor(nil), list[i].Options...)
				list[i].Keywords = append([]string(nil), list[i].Keywords...)
			}
			assert.Error(t, validateSchemas(tt.mutate(list)))
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		keyword string
		want    types.Command
		ok      bool
	}{
		{"endpoint", types.EndpointCommand, true},
		{"ep", types.EndpointCommand, true},
		{"create", types.CreateCommand, true},
		{"cr", types.CreateCommand, true},
		{"rd", types.ReadCommand, true},
		{"up", types.UpdateCommand, true},
		{"ls", types.ListCommand, true},
		{"del", types.DeleteCommand, true},
		{"gr", types.GroupCommand, true},
		{"Create", "", false},
		{"EP", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			schema, ok := Lookup(tt.keyword)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, schema.Command)
		})
	}
}

func TestForPanicsOnUnknownCommand(t *testing.T) {
	assert.Panics(t, func() { For(types.UnknownCommand) })
	assert.Equal(t, types.ListCommand, For(types.ListCommand).Command)
}

func TestDescriptorField(t *testing.T) {
	assert.Equal(t, "DataContext", Descriptor{Long: "--data-context"}.Field())
	assert.Equal(t, "Url", Descriptor{Long: "--url"}.Field())
	assert.Equal(t, "Name", Descriptor{Long: "--name"}.Field())
}

func TestNormalizeEntity(t *testing.T) {
	assert.Equal(t, "Identity.AppUser", NormalizeEntity("identity.app_user"))
	assert.Equal(t, "User", NormalizeEntity(" User "))
	assert.Equal(t, "", NormalizeEntity("."))
}
