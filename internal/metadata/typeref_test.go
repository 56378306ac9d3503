package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		expr     string
		full     string
		kind     Kind
		nullable bool
		args     int
	}{
		{expr: "int", full: "System.Int32", kind: KindValue},
		{expr: "int?", full: "System.Int32", kind: KindValue, nullable: true},
		{expr: "System.Int64", full: "System.Int64", kind: KindValue},
		{expr: "string", full: "System.String", kind: KindString},
		{expr: "string?", full: "System.String", kind: KindString, nullable: true},
		{expr: "Guid", full: "System.Guid", kind: KindValue},
		{expr: "Nullable<DateTime>", full: "System.DateTime", kind: KindValue, nullable: true},
		{expr: "System.Nullable`1[[System.Decimal, System.Private.CoreLib]]", full: "System.Decimal", kind: KindValue, nullable: true},
		{expr: "List<MyApp.Domain.Order>", full: "List", kind: KindCollection, args: 1},
		{expr: "System.Collections.Generic.List`1[[MyApp.Domain.Order, MyApp]]", full: "System.Collections.Generic.List", kind: KindCollection, args: 1},
		{expr: "Dictionary<string, int>", full: "Dictionary", kind: KindCollection, args: 2},
		{expr: "byte[]", full: "System.Array", kind: KindCollection, args: 1},
		{expr: "MyApp.Domain.Address", full: "MyApp.Domain.Address", kind: KindReference},
		{expr: "MyApp.Domain.Entity<int>", full: "MyApp.Domain.Entity", kind: KindReference, args: 1},
		{expr: "Outer+Inner", full: "Outer.Inner", kind: KindReference},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			ref, err := ParseType(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.full, ref.FullName())
			assert.Equal(t, tt.kind, ref.Kind)
			assert.Equal(t, tt.nullable, ref.Nullable)
			assert.Len(t, ref.Args, tt.args)
		})
	}
}

func TestParseTypeGenericArgs(t *testing.T) {
	ref, err := ParseType("MyApp.Domain.Entity`1[[System.Int32, System.Private.CoreLib]]")
	require.NoError(t, err)
	require.Len(t, ref.Args, 1)
	assert.Equal(t, "System.Int32", ref.Args[0].FullName())
	assert.Equal(t, "MyApp.Domain.Entity<System.Int32>", ref.String())
}

func TestParseTypeErrors(t *testing.T) {
	for _, expr := range []string{"", "List<int", "<int>", "int)"} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseType(expr)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "MyApp.Entity", NormalizeName("MyApp.Entity`1"))
	assert.Equal(t, "MyApp.Entity", NormalizeName("MyApp.Entity<TKey>"))
	assert.Equal(t, "Entity", NormalizeName("Entity[int64]"))
	assert.Equal(t, "Entity", NormalizeName("Entity"))
}

func TestSubstitute(t *testing.T) {
	param := TypeRef{Name: "TKey", Kind: KindParam, Nullable: true}
	out := Substitute(param, []string{"TKey"}, []TypeRef{System("Int32")})
	assert.Equal(t, "System.Int32", out.FullName())
	assert.Equal(t, KindValue, out.Kind)
	assert.True(t, out.Nullable)

	unbound := Substitute(TypeRef{Name: "TOther", Kind: KindParam}, []string{"TKey"}, nil)
	assert.Equal(t, KindParam, unbound.Kind)
}
