package generator

import (
	"testing"

	"endpointgen/internal/introspect"
	"endpointgen/internal/metadata"

	"github.com/stretchr/testify/assert"
)

func nullable(ref metadata.TypeRef) metadata.TypeRef {
	ref.Nullable = true
	return ref
}

func scalar(name string, ref metadata.TypeRef) introspect.Property {
	return introspect.Property{Name: name, Type: ref, Nullable: ref.Nullable, Settable: true}
}

func TestTypeAlias(t *testing.T) {
	tests := []struct {
		ref  metadata.TypeRef
		want string
	}{
		{metadata.System("Int32"), "int"},
		{metadata.System("Int64"), "long"},
		{nullable(metadata.System("Int64")), "long?"},
		{metadata.System("Decimal"), "decimal"},
		{nullable(metadata.System("Double")), "double?"},
		{metadata.System("Boolean"), "bool"},
		{metadata.System("String"), "string"},
		{nullable(metadata.System("String")), "string?"},
		{metadata.System("DateTime"), "DateTime"},
		{nullable(metadata.System("Guid")), "Guid?"},
		{metadata.TypeRef{Namespace: "App.Dto", Name: "AuditableDto", Args: []metadata.TypeRef{metadata.System("Int32")}}, "AuditableDto<int>"},
		{metadata.TypeRef{Namespace: "System", Name: "Array", Args: []metadata.TypeRef{metadata.System("Byte")}}, "byte[]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeAlias(tt.ref))
		})
	}
}

func TestPropertyBlock(t *testing.T) {
	props := []introspect.Property{
		scalar("Id", metadata.System("Int32")),
		scalar("Name", metadata.System("String")),
		scalar("Email", nullable(metadata.System("String"))),
		scalar("Age", nullable(metadata.System("Int32"))),
	}

	assert.Equal(t, []string{
		"    public int Id { get; set; }",
		"    public string Name { get; set; } = default!;",
		"    public string? Email { get; set; }",
		"    public int? Age { get; set; }",
	}, PropertyBlock(props))
	assert.Empty(t, PropertyBlock(nil))
}

func TestMappingBlock(t *testing.T) {
	a := scalar("A", metadata.System("Int32"))
	b := scalar("B", metadata.System("Int32"))
	c := scalar("C", metadata.System("Int32"))

	tests := []struct {
		name  string
		props []introspect.Property
		want  string
	}{
		{"empty", nil, ""},
		{"single", []introspect.Property{a}, "t.A = s.A;"},
		{"two", []introspect.Property{a, b}, "t.A = s.A;\n  t.B = s.B;"},
		{"three", []introspect.Property{a, b, c}, "t.A = s.A;\n  t.B = s.B;\n  t.C = s.C;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MappingBlock("t", "s", tt.props, "  "))
		})
	}
}

func TestValidatorRules(t *testing.T) {
	props := []introspect.Property{
		scalar("Id", metadata.System("Int32")),
		scalar("Name", metadata.System("String")),
		scalar("Email", nullable(metadata.System("String"))),
	}
	assert.Equal(t, []string{"        RuleFor(x => x.Name).NotEmpty();"}, ValidatorRules(props))
}

func TestSingleRoute(t *testing.T) {
	id := &introspect.Property{Name: "OrderId"}
	assert.Equal(t, "orders/{orderid}", singleRoute("orders", id))
	assert.Equal(t, "{orderid}", singleRoute("", id))
	assert.Equal(t, "api/orders/{orderid}", singleRoute("api/orders/", id))
}

func TestVerbAndGroup(t *testing.T) {
	assert.Equal(t, "Post", verb("POST"))
	assert.Equal(t, "Delete", verb("DELETE"))
	assert.Equal(t, "UsersGroup", groupClass("Users"))
	assert.Equal(t, "UsersGroup", groupClass("UsersGroup"))
}
