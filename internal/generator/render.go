package generator

import (
	"fmt"
	"strings"

	"endpointgen/internal/config"
	"endpointgen/internal/introspect"
	"endpointgen/internal/types"

	"github.com/iancoleman/strcase"
)

type renderFunc func(c *renderContext) (Template, error)

var renderers = map[types.Command]renderFunc{
	types.EndpointCommand: renderEndpoint,
	types.CreateCommand:   renderCreate,
	types.ReadCommand:     renderRead,
	types.UpdateCommand:   renderUpdate,
	types.ListCommand:     renderList,
	types.DeleteCommand:   renderDelete,
	types.GroupCommand:    renderGroup,
}

type renderContext struct {
	arg      *types.Argument
	settings *config.Settings
	entity   *introspect.Result
	imports  []string
}

func (c *renderContext) use(namespace string) {
	if namespace != "" {
		c.imports = append(c.imports, namespace)
	}
}

// dataContext is the injected persistence context. The zero value means none
// is configured; its fields are then empty.
type dataContext struct {
	Type  string
	Field string
	Param string
}

func (d dataContext) ok() bool {
	return d.Type != ""
}

func (c *renderContext) dataContext() dataContext {
	if c.arg.DataContext == "" {
		return dataContext{}
	}
	ns, member := config.SplitQualified(c.arg.DataContext)
	c.use(ns)
	param := strcase.ToLowerCamel(member)
	return dataContext{Type: member, Field: "_" + param, Param: param}
}

// dtoBase returns the DTO base class as written in a base clause, or "".
func (c *renderContext) dtoBase() string {
	if c.entity == nil || c.entity.DtoBase == nil {
		return ""
	}
	c.use(c.entity.DtoBase.Ref.Namespace)
	return TypeAlias(c.entity.DtoBase.Ref)
}

// qualified imports the namespace of a configured type and returns its member
// name.
func (c *renderContext) qualified(name string) string {
	if name == "" {
		return ""
	}
	ns, member := config.SplitQualified(name)
	c.use(ns)
	return member
}

func groupClass(name string) string {
	return strings.TrimSuffix(name, "Group") + "Group"
}

func verb(method string) string {
	return strcase.ToCamel(strings.ToLower(method))
}

func inherits(base string) string {
	if base == "" {
		return ""
	}
	return " : " + base
}

func class(name, base string, body ...Node) Node {
	return Seq(
		Linef("public sealed class %s%s", name, inherits(base)),
		Line("{"),
		Seq(body...),
		Line("}"),
	)
}

// endpointClass builds the endpoint with its optional data context member and
// constructor, route configuration and handler body.
func (c *renderContext) endpointClass(base, route string, dc dataContext, handle ...Node) Node {
	name := c.arg.Name + "Endpoint"
	return class(name, base,
		When(dc.ok(),
			Linef("%sprivate readonly %s %s;", indent, dc.Type, dc.Field),
			Blank(),
		),
		When(dc.ok(),
			Linef("%spublic %s(%s %s)", indent, name, dc.Type, dc.Param),
			Line(indent+"{"),
			Linef("%s%s = %s;", indent2, dc.Field, dc.Param),
			Line(indent+"}"),
			Blank(),
		),
		Line(indent+"public override void Configure()"),
		Line(indent+"{"),
		Linef("%s%s(\"%s\");", indent2, verb(c.arg.Method), route),
		When(c.arg.Group != "",
			Linef("%sGroup<%s>();", indent2, groupClass(c.arg.Group)),
		),
		When(c.arg.Permission != "",
			Linef("%sPermissions(\"%s\");", indent2, c.arg.Permission),
		),
		When(c.arg.Permission == "",
			Line(indent2+"AllowAnonymous();"),
		),
		Line(indent+"}"),
		Blank(),
		Linef("%spublic override async Task HandleAsync(%sRequest req, CancellationToken ct)", indent, c.arg.Name),
		Line(indent+"{"),
		Seq(handle...),
		Line(indent+"}"),
	)
}

func propertyClass(name, base string, props []introspect.Property) Node {
	return class(name, base, Lines(PropertyBlock(props)...))
}

func validatorClass(name string, props []introspect.Property) Node {
	return class(name+"Validator", fmt.Sprintf("Validator<%sRequest>", name),
		Linef("%spublic %sValidator()", indent, name),
		Line(indent+"{"),
		Lines(ValidatorRules(props)...),
		Line(indent+"}"),
	)
}

// lookupEntity loads the entity addressed by req.{Id}, or declares a null
// placeholder without a data context, and answers 404 when it is missing.
func (c *renderContext) lookupEntity(dc dataContext, id *introspect.Property) Node {
	return Seq(
		When(dc.ok(),
			Linef("%svar entity = await %s.%s.FindAsync(new object[] { req.%s }, ct);", indent2, dc.Field, c.arg.EntityPlural, id.Name),
		),
		When(!dc.ok(),
			Linef("%s%s? entity = null;", indent2, c.arg.EntityName),
		),
		Line(indent2+"if (entity is null)"),
		Line(indent2+"{"),
		Line(indent2+indent+"await SendNotFoundAsync(ct);"),
		Line(indent2+indent+"return;"),
		Line(indent2+"}"),
		Blank(),
	)
}

// fromEntity builds the FromEntity override filling a new shape into v.
func (c *renderContext) fromEntity(shape, v string, props []introspect.Property) Node {
	return Seq(
		Linef("%spublic override %s FromEntity(%s e)", indent, shape, c.arg.EntityName),
		Line(indent+"{"),
		Linef("%svar %s = new %s();", indent2, v, shape),
		mapping(v, "e", props),
		Linef("%sreturn %s;", indent2, v),
		Line(indent+"}"),
	)
}
