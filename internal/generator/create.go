package generator

import (
	"fmt"

	"endpointgen/internal/introspect"
)

func renderCreate(c *renderContext) (Template, error) {
	name, entity := c.arg.Name, c.arg.EntityName
	dc := c.dataContext()
	request := settable(c.entity.Shape(introspect.ShapeOptions{}))
	response := c.entity.Shape(introspect.ShapeOptions{IncludeIdentifier: true, InheritDto: true})

	return Template{
		c.endpointClass(fmt.Sprintf("Endpoint<%[1]sRequest, %[1]sResponse, %[1]sMapper>", name), c.arg.Url, dc,
			Line(indent2+"var entity = Map.ToEntity(req);"),
			When(dc.ok(),
				Linef("%s%s.%s.Add(entity);", indent2, dc.Field, c.arg.EntityPlural),
				Linef("%sawait %s.SaveChangesAsync(ct);", indent2, dc.Field),
			),
			Line(indent2+"await SendAsync(Map.FromEntity(entity), cancellation: ct);"),
		),
		Blank(),
		propertyClass(name+"Request", "", request),
		Blank(),
		validatorClass(name, request),
		Blank(),
		propertyClass(name+"Response", c.dtoBase(), response),
		Blank(),
		class(name+"Mapper", fmt.Sprintf("Mapper<%[1]sRequest, %[1]sResponse, %[2]s>", name, entity),
			Linef("%spublic override %s ToEntity(%sRequest r)", indent, entity, name),
			Line(indent+"{"),
			Linef("%svar entity = new %s();", indent2, entity),
			mapping("entity", "r", request),
			Line(indent2+"return entity;"),
			Line(indent+"}"),
			Blank(),
			c.fromEntity(name+"Response", "response", c.entity.Shape(introspect.ShapeOptions{IncludeIdentifier: true})),
		),
	}, nil
}
