package generator

import (
	"fmt"

	"endpointgen/internal/introspect"
)

func renderUpdate(c *renderContext) (Template, error) {
	id, err := c.entity.RequireIdentifier()
	if err != nil {
		return nil, err
	}
	name, entity := c.arg.Name, c.arg.EntityName
	dc := c.dataContext()
	all := c.entity.Shape(introspect.ShapeOptions{IncludeIdentifier: true})
	response := c.entity.Shape(introspect.ShapeOptions{IncludeIdentifier: true, InheritDto: true})

	var request []introspect.Property
	for _, p := range all {
		if p.IsIdentifier || p.Settable {
			request = append(request, p)
		}
	}

	return Template{
		c.endpointClass(fmt.Sprintf("Endpoint<%[1]sRequest, %[1]sResponse, %[1]sMapper>", name), singleRoute(c.arg.Url, id), dc,
			c.lookupEntity(dc, id),
			Line(indent2+"Map.UpdateEntity(req, entity);"),
			When(dc.ok(),
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
			Linef("%spublic override %s UpdateEntity(%sRequest r, %s e)", indent, entity, name, entity),
			Line(indent+"{"),
			mapping("e", "r", withoutIdentifier(request)),
			Line(indent2+"return e;"),
			Line(indent+"}"),
			Blank(),
			c.fromEntity(name+"Response", "response", all),
		),
	}, nil
}
