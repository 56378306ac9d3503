package generator

import (
	"fmt"

	"endpointgen/internal/introspect"
)

func renderRead(c *renderContext) (Template, error) {
	id, err := c.entity.RequireIdentifier()
	if err != nil {
		return nil, err
	}
	name := c.arg.Name
	dc := c.dataContext()
	response := c.entity.Shape(introspect.ShapeOptions{IncludeIdentifier: true, InheritDto: true})
	request := []introspect.Property{*id}

	return Template{
		c.endpointClass(fmt.Sprintf("Endpoint<%[1]sRequest, %[1]sResponse, %[1]sMapper>", name), singleRoute(c.arg.Url, id), dc,
			c.lookupEntity(dc, id),
			Line(indent2+"await SendAsync(Map.FromEntity(entity), cancellation: ct);"),
		),
		Blank(),
		propertyClass(name+"Request", "", request),
		Blank(),
		validatorClass(name, request),
		Blank(),
		propertyClass(name+"Response", c.dtoBase(), response),
		Blank(),
		class(name+"Mapper", fmt.Sprintf("ResponseMapper<%sResponse, %s>", name, c.arg.EntityName),
			c.fromEntity(name+"Response", "response", c.entity.Shape(introspect.ShapeOptions{IncludeIdentifier: true})),
		),
	}, nil
}
