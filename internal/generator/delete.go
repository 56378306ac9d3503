package generator

import (
	"endpointgen/internal/introspect"
)

func renderDelete(c *renderContext) (Template, error) {
	id, err := c.entity.RequireIdentifier()
	if err != nil {
		return nil, err
	}
	name := c.arg.Name
	dc := c.dataContext()
	request := []introspect.Property{*id}

	return Template{
		c.endpointClass("Endpoint<"+name+"Request>", singleRoute(c.arg.Url, id), dc,
			c.lookupEntity(dc, id),
			When(dc.ok(),
				Linef("%s%s.%s.Remove(entity);", indent2, dc.Field, c.arg.EntityPlural),
				Linef("%sawait %s.SaveChangesAsync(ct);", indent2, dc.Field),
			),
			Line(indent2+"await SendNoContentAsync(ct);"),
		),
		Blank(),
		propertyClass(name+"Request", "", request),
		Blank(),
		validatorClass(name, request),
	}, nil
}
