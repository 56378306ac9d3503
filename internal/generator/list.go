package generator

import (
	"fmt"

	"endpointgen/internal/introspect"
)

func renderList(c *renderContext) (Template, error) {
	name, entity := c.arg.Name, c.arg.EntityName
	dc := c.dataContext()
	if dc.ok() {
		c.use("Microsoft.EntityFrameworkCore")
	}
	list := c.settings.List
	requestBase := c.qualified(list.RequestBase)
	responseBase := c.qualified(list.ResponseBase)
	helper := c.qualified(list.QueryHelper)
	if responseBase != "" {
		responseBase = fmt.Sprintf("%s<%sDto>", responseBase, name)
	}
	dto := c.entity.Shape(introspect.ShapeOptions{IncludeIdentifier: true, InheritDto: true})

	return Template{
		c.endpointClass(fmt.Sprintf("Endpoint<%[1]sRequest, %[1]sResponse, %[1]sMapper>", name), c.arg.Url, dc,
			When(dc.ok(),
				Linef("%svar query = %s.%s.AsNoTracking();", indent2, dc.Field, c.arg.EntityPlural),
			),
			When(!dc.ok(),
				Linef("%svar query = Enumerable.Empty<%s>().AsQueryable();", indent2, entity),
			),
			When(helper != "",
				Linef("%svar response = await %s.ProcessAsync<%s, %sDto, %sResponse>(query, req, Map.FromEntity, ct);", indent2, helper, entity, name, name),
			),
			When(helper == "",
				Linef("%svar response = new %sResponse { Items = query.Select(Map.FromEntity).ToList() };", indent2, name),
			),
			Line(indent2+"await SendAsync(response, cancellation: ct);"),
		),
		Blank(),
		propertyClass(name+"Request", requestBase, nil),
		Blank(),
		validatorClass(name, nil),
		Blank(),
		propertyClass(name+"Dto", c.dtoBase(), dto),
		Blank(),
		class(name+"Response", responseBase,
			When(responseBase == "",
				Linef("%spublic List<%sDto> Items { get; set; } = [];", indent, name),
			),
		),
		Blank(),
		class(name+"Mapper", fmt.Sprintf("ResponseMapper<%sDto, %s>", name, entity),
			c.fromEntity(name+"Dto", "dto", c.entity.Shape(introspect.ShapeOptions{IncludeIdentifier: true})),
		),
	}, nil
}
