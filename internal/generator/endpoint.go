package generator

import (
	"fmt"
)

// renderEndpoint scaffolds a free-form endpoint. The entity, when given, is
// only named in the mapper; it is not introspected.
func renderEndpoint(c *renderContext) (Template, error) {
	name := c.arg.Name
	dc := c.dataContext()
	entity := c.qualified(c.arg.EntityFullName)

	base := fmt.Sprintf("Endpoint<%[1]sRequest, %[1]sResponse>", name)
	if entity != "" {
		base = fmt.Sprintf("Endpoint<%[1]sRequest, %[1]sResponse, %[1]sMapper>", name)
	}

	return Template{
		c.endpointClass(base, c.arg.Url, dc,
			Linef("%sawait SendAsync(new %sResponse(), cancellation: ct);", indent2, name),
		),
		Blank(),
		propertyClass(name+"Request", "", nil),
		Blank(),
		validatorClass(name, nil),
		Blank(),
		propertyClass(name+"Response", "", nil),
		When(entity != "",
			Blank(),
			class(name+"Mapper", fmt.Sprintf("Mapper<%[1]sRequest, %[1]sResponse, %[2]s>", name, entity)),
		),
	}, nil
}
