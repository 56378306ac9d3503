package generator

import (
	"strings"
)

func renderGroup(c *renderContext) (Template, error) {
	name := groupClass(c.arg.Name)
	tag := strings.TrimSuffix(c.arg.Name, "Group")

	return Template{
		class(name, "Group",
			Linef("%spublic %s()", indent, name),
			Line(indent+"{"),
			Linef("%sConfigure(\"%s\", ep =>", indent2, c.arg.Url),
			Line(indent2+"{"),
			Linef("%s%sep.Description(x => x.WithTags(\"%s\"));", indent2, indent, tag),
			Line(indent2+"});"),
			Line(indent+"}"),
		),
	}, nil
}
