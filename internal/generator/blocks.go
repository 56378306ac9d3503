package generator

import (
	"fmt"
	"path"
	"strings"

	"endpointgen/internal/introspect"
	"endpointgen/internal/metadata"
)

const (
	indent  = "    "
	indent2 = indent + indent
)

var aliases = map[string]string{
	"System.Boolean": "bool",
	"System.Byte":    "byte",
	"System.SByte":   "sbyte",
	"System.Char":    "char",
	"System.Int16":   "short",
	"System.UInt16":  "ushort",
	"System.Int32":   "int",
	"System.UInt32":  "uint",
	"System.Int64":   "long",
	"System.UInt64":  "ulong",
	"System.Single":  "float",
	"System.Double":  "double",
	"System.Decimal": "decimal",
	"System.String":  "string",
	"System.Object":  "object",
}

// TypeAlias renders a type the way it is written in C# source: keyword
// aliases for the built-in types, short names for everything else.
func TypeAlias(ref metadata.TypeRef) string {
	var name string
	switch {
	case ref.FullName() == "System.Array" && len(ref.Args) == 1:
		name = TypeAlias(ref.Args[0]) + "[]"
	case aliases[ref.FullName()] != "":
		name = aliases[ref.FullName()]
	default:
		name = ref.Name
		if len(ref.Args) > 0 {
			args := make([]string, len(ref.Args))
			for i, a := range ref.Args {
				args[i] = TypeAlias(a)
			}
			name += "<" + strings.Join(args, ", ") + ">"
		}
	}
	if ref.Nullable {
		name += "?"
	}
	return name
}

func isRequiredString(p introspect.Property) bool {
	return p.Type.Kind == metadata.KindString && !p.Nullable
}

// PropertyBlock renders one auto-property line per property.
func PropertyBlock(props []introspect.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		l := fmt.Sprintf("%spublic %s %s { get; set; }", indent, TypeAlias(p.Type), p.Name)
		if isRequiredString(p) {
			l += " = default!;"
		}
		out = append(out, l)
	}
	return out
}

// MappingBlock renders property assignments meant to be spliced after an
// existing indent: the first statement carries no indent and the last no
// line break.
func MappingBlock(target, source string, props []introspect.Property, ind string) string {
	var b strings.Builder
	for i, p := range props {
		if i > 0 {
			b.WriteString(ind)
		}
		fmt.Fprintf(&b, "%s.%s = %s.%s;", target, p.Name, source, p.Name)
		if i < len(props)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ValidatorRules renders a NotEmpty rule for every required string.
func ValidatorRules(props []introspect.Property) []string {
	var out []string
	for _, p := range props {
		if isRequiredString(p) {
			out = append(out, fmt.Sprintf("%sRuleFor(x => x.%s).NotEmpty();", indent2, p.Name))
		}
	}
	return out
}

func mapping(target, source string, props []introspect.Property) Node {
	if len(props) == 0 {
		return Seq()
	}
	return Text(indent2 + MappingBlock(target, source, props, indent2))
}

func singleRoute(url string, id *introspect.Property) string {
	return path.Join(url, "{"+strings.ToLower(id.Name)+"}")
}

func settable(props []introspect.Property) []introspect.Property {
	out := make([]introspect.Property, 0, len(props))
	for _, p := range props {
		if p.Settable {
			out = append(out, p)
		}
	}
	return out
}

func withoutIdentifier(props []introspect.Property) []introspect.Property {
	out := make([]introspect.Property, 0, len(props))
	for _, p := range props {
		if !p.IsIdentifier {
			out = append(out, p)
		}
	}
	return out
}
