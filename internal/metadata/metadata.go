// Package metadata describes the types of a compiled project in a
// language-neutral way. The introspector only sees this model; adapters build
// it from a metadata manifest, from Go source, or from Go values via reflect.
package metadata

import (
	"strings"
)

type Kind int

const (
	KindReference Kind = iota
	KindValue
	KindString
	KindCollection
	KindParam
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindString:
		return "string"
	case KindCollection:
		return "collection"
	case KindParam:
		return "param"
	default:
		return "reference"
	}
}

// TypeRef is a use of a type: a property type, a base type or a generic
// argument.
type TypeRef struct {
	Namespace string
	Name      string
	Args      []TypeRef
	Nullable  bool
	Kind      Kind
}

func (r TypeRef) FullName() string {
	if r.Namespace == "" {
		return r.Name
	}
	return r.Namespace + "." + r.Name
}

func (r TypeRef) IsScalar() bool {
	return r.Kind == KindValue || r.Kind == KindString
}

func (r TypeRef) String() string {
	var b strings.Builder
	b.WriteString(r.FullName())
	if len(r.Args) > 0 {
		b.WriteByte('<')
		for i, a := range r.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte('>')
	}
	if r.Nullable {
		b.WriteByte('?')
	}
	return b.String()
}

type Property struct {
	Name     string
	Type     TypeRef
	Settable bool
}

type Type struct {
	Namespace  string
	Name       string
	TypeParams []string
	Enum       bool
	Base       *TypeRef
	// Properties holds the declared properties only, in declaration order.
	Properties []Property
}

func (t *Type) FullName() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

type Assembly interface {
	Name() string
	Types() []*Type
}

// Static is an in-memory Assembly. Every adapter returns one.
type Static struct {
	name  string
	types []*Type
}

// NewAssembly links the given types: references to declared enums become value
// types and bare references to a type's own generic parameters become params.
func NewAssembly(name string, types ...*Type) *Static {
	enums := make(map[string]bool)
	for _, t := range types {
		if t.Enum {
			enums[NormalizeName(t.FullName())] = true
		}
	}

	for _, t := range types {
		params := make(map[string]bool, len(t.TypeParams))
		for _, p := range t.TypeParams {
			params[p] = true
		}
		if t.Base != nil {
			base := link(*t.Base, params, enums)
			t.Base = &base
		}
		for i := range t.Properties {
			t.Properties[i].Type = link(t.Properties[i].Type, params, enums)
		}
	}

	return &Static{name: name, types: types}
}

func link(ref TypeRef, params, enums map[string]bool) TypeRef {
	if ref.Kind == KindReference {
		switch {
		case ref.Namespace == "" && len(ref.Args) == 0 && params[ref.Name]:
			ref.Kind = KindParam
		case enums[NormalizeName(ref.FullName())]:
			ref.Kind = KindValue
		}
	}
	if len(ref.Args) > 0 {
		args := make([]TypeRef, len(ref.Args))
		for i, a := range ref.Args {
			args[i] = link(a, params, enums)
		}
		ref.Args = args
	}
	return ref
}

func (s *Static) Name() string {
	return s.name
}

func (s *Static) Types() []*Type {
	return s.types
}

// Lookup returns every type whose normalized full name equals fullName.
func Lookup(asm Assembly, fullName string) []*Type {
	want := NormalizeName(fullName)
	var found []*Type
	for _, t := range asm.Types() {
		if NormalizeName(t.FullName()) == want {
			found = append(found, t)
		}
	}
	return found
}

// NormalizeName strips a generic suffix: "Entity`1[[System.Int32]]",
// "Entity<TKey>" and "Entity[int]" all become "Entity".
func NormalizeName(name string) string {
	if i := strings.IndexAny(name, "`<["); i >= 0 {
		return name[:i]
	}
	return name
}

// Substitute replaces generic parameters in ref with the matching args.
func Substitute(ref TypeRef, params []string, args []TypeRef) TypeRef {
	if ref.Kind == KindParam {
		for i, p := range params {
			if p == ref.Name && i < len(args) {
				out := args[i]
				out.Nullable = out.Nullable || ref.Nullable
				return out
			}
		}
		return ref
	}
	if len(ref.Args) > 0 {
		sub := make([]TypeRef, len(ref.Args))
		for i, a := range ref.Args {
			sub[i] = Substitute(a, params, args)
		}
		ref.Args = sub
	}
	return ref
}
