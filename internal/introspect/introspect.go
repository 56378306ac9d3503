// Package introspect resolves an entity in project metadata and decides which
// of its properties each generated shape carries.
package introspect

import (
	"endpointgen/internal/config"
	"endpointgen/internal/metadata"
)

// Property is a scalar property of the entity as seen by the templates.
type Property struct {
	Name         string
	Type         metadata.TypeRef
	Nullable     bool
	IsIdentifier bool
	Settable     bool
}

type DtoBase struct {
	// Ref is the DTO base instantiated with the ancestor's type arguments.
	Ref        metadata.TypeRef
	Type       *metadata.Type
	Ancestor   string
	Properties []Property
}

func (d *DtoBase) Has(name string) bool {
	for _, p := range d.Properties {
		if p.Name == name {
			return true
		}
	}
	return false
}

type Result struct {
	Entity     *metadata.Type
	Name       string
	Properties []Property
	Identifier *Property
	DtoBase    *DtoBase
}

func (r *Result) RequireIdentifier() (*Property, error) {
	if r.Identifier == nil {
		return nil, &IdentifierNotFoundError{Entity: r.Entity.FullName()}
	}
	return r.Identifier, nil
}

type ShapeOptions struct {
	IncludeIdentifier bool
	// InheritDto drops properties the shape inherits from the DTO base.
	InheritDto bool
}

// Shape returns the properties a generated shape declares itself.
func (r *Result) Shape(opts ShapeOptions) []Property {
	out := make([]Property, 0, len(r.Properties))
	for _, p := range r.Properties {
		inherited := opts.InheritDto && r.DtoBase != nil && r.DtoBase.Has(p.Name)
		if p.IsIdentifier {
			if !opts.IncludeIdentifier || inherited {
				continue
			}
		} else if inherited {
			continue
		}
		out = append(out, p)
	}
	return out
}

type Introspector struct {
	asm      metadata.Assembly
	mappings map[string]string
}

func New(asm metadata.Assembly, mappings []config.DtoMapping) *Introspector {
	index := make(map[string]string, len(mappings))
	for _, m := range mappings {
		index[metadata.NormalizeName(m.Entity)] = m.Dto
	}
	return &Introspector{asm: asm, mappings: index}
}

func (i *Introspector) Resolve(shortName, qualifiedName string) (*Result, error) {
	matches := metadata.Lookup(i.asm, qualifiedName)
	switch len(matches) {
	case 0:
		return nil, &EntityNotFoundError{Name: qualifiedName}
	case 1:
	default:
		return nil, &AmbiguousEntityError{Name: qualifiedName, Matches: len(matches)}
	}
	entity := matches[0]

	all := i.properties(entity, nil)

	result := &Result{Entity: entity, Name: shortName}
	var ids []string
	for _, p := range all {
		if !p.Type.IsScalar() {
			continue
		}
		prop := Property{
			Name:         p.Name,
			Type:         p.Type,
			Nullable:     p.Type.Nullable,
			IsIdentifier: isIdentifier(p.Name, shortName),
			Settable:     p.Settable,
		}
		if prop.IsIdentifier {
			ids = append(ids, prop.Name)
		}
		result.Properties = append(result.Properties, prop)
	}

	if len(ids) > 1 {
		return nil, &AmbiguousIdentifierError{Entity: qualifiedName, Names: ids}
	}
	result.Properties = identifierFirst(result.Properties)
	if len(ids) == 1 {
		id := result.Properties[0]
		result.Identifier = &id
	}

	dto, err := i.resolveDto(entity)
	if err != nil {
		return nil, err
	}
	result.DtoBase = dto

	return result, nil
}

func isIdentifier(name, entity string) bool {
	return name == "Id" || name == entity+"Id"
}

func identifierFirst(props []Property) []Property {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		if p.IsIdentifier {
			out = append(out, p)
		}
	}
	for _, p := range props {
		if !p.IsIdentifier {
			out = append(out, p)
		}
	}
	return out
}

// properties lists t's own properties followed by those of each ancestor
// found in the assembly, nearest first, with generic parameters substituted.
func (i *Introspector) properties(t *metadata.Type, args []metadata.TypeRef) []metadata.Property {
	seen := make(map[string]bool)
	visited := make(map[*metadata.Type]bool)
	var out []metadata.Property

	for t != nil && !visited[t] {
		visited[t] = true
		for _, p := range t.Properties {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			p.Type = metadata.Substitute(p.Type, t.TypeParams, args)
			out = append(out, p)
		}

		if t.Base == nil {
			break
		}
		base := metadata.Substitute(*t.Base, t.TypeParams, args)
		t = i.find(base.FullName())
		args = base.Args
	}
	return out
}

// resolveDto walks the ancestors of entity and returns the DTO base registered
// for the nearest one, or nil.
func (i *Introspector) resolveDto(entity *metadata.Type) (*DtoBase, error) {
	if len(i.mappings) == 0 {
		return nil, nil
	}

	visited := map[*metadata.Type]bool{entity: true}
	current := entity
	var args []metadata.TypeRef

	for current.Base != nil {
		ancestor := metadata.Substitute(*current.Base, current.TypeParams, args)
		name := metadata.NormalizeName(ancestor.FullName())

		if dtoName, ok := i.mappings[name]; ok {
			return i.instantiateDto(name, dtoName, ancestor.Args)
		}

		next := i.find(name)
		if next == nil || visited[next] {
			return nil, nil
		}
		visited[next] = true
		current = next
		args = ancestor.Args
	}
	return nil, nil
}

func (i *Introspector) instantiateDto(ancestor, dtoName string, args []metadata.TypeRef) (*DtoBase, error) {
	dtoType := i.find(dtoName)
	if dtoType == nil {
		return nil, &DtoBaseNotFoundError{Ancestor: ancestor, Dto: dtoName}
	}

	ref := metadata.TypeRef{
		Namespace: dtoType.Namespace,
		Name:      dtoType.Name,
		Kind:      metadata.KindReference,
	}
	if len(dtoType.TypeParams) > 0 {
		ref.Args = args
	}

	dto := &DtoBase{Ref: ref, Type: dtoType, Ancestor: ancestor}
	for _, p := range i.properties(dtoType, ref.Args) {
		if p.Settable && p.Type.IsScalar() {
			dto.Properties = append(dto.Properties, Property{
				Name:     p.Name,
				Type:     p.Type,
				Nullable: p.Type.Nullable,
				Settable: true,
			})
		}
	}
	return dto, nil
}

func (i *Introspector) find(name string) *metadata.Type {
	matches := metadata.Lookup(i.asm, name)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
