package introspect

import "fmt"

type EntityNotFoundError struct {
	Name string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %s not found", e.Name)
}

type AmbiguousEntityError struct {
	Name    string
	Matches int
}

func (e *AmbiguousEntityError) Error() string {
	return fmt.Sprintf("entity %s is ambiguous: %d types match", e.Name, e.Matches)
}

type AmbiguousIdentifierError struct {
	Entity string
	Names  []string
}

func (e *AmbiguousIdentifierError) Error() string {
	return fmt.Sprintf("entity %s has more than one identifier property: %v", e.Entity, e.Names)
}

type IdentifierNotFoundError struct {
	Entity string
}

func (e *IdentifierNotFoundError) Error() string {
	return fmt.Sprintf("entity %s has no identifier property (Id)", e.Entity)
}

type DtoBaseNotFoundError struct {
	Ancestor string
	Dto      string
}

func (e *DtoBaseNotFoundError) Error() string {
	return fmt.Sprintf("dto base %s mapped for %s not found", e.Dto, e.Ancestor)
}
