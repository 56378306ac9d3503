package metadata

import (
	"fmt"
	"reflect"
	"time"
)

var reflectKinds = map[reflect.Kind]string{
	reflect.Bool:    "Boolean",
	reflect.String:  "String",
	reflect.Int:     "Int64",
	reflect.Int8:    "SByte",
	reflect.Int16:   "Int16",
	reflect.Int32:   "Int32",
	reflect.Int64:   "Int64",
	reflect.Uint:    "UInt64",
	reflect.Uint8:   "Byte",
	reflect.Uint16:  "UInt16",
	reflect.Uint32:  "UInt32",
	reflect.Uint64:  "UInt64",
	reflect.Float32: "Single",
	reflect.Float64: "Double",
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// FromValues builds an assembly from Go struct values (or pointers to them)
// using runtime reflection. Embedded structs are followed and registered as
// base types.
func FromValues(name, namespace string, values ...any) (*Static, error) {
	r := &reflector{namespace: namespace, seen: make(map[reflect.Type]bool)}
	for _, v := range values {
		t := reflect.TypeOf(v)
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("cannot describe %T: not a struct", v)
		}
		r.add(t)
	}
	return NewAssembly(name, r.types...), nil
}

type reflector struct {
	namespace string
	seen      map[reflect.Type]bool
	types     []*Type
}

func (r *reflector) add(t reflect.Type) {
	if r.seen[t] {
		return
	}
	r.seen[t] = true

	out := &Type{Namespace: r.namespace, Name: NormalizeName(t.Name())}
	r.types = append(r.types, out)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			if out.Base == nil {
				base := r.ref(field.Type)
				base.Nullable = false
				out.Base = &base
				if embedded := deref(field.Type); embedded.Kind() == reflect.Struct {
					r.add(embedded)
				}
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		out.Properties = append(out.Properties, Property{
			Name:     goPropertyName(field.Name),
			Type:     r.ref(field.Type),
			Settable: true,
		})
	}
}

func (r *reflector) ref(t reflect.Type) TypeRef {
	switch {
	case t == timeType:
		return System("DateTime")
	case t == durationType:
		return System("TimeSpan")
	}

	switch t.Kind() {
	case reflect.Pointer:
		ref := r.ref(t.Elem())
		ref.Nullable = true
		return ref
	case reflect.Slice, reflect.Array:
		return TypeRef{Namespace: "System", Name: "Array", Args: []TypeRef{r.ref(t.Elem())}, Kind: KindCollection}
	case reflect.Map:
		return TypeRef{
			Namespace: "System.Collections.Generic",
			Name:      "Dictionary",
			Args:      []TypeRef{r.ref(t.Key()), r.ref(t.Elem())},
			Kind:      KindCollection,
		}
	case reflect.Struct:
		return TypeRef{Namespace: r.namespace, Name: NormalizeName(t.Name()), Kind: KindReference}
	}

	if name, ok := reflectKinds[t.Kind()]; ok {
		// a named basic type declared by the caller is an enum
		if t.PkgPath() != "" && t.Name() != "" {
			return TypeRef{Namespace: r.namespace, Name: t.Name(), Kind: KindValue}
		}
		return System(name)
	}
	return System("Object")
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
