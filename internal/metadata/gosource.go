package metadata

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

var goBasicTypes = map[string]string{
	"bool":    "Boolean",
	"string":  "String",
	"int":     "Int64",
	"int8":    "SByte",
	"int16":   "Int16",
	"int32":   "Int32",
	"rune":    "Int32",
	"int64":   "Int64",
	"uint":    "UInt64",
	"uint8":   "Byte",
	"byte":    "Byte",
	"uint16":  "UInt16",
	"uint32":  "UInt32",
	"uint64":  "UInt64",
	"float32": "Single",
	"float64": "Double",
}

// qualified Go types with a System equivalent; the bool marks sql.Null* wrappers
var goSelectorTypes = map[string]struct {
	name     string
	nullable bool
}{
	"time.Time":           {"DateTime", false},
	"time.Duration":       {"TimeSpan", false},
	"uuid.UUID":           {"Guid", false},
	"decimal.Decimal":     {"Decimal", false},
	"sql.NullString":      {"String", true},
	"sql.NullBool":        {"Boolean", true},
	"sql.NullInt16":       {"Int16", true},
	"sql.NullInt32":       {"Int32", true},
	"sql.NullInt64":       {"Int64", true},
	"sql.NullFloat64":     {"Double", true},
	"sql.NullTime":        {"DateTime", true},
	"sql.NullByte":        {"Byte", true},
	"uuid.NullUUID":       {"Guid", true},
	"decimal.NullDecimal": {"Decimal", true},
}

// LoadGoSource builds an assembly from the struct declarations of the Go
// package in dir. Every type is placed in namespace.
func LoadGoSource(dir, namespace string) (*Static, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading source directory %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	var files []*ast.File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		filePath := filepath.Join(dir, name)
		node, err := parser.ParseFile(fset, filePath, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("error parsing file %s: %w", filePath, err)
		}
		files = append(files, node)
	}

	return NewAssembly(filepath.Base(dir), collectGoTypes(files, namespace)...), nil
}

// ParseGoSource is LoadGoSource for a single in-memory file.
func ParseGoSource(src, namespace string) (*Static, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, "source.go", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("error parsing source: %w", err)
	}
	return NewAssembly(node.Name.Name, collectGoTypes([]*ast.File{node}, namespace)...), nil
}

func collectGoTypes(files []*ast.File, namespace string) []*Type {
	var types []*Type
	for _, file := range files {
		ast.Inspect(file, func(n ast.Node) bool {
			ts, ok := n.(*ast.TypeSpec)
			if !ok {
				return true
			}
			if t := goType(ts, namespace); t != nil {
				types = append(types, t)
			}
			return false
		})
	}
	return types
}

func goType(ts *ast.TypeSpec, namespace string) *Type {
	t := &Type{Namespace: namespace, Name: ts.Name.Name}

	params := make(map[string]bool)
	if ts.TypeParams != nil {
		for _, field := range ts.TypeParams.List {
			for _, name := range field.Names {
				t.TypeParams = append(t.TypeParams, name.Name)
				params[name.Name] = true
			}
		}
	}

	switch st := ts.Type.(type) {
	case *ast.StructType:
		for _, field := range st.Fields.List {
			ref := goTypeRef(field.Type, namespace, params)
			if len(field.Names) == 0 {
				if t.Base == nil {
					base := ref
					base.Nullable = false
					t.Base = &base
				}
				continue
			}
			for _, name := range field.Names {
				if !name.IsExported() {
					continue
				}
				t.Properties = append(t.Properties, Property{
					Name:     goPropertyName(name.Name),
					Type:     ref,
					Settable: true,
				})
			}
		}
		return t
	case *ast.Ident:
		// type Status int and friends
		if _, ok := goBasicTypes[st.Name]; ok && ts.Assign == token.NoPos {
			t.Enum = true
			return t
		}
	}
	return nil
}

func goTypeRef(expr ast.Expr, namespace string, params map[string]bool) TypeRef {
	switch e := expr.(type) {
	case *ast.Ident:
		if name, ok := goBasicTypes[e.Name]; ok {
			return System(name)
		}
		if params[e.Name] {
			return TypeRef{Name: e.Name, Kind: KindParam}
		}
		if e.Name == "any" {
			return System("Object")
		}
		return TypeRef{Namespace: namespace, Name: e.Name, Kind: KindReference}
	case *ast.StarExpr:
		ref := goTypeRef(e.X, namespace, params)
		ref.Nullable = true
		return ref
	case *ast.SelectorExpr:
		if pkg, ok := e.X.(*ast.Ident); ok {
			if known, ok := goSelectorTypes[pkg.Name+"."+e.Sel.Name]; ok {
				ref := System(known.name)
				ref.Nullable = known.nullable
				return ref
			}
			return TypeRef{Namespace: pkg.Name, Name: e.Sel.Name, Kind: KindReference}
		}
	case *ast.ArrayType:
		elem := goTypeRef(e.Elt, namespace, params)
		return TypeRef{Namespace: "System", Name: "Array", Args: []TypeRef{elem}, Kind: KindCollection}
	case *ast.MapType:
		key := goTypeRef(e.Key, namespace, params)
		value := goTypeRef(e.Value, namespace, params)
		return TypeRef{Namespace: "System.Collections.Generic", Name: "Dictionary", Args: []TypeRef{key, value}, Kind: KindCollection}
	case *ast.IndexExpr:
		ref := goTypeRef(e.X, namespace, params)
		ref.Args = []TypeRef{goTypeRef(e.Index, namespace, params)}
		return ref
	case *ast.IndexListExpr:
		ref := goTypeRef(e.X, namespace, params)
		for _, index := range e.Indices {
			ref.Args = append(ref.Args, goTypeRef(index, namespace, params))
		}
		return ref
	}
	return System("Object")
}

// goPropertyName maps an ID suffix to the target naming: ID becomes Id and
// UserID becomes UserId. Longer initialisms such as UUID are left alone.
func goPropertyName(name string) string {
	if name == "ID" {
		return "Id"
	}
	if !strings.HasSuffix(name, "ID") {
		return name
	}
	r, _ := utf8.DecodeLastRuneInString(name[:len(name)-2])
	if !unicode.IsLower(r) {
		return name
	}
	return name[:len(name)-2] + "Id"
}
