package metadata

import (
	"fmt"
	"strings"
)

var keywordTypes = map[string]string{
	"bool":    "Boolean",
	"byte":    "Byte",
	"sbyte":   "SByte",
	"char":    "Char",
	"short":   "Int16",
	"ushort":  "UInt16",
	"int":     "Int32",
	"uint":    "UInt32",
	"long":    "Int64",
	"ulong":   "UInt64",
	"float":   "Single",
	"double":  "Double",
	"decimal": "Decimal",
	"string":  "String",
	"object":  "Object",
}

var systemValueTypes = map[string]bool{
	"Boolean":        true,
	"Byte":           true,
	"SByte":          true,
	"Char":           true,
	"Int16":          true,
	"UInt16":         true,
	"Int32":          true,
	"UInt32":         true,
	"Int64":          true,
	"UInt64":         true,
	"Single":         true,
	"Double":         true,
	"Decimal":        true,
	"DateTime":       true,
	"DateTimeOffset": true,
	"DateOnly":       true,
	"TimeOnly":       true,
	"TimeSpan":       true,
	"Guid":           true,
}

var collectionTypes = map[string]bool{
	"Array":                true,
	"List":                 true,
	"IList":                true,
	"ICollection":          true,
	"IEnumerable":          true,
	"HashSet":              true,
	"ISet":                 true,
	"Dictionary":           true,
	"IDictionary":          true,
	"IReadOnlyList":        true,
	"IReadOnlyCollection":  true,
	"IReadOnlyDictionary":  true,
	"Collection":           true,
	"ObservableCollection": true,
}

// System builds a reference to a System type and classifies it.
func System(name string) TypeRef {
	return Classify(TypeRef{Namespace: "System", Name: name})
}

// Classify fills in Kind from the type's name. Keyword spellings and bare
// System names are expanded; Nullable<T> collapses to a nullable T.
func Classify(ref TypeRef) TypeRef {
	if ref.Namespace == "" {
		if full, ok := keywordTypes[ref.Name]; ok && len(ref.Args) == 0 {
			ref.Namespace, ref.Name = "System", full
		} else if systemValueTypes[ref.Name] || ref.Name == "String" {
			ref.Namespace = "System"
		}
	}

	if ref.Name == "Nullable" && (ref.Namespace == "" || ref.Namespace == "System") && len(ref.Args) == 1 {
		inner := ref.Args[0]
		inner.Nullable = true
		return inner
	}

	switch {
	case ref.Namespace == "System" && ref.Name == "String":
		ref.Kind = KindString
	case ref.Namespace == "System" && systemValueTypes[ref.Name]:
		ref.Kind = KindValue
	case collectionTypes[ref.Name]:
		ref.Kind = KindCollection
	default:
		ref.Kind = KindReference
	}
	return ref
}

// ParseType parses a type expression such as "int?", "System.Int32",
// "List<MyApp.Order>", "Nullable<Guid>", "Order[]" or the CLR form
// "List`1[[MyApp.Order, MyApp]]".
func ParseType(expr string) (TypeRef, error) {
	p := &typeParser{src: []rune(strings.TrimSpace(expr))}
	if len(p.src) == 0 {
		return TypeRef{}, fmt.Errorf("empty type expression")
	}
	ref, err := p.parse()
	if err != nil {
		return TypeRef{}, fmt.Errorf("invalid type %q: %w", expr, err)
	}
	p.skipSpace()
	if !p.done() {
		return TypeRef{}, fmt.Errorf("invalid type %q: unexpected %q at %d", expr, string(p.src[p.pos:]), p.pos)
	}
	return ref, nil
}

type typeParser struct {
	src []rune
	pos int
}

func (p *typeParser) done() bool {
	return p.pos >= len(p.src)
}

func (p *typeParser) peek() rune {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *typeParser) skipSpace() {
	for !p.done() && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) expect(r rune) error {
	p.skipSpace()
	if p.peek() != r {
		return fmt.Errorf("expected %q at %d", r, p.pos)
	}
	p.pos++
	return nil
}

func (p *typeParser) parse() (TypeRef, error) {
	p.skipSpace()
	start := p.pos
	for !p.done() && isNameRune(p.peek()) {
		p.pos++
	}
	if start == p.pos {
		return TypeRef{}, fmt.Errorf("expected type name at %d", p.pos)
	}
	qualified := strings.ReplaceAll(string(p.src[start:p.pos]), "+", ".")
	ref := TypeRef{}
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		ref.Namespace, ref.Name = qualified[:i], qualified[i+1:]
	} else {
		ref.Name = qualified
	}

	var err error
	switch p.peek() {
	case '<':
		p.pos++
		ref.Args, err = p.parseArgs('>')
	case '`':
		p.pos++
		for !p.done() && p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
		}
		if p.peek() == '[' && !p.arraySuffix() {
			p.pos++
			ref.Args, err = p.parseClrArgs()
		}
	}
	if err != nil {
		return TypeRef{}, err
	}

	ref = Classify(ref)

	for p.arraySuffix() {
		p.pos += 2
		ref = TypeRef{Namespace: "System", Name: "Array", Args: []TypeRef{ref}, Kind: KindCollection}
	}
	if p.peek() == '?' {
		p.pos++
		ref.Nullable = true
	}
	return ref, nil
}

func (p *typeParser) arraySuffix() bool {
	return p.pos+1 < len(p.src) && p.src[p.pos] == '[' && p.src[p.pos+1] == ']'
}

func (p *typeParser) parseArgs(closing rune) ([]TypeRef, error) {
	var args []TypeRef
	for {
		arg, err := p.parse()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		return args, p.expect(closing)
	}
}

// parseClrArgs reads "[A, asm],[B, asm]]" or "A,B]" after the opening bracket.
func (p *typeParser) parseClrArgs() ([]TypeRef, error) {
	var args []TypeRef
	for {
		p.skipSpace()
		if p.peek() == '[' {
			p.pos++
			arg, err := p.parse()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			// skip the assembly qualification up to the closing bracket
			for !p.done() && p.peek() != ']' {
				p.pos++
			}
			if err := p.expect(']'); err != nil {
				return nil, err
			}
		} else {
			arg, err := p.parse()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		return args, p.expect(']')
	}
}

func isNameRune(r rune) bool {
	return r == '_' || r == '.' || r == '+' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
