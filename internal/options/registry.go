// Package options holds the static command table: keywords, aliases and the
// option descriptors each command kind accepts.
package options

import (
	"fmt"
	"reflect"
	"strings"

	"endpointgen/internal/types"

	"github.com/iancoleman/strcase"
)

type Normalizer func(string) string

type Descriptor struct {
	Long      string
	Short     string
	Required  bool
	Default   string
	Internal  bool
	Normalize Normalizer
	Usage     string
}

// Field is the Argument field the descriptor binds to.
func (d Descriptor) Field() string {
	return strcase.ToCamel(strings.TrimLeft(d.Long, "-"))
}

type Schema struct {
	Command  types.Command
	Keywords []string
	Summary  string
	Options  []Descriptor
}

var (
	name = Descriptor{Long: "--name", Short: "-n", Required: true, Normalize: strcase.ToCamel,
		Usage: "artifact name, used as the {Name}Endpoint/{Name}Request prefix"}
	entity = Descriptor{Long: "--entity", Short: "-e", Normalize: NormalizeEntity,
		Usage: "entity type, relative to the project namespace"}
	url = Descriptor{Long: "--url", Short: "-u", Normalize: trimSlashes,
		Usage: "route prefix"}
	group = Descriptor{Long: "--group", Short: "-g", Normalize: strcase.ToCamel,
		Usage: "owning endpoint group"}
	dataContext = Descriptor{Long: "--data-context", Short: "-dc", Normalize: strings.TrimSpace,
		Usage: "injected data context type"}
	permission = Descriptor{Long: "--permission", Short: "-p", Normalize: strings.TrimSpace,
		Usage: "permission required to call the endpoint"}
	namespace = Descriptor{Long: "--namespace", Short: "-ns", Normalize: strings.TrimSpace,
		Usage: "target namespace of the generated code"}
	output = Descriptor{Long: "--output", Short: "-o", Normalize: strings.TrimSpace,
		Usage: "file or directory to write to, stdout when empty"}
)

func required(d Descriptor) Descriptor {
	d.Required = true
	return d
}

func internalMethod(verb string) Descriptor {
	return Descriptor{Long: "--method", Short: "-m", Internal: true, Default: verb}
}

func entityOptions(verb string) []Descriptor {
	return []Descriptor{
		name,
		required(entity),
		url,
		group,
		dataContext,
		permission,
		namespace,
		output,
		internalMethod(verb),
	}
}

var schemas = []Schema{
	{
		Command:  types.EndpointCommand,
		Keywords: []string{"endpoint", "ep"},
		Summary:  "plain endpoint with empty request and response shapes",
		Options: []Descriptor{
			name,
			{Long: "--method", Short: "-m", Required: true, Normalize: upper, Usage: "HTTP method"},
			required(url),
			entity,
			group,
			dataContext,
			permission,
			namespace,
			output,
		},
	},
	{
		Command:  types.CreateCommand,
		Keywords: []string{"create", "cr"},
		Summary:  "POST endpoint creating an entity",
		Options:  entityOptions("POST"),
	},
	{
		Command:  types.ReadCommand,
		Keywords: []string{"read", "rd"},
		Summary:  "GET endpoint reading one entity by identifier",
		Options:  entityOptions("GET"),
	},
	{
		Command:  types.UpdateCommand,
		Keywords: []string{"update", "up"},
		Summary:  "PUT endpoint updating one entity by identifier",
		Options:  entityOptions("PUT"),
	},
	{
		Command:  types.ListCommand,
		Keywords: []string{"list", "ls"},
		Summary:  "GET endpoint listing entities",
		Options:  entityOptions("GET"),
	},
	{
		Command:  types.DeleteCommand,
		Keywords: []string{"delete", "del"},
		Summary:  "DELETE endpoint removing one entity by identifier",
		Options:  entityOptions("DELETE"),
	},
	{
		Command:  types.GroupCommand,
		Keywords: []string{"group", "gr"},
		Summary:  "endpoint group",
		Options: []Descriptor{
			name,
			url,
			namespace,
			output,
		},
	},
}

var keywords = buildKeywordIndex(schemas)

func buildKeywordIndex(list []Schema) map[string]int {
	index := make(map[string]int)
	for i, s := range list {
		for _, k := range s.Keywords {
			index[k] = i
		}
	}
	return index
}

// Lookup resolves a command keyword or alias. Matching is case-sensitive.
func Lookup(keyword string) (Schema, bool) {
	i, ok := keywords[keyword]
	if !ok {
		return Schema{}, false
	}
	return schemas[i], true
}

// For returns the schema of a command kind. A kind without a schema is a
// registry defect.
func For(cmd types.Command) Schema {
	for _, s := range schemas {
		if s.Command == cmd {
			return s
		}
	}
	panic(fmt.Sprintf("options: no schema registered for command %q", cmd))
}

func Schemas() []Schema {
	out := make([]Schema, len(schemas))
	copy(out, schemas)
	return out
}

// Validate checks the registry invariants. It is run by tests; a failure means
// the table itself is wrong.
func Validate() error {
	return validateSchemas(schemas)
}

func validateSchemas(list []Schema) error {
	argType := reflect.TypeOf(types.Argument{})
	seenCommands := make(map[types.Command]bool)
	seenKeywords := make(map[string]types.Command)

	for _, s := range list {
		if seenCommands[s.Command] {
			return fmt.Errorf("duplicate schema for command %s", s.Command)
		}
		seenCommands[s.Command] = true

		if len(s.Keywords) == 0 {
			return fmt.Errorf("command %s has no keywords", s.Command)
		}
		for _, k := range s.Keywords {
			if other, ok := seenKeywords[k]; ok {
				return fmt.Errorf("keyword %q used by both %s and %s", k, other, s.Command)
			}
			seenKeywords[k] = s.Command
		}

		flags := make(map[string]bool)
		for _, d := range s.Options {
			for _, flag := range []string{d.Long, d.Short} {
				if flag == "" {
					continue
				}
				if flags[flag] {
					return fmt.Errorf("command %s declares flag %s twice", s.Command, flag)
				}
				flags[flag] = true
			}
			field, ok := argType.FieldByName(d.Field())
			if !ok || field.Type.Kind() != reflect.String {
				return fmt.Errorf("command %s: option %s has no string field %s", s.Command, d.Long, d.Field())
			}
		}
	}

	for _, cmd := range []types.Command{
		types.EndpointCommand, types.CreateCommand, types.ReadCommand, types.UpdateCommand,
		types.ListCommand, types.DeleteCommand, types.GroupCommand,
	} {
		if !seenCommands[cmd] {
			return fmt.Errorf("no schema for command %s", cmd)
		}
	}
	return nil
}

// NormalizeEntity camel-cases every dotted segment: "identity.app_user" becomes
// "Identity.AppUser".
func NormalizeEntity(value string) string {
	value = strings.Trim(strings.TrimSpace(value), ".")
	if value == "" {
		return ""
	}
	parts := strings.Split(value, ".")
	for i, p := range parts {
		parts[i] = strcase.ToCamel(p)
	}
	return strings.Join(parts, ".")
}

func upper(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func trimSlashes(value string) string {
	return strings.Trim(strings.TrimSpace(value), "/")
}
