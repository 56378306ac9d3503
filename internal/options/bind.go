package options

import (
	"fmt"
	"reflect"

	"endpointgen/internal/types"
)

type MissingRequiredOptionError struct {
	Short string
	Long  string
}

func (e *MissingRequiredOptionError) Error() string {
	return fmt.Sprintf("missing required option %s/%s", e.Short, e.Long)
}

// Bind assigns every descriptor of the schema onto arg, in declaration order.
// It returns the set of keys in values that a descriptor consumed; anything
// else in values is unknown to the command. All descriptors are visited even
// after a missing required option so the used set is always complete; the
// first missing option is returned as the error.
func Bind(schema Schema, values map[string]string, arg *types.Argument) (map[string]bool, error) {
	used := make(map[string]bool, len(values))
	target := reflect.ValueOf(arg).Elem()

	var missing error

	for _, d := range schema.Options {
		if d.Internal {
			assign(target, d, d.Default)
			continue
		}

		value, found := lookup(d, values, used)
		if found && d.Normalize != nil {
			value = d.Normalize(value)
		}

		if value == "" {
			if d.Required {
				if missing == nil {
					missing = &MissingRequiredOptionError{Short: d.Short, Long: d.Long}
				}
				continue
			}
			value = d.Default
		}
		assign(target, d, value)
	}

	return used, missing
}

func lookup(d Descriptor, values map[string]string, used map[string]bool) (string, bool) {
	value, longOK := values[d.Long]
	if longOK {
		used[d.Long] = true
	}
	shortValue, shortOK := "", false
	if d.Short != "" {
		shortValue, shortOK = values[d.Short]
		if shortOK {
			used[d.Short] = true
		}
	}
	if longOK {
		return value, true
	}
	return shortValue, shortOK
}

func assign(target reflect.Value, d Descriptor, value string) {
	field := target.FieldByName(d.Field())
	if !field.IsValid() || field.Kind() != reflect.String || !field.CanSet() {
		panic(fmt.Sprintf("options: schema mismatch, %s has no settable string field %s", d.Long, d.Field()))
	}
	field.SetString(value)
}
