package parser

import (
	"fmt"
	"strings"

	"endpointgen/internal/options"
	"endpointgen/internal/types"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

type InvalidCommandError struct {
	Token string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid command %q", e.Token)
}

type MalformedArgumentsError struct {
	Count int
}

func (e *MalformedArgumentsError) Error() string {
	if e.Count == 0 {
		return "malformed arguments: no command given"
	}
	return fmt.Sprintf("malformed arguments: expected flag/value pairs, got %d token(s) after the command", e.Count)
}

type UnknownOptionError struct {
	Key string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %s", e.Key)
}

// ParseCommand resolves a keyword or alias to its command kind.
func ParseCommand(keyword string) types.Command {
	schema, ok := options.Lookup(keyword)
	if !ok {
		return types.UnknownCommand
	}
	return schema.Command
}

// Parse turns CLI tokens into a bound Argument. It checks syntax and options
// only; whether the entity exists is decided later.
func Parse(tokens []string) (*types.Argument, error) {
	if len(tokens) == 0 {
		return nil, &MalformedArgumentsError{}
	}

	schema, ok := options.Lookup(tokens[0])
	if !ok {
		return nil, &InvalidCommandError{Token: tokens[0]}
	}

	rest := tokens[1:]
	if len(rest)%2 != 0 {
		return nil, &MalformedArgumentsError{Count: len(rest)}
	}

	values, order := parseFlags(rest)

	arg := &types.Argument{Command: schema.Command}
	used, err := options.Bind(schema, values, arg)

	for _, key := range order {
		if !used[key] {
			return nil, &UnknownOptionError{Key: key}
		}
	}
	if err != nil {
		return nil, err
	}

	complete(arg)
	return arg, nil
}

// parseFlags folds flag/value pairs into a map; a repeated flag overwrites the
// earlier value. order keeps first appearance for error reporting.
func parseFlags(pairs []string) (map[string]string, []string) {
	values := make(map[string]string, len(pairs)/2)
	order := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i]
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = pairs[i+1]
	}
	return values, order
}

func complete(arg *types.Argument) {
	if arg.Entity != "" {
		parts := strings.Split(arg.Entity, ".")
		arg.EntityName = parts[len(parts)-1]
		arg.EntityPlural = inflection.Plural(arg.EntityName)
	}

	if arg.Url == "" {
		switch {
		case arg.Command.BindsEntity():
			arg.Url = strcase.ToKebab(arg.EntityPlural)
		case arg.Command == types.GroupCommand:
			// the group class and tag drop a Group suffix, so the route does too
			name := strings.TrimSuffix(arg.Name, "Group")
			if name == "" {
				name = arg.Name
			}
			arg.Url = strcase.ToKebab(name)
		}
	}
}
