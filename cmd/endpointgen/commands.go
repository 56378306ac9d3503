package main

import (
	"fmt"
	"text/template"

	"endpointgen/internal/options"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cobra"
)

const commandsTemplate = `{{- range . }}
{{ .Command | toString | upper }}  {{ join ", " .Keywords }}
  {{ .Summary }}
{{- range .Options }}{{ if not .Internal }}
    {{ printf "%-4s" .Short }} {{ printf "%-16s" .Long }} {{ if .Required }}required{{ else }}{{ repeat 8 " " }}{{ end }}  {{ .Usage }}
{{- end }}{{ end }}
{{ end -}}
`

var commandsTmpl = template.Must(template.New("commands").Funcs(sprig.TxtFuncMap()).Parse(commandsTemplate))

func commandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List command keywords, aliases and options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := commandsTmpl.Execute(cmd.OutOrStdout(), options.Schemas()); err != nil {
				return fmt.Errorf("error rendering commands: %w", err)
			}
			return nil
		},
	}
}
