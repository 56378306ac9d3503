// Package generator renders FastEndpoints source for a parsed command.
package generator

import (
	"fmt"
	"io"
	"log/slog"

	"endpointgen/internal/config"
	"endpointgen/internal/introspect"
	"endpointgen/internal/metadata"
	"endpointgen/internal/output"
	"endpointgen/internal/types"
)

type Manager struct {
	Settings *config.Settings
	// LoadAssembly opens the project metadata. It runs at most once per
	// Generate call and only for commands bound to an entity.
	LoadAssembly func(*config.Settings) (metadata.Assembly, error)
	Logger       *slog.Logger
}

func NewManager(settings *config.Settings, logger *slog.Logger) *Manager {
	return &Manager{Settings: settings, LoadAssembly: LoadAssembly, Logger: logger}
}

// LoadAssembly reads the metadata named by the settings in its configured
// format.
func LoadAssembly(s *config.Settings) (metadata.Assembly, error) {
	path := s.MetadataPath()

	var (
		asm *metadata.Static
		err error
	)
	switch s.Project.Format {
	case config.FormatGo:
		asm, err = metadata.LoadGoSource(path, s.Project.GoNamespace)
	default:
		asm, err = metadata.LoadManifest(path)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading metadata %s: %w", path, err)
	}
	return asm, nil
}

// GenerateAndSave renders arg and writes it to its output path, or to w when
// no output is set. It returns the written path, empty for w.
func (m *Manager) GenerateAndSave(arg *types.Argument, w io.Writer) (string, error) {
	content, err := m.Generate(arg)
	if err != nil {
		return "", err
	}

	if arg.Output == "" {
		if _, err := io.WriteString(w, content); err != nil {
			return "", fmt.Errorf("error writing output: %w", err)
		}
		return "", nil
	}

	path, err := output.Save(arg.Output, arg.Name, content)
	if err != nil {
		return "", fmt.Errorf("error saving output: %w", err)
	}
	m.Logger.Debug("output saved", "path", path)
	return path, nil
}

// Generate returns the complete source file for arg. Nothing is returned on
// error so callers never see partial output.
func (m *Manager) Generate(arg *types.Argument) (string, error) {
	render, ok := renderers[arg.Command]
	if !ok {
		panic(fmt.Sprintf("generator: no renderer for command %s", arg.Command))
	}
	m.prepare(arg)

	c := &renderContext{arg: arg, settings: m.Settings}
	if arg.Command.BindsEntity() {
		result, err := m.introspect(arg)
		if err != nil {
			return "", err
		}
		c.entity = result
		c.use(result.Entity.Namespace)
	}

	tmpl, err := render(c)
	if err != nil {
		return "", err
	}
	arg.Imports = append(arg.Imports, c.imports...)

	m.Logger.Debug("rendered", "command", arg.Command, "name", arg.Name, "imports", len(arg.Imports))

	return output.Assemble(output.Document{
		Imports:   arg.Imports,
		Namespace: arg.Namespace,
		Body:      tmpl.Render(),
	}), nil
}

// prepare fills Argument fields that come from the settings.
func (m *Manager) prepare(arg *types.Argument) {
	if arg.Entity != "" {
		arg.EntityFullName = m.Settings.Qualify(arg.Entity)
	}
	if arg.Namespace == "" {
		arg.Namespace = m.Settings.Namespace
	}
	if arg.DataContext == "" && arg.Command != types.GroupCommand {
		arg.DataContext = m.Settings.DataContext
	}
	arg.Imports = append(append([]string(nil), m.Settings.Imports...), arg.Imports...)
}

func (m *Manager) introspect(arg *types.Argument) (*introspect.Result, error) {
	asm, err := m.LoadAssembly(m.Settings)
	if err != nil {
		return nil, err
	}

	result, err := introspect.New(asm, m.Settings.DtoMappings).Resolve(arg.EntityName, arg.EntityFullName)
	if err != nil {
		return nil, err
	}

	dto := ""
	if result.DtoBase != nil {
		dto = result.DtoBase.Ref.String()
	}
	m.Logger.Debug("entity resolved",
		"entity", result.Entity.FullName(),
		"properties", len(result.Properties),
		"dtoBase", dto,
	)
	return result, nil
}
