package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFileName = "endpointgen.yaml"
	SettingsEnv     = "ENDPOINTGEN_SETTINGS"

	FormatManifest = "manifest"
	FormatGo       = "go"
)

type Settings struct {
	Project     Project      `yaml:"project"`
	Namespace   string       `yaml:"namespace"`
	Imports     []string     `yaml:"imports"`
	DataContext string       `yaml:"dataContext"`
	DtoMappings []DtoMapping `yaml:"dtoMappings" validate:"dive"`
	List        List         `yaml:"list"`

	// Dir is the directory the settings were read from.
	Dir string `yaml:"-"`
}

type Project struct {
	Name        string `yaml:"name" validate:"required"`
	Metadata    string `yaml:"metadata" validate:"required"`
	Format      string `yaml:"format" validate:"omitempty,oneof=manifest go"`
	GoNamespace string `yaml:"goNamespace"`
}

// DtoMapping registers a DTO base class for an entity ancestor.
type DtoMapping struct {
	Entity string `yaml:"entity" validate:"required"`
	Dto    string `yaml:"dto" validate:"required"`
}

type List struct {
	RequestBase  string `yaml:"requestBase"`
	ResponseBase string `yaml:"responseBase"`
	QueryHelper  string `yaml:"queryHelper"`
}

// Path returns the settings location: $ENDPOINTGEN_SETTINGS, or
// endpointgen.yaml in the working directory.
func Path() string {
	if p := os.Getenv(SettingsEnv); p != "" {
		return p
	}
	return DefaultFileName
}

func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("settings file %s not found", path)
		}
		return nil, fmt.Errorf("error reading settings: %w", err)
	}

	settings, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error loading settings %s: %w", path, err)
	}

	settings.Dir = filepath.Dir(path)
	return settings, nil
}

func Parse(data []byte) (*Settings, error) {
	settings := &Settings{}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("error parsing settings: %w", err)
	}

	settings.applyDefaults()

	if err := validator.New().Struct(settings); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return settings, nil
}

func (s *Settings) applyDefaults() {
	if s.Namespace == "" && s.Project.Name != "" {
		s.Namespace = s.Project.Name + ".Features"
	}
	if len(s.Imports) == 0 {
		s.Imports = []string{"FastEndpoints"}
	}
	if s.Project.Format == "" && s.Project.Metadata != "" {
		switch strings.ToLower(filepath.Ext(s.Project.Metadata)) {
		case ".yaml", ".yml", ".json":
			s.Project.Format = FormatManifest
		default:
			s.Project.Format = FormatGo
		}
	}
	if s.Project.GoNamespace == "" {
		s.Project.GoNamespace = s.Project.Name
	}
}

// MetadataPath resolves the metadata location against the settings directory.
func (s *Settings) MetadataPath() string {
	if filepath.IsAbs(s.Project.Metadata) || s.Dir == "" {
		return s.Project.Metadata
	}
	return filepath.Join(s.Dir, s.Project.Metadata)
}

// Qualify turns an entity path given on the command line into a full type
// name under the project namespace.
func (s *Settings) Qualify(entity string) string {
	if entity == "" {
		return ""
	}
	if entity == s.Project.Name || strings.HasPrefix(entity, s.Project.Name+".") {
		return entity
	}
	return s.Project.Name + "." + entity
}

// SplitQualified splits "A.B.C" into namespace "A.B" and member "C".
func SplitQualified(name string) (namespace, member string) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}
