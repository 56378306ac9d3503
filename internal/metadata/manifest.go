package metadata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Assembly string         `yaml:"assembly"`
	Types    []manifestType `yaml:"types"`
}

type manifestType struct {
	Namespace  string             `yaml:"namespace"`
	Name       string             `yaml:"name"`
	TypeParams []string           `yaml:"typeParams"`
	Enum       bool               `yaml:"enum"`
	Base       string             `yaml:"base"`
	Properties []manifestProperty `yaml:"properties"`
}

type manifestProperty struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	ReadOnly bool   `yaml:"readOnly"`
}

// LoadManifest reads a metadata manifest exported from the compiled project.
func LoadManifest(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading metadata manifest: %w", err)
	}
	return ParseManifest(data)
}

func ParseManifest(data []byte) (*Static, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing metadata manifest: %w", err)
	}

	types := make([]*Type, 0, len(file.Types))
	for _, mt := range file.Types {
		t, err := mt.toType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return NewAssembly(file.Assembly, types...), nil
}

func (mt manifestType) toType() (*Type, error) {
	if mt.Name == "" {
		return nil, fmt.Errorf("manifest type in namespace %q has no name", mt.Namespace)
	}

	t := &Type{
		Namespace:  mt.Namespace,
		Name:       NormalizeName(mt.Name),
		TypeParams: mt.TypeParams,
		Enum:       mt.Enum,
	}

	if mt.Base != "" {
		base, err := ParseType(mt.Base)
		if err != nil {
			return nil, fmt.Errorf("type %s: base: %w", t.FullName(), err)
		}
		t.Base = &base
	}

	for _, mp := range mt.Properties {
		ref, err := ParseType(mp.Type)
		if err != nil {
			return nil, fmt.Errorf("type %s: property %s: %w", t.FullName(), mp.Name, err)
		}
		t.Properties = append(t.Properties, Property{
			Name:     mp.Name,
			Type:     ref,
			Settable: !mp.ReadOnly,
		})
	}

	return t, nil
}
