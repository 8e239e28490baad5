// Package spec loads field descriptor sets from YAML documents, so
// documentation for a payload can live beside it in a file.
package spec

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/docfields/docfields/field"
	"github.com/docfields/docfields/ir"
)

// ErrSpec wraps failures to load or convert a descriptor set.
var ErrSpec = errors.New("spec error")

// FieldSpec is the YAML form of a single field descriptor.
type FieldSpec struct {
	Path        string `yaml:"path"`
	Description string `yaml:"description,omitempty"`
	Type        string `yaml:"type,omitempty"`
	Optional    bool   `yaml:"optional,omitempty"`
	Ignored     bool   `yaml:"ignored,omitempty"`
	Subsection  bool   `yaml:"subsection,omitempty"`
}

// Set is a named collection of field specs.
type Set struct {
	Name   string      `yaml:"name"`
	Fields []FieldSpec `yaml:"fields"`
}

// Load parses a YAML descriptor set.
func Load(data []byte) (*Set, error) {
	set := &Set{}
	if err := yaml.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSpec, err)
	}
	if len(set.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrSpec)
	}
	return set, nil
}

// LoadFile reads and parses a YAML descriptor set from a file. A set with
// no name takes the file path as its name.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSpec, err)
	}
	set, err := Load(data)
	if err != nil {
		return nil, err
	}
	if set.Name == "" {
		set.Name = path
	}
	return set, nil
}

// Descriptors converts the set to field descriptors.
func (s *Set) Descriptors() ([]field.Descriptor, error) {
	res := make([]field.Descriptor, 0, len(s.Fields))
	for i := range s.Fields {
		d, err := s.Fields[i].Descriptor()
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

// Descriptor converts one field spec.
func (fs *FieldSpec) Descriptor() (field.Descriptor, error) {
	var opts []field.Option
	if fs.Description != "" {
		opts = append(opts, field.Description(fs.Description))
	}
	if fs.Optional {
		opts = append(opts, field.Optional())
	}
	if fs.Ignored {
		opts = append(opts, field.Ignored())
	}
	if fs.Subsection {
		opts = append(opts, field.Subsection())
	}
	if fs.Type != "" {
		t, err := ir.ParseType(fs.Type)
		if err != nil {
			return field.Descriptor{}, fmt.Errorf("%w: field %q: %s", ErrSpec, fs.Path, err)
		}
		opts = append(opts, field.Type(t))
	}
	d, err := field.New(fs.Path, opts...)
	if err != nil {
		return field.Descriptor{}, fmt.Errorf("%w: %s", ErrSpec, err)
	}
	return d, nil
}
