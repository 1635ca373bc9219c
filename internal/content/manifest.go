// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package content

import (
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// Manifest represents a content types YAML file.
type Manifest struct {
	Version string         `yaml:"version"`
	Types   []TypeManifest `yaml:"types"`
}

// TypeManifest declares one content type.
type TypeManifest struct {
	Name           string      `yaml:"name" jsonschema:"minLength=1"`
	Title          string      `yaml:"title,omitempty"`
	PropertySheets []SheetDecl `yaml:"propertysheets,omitempty"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, oops.Code("MANIFEST_READ_FAILED").With("path", path).Wrap(err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, oops.With("path", path).Wrap(err)
	}
	return m, nil
}

// ParseManifest validates data against the manifest schema, parses it and
// checks the constraints the schema cannot express.
func ParseManifest(data []byte) (*Manifest, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, oops.Code("MANIFEST_INVALID").Wrap(err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, oops.Code("MANIFEST_INVALID").Wrapf(err, "invalid YAML")
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks version syntax and name uniqueness.
func (m *Manifest) Validate() error {
	if _, err := semver.NewVersion(m.Version); err != nil {
		return oops.Code("MANIFEST_INVALID").With("version", m.Version).Wrapf(err, "version must be semver")
	}

	seenTypes := make(map[string]bool, len(m.Types))
	for _, tm := range m.Types {
		if seenTypes[tm.Name] {
			return oops.Code("MANIFEST_INVALID").With("content_type", tm.Name).Errorf("duplicate content type %q", tm.Name)
		}
		seenTypes[tm.Name] = true

		seenSheets := make(map[string]bool, len(tm.PropertySheets))
		for _, sheet := range tm.PropertySheets {
			if seenSheets[sheet.Name] {
				return oops.Code("MANIFEST_INVALID").
					With("content_type", tm.Name).
					With("sheet", sheet.Name).
					Errorf("duplicate property sheet %q", sheet.Name)
			}
			seenSheets[sheet.Name] = true

			seenFields := make(map[string]bool, len(sheet.Fields))
			for _, field := range sheet.Fields {
				if seenFields[field] {
					return oops.Code("MANIFEST_INVALID").
						With("content_type", tm.Name).
						With("sheet", sheet.Name).
						With("field", field).
						Errorf("duplicate field %q", field)
				}
				seenFields[field] = true
			}
		}
	}
	return nil
}

// ContentTypes converts the manifest entries into content types.
// Types without sheets carry no PropertySheetsKey metadata.
func (m *Manifest) ContentTypes() []ContentType {
	types := make([]ContentType, 0, len(m.Types))
	for _, tm := range m.Types {
		meta := make(map[string]any)
		if tm.Title != "" {
			meta[TitleKey] = tm.Title
		}
		if len(tm.PropertySheets) > 0 {
			decls := make([]SheetDecl, len(tm.PropertySheets))
			copy(decls, tm.PropertySheets)
			meta[PropertySheetsKey] = decls
		}
		types = append(types, ContentType{Name: tm.Name, Metadata: meta})
	}
	return types
}

// Install registers every manifest type in reg.
func (m *Manifest) Install(reg *Registry) error {
	for _, ct := range m.ContentTypes() {
		if err := reg.Register(ct); err != nil {
			return oops.Code("MANIFEST_INSTALL_FAILED").With("content_type", ct.Name).Wrap(err)
		}
	}
	return nil
}
