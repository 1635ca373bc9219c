// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package content provides the content-type registry and the declarative
// metadata each type carries, such as the property sheets it exposes.
package content

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"github.com/samber/oops"

	"github.com/holomush/propsheet/internal/resource"
	"github.com/holomush/propsheet/internal/schema"
)

// PropertySheetsKey is the metadata key under which a content type declares
// its property sheets as a []SheetDecl.
const PropertySheetsKey = "propertysheets"

// TitleKey is the metadata key for a content type's display title.
const TitleKey = "title"

// ErrInvalidContentType indicates the content type name is empty.
var ErrInvalidContentType = errors.New("content type name cannot be empty")

// ErrDuplicateContentType indicates a content type already exists.
var ErrDuplicateContentType = errors.New("content type already registered")

// SheetDecl declares one property sheet of a content type.
type SheetDecl struct {
	Name   string   `yaml:"name" jsonschema:"minLength=1"`
	Title  string   `yaml:"title,omitempty"`
	Fields []string `yaml:"fields" jsonschema:"minItems=1"`
}

// Schema returns the sheet's fields as a schema, in declaration order.
func (d SheetDecl) Schema() schema.Schema {
	return schema.New(d.Fields...)
}

// ContentType is a named kind of resource with declarative metadata.
type ContentType struct {
	Name     string
	Metadata map[string]any
}

// PropertySheets returns the sheets the type declares, or nil.
func (t ContentType) PropertySheets() []SheetDecl {
	decls, _ := t.Metadata[PropertySheetsKey].([]SheetDecl)
	return decls
}

// Registry manages content types.
// It is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu    sync.RWMutex
	types map[string]ContentType
}

// NewRegistry creates an empty content type registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]ContentType)}
}

// Register adds a content type to the registry.
// Returns ErrInvalidContentType for empty names and ErrDuplicateContentType on duplicates.
func (r *Registry) Register(ct ContentType) error {
	name := strings.TrimSpace(ct.Name)
	if name == "" {
		return ErrInvalidContentType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		return oops.With("content_type", name).Wrap(ErrDuplicateContentType)
	}
	if r.types == nil {
		r.types = make(map[string]ContentType)
	}
	ct.Name = name
	r.types[name] = ct
	return nil
}

// MustRegister adds a content type to the registry, panicking on error.
// This is intended for package initialization only.
func (r *Registry) MustRegister(ct ContentType) {
	if err := r.Register(ct); err != nil {
		panic(err)
	}
}

// Lookup returns the content type with the given name.
func (r *Registry) Lookup(name string) (ContentType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ct, ok := r.types[name]
	return ct, ok
}

// Types returns the sorted list of registered content type names.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Match returns the sorted names of content types matching a glob pattern.
// Segments are separated by '.', so "doc.*" matches "doc.page" but not
// "doc.page.draft".
func (r *Registry) Match(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern, '.')
	if err != nil {
		return nil, oops.Code("INVALID_PATTERN").With("pattern", pattern).Wrap(err)
	}

	var matches []string
	for _, name := range r.Types() {
		if g.Match(name) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}

// TypeOf returns the content type name of res, if it has one.
func TypeOf(res resource.Resource) (string, bool) {
	typed, ok := res.(resource.Typed)
	if !ok {
		return "", false
	}
	name := typed.ContentType()
	return name, name != ""
}

// Metadata returns the metadata value name for the content type of res.
// def is returned when res has no registered type or the type does not
// declare name.
func (r *Registry) Metadata(res resource.Resource, name string, def any) any {
	typeName, ok := TypeOf(res)
	if !ok {
		return def
	}
	ct, ok := r.Lookup(typeName)
	if !ok {
		return def
	}
	v, ok := ct.Metadata[name]
	if !ok {
		return def
	}
	return v
}
