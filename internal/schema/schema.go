// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package schema describes the ordered set of named fields a property sheet
// binds to a resource.
package schema

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
)

// Absent is the type of the Null marker.
type Absent struct{}

func (Absent) String() string {
	return "<schema.Null>"
}

// Null marks a value that is not present on a resource.
var Null = Absent{}

// IsNull reports whether v is the Null marker.
func IsNull(v any) bool {
	_, ok := v.(Absent)
	return ok
}

// Node is a single named field of a schema.
type Node struct {
	Name        string
	Title       string
	Description string
}

// Schema is an ordered sequence of field nodes.
type Schema []Node

// New builds a schema with one untitled node per name, in order.
func New(names ...string) Schema {
	s := make(Schema, 0, len(names))
	for _, name := range names {
		s = append(s, Node{Name: name})
	}
	return s
}

// Names returns the node names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, node := range s {
		names[i] = node.Name
	}
	return names
}

// Lookup returns the node with the given name.
func (s Schema) Lookup(name string) (Node, bool) {
	for _, node := range s {
		if node.Name == name {
			return node, true
		}
	}
	return Node{}, false
}

// FromStruct derives a schema from the exported fields of a struct value.
// Field order, names, titles and descriptions follow the JSON Schema the
// struct reflects to, so `json` and `jsonschema` tags are honoured.
func FromStruct(v any) (Schema, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, oops.Code("SCHEMA_NOT_OBJECT").
			With("type", reflect.TypeOf(v)).
			Errorf("schema source must be a struct")
	}

	r := jsonschema.Reflector{DoNotReference: true}
	reflected := r.ReflectFromType(t)
	if reflected.Properties == nil {
		return Schema{}, nil
	}

	s := make(Schema, 0, reflected.Properties.Len())
	for pair := reflected.Properties.Oldest(); pair != nil; pair = pair.Next() {
		s = append(s, Node{
			Name:        pair.Key,
			Title:       pair.Value.Title,
			Description: pair.Value.Description,
		})
	}
	return s, nil
}
