// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package resource provides content resources with named attributes.
package resource

import (
	"sort"
	"sync"

	"github.com/oklog/ulid/v2"
)

// Resource is a mutable object with arbitrary named attributes.
type Resource interface {
	Attr(name string) (any, bool)
	SetAttr(name string, value any)
}

// Typed is implemented by resources that know their content type.
type Typed interface {
	ContentType() string
}

// Identified is implemented by resources with a stable identity.
type Identified interface {
	ID() ulid.ULID
}

// Object is the default Resource implementation.
// Attribute access is safe for concurrent use.
type Object struct {
	id          ulid.ULID
	contentType string

	mu    sync.RWMutex
	attrs map[string]any
}

// New creates an empty resource of the given content type.
func New(contentType string) *Object {
	return &Object{
		id:          NewULID(),
		contentType: contentType,
		attrs:       make(map[string]any),
	}
}

// ID returns the resource identifier.
func (o *Object) ID() ulid.ULID {
	return o.id
}

// ContentType returns the content type name the resource was created with.
func (o *Object) ContentType() string {
	return o.contentType
}

// Attr returns the named attribute and whether it is set.
func (o *Object) Attr(name string) (any, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	v, ok := o.attrs[name]
	return v, ok
}

// SetAttr sets the named attribute.
func (o *Object) SetAttr(name string, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.attrs == nil {
		o.attrs = make(map[string]any)
	}
	o.attrs[name] = value
}

// DelAttr removes the named attribute if present.
func (o *Object) DelAttr(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.attrs, name)
}

// AttrNames returns the sorted names of all set attributes.
func (o *Object) AttrNames() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	names := make([]string, 0, len(o.attrs))
	for name := range o.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
