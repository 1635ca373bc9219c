// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package property binds schema fields to resource attributes through
// property sheets, and provides the view predicate that tells whether a
// resource exposes any.
package property

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/holomush/propsheet/internal/event"
	"github.com/holomush/propsheet/internal/registry"
	"github.com/holomush/propsheet/internal/resource"
	"github.com/holomush/propsheet/internal/schema"
)

// Values maps field names to values.
type Values map[string]any

// PropertySheet reads and writes the schema's fields on a resource.
type PropertySheet struct {
	Schema   schema.Schema
	Resource resource.Resource
	Request  *registry.Request
}

// NewPropertySheet creates a sheet binding s to res for the given request.
func NewPropertySheet(res resource.Resource, req *registry.Request, s schema.Schema) *PropertySheet {
	return &PropertySheet{Schema: s, Resource: res, Request: req}
}

// Get returns the current value of every schema field. Fields the resource
// does not have are reported as schema.Null.
func (p *PropertySheet) Get() Values {
	vals := make(Values, len(p.Schema))
	for _, node := range p.Schema {
		v, ok := p.Resource.Attr(node.Name)
		if !ok {
			v = schema.Null
		}
		vals[node.Name] = v
	}
	return vals
}

// Set writes values onto the resource for every schema field present in
// values and not named in omit. A single omitted name is passed as
// Set(ctx, vals, "title"); a collection as Set(ctx, vals, names...).
// Fields outside the schema are ignored. AfterSet runs once with whether
// any attribute actually changed.
func (p *PropertySheet) Set(ctx context.Context, values Values, omit ...string) (bool, error) {
	skip := make(map[string]struct{}, len(omit))
	for _, name := range omit {
		skip[name] = struct{}{}
	}

	changed := false
	for _, node := range p.Schema {
		name := node.Name
		if _, omitted := skip[name]; omitted {
			continue
		}
		newVal, ok := values[name]
		if !ok {
			continue
		}
		oldVal, exists := p.Resource.Attr(name)
		if exists && reflect.DeepEqual(oldVal, newVal) {
			continue
		}
		p.Resource.SetAttr(name, newVal)
		changed = true
	}

	if reg := p.registry(); reg != nil {
		reg.Metrics().RecordSheetSet(changed)
	}
	slog.DebugContext(ctx, "property sheet set",
		"fields", len(p.Schema),
		"omitted", len(omit),
		"changed", changed,
	)

	return changed, p.AfterSet(ctx, changed)
}

// AfterSet publishes an ObjectModified event for the resource when changed
// is true. Nothing is published without a request registry.
func (p *PropertySheet) AfterSet(ctx context.Context, changed bool) error {
	reg := p.registry()
	if !changed || reg == nil {
		return nil
	}
	ev := event.ObjectModified(p.Resource, p.Request.Subject)
	return reg.Notify(ctx, ev)
}

func (p *PropertySheet) registry() *registry.Registry {
	if p.Request == nil {
		return nil
	}
	return p.Request.Registry
}
