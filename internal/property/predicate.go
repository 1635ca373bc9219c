// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package property

import (
	"github.com/holomush/propsheet/internal/registry"
	"github.com/holomush/propsheet/internal/resource"
)

// PropertiedPredicateName is the name the propertied predicate is added
// under in the predicate domain.
const PropertiedPredicateName = "propertied"

// Predicate is a named boolean condition evaluated against a resource when
// selecting views.
type Predicate interface {
	// Text describes the predicate for humans.
	Text() string
	// PHash identifies the predicate and its configured value.
	PHash() string
	Match(res resource.Resource, req *registry.Request) bool
}

// PredicateFactory builds a predicate from its configured value.
type PredicateFactory func(value any) Predicate

// PropertiedPredicate holds when a resource's propertied state equals the
// configured value.
type PropertiedPredicate struct {
	value bool

	// IsPropertied decides the resource state. It defaults to the package
	// IsPropertied and may be replaced.
	IsPropertied func(res resource.Resource, req *registry.Request) bool
}

// NewPropertiedPredicate creates the predicate; value is interpreted by
// truthiness, so "yes", 1 and true all select propertied resources.
func NewPropertiedPredicate(value any) *PropertiedPredicate {
	return &PropertiedPredicate{value: truthy(value), IsPropertied: IsPropertied}
}

// Value returns the configured boolean.
func (p *PropertiedPredicate) Value() bool {
	return p.value
}

// Text returns "propertied = True" or "propertied = False".
func (p *PropertiedPredicate) Text() string {
	if p.value {
		return "propertied = True"
	}
	return "propertied = False"
}

// PHash returns the same string as Text.
func (p *PropertiedPredicate) PHash() string {
	return p.Text()
}

// Match reports whether res's propertied state equals the configured value.
func (p *PropertiedPredicate) Match(res resource.Resource, req *registry.Request) bool {
	check := p.IsPropertied
	if check == nil {
		check = IsPropertied
	}
	return check(res, req) == p.value
}
