// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package property

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/samber/oops"

	"github.com/holomush/propsheet/internal/registry"
	"github.com/holomush/propsheet/internal/resource"
)

// DomainKey is the registry utility key of the predicate domain.
const DomainKey = "property.PredicateDomain"

// ErrInvalidPredicateName indicates the predicate name is empty.
var ErrInvalidPredicateName = errors.New("predicate name cannot be empty")

// ErrDuplicatePredicate indicates a predicate with the same name already exists.
var ErrDuplicatePredicate = errors.New("predicate already registered")

// ErrPredicateNotFound indicates no predicate has the requested name.
var ErrPredicateNotFound = errors.New("predicate not found")

// ErrNilPredicateFactory indicates a predicate was added without a factory.
var ErrNilPredicateFactory = errors.New("predicate factory cannot be nil")

// ErrDomainKeyConflict indicates DomainKey holds something other than a
// predicate domain.
var ErrDomainKeyConflict = errors.New("domain key holds a foreign utility")

// ErrNilRegistry indicates a domain was requested without a registry.
var ErrNilRegistry = errors.New("registry cannot be nil")

// PredicateDomain manages named view predicate factories.
// It is safe for concurrent use by multiple goroutines.
type PredicateDomain struct {
	mu         sync.RWMutex
	predicates map[string]PredicateFactory
}

// NewPredicateDomain creates an empty predicate domain.
func NewPredicateDomain() *PredicateDomain {
	return &PredicateDomain{predicates: make(map[string]PredicateFactory)}
}

// Add registers a predicate factory under name.
// Returns ErrInvalidPredicateName for empty names, ErrNilPredicateFactory for
// nil factories and ErrDuplicatePredicate on duplicates.
func (d *PredicateDomain) Add(name string, factory PredicateFactory) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidPredicateName
	}
	if factory == nil {
		return ErrNilPredicateFactory
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.predicates[name]; exists {
		return ErrDuplicatePredicate
	}
	if d.predicates == nil {
		d.predicates = make(map[string]PredicateFactory)
	}
	d.predicates[name] = factory
	return nil
}

// MustAdd registers a predicate factory, panicking on error.
// This is intended for package initialization only.
func (d *PredicateDomain) MustAdd(name string, factory PredicateFactory) {
	if err := d.Add(name, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered under name.
func (d *PredicateDomain) Lookup(name string) (PredicateFactory, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	factory, ok := d.predicates[name]
	return factory, ok
}

// Names returns the sorted names of all registered predicates.
func (d *PredicateDomain) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.predicates))
	for name := range d.predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build instantiates the predicate name with its configured value.
func (d *PredicateDomain) Build(name string, value any) (Predicate, error) {
	factory, ok := d.Lookup(name)
	if !ok {
		return nil, oops.Code("PREDICATE_NOT_FOUND").With("predicate", name).Wrap(ErrPredicateNotFound)
	}
	return factory(value), nil
}

// All returns the sorted names of predicates that hold for res when
// configured with true.
func (d *PredicateDomain) All(res resource.Resource, req *registry.Request) []string {
	var held []string
	for _, name := range d.Names() {
		pred, err := d.Build(name, true)
		if err != nil {
			continue
		}
		if pred.Match(res, req) {
			held = append(held, name)
		}
	}
	return held
}

// GetDomain returns the predicate domain registered in reg, creating and
// registering one on first use. Every call for the same registry returns
// the same instance. A utility under DomainKey that is not a domain is left
// in place and reported as DOMAIN_KEY_CONFLICT.
func GetDomain(reg *registry.Registry) (*PredicateDomain, error) {
	if reg == nil {
		return nil, oops.Code("REGISTRY_REQUIRED").Wrap(ErrNilRegistry)
	}

	if u, ok := reg.QueryUtility(DomainKey); ok {
		if domain, ok := u.(*PredicateDomain); ok {
			return domain, nil
		}
	}

	actual, _, err := reg.RegisterUtilityIfAbsent(DomainKey, NewPredicateDomain())
	if err != nil {
		return nil, oops.Code("DOMAIN_LOOKUP_FAILED").With("key", DomainKey).Wrap(err)
	}
	domain, ok := actual.(*PredicateDomain)
	if !ok {
		return nil, oops.Code("DOMAIN_KEY_CONFLICT").
			With("key", DomainKey).
			With("utility_type", fmt.Sprintf("%T", actual)).
			Wrap(ErrDomainKeyConflict)
	}
	return domain, nil
}

// Include registers the propertied predicate in reg's predicate domain.
// Calling it more than once is harmless.
func Include(reg *registry.Registry) error {
	domain, err := GetDomain(reg)
	if err != nil {
		return err
	}
	if _, ok := domain.Lookup(PropertiedPredicateName); ok {
		return nil
	}
	err = domain.Add(PropertiedPredicateName, func(value any) Predicate {
		return NewPropertiedPredicate(value)
	})
	if err != nil && !errors.Is(err, ErrDuplicatePredicate) {
		return oops.Code("INCLUDE_FAILED").Wrap(err)
	}
	return nil
}
