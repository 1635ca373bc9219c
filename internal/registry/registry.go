// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package registry provides the process-wide component registry: singleton
// utilities, event subscribers and the content metadata accessor.
package registry

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/samber/oops"

	"github.com/holomush/propsheet/internal/event"
	"github.com/holomush/propsheet/internal/observability"
	"github.com/holomush/propsheet/internal/resource"
)

// ErrInvalidUtilityKey indicates the utility key is empty.
var ErrInvalidUtilityKey = errors.New("utility key cannot be empty")

// ErrNilSubscriber indicates a nil subscriber was passed to Subscribe.
var ErrNilSubscriber = errors.New("subscriber cannot be nil")

// MetadataLookup reads declarative content-type metadata for a resource.
// It returns def when the resource's type is unknown or declares no value
// under name.
type MetadataLookup interface {
	Metadata(res resource.Resource, name string, def any) any
}

// Subscriber receives events published through Notify.
type Subscriber func(ctx context.Context, ev event.Event) error

// Registry holds components shared by requests.
// It is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu          sync.RWMutex
	utilities   map[string]any
	subscribers map[event.Type][]Subscriber
	content     MetadataLookup
	metrics     *observability.Metrics
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		utilities:   make(map[string]any),
		subscribers: make(map[event.Type][]Subscriber),
	}
}

// QueryUtility returns the utility registered under key.
func (r *Registry) QueryUtility(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.utilities[key]
	return u, ok
}

// RegisterUtility stores component under key, replacing any previous one.
func (r *Registry) RegisterUtility(key string, component any) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidUtilityKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.utilities == nil {
		r.utilities = make(map[string]any)
	}
	r.utilities[key] = component
	return nil
}

// RegisterUtilityIfAbsent stores component under key unless a utility is
// already registered there. It returns the utility that ends up registered
// and whether it was already present.
func (r *Registry) RegisterUtilityIfAbsent(key string, component any) (any, bool, error) {
	if strings.TrimSpace(key) == "" {
		return nil, false, ErrInvalidUtilityKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.utilities[key]; ok {
		return existing, true, nil
	}
	if r.utilities == nil {
		r.utilities = make(map[string]any)
	}
	r.utilities[key] = component
	return component, false, nil
}

// Subscribe registers sub for events of the given type.
// Subscribers run in registration order.
func (r *Registry) Subscribe(eventType event.Type, sub Subscriber) error {
	if sub == nil {
		return ErrNilSubscriber
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subscribers == nil {
		r.subscribers = make(map[event.Type][]Subscriber)
	}
	r.subscribers[eventType] = append(r.subscribers[eventType], sub)
	return nil
}

// Notify dispatches ev to every subscriber of its type.
// All subscribers run even if some fail; their errors are joined.
func (r *Registry) Notify(ctx context.Context, ev event.Event) error {
	r.mu.RLock()
	subs := slices.Clone(r.subscribers[ev.Type])
	metrics := r.metrics
	r.mu.RUnlock()

	metrics.RecordNotification(string(ev.Type))

	var errs []error
	for _, sub := range subs {
		if err := sub(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return oops.Code("NOTIFY_FAILED").
			With("event_type", string(ev.Type)).
			With("event_id", ev.ID.String()).
			With("failed", len(errs)).
			Wrap(errors.Join(errs...))
	}
	return nil
}

// SetContent installs the content metadata accessor.
func (r *Registry) SetContent(content MetadataLookup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = content
}

// Content returns the content metadata accessor, or nil if none is installed.
func (r *Registry) Content() MetadataLookup {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.content
}

// SetMetrics installs the metrics recorder.
func (r *Registry) SetMetrics(m *observability.Metrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = m
}

// Metrics returns the metrics recorder. The result may be nil, which is
// still safe to record on.
func (r *Registry) Metrics() *observability.Metrics {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metrics
}

// Request carries per-request state to operations that need the registry.
type Request struct {
	Registry *Registry
	Subject  string // principal making the request; empty when anonymous
}

// NewRequest creates a request bound to reg.
func NewRequest(reg *Registry, subject string) *Request {
	return &Request{Registry: reg, Subject: subject}
}
