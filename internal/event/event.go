// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package event defines the notifications published when resources change.
package event

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/holomush/propsheet/internal/resource"
)

// Type identifies the kind of event.
type Type string

// TypeObjectModified is published after a resource's properties changed.
const TypeObjectModified Type = "object_modified"

// Event describes something that happened to a resource.
type Event struct {
	ID        ulid.ULID
	Type      Type
	Timestamp time.Time
	Object    resource.Resource
	Subject   string // who caused the change; empty when unknown
}

// ObjectModified creates a modification event for obj.
func ObjectModified(obj resource.Resource, subject string) Event {
	return Event{
		ID:        resource.NewULID(),
		Type:      TypeObjectModified,
		Timestamp: time.Now(),
		Object:    obj,
		Subject:   subject,
	}
}
