// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/holomush/propsheet/internal/resource"
)

func TestObjectModified(t *testing.T) {
	obj := resource.New("document")

	ev := ObjectModified(obj, "user-1")

	assert.Equal(t, TypeObjectModified, ev.Type)
	assert.Same(t, obj, ev.Object)
	assert.Equal(t, "user-1", ev.Subject)
	assert.False(t, ev.ID.IsZero())
	assert.False(t, ev.Timestamp.IsZero())
}

func TestObjectModified_DistinctIDs(t *testing.T) {
	obj := resource.New("document")

	assert.NotEqual(t, ObjectModified(obj, "").ID, ObjectModified(obj, "").ID)
}
