// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/propsheet/pkg/errutil"
)

type document struct {
	Title       string `json:"title" jsonschema:"title=Title"`
	Description string `json:"description,omitempty" jsonschema:"description=Short summary"`
	Body        string `json:"body"`
}

func TestNew_PreservesOrder(t *testing.T) {
	s := New("title", "description", "another")

	assert.Equal(t, []string{"title", "description", "another"}, s.Names())
}

func TestSchema_Lookup(t *testing.T) {
	s := New("title", "description")

	node, ok := s.Lookup("description")
	require.True(t, ok)
	assert.Equal(t, "description", node.Name)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(Null))
	assert.False(t, IsNull(nil))
	assert.False(t, IsNull(""))
	assert.Equal(t, "<schema.Null>", Null.String())
}

func TestFromStruct(t *testing.T) {
	s, err := FromStruct(&document{})
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "description", "body"}, s.Names())

	title, ok := s.Lookup("title")
	require.True(t, ok)
	assert.Equal(t, "Title", title.Title)

	desc, ok := s.Lookup("description")
	require.True(t, ok)
	assert.Equal(t, "Short summary", desc.Description)
}

func TestFromStruct_NotAStruct(t *testing.T) {
	_, err := FromStruct("plain string")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "SCHEMA_NOT_OBJECT")
}
